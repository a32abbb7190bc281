package model

import (
	"time"

	"gorm.io/gorm"
)

// Organization represents an aid-providing organization.
// Matches the organizations table schema.
type Organization struct {
	ID                  uint       `gorm:"primaryKey;column:id"                                      json:"id"`
	Name                string     `gorm:"column:name;type:varchar(255);not null"                    json:"name"`
	Summary             string     `gorm:"column:summary;type:text"                                  json:"summary"`
	Description         string     `gorm:"column:description;type:text"                              json:"description"`
	ProfileImageURL     string     `gorm:"column:profile_image_url;type:varchar(1024)"               json:"profileImageUrl"`
	AssistanceTypes     []string   `gorm:"column:assistance_types;type:text;serializer:json"         json:"assistanceTypes"`
	AssistanceFrequency string     `gorm:"column:assistance_frequency;type:varchar(255)"             json:"assistanceFrequency"`
	PeopleReached       string     `gorm:"column:people_reached;type:varchar(255)"                   json:"peopleReached"`
	PhoneNumbers        []string   `gorm:"column:phone_numbers;type:text;serializer:json"            json:"phoneNumbers"`
	Email               string     `gorm:"column:email;type:varchar(255)"                            json:"email"`
	Website             string     `gorm:"column:website;type:varchar(1024)"                         json:"website"`
	Facebook            string     `gorm:"column:facebook;type:varchar(1024)"                        json:"facebook"`
	Instagram           string     `gorm:"column:instagram;type:varchar(1024)"                       json:"instagram"`
	Twitter             string     `gorm:"column:twitter;type:varchar(1024)"                         json:"twitter"`
	PaymentLink         string     `gorm:"column:payment_link;type:varchar(1024)"                    json:"paymentLink"`
	BankName            string     `gorm:"column:bank_name;type:varchar(255)"                        json:"bankName"`
	AccountNumber       string     `gorm:"column:account_number;type:varchar(255)"                   json:"accountNumber"`
	AccountName         string     `gorm:"column:account_name;type:varchar(255)"                     json:"accountName"`
	AccountType         string     `gorm:"column:account_type;type:varchar(255)"                     json:"accountType"`
	BranchName          string     `gorm:"column:branch_name;type:varchar(255)"                      json:"branchName"`
	Notes               string     `gorm:"column:notes;type:text"                                    json:"notes"`
	Approved            bool       `gorm:"column:approved;not null;default:false"                    json:"approved"`
	Locations           []Location `gorm:"foreignKey:OrganizationID"                                 json:"locations"`
	CreatedAt           time.Time  `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Organization) TableName() string {
	return "organizations"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (o *Organization) BeforeUpdate(tx *gorm.DB) error {
	o.UpdatedAt = time.Now()
	return nil
}

// Location represents a place an organization operates from.
// Matches the locations table schema.
type Location struct {
	ID               uint    `gorm:"primaryKey;column:id"                                                json:"-"`
	OrganizationID   uint    `gorm:"column:organization_id;not null;index:idx_locations_organization_id" json:"-"`
	PlaceID          string  `gorm:"column:place_id;type:varchar(255);not null"                          json:"placeId"`
	FormattedAddress string  `gorm:"column:formatted_address;type:varchar(1024)"                         json:"formattedAddress"`
	District         string  `gorm:"column:district;type:varchar(255)"                                   json:"district"`
	Province         string  `gorm:"column:province;type:varchar(255)"                                   json:"province"`
	Lat              float64 `gorm:"column:lat"                                                          json:"lat"`
	Lon              float64 `gorm:"column:lon"                                                          json:"lon"`
}

// TableName specifies the table name for GORM.
func (Location) TableName() string {
	return "locations"
}

// HasPlace reports whether placeID is one of the organization's locations.
func (o *Organization) HasPlace(placeID string) bool {
	for _, loc := range o.Locations {
		if loc.PlaceID == placeID {
			return true
		}
	}
	return false
}
