package model

import (
	"time"

	"gorm.io/gorm"
)

// Request types.
const (
	TypeRation    = "Ration"
	TypeEquipment = "Equipment"
)

// Quantity units.
const (
	UnitKg  = "Kg"
	UnitL   = "L"
	UnitML  = "ML"
	UnitNos = "Nos"
)

// Request statuses.
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
)

// ValidType reports whether t is a known request type.
func ValidType(t string) bool {
	return t == TypeRation || t == TypeEquipment
}

// ValidUnit reports whether u is a known quantity unit.
func ValidUnit(u string) bool {
	return u == UnitKg || u == UnitL || u == UnitML || u == UnitNos
}

// Request represents a supply request published by an organization.
// Matches the requests table schema.
type Request struct {
	ID             uint      `gorm:"primaryKey;column:id"                                               json:"id"`
	OrganizationID uint      `gorm:"column:organization_id;not null;index:idx_requests_organization_id" json:"organizationId"`
	RequestType    string    `gorm:"column:request_type;type:varchar(32);not null"                      json:"requestType"`
	ItemName       string    `gorm:"column:item_name;type:varchar(255);not null"                        json:"itemName"`
	Quantity       float64   `gorm:"column:quantity;not null"                                           json:"quantity"`
	QuantityUnit   string    `gorm:"column:quantity_unit;type:varchar(16);not null"                     json:"quantityUnit"`
	Description    string    `gorm:"column:description;type:text"                                       json:"description"`
	PlaceID        string    `gorm:"column:place_id;type:varchar(255);not null"                         json:"placeId"`
	Status         string    `gorm:"column:status;type:varchar(32);not null;default:'Active'"           json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"          json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"          json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Request) TableName() string {
	return "requests"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (r *Request) BeforeUpdate(tx *gorm.DB) error {
	r.UpdatedAt = time.Now()
	return nil
}
