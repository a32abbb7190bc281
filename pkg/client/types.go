package client

import "time"

// Account is a team member's account as the API returns it.
type Account struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	UserRoles []int64 `json:"userRoles"`
}

// AuthResponse is returned by sign-up, sign-in and invitation acceptance.
type AuthResponse struct {
	Token   string  `json:"token"`
	Account Account `json:"account"`
}

// OrganizationRef is the organization slice on Me.
type OrganizationRef struct {
	ID       uint `json:"id"`
	Approved bool `json:"approved"`
}

// Me is the signed-in account with its organization reference.
type Me struct {
	ID           uint             `json:"id"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	Email        string           `json:"email"`
	UserRoles    []int64          `json:"userRoles"`
	Organization *OrganizationRef `json:"organization"`
}

// Location is a place an organization operates from.
type Location struct {
	PlaceID          string  `json:"placeId"`
	FormattedAddress string  `json:"formattedAddress"`
	District         string  `json:"district"`
	Province         string  `json:"province"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
}

// Organization is the full organization shape served to its own team.
type Organization struct {
	ID                  uint       `json:"id"`
	Name                string     `json:"name"`
	Summary             string     `json:"summary"`
	Description         string     `json:"description"`
	ProfileImageURL     string     `json:"profileImageUrl"`
	AssistanceTypes     []string   `json:"assistanceTypes"`
	AssistanceFrequency string     `json:"assistanceFrequency"`
	PeopleReached       string     `json:"peopleReached"`
	PhoneNumbers        []string   `json:"phoneNumbers"`
	Email               string     `json:"email"`
	Website             string     `json:"website"`
	Facebook            string     `json:"facebook"`
	Instagram           string     `json:"instagram"`
	Twitter             string     `json:"twitter"`
	PaymentLink         string     `json:"paymentLink"`
	BankName            string     `json:"bankName"`
	AccountNumber       string     `json:"accountNumber"`
	AccountName         string     `json:"accountName"`
	AccountType         string     `json:"accountType"`
	BranchName          string     `json:"branchName"`
	Notes               string     `json:"notes"`
	Approved            bool       `json:"approved"`
	Locations           []Location `json:"locations"`
}

// PublicOrganization is the organization shape served to anonymous
// readers. Bank details are absent.
type PublicOrganization struct {
	ID                  uint       `json:"id"`
	Name                string     `json:"name"`
	Summary             string     `json:"summary"`
	Description         string     `json:"description"`
	ProfileImageURL     string     `json:"profileImageUrl"`
	AssistanceTypes     []string   `json:"assistanceTypes"`
	AssistanceFrequency string     `json:"assistanceFrequency"`
	PeopleReached       string     `json:"peopleReached"`
	PhoneNumbers        []string   `json:"phoneNumbers"`
	Email               string     `json:"email"`
	Website             string     `json:"website"`
	Facebook            string     `json:"facebook"`
	Instagram           string     `json:"instagram"`
	Twitter             string     `json:"twitter"`
	PaymentLink         string     `json:"paymentLink"`
	Locations           []Location `json:"locations"`
}

// Request is a supply request.
type Request struct {
	ID             uint      `json:"id"`
	OrganizationID uint      `json:"organizationId"`
	RequestType    string    `json:"requestType"`
	ItemName       string    `json:"itemName"`
	Quantity       float64   `json:"quantity"`
	QuantityUnit   string    `json:"quantityUnit"`
	Description    string    `json:"description"`
	PlaceID        string    `json:"placeId"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// VolunteerRequest is a call for volunteers.
type VolunteerRequest struct {
	ID             uint      `json:"id"`
	OrganizationID uint      `json:"organizationId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Skills         []string  `json:"skills"`
	PlaceID        string    `json:"placeId"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Member is one team member.
type Member struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	UserRoles []int64 `json:"userRoles"`
	IsActive  bool    `json:"isActive"`
}

// Invitation is a pending team invitation.
type Invitation struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	UserRoles []int64 `json:"userRoles"`
	Created   bool    `json:"created"`
}

// Team lists an organization's members and pending invitations.
type Team struct {
	Members     []Member     `json:"members"`
	Invitations []Invitation `json:"invitations"`
}

// Marker pins one organization location on the map.
type Marker struct {
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	OrganizationID   uint    `json:"organizationId"`
	OrganizationName string  `json:"organizationName"`
	PlaceID          string  `json:"placeId"`
}

// BoundingBox bounds the map viewport.
type BoundingBox struct {
	MinLat float64 `json:"minLat"`
	MinLon float64 `json:"minLon"`
	MaxLat float64 `json:"maxLat"`
	MaxLon float64 `json:"maxLon"`
}

// Directory is the public directory listing.
type Directory struct {
	Organizations []PublicOrganization `json:"organizations"`
	Markers       []Marker             `json:"markers"`
	BoundingBox   BoundingBox          `json:"boundingBox"`
}

// UploadSlot carries a presigned upload URL and the object's public URL.
type UploadSlot struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
}

// Localization is a language's merged string table.
type Localization struct {
	Language string            `json:"language"`
	Strings  map[string]string `json:"strings"`
}
