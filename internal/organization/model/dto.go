// Package model provides domain models and DTOs for the organization module.
package model

// DetailsUpdateRequest carries the organization details form slice.
type DetailsUpdateRequest struct {
	Name                string   `json:"name"`
	Summary             string   `json:"summary"`
	Description         string   `json:"description"`
	ProfileImageURL     string   `json:"profileImageUrl"`
	AssistanceTypes     []string `json:"assistanceTypes"`
	AssistanceFrequency string   `json:"assistanceFrequency"`
	PeopleReached       string   `json:"peopleReached"`
}

// ContactUpdateRequest carries the contact details form slice.
type ContactUpdateRequest struct {
	PhoneNumbers []string `json:"phoneNumbers"`
	Email        string   `json:"email"`
	Website      string   `json:"website"`
	Facebook     string   `json:"facebook"`
	Instagram    string   `json:"instagram"`
	Twitter      string   `json:"twitter"`
	PaymentLink  string   `json:"paymentLink"`
}

// BankUpdateRequest carries the bank details form slice.
type BankUpdateRequest struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	AccountType   string `json:"accountType"`
	BranchName    string `json:"branchName"`
	Notes         string `json:"notes"`
}

// LocationInput is one entry of a locations batch update.
type LocationInput struct {
	PlaceID          string  `json:"placeId"`
	FormattedAddress string  `json:"formattedAddress"`
	District         string  `json:"district"`
	Province         string  `json:"province"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
}

// LocationsUpdateRequest replaces the organization's location list.
// The form submits the whole list, previous entries included, in one call.
type LocationsUpdateRequest struct {
	Locations []LocationInput `json:"locations"`
}

// PublicOrganization is the organization shape served to anonymous
// readers. Bank details stay private.
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

// Public projects an organization onto its public shape.
func (o *Organization) Public() *PublicOrganization {
	return &PublicOrganization{
		ID:                  o.ID,
		Name:                o.Name,
		Summary:             o.Summary,
		Description:         o.Description,
		ProfileImageURL:     o.ProfileImageURL,
		AssistanceTypes:     o.AssistanceTypes,
		AssistanceFrequency: o.AssistanceFrequency,
		PeopleReached:       o.PeopleReached,
		PhoneNumbers:        o.PhoneNumbers,
		Email:               o.Email,
		Website:             o.Website,
		Facebook:            o.Facebook,
		Instagram:           o.Instagram,
		Twitter:             o.Twitter,
		PaymentLink:         o.PaymentLink,
		Locations:           o.Locations,
	}
}
