// Package model provides domain models and DTOs for the request module.
package model

// SaveRequest carries the request form. The same shape serves create
// and update; status is managed by the fulfill endpoint, not the form.
type SaveRequest struct {
	RequestType  string  `json:"requestType"`
	ItemName     string  `json:"itemName"`
	Quantity     float64 `json:"quantity"`
	QuantityUnit string  `json:"quantityUnit"`
	Description  string  `json:"description"`
	PlaceID      string  `json:"placeId"`
}

// Filter narrows request listings.
type Filter struct {
	// RequestType keeps only one request type when set.
	RequestType string
	// IncludeCompleted also returns completed requests.
	IncludeCompleted bool
	// PlaceID keeps only requests pinned to one location when set.
	PlaceID string
	// Query matches item names case-insensitively when set.
	Query string
}

// ListResponse wraps a request listing.
type ListResponse struct {
	Requests []Request `json:"requests"`
}
