// Package model provides domain models and DTOs for the volunteerrequest module.
package model

// SaveRequest carries the volunteer request form. The same shape serves
// create and update; status is managed by the fulfill endpoint.
type SaveRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	PlaceID     string   `json:"placeId"`
}

// Filter narrows volunteer request listings.
type Filter struct {
	// IncludeCompleted also returns completed requests.
	IncludeCompleted bool
	// PlaceID keeps only requests pinned to one location when set.
	PlaceID string
	// Query matches titles and descriptions case-insensitively when set.
	Query string
}

// ListResponse wraps a volunteer request listing.
type ListResponse struct {
	VolunteerRequests []VolunteerRequest `json:"volunteerRequests"`
}
