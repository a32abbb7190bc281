// Package model provides DTOs for the directory module.
package model

import (
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
)

// Marker pins one organization location on the map. An organization
// with several locations contributes one marker per location.
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

// DirectoryResponse is the public directory listing.
type DirectoryResponse struct {
	Organizations []organizationModel.PublicOrganization `json:"organizations"`
	Markers       []Marker                               `json:"markers"`
	BoundingBox   BoundingBox                            `json:"boundingBox"`
}
