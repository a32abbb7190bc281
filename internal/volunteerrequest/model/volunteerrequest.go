package model

import (
	"time"

	"gorm.io/gorm"
)

// Volunteer request statuses.
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
)

// VolunteerRequest represents a call for volunteers published by an
// organization. Matches the volunteer_requests table schema.
type VolunteerRequest struct {
	ID             uint      `gorm:"primaryKey;column:id"                                                         json:"id"`
	OrganizationID uint      `gorm:"column:organization_id;not null;index:idx_volunteer_requests_organization_id" json:"organizationId"`
	Title          string    `gorm:"column:title;type:varchar(255);not null"                                      json:"title"`
	Description    string    `gorm:"column:description;type:text"                                                 json:"description"`
	Skills         []string  `gorm:"column:skills;type:text;serializer:json"                                      json:"skills"`
	PlaceID        string    `gorm:"column:place_id;type:varchar(255)"                                            json:"placeId"`
	Status         string    `gorm:"column:status;type:varchar(32);not null;default:'Active'"                     json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"                    json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"                    json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (VolunteerRequest) TableName() string {
	return "volunteer_requests"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (v *VolunteerRequest) BeforeUpdate(tx *gorm.DB) error {
	v.UpdatedAt = time.Now()
	return nil
}
