package model

import (
	"time"

	"gorm.io/gorm"
)

// TeamInvitation represents a pending invite to join an organization's
// team. Matches the team_invitations table schema.
type TeamInvitation struct {
	ID             uint      `gorm:"primaryKey;column:id"                                                       json:"id"`
	OrganizationID uint      `gorm:"column:organization_id;not null;index:idx_team_invitations_organization_id" json:"-"`
	FirstName      string    `gorm:"column:first_name;type:varchar(255);not null"                               json:"firstName"`
	LastName       string    `gorm:"column:last_name;type:varchar(255);not null"                                json:"lastName"`
	Email          string    `gorm:"column:email;type:varchar(255);not null"                                    json:"email"`
	UserRoles      []int64   `gorm:"column:user_roles;type:text;serializer:json"                                json:"userRoles"`
	Token          string    `gorm:"column:token;type:varchar(64);not null;uniqueIndex:idx_team_invitations_token" json:"-"`
	Created        bool      `gorm:"column:created;not null;default:false"                                      json:"created"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"                  json:"createdAt"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null"                  json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (TeamInvitation) TableName() string {
	return "team_invitations"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (i *TeamInvitation) BeforeUpdate(tx *gorm.DB) error {
	i.UpdatedAt = time.Now()
	return nil
}
