package model

import (
	"time"

	"gorm.io/gorm"
)

// Account represents a member of an organization's team.
// Matches the accounts table schema.
type Account struct {
	ID                      uint       `gorm:"primaryKey;column:id"                                            json:"id"`
	FirstName               string     `gorm:"column:first_name;type:varchar(255);not null"                    json:"firstName"`
	LastName                string     `gorm:"column:last_name;type:varchar(255);not null"                     json:"lastName"`
	Email                   string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_accounts_email" json:"email"`
	ContactNumber           string     `gorm:"column:contact_number;type:varchar(64)"                          json:"contactNumber"`
	HashedPassword          string     `gorm:"column:hashed_password;type:varchar(255);not null"               json:"-"`
	Verified                bool       `gorm:"column:verified;not null;default:false"                          json:"verified"`
	IsActive                bool       `gorm:"column:is_active;not null;default:true"                          json:"isActive"`
	UserRoles               []int64    `gorm:"column:user_roles;type:text;serializer:json"                     json:"userRoles"`
	OrganizationID          uint       `gorm:"column:organization_id;not null;index:idx_accounts_organization_id" json:"-"`
	ResetPasswordHash       *string    `gorm:"column:reset_password_hash;type:varchar(255)"                    json:"-"`
	ResetPasswordHashExpiry *time.Time `gorm:"column:reset_password_hash_expiry"              json:"-"`
	CreatedAt               time.Time  `gorm:"column:created_at;not null"       json:"createdAt"`
	UpdatedAt               time.Time  `gorm:"column:updated_at;not null"       json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Account) TableName() string {
	return "accounts"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return nil
}
