// Package repository provides the data access layer for the account module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	accountModel "github.com/aidnetlk/aidnet/internal/account/model"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
)

// Repository defines the interface for account data access operations.
type Repository interface {
	// Create inserts a new account.
	Create(ctx context.Context, account *accountModel.Account) error

	// CreateOrganization inserts a new organization, filling in its id.
	CreateOrganization(ctx context.Context, org *organizationModel.Organization) error

	// GetByEmail finds an account by email.
	GetByEmail(ctx context.Context, email string) (*accountModel.Account, error)

	// GetByID finds an account by id.
	GetByID(ctx context.Context, id uint) (*accountModel.Account, error)

	// GetOrganizationRef returns the id/approved slice of an account's organization.
	GetOrganizationRef(ctx context.Context, organizationID uint) (*accountModel.OrganizationRef, error)

	// SetResetToken stores a hashed reset token with its expiry.
	SetResetToken(ctx context.Context, accountID uint, tokenHash string, expiry time.Time) error

	// UpdatePassword replaces the password hash and clears any reset token.
	UpdatePassword(ctx context.Context, accountID uint, hashedPassword string) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new account repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new account.
func (r *repository) Create(ctx context.Context, account *accountModel.Account) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	err := r.db.WithContext(ctx).Create(account).Error
	if err != nil {
		if isDuplicateError(err) {
			return accountModel.ErrEmailTaken
		}
		return err
	}
	return nil
}

// CreateOrganization inserts a new organization, filling in its id.
func (r *repository) CreateOrganization(ctx context.Context, org *organizationModel.Organization) error {
	now := time.Now()
	org.CreatedAt = now
	org.UpdatedAt = now
	return r.db.WithContext(ctx).Create(org).Error
}

// isDuplicateError checks if err is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// GetByEmail finds an account by email.
func (r *repository) GetByEmail(ctx context.Context, email string) (*accountModel.Account, error) {
	var account accountModel.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accountModel.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// GetByID finds an account by id.
func (r *repository) GetByID(ctx context.Context, id uint) (*accountModel.Account, error) {
	var account accountModel.Account
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&account).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accountModel.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// GetOrganizationRef returns the id/approved slice of an account's organization.
func (r *repository) GetOrganizationRef(ctx context.Context, organizationID uint) (*accountModel.OrganizationRef, error) {
	var ref accountModel.OrganizationRef
	err := r.db.WithContext(ctx).
		Table("organizations").
		Select("id, approved").
		Where("id = ?", organizationID).
		Scan(&ref).Error

	if err != nil {
		return nil, err
	}
	if ref.ID == 0 {
		return nil, nil
	}
	return &ref, nil
}

// SetResetToken stores a hashed reset token with its expiry.
func (r *repository) SetResetToken(ctx context.Context, accountID uint, tokenHash string, expiry time.Time) error {
	return r.db.WithContext(ctx).
		Model(&accountModel.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"reset_password_hash":        tokenHash,
			"reset_password_hash_expiry": expiry,
			"updated_at":                 time.Now(),
		}).Error
}

// UpdatePassword replaces the password hash and clears any reset token.
func (r *repository) UpdatePassword(ctx context.Context, accountID uint, hashedPassword string) error {
	return r.db.WithContext(ctx).
		Model(&accountModel.Account{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"hashed_password":            hashedPassword,
			"reset_password_hash":        nil,
			"reset_password_hash_expiry": nil,
			"updated_at":                 time.Now(),
		}).Error
}
