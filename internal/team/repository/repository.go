// Package repository provides the data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	accountModel "github.com/aidnetlk/aidnet/internal/account/model"
	teamModel "github.com/aidnetlk/aidnet/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// ListMembers returns the organization's accounts as team members.
	ListMembers(ctx context.Context, organizationID uint) ([]teamModel.Member, error)

	// ListPending returns the organization's unaccepted invitations.
	ListPending(ctx context.Context, organizationID uint) ([]teamModel.TeamInvitation, error)

	// HasPendingEmail reports whether a pending invitation targets the email.
	HasPendingEmail(ctx context.Context, organizationID uint, email string) (bool, error)

	// CreateInvitation inserts a new invitation.
	CreateInvitation(ctx context.Context, invitation *teamModel.TeamInvitation) error

	// GetInvitation finds one invitation of an organization.
	GetInvitation(ctx context.Context, organizationID, id uint) (*teamModel.TeamInvitation, error)

	// GetByToken finds an invitation by its token.
	GetByToken(ctx context.Context, token string) (*teamModel.TeamInvitation, error)

	// UpdateToken stores a freshly issued token on an invitation.
	UpdateToken(ctx context.Context, organizationID, id uint, token string) error

	// DeleteInvitation removes a pending invitation.
	DeleteInvitation(ctx context.Context, organizationID, id uint) error

	// MarkCreated flags an invitation as accepted.
	MarkCreated(ctx context.Context, id uint) error

	// CreateAccount inserts the account an accepted invitation becomes.
	CreateAccount(ctx context.Context, account *accountModel.Account) error

	// GetOrganizationName returns an organization's display name.
	GetOrganizationName(ctx context.Context, organizationID uint) (string, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListMembers returns the organization's accounts as team members.
func (r *repository) ListMembers(ctx context.Context, organizationID uint) ([]teamModel.Member, error) {
	var accounts []accountModel.Account
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at ASC").
		Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	members := make([]teamModel.Member, 0, len(accounts))
	for _, a := range accounts {
		members = append(members, teamModel.Member{
			ID:        a.ID,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Email:     a.Email,
			UserRoles: a.UserRoles,
			IsActive:  a.IsActive,
		})
	}
	return members, nil
}

// ListPending returns the organization's unaccepted invitations.
func (r *repository) ListPending(ctx context.Context, organizationID uint) ([]teamModel.TeamInvitation, error) {
	var invitations []teamModel.TeamInvitation
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND created = ?", organizationID, false).
		Order("created_at ASC").
		Find(&invitations).Error
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// HasPendingEmail reports whether a pending invitation targets the email.
func (r *repository) HasPendingEmail(ctx context.Context, organizationID uint, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.TeamInvitation{}).
		Where("organization_id = ? AND email = ? AND created = ?", organizationID, email, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateInvitation inserts a new invitation.
func (r *repository) CreateInvitation(ctx context.Context, invitation *teamModel.TeamInvitation) error {
	now := time.Now()
	invitation.CreatedAt = now
	invitation.UpdatedAt = now
	return r.db.WithContext(ctx).Create(invitation).Error
}

// GetInvitation finds one invitation of an organization.
func (r *repository) GetInvitation(ctx context.Context, organizationID, id uint) (*teamModel.TeamInvitation, error) {
	var invitation teamModel.TeamInvitation
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&invitation).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

// GetByToken finds an invitation by its token.
func (r *repository) GetByToken(ctx context.Context, token string) (*teamModel.TeamInvitation, error) {
	var invitation teamModel.TeamInvitation
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&invitation).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrInvitationNotFound
		}
		return nil, err
	}
	return &invitation, nil
}

// UpdateToken stores a freshly issued token on an invitation.
func (r *repository) UpdateToken(ctx context.Context, organizationID, id uint, token string) error {
	result := r.db.WithContext(ctx).
		Model(&teamModel.TeamInvitation{}).
		Where("id = ? AND organization_id = ? AND created = ?", id, organizationID, false).
		Updates(map[string]interface{}{
			"token":      token,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrInvitationNotFound
	}
	return nil
}

// DeleteInvitation removes a pending invitation.
func (r *repository) DeleteInvitation(ctx context.Context, organizationID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ? AND created = ?", id, organizationID, false).
		Delete(&teamModel.TeamInvitation{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrInvitationNotFound
	}
	return nil
}

// MarkCreated flags an invitation as accepted.
func (r *repository) MarkCreated(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&teamModel.TeamInvitation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"created":    true,
			"updated_at": time.Now(),
		}).Error
}

// CreateAccount inserts the account an accepted invitation becomes.
func (r *repository) CreateAccount(ctx context.Context, account *accountModel.Account) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	return r.db.WithContext(ctx).Create(account).Error
}

// GetOrganizationName returns an organization's display name.
func (r *repository) GetOrganizationName(ctx context.Context, organizationID uint) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("organizations").
		Select("name").
		Where("id = ?", organizationID).
		Scan(&name).Error
	return name, err
}
