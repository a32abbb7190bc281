// Package repository provides the data access layer for the organization module.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
)

// Repository defines the interface for organization data access operations.
type Repository interface {
	// GetByID finds an organization with its locations.
	GetByID(ctx context.Context, id uint) (*organizationModel.Organization, error)

	// GetIDForAccount resolves the organization an account belongs to.
	GetIDForAccount(ctx context.Context, accountID uint) (uint, error)

	// UpdateDetails writes the details column slice.
	UpdateDetails(ctx context.Context, id uint, req *organizationModel.DetailsUpdateRequest) error

	// UpdateContact writes the contact column slice.
	UpdateContact(ctx context.Context, id uint, req *organizationModel.ContactUpdateRequest) error

	// UpdateBank writes the bank column slice.
	UpdateBank(ctx context.Context, id uint, req *organizationModel.BankUpdateRequest) error

	// ReplaceLocations swaps the organization's location list.
	ReplaceLocations(ctx context.Context, id uint, locations []organizationModel.Location) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new organization repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByID finds an organization with its locations.
func (r *repository) GetByID(ctx context.Context, id uint) (*organizationModel.Organization, error) {
	var org organizationModel.Organization
	err := r.db.WithContext(ctx).
		Preload("Locations").
		Where("id = ?", id).
		First(&org).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, organizationModel.ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

// GetIDForAccount resolves the organization an account belongs to.
func (r *repository) GetIDForAccount(ctx context.Context, accountID uint) (uint, error) {
	var organizationID uint
	err := r.db.WithContext(ctx).
		Table("accounts").
		Select("organization_id").
		Where("id = ?", accountID).
		Scan(&organizationID).Error

	if err != nil {
		return 0, err
	}
	if organizationID == 0 {
		return 0, organizationModel.ErrOrganizationNotFound
	}
	return organizationID, nil
}

// UpdateDetails writes the details column slice. Columns owned by the
// other forms are left untouched.
func (r *repository) UpdateDetails(ctx context.Context, id uint, req *organizationModel.DetailsUpdateRequest) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"name":                 req.Name,
		"summary":              req.Summary,
		"description":          req.Description,
		"profile_image_url":    req.ProfileImageURL,
		"assistance_types":     serializeJSON(req.AssistanceTypes),
		"assistance_frequency": req.AssistanceFrequency,
		"people_reached":       req.PeopleReached,
	})
}

// UpdateContact writes the contact column slice.
func (r *repository) UpdateContact(ctx context.Context, id uint, req *organizationModel.ContactUpdateRequest) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"phone_numbers": serializeJSON(req.PhoneNumbers),
		"email":         req.Email,
		"website":       req.Website,
		"facebook":      req.Facebook,
		"instagram":     req.Instagram,
		"twitter":       req.Twitter,
		"payment_link":  req.PaymentLink,
	})
}

// UpdateBank writes the bank column slice.
func (r *repository) UpdateBank(ctx context.Context, id uint, req *organizationModel.BankUpdateRequest) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"bank_name":      req.BankName,
		"account_number": req.AccountNumber,
		"account_name":   req.AccountName,
		"account_type":   req.AccountType,
		"branch_name":    req.BranchName,
		"notes":          req.Notes,
	})
}

// serializeJSON encodes a slice for its text column. Column-map updates
// bypass the model serializers, so the encoding happens here.
func serializeJSON(values []string) string {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

func (r *repository) updateColumns(ctx context.Context, id uint, columns map[string]interface{}) error {
	columns["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&organizationModel.Organization{}).
		Where("id = ?", id).
		Updates(columns)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return organizationModel.ErrOrganizationNotFound
	}
	return nil
}

// ReplaceLocations swaps the organization's location list in a transaction.
func (r *repository) ReplaceLocations(ctx context.Context, id uint, locations []organizationModel.Location) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&organizationModel.Location{}).Error; err != nil {
			return err
		}

		for i := range locations {
			locations[i].ID = 0
			locations[i].OrganizationID = id
		}
		if len(locations) == 0 {
			return nil
		}
		return tx.Create(&locations).Error
	})
}
