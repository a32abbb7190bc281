// Package repository provides the data access layer for the directory module.
package repository

import (
	"context"

	"gorm.io/gorm"

	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
)

// Repository defines the interface for directory data access operations.
type Repository interface {
	// ListApproved returns every approved organization with its locations.
	ListApproved(ctx context.Context) ([]organizationModel.Organization, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new directory repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListApproved returns every approved organization with its locations.
func (r *repository) ListApproved(ctx context.Context) ([]organizationModel.Organization, error) {
	var organizations []organizationModel.Organization
	err := r.db.WithContext(ctx).
		Preload("Locations").
		Where("approved = ?", true).
		Order("name ASC").
		Find(&organizations).Error
	if err != nil {
		return nil, err
	}
	return organizations, nil
}
