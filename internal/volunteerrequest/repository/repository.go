// Package repository provides the data access layer for the volunteerrequest module.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	volunteerModel "github.com/aidnetlk/aidnet/internal/volunteerrequest/model"
)

// Repository defines the interface for volunteer request data access operations.
type Repository interface {
	// List returns an organization's volunteer requests matching the
	// filter, newest first.
	List(ctx context.Context, organizationID uint, filter volunteerModel.Filter) ([]volunteerModel.VolunteerRequest, error)

	// Get finds one volunteer request of an organization.
	Get(ctx context.Context, organizationID, id uint) (*volunteerModel.VolunteerRequest, error)

	// Create inserts a new volunteer request.
	Create(ctx context.Context, request *volunteerModel.VolunteerRequest) error

	// Update saves a volunteer request's editable fields.
	Update(ctx context.Context, request *volunteerModel.VolunteerRequest) error

	// UpdateStatus sets a volunteer request's status.
	UpdateStatus(ctx context.Context, organizationID, id uint, status string) error

	// Delete removes a volunteer request.
	Delete(ctx context.Context, organizationID, id uint) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new volunteer request repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns an organization's volunteer requests matching the filter,
// newest first.
func (r *repository) List(ctx context.Context, organizationID uint, filter volunteerModel.Filter) ([]volunteerModel.VolunteerRequest, error) {
	query := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID)

	if !filter.IncludeCompleted {
		query = query.Where("status = ?", volunteerModel.StatusActive)
	}
	if filter.PlaceID != "" {
		query = query.Where("place_id = ?", filter.PlaceID)
	}
	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	var requests []volunteerModel.VolunteerRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Get finds one volunteer request of an organization.
func (r *repository) Get(ctx context.Context, organizationID, id uint) (*volunteerModel.VolunteerRequest, error) {
	var request volunteerModel.VolunteerRequest
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&request).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, volunteerModel.ErrVolunteerRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// Create inserts a new volunteer request.
func (r *repository) Create(ctx context.Context, request *volunteerModel.VolunteerRequest) error {
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	return r.db.WithContext(ctx).Create(request).Error
}

// Update saves a volunteer request's editable fields.
func (r *repository) Update(ctx context.Context, request *volunteerModel.VolunteerRequest) error {
	result := r.db.WithContext(ctx).
		Model(&volunteerModel.VolunteerRequest{}).
		Where("id = ? AND organization_id = ?", request.ID, request.OrganizationID).
		Updates(map[string]interface{}{
			"title":       request.Title,
			"description": request.Description,
			"skills":      serializeJSON(request.Skills),
			"place_id":    request.PlaceID,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return volunteerModel.ErrVolunteerRequestNotFound
	}
	return nil
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

// UpdateStatus sets a volunteer request's status.
func (r *repository) UpdateStatus(ctx context.Context, organizationID, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&volunteerModel.VolunteerRequest{}).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return volunteerModel.ErrVolunteerRequestNotFound
	}
	return nil
}

// Delete removes a volunteer request.
func (r *repository) Delete(ctx context.Context, organizationID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Delete(&volunteerModel.VolunteerRequest{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return volunteerModel.ErrVolunteerRequestNotFound
	}
	return nil
}
