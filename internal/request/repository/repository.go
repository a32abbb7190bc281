// Package repository provides the data access layer for the request module.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	requestModel "github.com/aidnetlk/aidnet/internal/request/model"
)

// Repository defines the interface for request data access operations.
type Repository interface {
	// List returns an organization's requests matching the filter,
	// newest first.
	List(ctx context.Context, organizationID uint, filter requestModel.Filter) ([]requestModel.Request, error)

	// Get finds one request of an organization.
	Get(ctx context.Context, organizationID, id uint) (*requestModel.Request, error)

	// Create inserts a new request.
	Create(ctx context.Context, request *requestModel.Request) error

	// Update saves a request's editable fields.
	Update(ctx context.Context, request *requestModel.Request) error

	// UpdateStatus sets a request's status.
	UpdateStatus(ctx context.Context, organizationID, id uint, status string) error

	// Delete removes a request.
	Delete(ctx context.Context, organizationID, id uint) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new request repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// List returns an organization's requests matching the filter, newest first.
func (r *repository) List(ctx context.Context, organizationID uint, filter requestModel.Filter) ([]requestModel.Request, error) {
	query := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID)

	if filter.RequestType != "" {
		query = query.Where("request_type = ?", filter.RequestType)
	}
	if !filter.IncludeCompleted {
		query = query.Where("status = ?", requestModel.StatusActive)
	}
	if filter.PlaceID != "" {
		query = query.Where("place_id = ?", filter.PlaceID)
	}
	if filter.Query != "" {
		query = query.Where("LOWER(item_name) LIKE ?", "%"+strings.ToLower(filter.Query)+"%")
	}

	var requests []requestModel.Request
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// Get finds one request of an organization.
func (r *repository) Get(ctx context.Context, organizationID, id uint) (*requestModel.Request, error) {
	var request requestModel.Request
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&request).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, requestModel.ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// Create inserts a new request.
func (r *repository) Create(ctx context.Context, request *requestModel.Request) error {
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now
	return r.db.WithContext(ctx).Create(request).Error
}

// Update saves a request's editable fields.
func (r *repository) Update(ctx context.Context, request *requestModel.Request) error {
	result := r.db.WithContext(ctx).
		Model(&requestModel.Request{}).
		Where("id = ? AND organization_id = ?", request.ID, request.OrganizationID).
		Updates(map[string]interface{}{
			"request_type":  request.RequestType,
			"item_name":     request.ItemName,
			"quantity":      request.Quantity,
			"quantity_unit": request.QuantityUnit,
			"description":   request.Description,
			"place_id":      request.PlaceID,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return requestModel.ErrRequestNotFound
	}
	return nil
}

// UpdateStatus sets a request's status.
func (r *repository) UpdateStatus(ctx context.Context, organizationID, id uint, status string) error {
	result := r.db.WithContext(ctx).
		Model(&requestModel.Request{}).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return requestModel.ErrRequestNotFound
	}
	return nil
}

// Delete removes a request.
func (r *repository) Delete(ctx context.Context, organizationID, id uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Delete(&requestModel.Request{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return requestModel.ErrRequestNotFound
	}
	return nil
}
