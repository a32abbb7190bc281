// Package service provides business logic layer for the organization module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aidnetlk/aidnet/internal/events"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
	"github.com/aidnetlk/aidnet/internal/organization/repository"
	"github.com/aidnetlk/aidnet/internal/validate"
)

// Service defines the interface for organization business logic operations.
type Service interface {
	// GetMine returns the full organization of the signed-in account.
	GetMine(ctx context.Context, accountID uint) (*organizationModel.Organization, error)

	// GetPublic returns an approved organization's public shape.
	GetPublic(ctx context.Context, id uint) (*organizationModel.PublicOrganization, error)

	// UpdateDetails saves the details form of the account's organization.
	UpdateDetails(ctx context.Context, accountID uint, req *organizationModel.DetailsUpdateRequest) (*organizationModel.Organization, error)

	// UpdateContact saves the contact form of the account's organization.
	UpdateContact(ctx context.Context, accountID uint, req *organizationModel.ContactUpdateRequest) (*organizationModel.Organization, error)

	// UpdateBank saves the bank form of the account's organization.
	UpdateBank(ctx context.Context, accountID uint, req *organizationModel.BankUpdateRequest) (*organizationModel.Organization, error)

	// UpdateLocations replaces the location list of the account's organization.
	UpdateLocations(ctx context.Context, accountID uint, req *organizationModel.LocationsUpdateRequest) (*organizationModel.Organization, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	bus    *events.Bus
	logger *zap.SugaredLogger
}

// New creates a new organization service instance.
func New(repo repository.Repository, db *gorm.DB, bus *events.Bus, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		bus:    bus,
		logger: logger,
	}
}

// GetMine returns the full organization of the signed-in account.
func (s *service) GetMine(ctx context.Context, accountID uint) (*organizationModel.Organization, error) {
	organizationID, err := s.repo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, organizationID)
}

// GetPublic returns an approved organization's public shape. Unapproved
// organizations are indistinguishable from missing ones.
func (s *service) GetPublic(ctx context.Context, id uint) (*organizationModel.PublicOrganization, error) {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !org.Approved {
		return nil, organizationModel.ErrOrganizationNotFound
	}
	return org.Public(), nil
}

// UpdateDetails saves the details form of the account's organization.
func (s *service) UpdateDetails(ctx context.Context, accountID uint, req *organizationModel.DetailsUpdateRequest) (*organizationModel.Organization, error) {
	fields := validate.FieldErrors{}
	if req.Name == "" {
		fields.Add("name", "FieldRequired")
	}
	if req.ProfileImageURL != "" && !validate.URL(req.ProfileImageURL) {
		fields.Add("profileImageUrl", "FieldURLInvalid")
	}
	if len(fields) > 0 {
		return nil, validate.NewError(fields)
	}

	return s.applyUpdate(ctx, accountID, func(organizationID uint) error {
		return s.repo.UpdateDetails(ctx, organizationID, req)
	})
}

// UpdateContact saves the contact form of the account's organization.
func (s *service) UpdateContact(ctx context.Context, accountID uint, req *organizationModel.ContactUpdateRequest) (*organizationModel.Organization, error) {
	fields := validate.FieldErrors{}
	if req.Email != "" && !validate.Email(req.Email) {
		fields.Add("email", "FieldEmailInvalid")
	}
	for field, value := range map[string]string{
		"website":     req.Website,
		"facebook":    req.Facebook,
		"instagram":   req.Instagram,
		"twitter":     req.Twitter,
		"paymentLink": req.PaymentLink,
	} {
		if value != "" && !validate.URL(value) {
			fields.Add(field, "FieldURLInvalid")
		}
	}
	if len(fields) > 0 {
		return nil, validate.NewError(fields)
	}

	return s.applyUpdate(ctx, accountID, func(organizationID uint) error {
		return s.repo.UpdateContact(ctx, organizationID, req)
	})
}

// UpdateBank saves the bank form of the account's organization. Every
// bank field is optional.
func (s *service) UpdateBank(ctx context.Context, accountID uint, req *organizationModel.BankUpdateRequest) (*organizationModel.Organization, error) {
	return s.applyUpdate(ctx, accountID, func(organizationID uint) error {
		return s.repo.UpdateBank(ctx, organizationID, req)
	})
}

// UpdateLocations replaces the location list of the account's organization.
func (s *service) UpdateLocations(ctx context.Context, accountID uint, req *organizationModel.LocationsUpdateRequest) (*organizationModel.Organization, error) {
	fields := validate.FieldErrors{}
	for _, loc := range req.Locations {
		if loc.PlaceID == "" {
			fields.Add("locations", "FieldRequired")
		}
	}
	if len(fields) > 0 {
		return nil, validate.NewError(fields)
	}

	locations := make([]organizationModel.Location, 0, len(req.Locations))
	for _, in := range req.Locations {
		locations = append(locations, organizationModel.Location{
			PlaceID:          in.PlaceID,
			FormattedAddress: in.FormattedAddress,
			District:         in.District,
			Province:         in.Province,
			Lat:              in.Lat,
			Lon:              in.Lon,
		})
	}

	return s.applyUpdate(ctx, accountID, func(organizationID uint) error {
		return s.repo.ReplaceLocations(ctx, organizationID, locations)
	})
}

// applyUpdate resolves the account's organization, runs one form write
// and returns the refreshed organization. Each form writes only its own
// columns, so concurrent saves from different forms cannot clobber each
// other; within one form the last save wins.
func (s *service) applyUpdate(ctx context.Context, accountID uint, write func(organizationID uint) error) (*organizationModel.Organization, error) {
	organizationID, err := s.repo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := write(organizationID); err != nil {
		return nil, err
	}

	org, err := s.repo.GetByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.TopicOrganizationChanged, events.Event{Entity: "organization", ID: organizationID})
	return org, nil
}
