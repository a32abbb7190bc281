// Package service provides business logic layer for the request module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aidnetlk/aidnet/internal/events"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
	organizationRepository "github.com/aidnetlk/aidnet/internal/organization/repository"
	requestModel "github.com/aidnetlk/aidnet/internal/request/model"
	"github.com/aidnetlk/aidnet/internal/request/repository"
	"github.com/aidnetlk/aidnet/internal/validate"
)

// Service defines the interface for request business logic operations.
type Service interface {
	// ListMine returns the signed-in account's organization requests.
	ListMine(ctx context.Context, accountID uint, filter requestModel.Filter) ([]requestModel.Request, error)

	// ListPublic returns an approved organization's requests.
	ListPublic(ctx context.Context, organizationID uint, filter requestModel.Filter) ([]requestModel.Request, error)

	// Create publishes a new active request.
	Create(ctx context.Context, accountID uint, req *requestModel.SaveRequest) (*requestModel.Request, error)

	// Update edits a request's form fields, leaving its status as is.
	Update(ctx context.Context, accountID, id uint, req *requestModel.SaveRequest) (*requestModel.Request, error)

	// Fulfill marks an active request completed.
	Fulfill(ctx context.Context, accountID, id uint) (*requestModel.Request, error)

	// Delete removes a request.
	Delete(ctx context.Context, accountID, id uint) error
}

type service struct {
	repo    repository.Repository
	orgRepo organizationRepository.Repository
	db      *gorm.DB
	bus     *events.Bus
	logger  *zap.SugaredLogger
}

// New creates a new request service instance.
func New(repo repository.Repository, orgRepo organizationRepository.Repository, db *gorm.DB, bus *events.Bus, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		orgRepo: orgRepo,
		db:      db,
		bus:     bus,
		logger:  logger,
	}
}

// ListMine returns the signed-in account's organization requests.
func (s *service) ListMine(ctx context.Context, accountID uint, filter requestModel.Filter) ([]requestModel.Request, error) {
	organizationID, err := s.orgRepo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, organizationID, filter)
}

// ListPublic returns an approved organization's requests. Unapproved
// organizations are indistinguishable from missing ones.
func (s *service) ListPublic(ctx context.Context, organizationID uint, filter requestModel.Filter) ([]requestModel.Request, error) {
	org, err := s.orgRepo.GetByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if !org.Approved {
		return nil, organizationModel.ErrOrganizationNotFound
	}
	return s.repo.List(ctx, organizationID, filter)
}

// Create publishes a new active request. New requests always start
// active regardless of what the caller submits.
func (s *service) Create(ctx context.Context, accountID uint, req *requestModel.SaveRequest) (*requestModel.Request, error) {
	org, err := s.ownOrganization(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := validateForm(org, req); err != nil {
		return nil, err
	}

	request := &requestModel.Request{
		OrganizationID: org.ID,
		RequestType:    req.RequestType,
		ItemName:       req.ItemName,
		Quantity:       req.Quantity,
		QuantityUnit:   req.QuantityUnit,
		Description:    req.Description,
		PlaceID:        req.PlaceID,
		Status:         requestModel.StatusActive,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.publish(request.ID)
	return request, nil
}

// Update edits a request's form fields, leaving its status as is.
func (s *service) Update(ctx context.Context, accountID, id uint, req *requestModel.SaveRequest) (*requestModel.Request, error) {
	org, err := s.ownOrganization(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := validateForm(org, req); err != nil {
		return nil, err
	}

	request, err := s.repo.Get(ctx, org.ID, id)
	if err != nil {
		return nil, err
	}

	request.RequestType = req.RequestType
	request.ItemName = req.ItemName
	request.Quantity = req.Quantity
	request.QuantityUnit = req.QuantityUnit
	request.Description = req.Description
	request.PlaceID = req.PlaceID

	if err := s.repo.Update(ctx, request); err != nil {
		return nil, err
	}

	s.publish(request.ID)
	return s.repo.Get(ctx, org.ID, id)
}

// Fulfill marks an active request completed.
func (s *service) Fulfill(ctx context.Context, accountID, id uint) (*requestModel.Request, error) {
	organizationID, err := s.orgRepo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	request, err := s.repo.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if request.Status == requestModel.StatusCompleted {
		return nil, requestModel.ErrAlreadyCompleted
	}

	if err := s.repo.UpdateStatus(ctx, organizationID, id, requestModel.StatusCompleted); err != nil {
		return nil, err
	}

	s.publish(id)
	return s.repo.Get(ctx, organizationID, id)
}

// Delete removes a request.
func (s *service) Delete(ctx context.Context, accountID, id uint) error {
	organizationID, err := s.orgRepo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, organizationID, id); err != nil {
		return err
	}

	s.publish(id)
	return nil
}

func (s *service) ownOrganization(ctx context.Context, accountID uint) (*organizationModel.Organization, error) {
	organizationID, err := s.orgRepo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.orgRepo.GetByID(ctx, organizationID)
}

func (s *service) publish(id uint) {
	s.bus.Publish(events.TopicRequestChanged, events.Event{Entity: "request", ID: id})
}

// validateForm checks the shared create/update form. The place, when
// given, must be one of the organization's registered locations.
func validateForm(org *organizationModel.Organization, req *requestModel.SaveRequest) error {
	fields := validate.FieldErrors{}
	if !requestModel.ValidType(req.RequestType) {
		fields.Add("requestType", "FieldRequired")
	}
	if req.ItemName == "" {
		fields.Add("itemName", "FieldRequired")
	}
	if req.Quantity <= 0 {
		fields.Add("quantity", "FieldQuantityInvalid")
	}
	if !requestModel.ValidUnit(req.QuantityUnit) {
		fields.Add("quantityUnit", "FieldRequired")
	}
	if req.PlaceID != "" && !org.HasPlace(req.PlaceID) {
		fields.Add("placeId", "FieldPlaceUnknown")
	}

	if len(fields) > 0 {
		return validate.NewError(fields)
	}
	return nil
}
