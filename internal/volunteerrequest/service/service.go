// Package service provides business logic layer for the volunteerrequest module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aidnetlk/aidnet/internal/events"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
	organizationRepository "github.com/aidnetlk/aidnet/internal/organization/repository"
	"github.com/aidnetlk/aidnet/internal/validate"
	volunteerModel "github.com/aidnetlk/aidnet/internal/volunteerrequest/model"
	"github.com/aidnetlk/aidnet/internal/volunteerrequest/repository"
)

// Service defines the interface for volunteer request business logic operations.
type Service interface {
	// ListMine returns the signed-in account's organization volunteer requests.
	ListMine(ctx context.Context, accountID uint, filter volunteerModel.Filter) ([]volunteerModel.VolunteerRequest, error)

	// ListPublic returns an approved organization's volunteer requests.
	ListPublic(ctx context.Context, organizationID uint, filter volunteerModel.Filter) ([]volunteerModel.VolunteerRequest, error)

	// Create publishes a new active volunteer request.
	Create(ctx context.Context, accountID uint, req *volunteerModel.SaveRequest) (*volunteerModel.VolunteerRequest, error)

	// Update edits a volunteer request's form fields, leaving its status as is.
	Update(ctx context.Context, accountID, id uint, req *volunteerModel.SaveRequest) (*volunteerModel.VolunteerRequest, error)

	// Fulfill marks an active volunteer request completed.
	Fulfill(ctx context.Context, accountID, id uint) (*volunteerModel.VolunteerRequest, error)

	// Delete removes a volunteer request.
	Delete(ctx context.Context, accountID, id uint) error
}

type service struct {
	repo    repository.Repository
	orgRepo organizationRepository.Repository
	db      *gorm.DB
	bus     *events.Bus
	logger  *zap.SugaredLogger
}

// New creates a new volunteer request service instance.
func New(repo repository.Repository, orgRepo organizationRepository.Repository, db *gorm.DB, bus *events.Bus, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		orgRepo: orgRepo,
		db:      db,
		bus:     bus,
		logger:  logger,
	}
}

// ListMine returns the signed-in account's organization volunteer requests.
func (s *service) ListMine(ctx context.Context, accountID uint, filter volunteerModel.Filter) ([]volunteerModel.VolunteerRequest, error) {
	organizationID, err := s.orgRepo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, organizationID, filter)
}

// ListPublic returns an approved organization's volunteer requests.
func (s *service) ListPublic(ctx context.Context, organizationID uint, filter volunteerModel.Filter) ([]volunteerModel.VolunteerRequest, error) {
	org, err := s.orgRepo.GetByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if !org.Approved {
		return nil, organizationModel.ErrOrganizationNotFound
	}
	return s.repo.List(ctx, organizationID, filter)
}

// Create publishes a new active volunteer request.
func (s *service) Create(ctx context.Context, accountID uint, req *volunteerModel.SaveRequest) (*volunteerModel.VolunteerRequest, error) {
	org, err := s.ownOrganization(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := validateForm(org, req); err != nil {
		return nil, err
	}

	request := &volunteerModel.VolunteerRequest{
		OrganizationID: org.ID,
		Title:          req.Title,
		Description:    req.Description,
		Skills:         req.Skills,
		PlaceID:        req.PlaceID,
		Status:         volunteerModel.StatusActive,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.publish(request.ID)
	return request, nil
}

// Update edits a volunteer request's form fields, leaving its status as is.
func (s *service) Update(ctx context.Context, accountID, id uint, req *volunteerModel.SaveRequest) (*volunteerModel.VolunteerRequest, error) {
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

	request.Title = req.Title
	request.Description = req.Description
	request.Skills = req.Skills
	request.PlaceID = req.PlaceID

	if err := s.repo.Update(ctx, request); err != nil {
		return nil, err
	}

	s.publish(request.ID)
	return s.repo.Get(ctx, org.ID, id)
}

// Fulfill marks an active volunteer request completed.
func (s *service) Fulfill(ctx context.Context, accountID, id uint) (*volunteerModel.VolunteerRequest, error) {
	organizationID, err := s.orgRepo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	request, err := s.repo.Get(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if request.Status == volunteerModel.StatusCompleted {
		return nil, volunteerModel.ErrAlreadyCompleted
	}

	if err := s.repo.UpdateStatus(ctx, organizationID, id, volunteerModel.StatusCompleted); err != nil {
		return nil, err
	}

	s.publish(id)
	return s.repo.Get(ctx, organizationID, id)
}

// Delete removes a volunteer request.
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
	s.bus.Publish(events.TopicVolunteerRequestChanged, events.Event{Entity: "volunteer_request", ID: id})
}

// validateForm checks the shared create/update form. The place, when
// given, must be one of the organization's registered locations.
func validateForm(org *organizationModel.Organization, req *volunteerModel.SaveRequest) error {
	fields := validate.FieldErrors{}
	if req.Title == "" {
		fields.Add("title", "FieldRequired")
	}
	if req.PlaceID != "" && !org.HasPlace(req.PlaceID) {
		fields.Add("placeId", "FieldPlaceUnknown")
	}

	if len(fields) > 0 {
		return validate.NewError(fields)
	}
	return nil
}
