// Package service provides business logic layer for the team module.
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	accountModel "github.com/aidnetlk/aidnet/internal/account/model"
	"github.com/aidnetlk/aidnet/internal/auth"
	appConfig "github.com/aidnetlk/aidnet/internal/config"
	"github.com/aidnetlk/aidnet/internal/mail"
	organizationRepository "github.com/aidnetlk/aidnet/internal/organization/repository"
	teamModel "github.com/aidnetlk/aidnet/internal/team/model"
	"github.com/aidnetlk/aidnet/internal/team/repository"
	"github.com/aidnetlk/aidnet/internal/validate"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// GetTeam returns the account's organization members and pending
	// invitations.
	GetTeam(ctx context.Context, accountID uint) (*teamModel.TeamResponse, error)

	// Invite creates a pending invitation and mails its accept link.
	Invite(ctx context.Context, accountID uint, req *teamModel.InviteRequest) (*teamModel.TeamInvitation, error)

	// Resend refreshes an invitation's token and re-sends the mail.
	Resend(ctx context.Context, accountID, invitationID uint) error

	// DeleteInvite removes a pending invitation.
	DeleteInvite(ctx context.Context, accountID, invitationID uint) error

	// Accept converts an invitation into an account and signs it in.
	Accept(ctx context.Context, req *teamModel.AcceptRequest) (*accountModel.AuthResponse, error)
}

type service struct {
	repo    repository.Repository
	orgRepo organizationRepository.Repository
	db      *gorm.DB
	tokens  *auth.TokenManager
	mailer  mail.Mailer
	cfg     appConfig.AuthConfig
	logger  *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, orgRepo organizationRepository.Repository, db *gorm.DB, tokens *auth.TokenManager, mailer mail.Mailer, cfg appConfig.AuthConfig, logger *zap.SugaredLogger) Service {
	return &service{
		repo:    repo,
		orgRepo: orgRepo,
		db:      db,
		tokens:  tokens,
		mailer:  mailer,
		cfg:     cfg,
		logger:  logger,
	}
}

// GetTeam returns the account's organization members and pending invitations.
func (s *service) GetTeam(ctx context.Context, accountID uint) (*teamModel.TeamResponse, error) {
	organizationID, err := s.orgRepo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	invitations, err := s.repo.ListPending(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	return &teamModel.TeamResponse{
		Members:     members,
		Invitations: invitations,
	}, nil
}

// Invite creates a pending invitation and mails its accept link.
func (s *service) Invite(ctx context.Context, accountID uint, req *teamModel.InviteRequest) (*teamModel.TeamInvitation, error) {
	if err := validateInvite(req); err != nil {
		return nil, err
	}

	organizationID, err := s.orgRepo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	pending, err := s.repo.HasPendingEmail(ctx, organizationID, req.Email)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, teamModel.ErrInviteExists
	}

	invitation := &teamModel.TeamInvitation{
		OrganizationID: organizationID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		UserRoles:      req.UserRoles,
		Token:          uuid.NewString(),
	}
	if err := s.repo.CreateInvitation(ctx, invitation); err != nil {
		return nil, err
	}

	if err := s.sendInvitationMail(ctx, invitation); err != nil {
		return nil, err
	}

	s.logger.Infow("team invitation created", "organization_id", organizationID, "invitation_id", invitation.ID)
	return invitation, nil
}

func validateInvite(req *teamModel.InviteRequest) error {
	fields := validate.FieldErrors{}
	if req.FirstName == "" {
		fields.Add("firstName", "TeamInviteFirstNameRequired")
	}
	if req.LastName == "" {
		fields.Add("lastName", "TeamInviteLastNameRequired")
	}
	if req.Email == "" {
		fields.Add("email", "TeamInviteEmailRequired")
	} else if !validate.Email(req.Email) {
		fields.Add("email", "TeamInviteEmailInvalid")
	}
	if len(fields) > 0 {
		return validate.NewError(fields)
	}
	return nil
}

// Resend refreshes an invitation's token and re-sends the mail. The old
// link stops working.
func (s *service) Resend(ctx context.Context, accountID, invitationID uint) error {
	organizationID, err := s.orgRepo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return err
	}

	invitation, err := s.repo.GetInvitation(ctx, organizationID, invitationID)
	if err != nil {
		return err
	}
	if invitation.Created {
		return teamModel.ErrInvitationUsed
	}

	invitation.Token = uuid.NewString()
	if err := s.repo.UpdateToken(ctx, organizationID, invitationID, invitation.Token); err != nil {
		return err
	}

	return s.sendInvitationMail(ctx, invitation)
}

// DeleteInvite removes a pending invitation.
func (s *service) DeleteInvite(ctx context.Context, accountID, invitationID uint) error {
	organizationID, err := s.orgRepo.GetIDForAccount(ctx, accountID)
	if err != nil {
		return err
	}
	return s.repo.DeleteInvitation(ctx, organizationID, invitationID)
}

// Accept converts an invitation into an account in a transaction and
// signs the new account in.
func (s *service) Accept(ctx context.Context, req *teamModel.AcceptRequest) (*accountModel.AuthResponse, error) {
	fields := validate.FieldErrors{}
	if len(req.Password) < s.cfg.MinPasswordLength {
		fields.Add("password", "ResetPasswordPasswordMinimumLength")
	}
	if req.ConfirmPassword != req.Password {
		fields.Add("confirmPassword", "ResetPasswordPasswordMismatch")
	}
	if len(fields) > 0 {
		return nil, validate.NewError(fields)
	}

	invitation, err := s.repo.GetByToken(ctx, req.Token)
	if err != nil {
		return nil, err
	}
	if invitation.Created {
		return nil, teamModel.ErrInvitationUsed
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var account *accountModel.Account
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		account = &accountModel.Account{
			FirstName:      invitation.FirstName,
			LastName:       invitation.LastName,
			Email:          invitation.Email,
			HashedPassword: hashed,
			Verified:       true,
			IsActive:       true,
			UserRoles:      invitation.UserRoles,
			OrganizationID: invitation.OrganizationID,
		}
		if err := txRepo.CreateAccount(ctx, account); err != nil {
			return err
		}
		return txRepo.MarkCreated(ctx, invitation.ID)
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("invitation accepted", "invitation_id", invitation.ID, "account_id", account.ID)
	return &accountModel.AuthResponse{
		Token: token,
		Account: accountModel.AccountSummary{
			ID:        account.ID,
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Email:     account.Email,
			UserRoles: account.UserRoles,
		},
	}, nil
}

func (s *service) sendInvitationMail(ctx context.Context, invitation *teamModel.TeamInvitation) error {
	organizationName, err := s.repo.GetOrganizationName(ctx, invitation.OrganizationID)
	if err != nil {
		return err
	}

	if err := s.mailer.SendInvitation(ctx, invitation.Email, invitation.FirstName, organizationName, invitation.Token); err != nil {
		s.logger.Errorw("failed to send invitation mail", "invitation_id", invitation.ID, "error", err)
		return err
	}
	return nil
}
