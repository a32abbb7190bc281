// Package service provides business logic layer for the account module.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	accountModel "github.com/aidnetlk/aidnet/internal/account/model"
	"github.com/aidnetlk/aidnet/internal/account/repository"
	"github.com/aidnetlk/aidnet/internal/auth"
	appConfig "github.com/aidnetlk/aidnet/internal/config"
	"github.com/aidnetlk/aidnet/internal/mail"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
	"github.com/aidnetlk/aidnet/internal/validate"
)

// Service defines the interface for account business logic operations.
type Service interface {
	// SignUp registers a new organization with its owning account and
	// signs the account in.
	SignUp(ctx context.Context, req *accountModel.SignUpRequest) (*accountModel.AuthResponse, error)

	// SignIn authenticates an account by email and password.
	SignIn(ctx context.Context, req *accountModel.SignInRequest) (*accountModel.AuthResponse, error)

	// ForgotPassword starts a password reset. It reports success whether
	// or not the email is registered.
	ForgotPassword(ctx context.Context, req *accountModel.ForgotPasswordRequest) error

	// ResetPassword completes a password reset with a mailed token.
	ResetPassword(ctx context.Context, req *accountModel.ResetPasswordRequest) error

	// Me returns the signed-in account with its organization reference.
	Me(ctx context.Context, accountID uint) (*accountModel.MeResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	tokens *auth.TokenManager
	mailer mail.Mailer
	cfg    appConfig.AuthConfig
	logger *zap.SugaredLogger
}

// New creates a new account service instance.
func New(repo repository.Repository, db *gorm.DB, tokens *auth.TokenManager, mailer mail.Mailer, cfg appConfig.AuthConfig, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		tokens: tokens,
		mailer: mailer,
		cfg:    cfg,
		logger: logger,
	}
}

// SignUp registers a new organization with its owning account in a
// transaction and signs the account in.
func (s *service) SignUp(ctx context.Context, req *accountModel.SignUpRequest) (*accountModel.AuthResponse, error) {
	if err := s.validateSignUp(req); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var account *accountModel.Account
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		org := &organizationModel.Organization{
			Name:     req.OrganizationName,
			Approved: false,
		}
		if err := txRepo.CreateOrganization(ctx, org); err != nil {
			return err
		}

		account = &accountModel.Account{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			ContactNumber:  req.ContactNumber,
			HashedPassword: hashed,
			IsActive:       true,
			UserRoles:      req.UserRoles,
			OrganizationID: org.ID,
		}
		return txRepo.Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("account signed up", "account_id", account.ID, "organization_id", account.OrganizationID)
	return s.authResponse(account)
}

func (s *service) validateSignUp(req *accountModel.SignUpRequest) error {
	fields := validate.FieldErrors{}
	if req.OrganizationName == "" {
		fields.Add("organizationName", "SignUpOrganizationNameRequired")
	}
	if req.FirstName == "" {
		fields.Add("firstName", "SignUpFirstNameRequired")
	}
	if req.LastName == "" {
		fields.Add("lastName", "SignUpLastNameRequired")
	}
	if req.Email == "" {
		fields.Add("email", "SignUpEmailRequired")
	} else if !validate.Email(req.Email) {
		fields.Add("email", "SignUpEmailInvalid")
	}
	if req.ContactNumber == "" {
		fields.Add("contactNumber", "SignUpContactNumberRequired")
	}
	if len(req.Password) < s.cfg.MinPasswordLength {
		fields.Add("password", "SignUpMinimumLength")
	}
	if req.ConfirmPassword != req.Password {
		fields.Add("confirmPassword", "SignUpPasswordMismatch")
	}
	if len(fields) > 0 {
		return validate.NewError(fields)
	}
	return nil
}

// SignIn authenticates an account by email and password.
func (s *service) SignIn(ctx context.Context, req *accountModel.SignInRequest) (*accountModel.AuthResponse, error) {
	fields := validate.FieldErrors{}
	if req.Email == "" {
		fields.Add("email", "SignInEmailRequired")
	}
	if req.Password == "" {
		fields.Add("password", "SignInPasswordRequired")
	}
	if len(fields) > 0 {
		return nil, validate.NewError(fields)
	}

	account, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, accountModel.ErrAccountNotFound) {
			return nil, accountModel.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(account.HashedPassword, req.Password) {
		return nil, accountModel.ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, accountModel.ErrAccountInactive
	}

	return s.authResponse(account)
}

// ForgotPassword starts a password reset. It reports success whether or
// not the email is registered, so the endpoint cannot be used to probe
// for accounts.
func (s *service) ForgotPassword(ctx context.Context, req *accountModel.ForgotPasswordRequest) error {
	fields := validate.FieldErrors{}
	if req.Email == "" {
		fields.Add("email", "ForgotPasswordEmailRequired")
	} else if !validate.Email(req.Email) {
		fields.Add("email", "SignUpEmailInvalid")
	}
	if len(fields) > 0 {
		return validate.NewError(fields)
	}

	account, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, accountModel.ErrAccountNotFound) {
			s.logger.Infow("password reset requested for unknown email")
			return nil
		}
		return err
	}

	token := uuid.NewString()
	tokenHash, err := auth.HashPassword(token)
	if err != nil {
		return err
	}

	expiry := time.Now().Add(s.cfg.ResetTokenTTL)
	if err := s.repo.SetResetToken(ctx, account.ID, tokenHash, expiry); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, account.Email, account.FirstName, token, account.ID); err != nil {
		s.logger.Errorw("failed to send password reset mail", "account_id", account.ID, "error", err)
		return err
	}
	return nil
}

// ResetPassword completes a password reset with a mailed token.
func (s *service) ResetPassword(ctx context.Context, req *accountModel.ResetPasswordRequest) error {
	fields := validate.FieldErrors{}
	if len(req.Password) < s.cfg.MinPasswordLength {
		fields.Add("password", "ResetPasswordPasswordMinimumLength")
	}
	if req.ConfirmPassword != req.Password {
		fields.Add("confirmPassword", "ResetPasswordPasswordMismatch")
	}
	if len(fields) > 0 {
		return validate.NewError(fields)
	}

	account, err := s.repo.GetByID(ctx, req.AccountID)
	if err != nil {
		if errors.Is(err, accountModel.ErrAccountNotFound) {
			return accountModel.ErrResetTokenInvalid
		}
		return err
	}

	if account.ResetPasswordHash == nil || account.ResetPasswordHashExpiry == nil {
		return accountModel.ErrResetTokenInvalid
	}
	if time.Now().After(*account.ResetPasswordHashExpiry) {
		return accountModel.ErrResetTokenInvalid
	}
	if !auth.CheckPassword(*account.ResetPasswordHash, req.Token) {
		return accountModel.ErrResetTokenInvalid
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, account.ID, hashed); err != nil {
		return err
	}

	s.logger.Infow("password reset completed", "account_id", account.ID)
	return nil
}

// Me returns the signed-in account with its organization reference.
func (s *service) Me(ctx context.Context, accountID uint) (*accountModel.MeResponse, error) {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ref, err := s.repo.GetOrganizationRef(ctx, account.OrganizationID)
	if err != nil {
		return nil, err
	}

	return &accountModel.MeResponse{
		ID:           account.ID,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Email:        account.Email,
		UserRoles:    account.UserRoles,
		Organization: ref,
	}, nil
}

func (s *service) authResponse(account *accountModel.Account) (*accountModel.AuthResponse, error) {
	token, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

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
