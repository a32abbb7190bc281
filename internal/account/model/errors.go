package model

import "errors"

var (
	// ErrEmailTaken indicates that an account with the given email already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAccountNotFound indicates that the requested account does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidCredentials indicates a failed email/password check.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountInactive indicates a sign-in attempt on a deactivated account.
	ErrAccountInactive = errors.New("account is inactive")
	// ErrResetTokenInvalid indicates a missing, wrong or expired reset token.
	ErrResetTokenInvalid = errors.New("reset token is invalid or expired")
)
