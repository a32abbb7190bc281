package model

import "errors"

var (
	// ErrInviteExists indicates a pending invitation already targets
	// the email.
	ErrInviteExists = errors.New("invitation already exists")

	// ErrInvitationNotFound indicates the invitation does not exist or
	// belongs to another organization.
	ErrInvitationNotFound = errors.New("invitation not found")

	// ErrInvitationUsed indicates the invitation was already accepted.
	ErrInvitationUsed = errors.New("invitation already used")
)
