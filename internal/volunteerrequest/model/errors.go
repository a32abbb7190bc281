package model

import "errors"

var (
	// ErrVolunteerRequestNotFound indicates the volunteer request does
	// not exist or belongs to another organization.
	ErrVolunteerRequestNotFound = errors.New("volunteer request not found")

	// ErrAlreadyCompleted indicates a fulfill call on a completed
	// volunteer request.
	ErrAlreadyCompleted = errors.New("volunteer request already completed")
)
