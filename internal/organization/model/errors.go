package model

import "errors"

var (
	// ErrOrganizationNotFound indicates that the organization does not
	// exist or is not visible to the caller.
	ErrOrganizationNotFound = errors.New("organization not found")
)
