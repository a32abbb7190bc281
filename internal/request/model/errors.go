package model

import "errors"

var (
	// ErrRequestNotFound indicates the request does not exist or belongs
	// to another organization.
	ErrRequestNotFound = errors.New("request not found")

	// ErrAlreadyCompleted indicates a fulfill call on a completed request.
	ErrAlreadyCompleted = errors.New("request already completed")
)
