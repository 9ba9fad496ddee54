package domain

import "errors"

var (
	ErrInvalidState     = errors.New("operation not allowed in current state")
	ErrValidation       = errors.New("validation failed")
	ErrExternalService  = errors.New("external service failure")
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrAlreadyConfirmed = errors.New("transaction already confirmed")
)
