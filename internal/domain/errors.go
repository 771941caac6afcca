package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	ErrNotFound          = errors.New("not found")
	ErrTownInactive      = errors.New("town is not active")
	ErrInvalidTimeWindow = errors.New("invalid time window")
	ErrValidation        = errors.New("validation failed")
)
