package models

import "errors"

// Common errors used throughout the application
var (
	ErrNotAuthenticated = errors.New("authentication required")
	ErrRemoteSyncFailed = errors.New("remote synchronization failed")
	ErrValidationFailed = errors.New("validation failed")
	ErrAuthExpired      = errors.New("authentication expired")
	ErrForbidden        = errors.New("access forbidden")
	ErrNotFound         = errors.New("resource not found")
)
