package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUsernameTaken      = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingAnchor      = errors.New("either wake_time or earliest_bedtime is required")
	ErrInvalidInput       = errors.New("invalid input")
)
