package profile

import "errors"

var (
	ErrNotFound      = errors.New("profile not found")
	ErrEmptyPatch    = errors.New("profile update has no fields")
	ErrInvalidAmount = errors.New("credit amount must be positive")
	ErrForbidden     = errors.New("cannot change credits of another user")
	ErrUsernameTaken = errors.New("username already taken")
)
