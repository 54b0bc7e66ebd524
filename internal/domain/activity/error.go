package activity

import "errors"

var (
	ErrInvalidData    = errors.New("invalid activity data")
	ErrInvalidCredits = errors.New("credits used must not be negative")
)
