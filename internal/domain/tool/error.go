package tool

import "errors"

var (
	ErrNotFound    = errors.New("tool not found")
	ErrInvalidData = errors.New("invalid tool data")
)
