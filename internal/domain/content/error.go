package content

import "errors"

var (
	ErrNotFound    = errors.New("content item not found")
	ErrInvalidData = errors.New("invalid content item data")
	ErrEmptyPatch  = errors.New("update has no fields")
)
