package content

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Item - элемент библиотеки контента пользователя (таблица content_library).
type Item struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	ToolID     *uuid.UUID     `json:"tool_id,omitempty"`
	Name       string         `json:"name"`
	Type       Type           `json:"type"`
	FileURL    *string        `json:"file_url,omitempty"`
	FileSize   *int64         `json:"file_size,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	IsFavorite bool           `json:"is_favorite"`
	Tags       []string       `json:"tags,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (i Item) EntityID() uuid.UUID { return i.ID }

func (i Item) OwnerID() *uuid.UUID { return &i.UserID }

func (i Item) Created() time.Time { return i.CreatedAt }

func (i Item) HasTag(tag string) bool {
	return slices.Contains(i.Tags, tag)
}

// NewItem - поля нового элемента; id, user_id и временные метки выставляет хранилище.
type NewItem struct {
	ToolID     *uuid.UUID     `json:"tool_id,omitempty"`
	Name       string         `json:"name"`
	Type       Type           `json:"type"`
	FileURL    *string        `json:"file_url,omitempty"`
	FileSize   *int64         `json:"file_size,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	IsFavorite bool           `json:"is_favorite"`
	Tags       []string       `json:"tags,omitempty"`
}

func (n NewItem) Validate() error {
	if n.Name == "" {
		return ErrInvalidData
	}
	if n.FileSize != nil && *n.FileSize < 0 {
		return ErrInvalidData
	}
	return n.Type.Validate()
}

// Patch - частичное обновление. nil-поле не меняется; Metadata и Tags
// заменяются целиком.
type Patch struct {
	ToolID     *uuid.UUID     `json:"tool_id,omitempty"`
	Name       *string        `json:"name,omitempty"`
	Type       *Type          `json:"type,omitempty"`
	FileURL    *string        `json:"file_url,omitempty"`
	FileSize   *int64         `json:"file_size,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	IsFavorite *bool          `json:"is_favorite,omitempty"`
	Tags       *[]string      `json:"tags,omitempty"`
}

func (p Patch) IsEmpty() bool {
	return p.ToolID == nil && p.Name == nil && p.Type == nil && p.FileURL == nil &&
		p.FileSize == nil && p.Metadata == nil && p.IsFavorite == nil && p.Tags == nil
}

func (p Patch) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyPatch
	}
	if p.Name != nil && *p.Name == "" {
		return ErrInvalidData
	}
	if p.FileSize != nil && *p.FileSize < 0 {
		return ErrInvalidData
	}
	if p.Type != nil {
		return p.Type.Validate()
	}
	return nil
}
