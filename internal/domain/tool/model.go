package tool

import (
	"time"

	"github.com/google/uuid"
)

// Tool - инструмент генерации контента из публичного каталога.
// Клиент получает инструменты только на чтение.
type Tool struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description,omitempty" yaml:"description"`
	Icon        string         `json:"icon,omitempty" yaml:"icon"`
	Status      Status         `json:"status" yaml:"status"`
	Color       string         `json:"color,omitempty" yaml:"color"`
	Category    string         `json:"category,omitempty" yaml:"category"`
	Config      map[string]any `json:"config,omitempty" yaml:"config"`
	IsPublic    bool           `json:"is_public" yaml:"-"`
	CreatedAt   time.Time      `json:"created_at" yaml:"-"`
	UpdatedAt   time.Time      `json:"updated_at" yaml:"-"`
}

func (t Tool) EntityID() uuid.UUID { return t.ID }

// OwnerID всегда nil: инструменты публичные.
func (t Tool) OwnerID() *uuid.UUID { return nil }

func (t Tool) Created() time.Time { return t.CreatedAt }

// Validate проверяет запись каталога перед сохранением.
func (t Tool) Validate() error {
	if t.Title == "" {
		return ErrInvalidData
	}
	return t.Status.Validate()
}
