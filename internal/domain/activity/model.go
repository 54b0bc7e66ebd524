package activity

import (
	"time"

	"github.com/google/uuid"
)

// Activity - запись ленты действий пользователя. Создается один раз и не меняется.
type Activity struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	ToolID      *uuid.UUID     `json:"tool_id,omitempty"`
	Action      string         `json:"action"`
	Details     map[string]any `json:"details,omitempty"`
	CreditsUsed int            `json:"credits_used"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (a Activity) EntityID() uuid.UUID { return a.ID }

func (a Activity) OwnerID() *uuid.UUID { return &a.UserID }

func (a Activity) Created() time.Time { return a.CreatedAt }

// NewActivity - поля новой записи; владелец подставляется из сессии.
type NewActivity struct {
	ToolID      *uuid.UUID     `json:"tool_id,omitempty"`
	Action      string         `json:"action"`
	Details     map[string]any `json:"details,omitempty"`
	CreditsUsed int            `json:"credits_used"`
}

func (n NewActivity) Validate() error {
	if n.Action == "" {
		return ErrInvalidData
	}
	if n.CreditsUsed < 0 {
		return ErrInvalidCredits
	}
	return nil
}
