package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	// Validate возвращает владельца неистёкшей сессии или ErrInvalidSession.
	Validate(ctx context.Context, tokenHash string) (uuid.UUID, error)
	Revoke(ctx context.Context, tokenHash string) error
}
