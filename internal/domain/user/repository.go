package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create сохраняет пользователя вместе с пустым профилем.
	Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Get(ctx context.Context, id uuid.UUID) (User, error)
}
