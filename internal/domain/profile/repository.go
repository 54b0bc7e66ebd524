package profile

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Update(ctx context.Context, userID uuid.UUID, p Patch) (*Profile, error)
	// IncrementCredits атомарно увеличивает credits_used и возвращает новое значение.
	IncrementCredits(ctx context.Context, userID uuid.UUID, amount int) (int, error)
}
