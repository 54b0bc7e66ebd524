package content

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	List(ctx context.Context, userID uuid.UUID, f Filter) ([]Item, error)
	Create(ctx context.Context, userID uuid.UUID, n NewItem) (*Item, error)
	// Update возвращает ErrNotFound, если элемента нет или он чужой.
	Update(ctx context.Context, userID, id uuid.UUID, p Patch) (*Item, error)
	// Delete возвращает false, если удалять было нечего.
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
}
