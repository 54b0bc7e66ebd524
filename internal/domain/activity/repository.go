package activity

import (
	"context"

	"github.com/google/uuid"

	"contenthub/internal/domain/query"
)

type Repository interface {
	List(ctx context.Context, userID uuid.UUID, opts query.Options) ([]Activity, error)
	Create(ctx context.Context, userID uuid.UUID, n NewActivity) (*Activity, error)
}
