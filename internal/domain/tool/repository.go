package tool

import (
	"context"

	"github.com/google/uuid"

	"contenthub/internal/domain/query"
)

type Repository interface {
	// ListPublic возвращает инструменты с is_public = true.
	ListPublic(ctx context.Context, opts query.Options) ([]Tool, error)
	Get(ctx context.Context, id uuid.UUID) (*Tool, error)
	// UpsertByTitle создает инструмент или обновляет существующий с тем же title.
	UpsertByTitle(ctx context.Context, t *Tool) error
}
