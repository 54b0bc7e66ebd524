package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/query"
	"contenthub/internal/domain/tool"
)

var toolColumns = []string{
	"id", "title", "description", "icon", "status", "color", "category",
	"config", "is_public", "created_at", "updated_at",
}

type ToolRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewToolRepository(pool *pgxpool.Pool, log *slog.Logger) *ToolRepository {
	return &ToolRepository{
		pool: pool,
		log:  log.With("component", "tool_repository"),
	}
}

func scanTool(row pgx.Row) (tool.Tool, error) {
	var t tool.Tool
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Icon, &t.Status, &t.Color,
		&t.Category, &t.Config, &t.IsPublic, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *ToolRepository) ListPublic(ctx context.Context, opts query.Options) ([]tool.Tool, error) {
	b := psql.Select(toolColumns...).From("tools").Where(sq.Eq{"is_public": true})
	sql, args, err := orderAndLimit(b, opts).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("failed to list tools", "error", err)
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return collect(rows, scanTool)
}

func (r *ToolRepository) Get(ctx context.Context, id uuid.UUID) (*tool.Tool, error) {
	sql, args, err := psql.Select(toolColumns...).From("tools").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	t, err := scanTool(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "get tool", tool.ErrNotFound, nil, nil)
	}
	return &t, nil
}

// UpsertByTitle заполняет ID и временные метки t значениями из базы.
func (r *ToolRepository) UpsertByTitle(ctx context.Context, t *tool.Tool) error {
	sql, args, err := psql.Insert("tools").
		Columns("title", "description", "icon", "status", "color", "category", "config", "is_public").
		Values(t.Title, t.Description, t.Icon, t.Status, t.Color, t.Category, emptyIfNil(t.Config), t.IsPublic).
		Suffix(`ON CONFLICT (title) DO UPDATE SET
			description = EXCLUDED.description,
			icon = EXCLUDED.icon,
			status = EXCLUDED.status,
			color = EXCLUDED.color,
			category = EXCLUDED.category,
			config = EXCLUDED.config,
			is_public = EXCLUDED.is_public,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	err = r.pool.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return mapError(err, "upsert tool", nil, nil, tool.ErrInvalidData)
}
