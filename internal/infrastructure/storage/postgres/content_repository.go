package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/content"
)

var contentColumns = []string{
	"id", "user_id", "tool_id", "name", "type", "file_url", "file_size",
	"metadata", "is_favorite", "tags", "created_at", "updated_at",
}

type ContentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewContentRepository(pool *pgxpool.Pool, log *slog.Logger) *ContentRepository {
	return &ContentRepository{
		pool: pool,
		log:  log.With("component", "content_repository"),
	}
}

func scanItem(row pgx.Row) (content.Item, error) {
	var i content.Item
	err := row.Scan(&i.ID, &i.UserID, &i.ToolID, &i.Name, &i.Type, &i.FileURL, &i.FileSize,
		&i.Metadata, &i.IsFavorite, &i.Tags, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func emptyTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func (r *ContentRepository) List(ctx context.Context, userID uuid.UUID, f content.Filter) ([]content.Item, error) {
	b := psql.Select(contentColumns...).From("content_library").Where(sq.Eq{"user_id": userID})
	if f.Type != nil {
		b = b.Where(sq.Eq{"type": *f.Type})
	}
	if f.FavoritesOnly {
		b = b.Where(sq.Eq{"is_favorite": true})
	}
	if f.Tag != "" {
		b = b.Where("? = ANY(tags)", f.Tag)
	}

	sql, args, err := orderAndLimit(b, f.Options).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("failed to list content", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list content: %w", err)
	}
	return collect(rows, scanItem)
}

func (r *ContentRepository) Create(ctx context.Context, userID uuid.UUID, n content.NewItem) (*content.Item, error) {
	sql, args, err := psql.Insert("content_library").
		Columns("user_id", "tool_id", "name", "type", "file_url", "file_size", "metadata", "is_favorite", "tags").
		Values(userID, n.ToolID, n.Name, n.Type, n.FileURL, n.FileSize, emptyIfNil(n.Metadata), n.IsFavorite, emptyTags(n.Tags)).
		Suffix("RETURNING " + joinColumns(contentColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	item, err := scanItem(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "create content item", nil, nil, content.ErrInvalidData)
	}
	return &item, nil
}

func (r *ContentRepository) Update(ctx context.Context, userID, id uuid.UUID, p content.Patch) (*content.Item, error) {
	b := psql.Update("content_library").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + joinColumns(contentColumns))

	if p.ToolID != nil {
		b = b.Set("tool_id", *p.ToolID)
	}
	if p.Name != nil {
		b = b.Set("name", *p.Name)
	}
	if p.Type != nil {
		b = b.Set("type", *p.Type)
	}
	if p.FileURL != nil {
		b = b.Set("file_url", *p.FileURL)
	}
	if p.FileSize != nil {
		b = b.Set("file_size", *p.FileSize)
	}
	if p.Metadata != nil {
		b = b.Set("metadata", p.Metadata)
	}
	if p.IsFavorite != nil {
		b = b.Set("is_favorite", *p.IsFavorite)
	}
	if p.Tags != nil {
		b = b.Set("tags", emptyTags(*p.Tags))
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	item, err := scanItem(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "update content item", content.ErrNotFound, nil, content.ErrInvalidData)
	}
	return &item, nil
}

func (r *ContentRepository) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	sql, args, err := psql.Delete("content_library").Where(sq.Eq{"id": id, "user_id": userID}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return false, mapError(err, "delete content item", nil, nil, nil)
	}
	return tag.RowsAffected() > 0, nil
}
