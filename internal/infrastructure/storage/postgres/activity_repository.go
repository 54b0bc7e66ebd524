package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/activity"
	"contenthub/internal/domain/query"
)

var activityColumns = []string{"id", "user_id", "tool_id", "action", "details", "credits_used", "created_at"}

type ActivityRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewActivityRepository(pool *pgxpool.Pool, log *slog.Logger) *ActivityRepository {
	return &ActivityRepository{
		pool: pool,
		log:  log.With("component", "activity_repository"),
	}
}

func scanActivity(row pgx.Row) (activity.Activity, error) {
	var a activity.Activity
	err := row.Scan(&a.ID, &a.UserID, &a.ToolID, &a.Action, &a.Details, &a.CreditsUsed, &a.CreatedAt)
	return a, err
}

func (r *ActivityRepository) List(ctx context.Context, userID uuid.UUID, opts query.Options) ([]activity.Activity, error) {
	b := psql.Select(activityColumns...).From("activities").Where(sq.Eq{"user_id": userID})
	sql, args, err := orderAndLimit(b, opts).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error("failed to list activities", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return collect(rows, scanActivity)
}

func (r *ActivityRepository) Create(ctx context.Context, userID uuid.UUID, n activity.NewActivity) (*activity.Activity, error) {
	sql, args, err := psql.Insert("activities").
		Columns("user_id", "tool_id", "action", "details", "credits_used").
		Values(userID, n.ToolID, n.Action, emptyIfNil(n.Details), n.CreditsUsed).
		Suffix("RETURNING " + joinColumns(activityColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	a, err := scanActivity(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "create activity", nil, nil, activity.ErrInvalidData)
	}
	return &a, nil
}
