package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/profile"
)

var profileColumns = []string{
	"id", "username", "full_name", "avatar_url", "plan_type",
	"credits_used", "credits_limit", "created_at", "updated_at",
}

type ProfileRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewProfileRepository(pool *pgxpool.Pool, log *slog.Logger) *ProfileRepository {
	return &ProfileRepository{
		pool: pool,
		log:  log.With("component", "profile_repository"),
	}
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	err := row.Scan(&p.ID, &p.Username, &p.FullName, &p.AvatarURL, &p.PlanType,
		&p.CreditsUsed, &p.CreditsLimit, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *ProfileRepository) Get(ctx context.Context, userID uuid.UUID) (*profile.Profile, error) {
	sql, args, err := psql.Select(profileColumns...).From("profiles").Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	p, err := scanProfile(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "get profile", profile.ErrNotFound, nil, nil)
	}
	return &p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, userID uuid.UUID, patch profile.Patch) (*profile.Profile, error) {
	b := psql.Update("profiles").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + joinColumns(profileColumns))

	if patch.Username != nil {
		b = b.Set("username", *patch.Username)
	}
	if patch.FullName != nil {
		b = b.Set("full_name", *patch.FullName)
	}
	if patch.AvatarURL != nil {
		b = b.Set("avatar_url", *patch.AvatarURL)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	p, err := scanProfile(r.pool.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapError(err, "update profile", profile.ErrNotFound, profile.ErrUsernameTaken, nil)
	}
	return &p, nil
}

func (r *ProfileRepository) IncrementCredits(ctx context.Context, userID uuid.UUID, amount int) (int, error) {
	sql, args, err := psql.Update("profiles").
		Set("credits_used", sq.Expr("credits_used + ?", amount)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING credits_used").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var used int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&used); err != nil {
		return 0, mapError(err, "increment credits", profile.ErrNotFound, nil, profile.ErrInvalidAmount)
	}
	return used, nil
}
