package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/session"
)

type SessionRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSessionRepository(pool *pgxpool.Pool, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		pool: pool,
		log:  log.With("component", "session_repository"),
	}
}

func hexToBytea(tokenHash string) sq.Sqlizer {
	return sq.Expr("decode(?, 'hex')", tokenHash)
}

func (r *SessionRepository) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	sql, args, err := psql.Insert("sessions").
		Columns("user_id", "token_hash", "expires_at").
		Values(userID, hexToBytea(tokenHash), expiresAt).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, sql, args...)
	return mapError(err, "create session", nil, nil, nil)
}

func (r *SessionRepository) Validate(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	sql, args, err := psql.Select("user_id").
		From("sessions").
		Where(sq.Expr("token_hash = decode(?, 'hex')", tokenHash)).
		Where("expires_at > NOW()").
		ToSql()
	if err != nil {
		return uuid.Nil, err
	}

	var userID uuid.UUID
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&userID); err != nil {
		return uuid.Nil, mapError(err, "validate session", session.ErrInvalidSession, nil, nil)
	}
	return userID, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, tokenHash string) error {
	sql, args, err := psql.Delete("sessions").
		Where(sq.Expr("token_hash = decode(?, 'hex')", tokenHash)).
		ToSql()
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, sql, args...)
	return mapError(err, "revoke session", nil, nil, nil)
}

// DeleteExpired удаляет истекшие сессии и возвращает их количество.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	sql, args, err := psql.Delete("sessions").Where("expires_at <= NOW()").ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, mapError(err, "delete expired sessions", nil, nil, nil)
	}
	return tag.RowsAffected(), nil
}
