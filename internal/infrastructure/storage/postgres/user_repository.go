package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/user"
)

func NewUserRepository(pool *pgxpool.Pool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		pool: pool,
		log:  log.With("component", "user_repository"),
	}
}

type UserRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// Create добавляет пользователя и его профиль в одной транзакции.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		sql, args, err := psql.Insert("users").
			Columns("email", "password_hash").
			Values(email, passwordHash).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return err
		}

		sql, args, err = psql.Insert("profiles").Columns("id").Values(id).ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return uuid.Nil, mapError(err, "create user", nil, user.ErrAlreadyExists, nil)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	return r.findOne(ctx, "email", email)
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (user.User, error) {
	return r.findOne(ctx, "id", id)
}

func (r *UserRepository) findOne(ctx context.Context, column string, value any) (user.User, error) {
	var u user.User
	sql, args, err := psql.Select("id", "email", "password_hash", "created_at").
		From("users").
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return u, fmt.Errorf("build query: %w", err)
	}

	err = r.pool.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.Email, &u.Password, &u.CreatedAt)
	if err != nil {
		return user.User{}, mapError(err, "find user", user.ErrNotFound, nil, nil)
	}
	return u, nil
}
