package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"contenthub/internal/app/server/config"
	"contenthub/internal/infrastructure/migration"
)

// psql - построитель запросов с плейсхолдерами $1, $2...
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Storage struct {
	pool *pgxpool.Pool
}

// New открывает пул соединений и накатывает миграции.
func New(ctx context.Context, cfg config.DB) (*Storage, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	mg := migration.NewMigration(cfg, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
