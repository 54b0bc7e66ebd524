// Package testhelper поднимает PostgreSQL в контейнере для интеграционных тестов репозиториев.
package testhelper

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"contenthub/internal/app/server/config"
	"contenthub/internal/infrastructure/migration"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB запускает общий контейнер (один на прогон), накатывает миграции
// и возвращает новый пул. Тест пропускается в режиме -short и без Docker.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, sharedDSN)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "hub",
			"POSTGRES_PASSWORD": "hub",
			"POSTGRES_DB":       "contenthub",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://hub:hub@%s:%s/contenthub?sslmode=disable", host, port.Port())

	mg := migration.NewMigration(config.DB{DatabaseURI: dsn, Migrations: migrationsPath()}, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}

	return dsn, nil
}

// migrationsPath возвращает абсолютный путь к migrations/ в корне модуля.
func migrationsPath() string {
	_, currentFile, _, _ := runtime.Caller(0)
	// .../internal/infrastructure/storage/postgres/testhelper/db.go
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "..", "..", "..", "migrations")
}
