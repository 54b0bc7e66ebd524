package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"contenthub/internal/app/server/api"
	"contenthub/internal/app/server/config"
	"contenthub/internal/domain/tool"
	"contenthub/internal/infrastructure/storage/postgres"
	"contenthub/internal/utils/logger"
)

const sessionCleanupInterval = time.Hour

func main() {
	conf := config.MustLoad()
	log := logger.New(conf.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, conf, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, conf *config.Config, log *slog.Logger) error {
	storage, err := postgres.New(ctx, conf.DB)
	if err != nil {
		return err
	}
	defer storage.Close()

	svc := api.NewServices(storage, conf.Session, log)

	if conf.Tools.Catalog != "" {
		seedCatalog(ctx, svc.Tools, conf.Tools.Catalog, log)
	}

	server := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(svc, log),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("server is listening", "addr", server.Addr, "env", conf.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("server is shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		cleanupSessions(gctx, postgres.NewSessionRepository(storage.Pool(), log), log)
		return nil
	})

	return g.Wait()
}

// seedCatalog загружает каталог инструментов; ошибка не мешает запуску.
func seedCatalog(ctx context.Context, tools tool.Servicer, path string, log *slog.Logger) {
	catalog, err := tool.LoadCatalog(path)
	if err != nil {
		log.Error("load tool catalog", "path", path, "error", err)
		return
	}
	n, err := tools.Seed(ctx, catalog)
	if err != nil {
		log.Error("seed tool catalog", "path", path, "error", err)
		return
	}
	log.Info("tool catalog seeded", "path", path, "tools", n)
}

func cleanupSessions(ctx context.Context, repo *postgres.SessionRepository, log *slog.Logger) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx)
			if err != nil {
				log.Error("delete expired sessions", "error", err)
				continue
			}
			if n > 0 {
				log.Debug("expired sessions deleted", "count", n)
			}
		}
	}
}
