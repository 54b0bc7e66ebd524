// Публичные операции: health, auth/register, auth/login, tools.
// Остальные требуют Bearer-токен сессии.

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	activityAPI "contenthub/internal/app/server/api/http/activity"
	contentAPI "contenthub/internal/app/server/api/http/content"
	healthAPI "contenthub/internal/app/server/api/http/health"
	"contenthub/internal/app/server/api/http/middleware"
	"contenthub/internal/app/server/api/http/middleware/auth"
	"contenthub/internal/app/server/api/http/middleware/logger"
	profileAPI "contenthub/internal/app/server/api/http/profile"
	toolAPI "contenthub/internal/app/server/api/http/tool"
	userAPI "contenthub/internal/app/server/api/http/user"
	"contenthub/internal/app/server/config"
	"contenthub/internal/domain/activity"
	"contenthub/internal/domain/content"
	"contenthub/internal/domain/profile"
	"contenthub/internal/domain/session"
	"contenthub/internal/domain/tool"
	"contenthub/internal/domain/user"
	"contenthub/internal/infrastructure/storage/postgres"
)

type Services struct {
	Users      user.Servicer
	Sessions   session.Servicer
	Profiles   profile.Servicer
	Tools      tool.Servicer
	Activities activity.Servicer
	Content    content.Servicer
}

// NewServices собирает доменные сервисы поверх PostgreSQL.
func NewServices(storage *postgres.Storage, cfg config.Session, log *slog.Logger) *Services {
	pool := storage.Pool()
	return &Services{
		Users:      user.NewService(postgres.NewUserRepository(pool, log), user.NewPasswordValidator(), log),
		Sessions:   session.NewService(postgres.NewSessionRepository(pool, log), cfg.TTL, log),
		Profiles:   profile.NewService(postgres.NewProfileRepository(pool, log), log),
		Tools:      tool.NewService(postgres.NewToolRepository(pool, log), log),
		Activities: activity.NewService(postgres.NewActivityRepository(pool, log), log),
		Content:    content.NewService(postgres.NewContentRepository(pool, log), log),
	}
}

type Handlers struct {
	Health   *healthAPI.Handler
	User     *userAPI.Handler
	Tool     *toolAPI.Handler
	Activity *activityAPI.Handler
	Content  *contentAPI.Handler
	Profile  *profileAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(svc *Services, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	cfg := huma.DefaultConfig("Content Hub API", "1.0.0")
	cfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, cfg)

	h := handlers(svc, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Tool.SetupRoutes(API)
	h.Activity.SetupRoutes(API)
	h.Content.SetupRoutes(API)
	h.Profile.SetupRoutes(API)

	return mux
}

func handlers(svc *Services, log *slog.Logger) *Handlers {
	authMW := auth.New(svc.Sessions, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	userHandler := userAPI.NewHandler(svc.Users, svc.Sessions, svc.Profiles, log, public, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	toolHandler := toolAPI.NewHandler(svc.Tools, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	activityHandler := activityAPI.NewHandler(svc.Activities, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	contentHandler := contentAPI.NewHandler(svc.Content, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	profileHandler := profileAPI.NewHandler(svc.Profiles, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		User:     userHandler,
		Tool:     toolHandler,
		Activity: activityHandler,
		Content:  contentHandler,
		Profile:  profileHandler,
	}
}
