package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/session"
)

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const (
	UserIDKey contextKey = "userID"
	TokenKey  contextKey = "token"
)

const bearerPrefix = "Bearer "

// Middleware проверяет Bearer-токен и кладет id пользователя в контекст запроса.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			a.log.Debug("missing bearer token", "path", ctx.URL().Path)
			a.unauthorized(ctx)
			return
		}
		token := strings.TrimSpace(header[len(bearerPrefix):])

		userID, err := a.session.Validate(ctx.Context(), token)
		if err != nil {
			a.log.Debug("session validation failed", "error", err)
			a.unauthorized(ctx)
			return
		}

		newCtx := WithToken(WithUserID(ctx.Context(), userID), token)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(http.StatusUnauthorized)

	err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
	if err != nil {
		a.log.Error("encode unauthorized response", "error", err)
	}
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
