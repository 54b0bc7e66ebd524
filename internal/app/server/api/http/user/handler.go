package user

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"contenthub/internal/app/server/api/http/middleware/auth"
	"contenthub/internal/domain/profile"
	"contenthub/internal/domain/session"
	"contenthub/internal/domain/user"
)

type Handler struct {
	service        user.Servicer
	session        session.Servicer
	profile        profile.Servicer
	log            *slog.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

// NewHandler принимает два набора middleware: публичный (register, login)
// и с проверкой сессии (logout, session).
func NewHandler(
	service user.Servicer,
	session session.Servicer,
	profile profile.Servicer,
	log *slog.Logger,
	public huma.Middlewares,
	authed huma.Middlewares,
) *Handler {
	return &Handler{
		service:        service,
		session:        session,
		profile:        profile,
		log:            log.With("component", "auth_handler"),
		middleware:     public,
		authMiddleware: authed,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.sessionOp(), h.current)
}

func (h *Handler) register(ctx context.Context, input *credentialsInput) (*sessionOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		case errors.Is(err, user.ErrAlreadyExists):
			return nil, huma.Error409Conflict("user already exists")
		}
		h.log.Error("register failed", "error", err)
		return nil, huma.Error500InternalServerError("registration failed")
	}

	return h.openSession(ctx, userID, strings.ToLower(strings.TrimSpace(input.Body.Email)))
}

func (h *Handler) login(ctx context.Context, input *credentialsInput) (*sessionOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, huma.Error401Unauthorized("invalid credentials")
	}

	return h.openSession(ctx, u.ID, u.Email)
}

func (h *Handler) openSession(ctx context.Context, userID uuid.UUID, email string) (*sessionOutput, error) {
	token, err := h.session.Create(ctx, userID)
	if err != nil {
		h.log.Error("create session failed", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("create session failed")
	}

	return &sessionOutput{
		Body: SessionResponse{Token: token, UserID: userID, Email: email},
	}, nil
}

func (h *Handler) logout(ctx context.Context, _ *struct{}) (*struct{}, error) {
	token, ok := auth.GetToken(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.session.Revoke(ctx, token); err != nil {
		h.log.Error("revoke session failed", "error", err)
		return nil, huma.Error500InternalServerError("logout failed")
	}
	return &struct{}{}, nil
}

func (h *Handler) current(ctx context.Context, _ *struct{}) (*meOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error401Unauthorized("Unauthorized")
		}
		h.log.Error("get user failed", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("get user failed")
	}

	p, err := h.profile.Get(ctx, userID)
	if err != nil && !errors.Is(err, profile.ErrNotFound) {
		h.log.Error("get profile failed", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("get profile failed")
	}

	return &meOutput{
		Body: MeResponse{UserID: u.ID, Email: u.Email, Profile: p},
	}, nil
}
