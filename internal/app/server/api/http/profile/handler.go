package profile

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"contenthub/internal/app/server/api/http/middleware/auth"
	"contenthub/internal/domain/profile"
)

type Handler struct {
	service    profile.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service profile.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "profile_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.incrementCreditsOp(), h.incrementCredits)
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, profile.ErrNotFound):
		return huma.Error404NotFound("profile not found")
	case errors.Is(err, profile.ErrForbidden):
		return huma.Error403Forbidden(err.Error())
	case errors.Is(err, profile.ErrUsernameTaken):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, profile.ErrEmptyPatch), errors.Is(err, profile.ErrInvalidAmount):
		return huma.Error422UnprocessableEntity(err.Error())
	}
	return huma.Error500InternalServerError("profile operation failed")
}

func (h *Handler) get(ctx context.Context, _ *struct{}) (*profileOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	p, err := h.service.Get(ctx, userID)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &profileOutput{Body: p}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*profileOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	p, err := h.service.Update(ctx, userID, input.Body.toDomain())
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &profileOutput{Body: p}, nil
}

func (h *Handler) incrementCredits(ctx context.Context, input *incrementInput) (*incrementOutput, error) {
	callerID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	used, err := h.service.IncrementCredits(ctx, callerID, input.Body.UserID, input.Body.Amount)
	if err != nil {
		if errors.Is(err, profile.ErrForbidden) {
			h.log.Warn("credit increment for another user rejected",
				"caller_id", callerID, "user_id", input.Body.UserID)
		}
		return nil, toHTTPError(err)
	}
	return &incrementOutput{Body: IncrementResponse{CreditsUsed: used}}, nil
}
