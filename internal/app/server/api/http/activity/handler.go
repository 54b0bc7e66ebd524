package activity

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"contenthub/internal/app/server/api/http/middleware/auth"
	"contenthub/internal/domain/activity"
)

type Handler struct {
	service    activity.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service activity.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "activity_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	items, err := h.service.List(ctx, userID, input.options())
	if err != nil {
		return nil, huma.Error500InternalServerError("list activities failed")
	}
	return &listOutput{Body: items}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	a, err := h.service.Create(ctx, userID, input.Body.toDomain())
	if err != nil {
		if errors.Is(err, activity.ErrInvalidData) || errors.Is(err, activity.ErrInvalidCredits) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("create activity failed")
	}
	return &createOutput{Body: a}, nil
}
