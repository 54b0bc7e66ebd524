package content

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"contenthub/internal/app/server/api/http/middleware/auth"
	"contenthub/internal/domain/content"
)

type Handler struct {
	service    content.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service content.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "content_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

// toHTTPError переводит ошибки домена content в ответы API.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, content.ErrNotFound):
		return huma.Error404NotFound("content item not found")
	case errors.Is(err, content.ErrInvalidData), errors.Is(err, content.ErrEmptyPatch):
		return huma.Error422UnprocessableEntity(err.Error())
	}
	return huma.Error500InternalServerError("content library operation failed")
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	f, err := input.filter()
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	items, err := h.service.List(ctx, userID, f)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &listOutput{Body: items}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*itemOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	item, err := h.service.Create(ctx, userID, input.Body.toDomain())
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &itemOutput{Body: item}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*itemOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid content item id")
	}

	item, err := h.service.Update(ctx, userID, id, input.Body)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &itemOutput{Body: item}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*struct{}, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid content item id")
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		return nil, toHTTPError(err)
	}
	return &struct{}{}, nil
}
