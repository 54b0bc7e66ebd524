package tool

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/tool"
)

type Handler struct {
	service    tool.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service tool.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "tool_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	tools, err := h.service.List(ctx, input.options())
	if err != nil {
		h.log.Error("list tools failed", "error", err)
		return nil, huma.Error500InternalServerError("list tools failed")
	}

	return &listOutput{Body: tool.Search(tools, input.Q)}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("invalid tool id")
	}

	t, err := h.service.Find(ctx, id)
	if err != nil {
		if errors.Is(err, tool.ErrNotFound) {
			return nil, huma.Error404NotFound("tool not found")
		}
		h.log.Error("find tool failed", "tool_id", id, "error", err)
		return nil, huma.Error500InternalServerError("find tool failed")
	}

	return &findOutput{Body: t}, nil
}
