package tool

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "tools-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/tools",
		Summary:     "Публичный каталог инструментов",
		Tags:        []string{"tools"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "tools-find",
		Method:      http.MethodGet,
		Path:        "/api/v1/tools/{id}",
		Summary:     "Получить инструмент",
		Tags:        []string{"tools"},
		Middlewares: h.middleware,
	}
}
