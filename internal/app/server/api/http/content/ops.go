package content

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "content-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/content_library",
		Summary:     "Библиотека контента пользователя",
		Tags:        []string{"content"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "content-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/content_library",
		Summary:       "Добавить элемент",
		Tags:          []string{"content"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "content-update",
		Method:      http.MethodPatch,
		Path:        "/api/v1/content_library/{id}",
		Summary:     "Частично обновить элемент",
		Tags:        []string{"content"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "content-delete",
		Method:        http.MethodDelete,
		Path:          "/api/v1/content_library/{id}",
		Summary:       "Удалить элемент",
		Description:   "Удаление отсутствующего элемента тоже возвращает 204.",
		Tags:          []string{"content"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}
