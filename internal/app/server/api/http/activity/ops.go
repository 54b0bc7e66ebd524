package activity

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "activities-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/activities",
		Summary:     "Лента действий пользователя",
		Tags:        []string{"activities"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "activities-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/activities",
		Summary:       "Добавить запись в ленту",
		Description:   "Записи только добавляются. Списание кредитов выполняет отдельный вызов rpc/increment_credits.",
		Tags:          []string{"activities"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}
