package profile

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "profiles-me",
		Method:      http.MethodGet,
		Path:        "/api/v1/profiles/me",
		Summary:     "Профиль текущего пользователя",
		Tags:        []string{"profiles"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "profiles-me-update",
		Method:      http.MethodPatch,
		Path:        "/api/v1/profiles/me",
		Summary:     "Обновить имя, username или аватар",
		Tags:        []string{"profiles"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) incrementCreditsOp() huma.Operation {
	return huma.Operation{
		OperationID: "rpc-increment-credits",
		Method:      http.MethodPost,
		Path:        "/api/v1/rpc/increment_credits",
		Summary:     "Увеличить счетчик израсходованных кредитов",
		Tags:        []string{"rpc"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
