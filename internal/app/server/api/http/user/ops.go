package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-register",
		Method:        http.MethodPost,
		Path:          "/api/v1/auth/register",
		Summary:       "Регистрация пользователя",
		Description:   "Создает пользователя с пустым профилем и сразу открывает сессию.",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/login",
		Summary:     "Вход по email и паролю",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-logout",
		Method:        http.MethodPost,
		Path:          "/api/v1/auth/logout",
		Summary:       "Завершить текущую сессию",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.authMiddleware,
	}
}

func (h *Handler) sessionOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-session",
		Method:      http.MethodGet,
		Path:        "/api/v1/auth/session",
		Summary:     "Текущий пользователь и профиль",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.authMiddleware,
	}
}
