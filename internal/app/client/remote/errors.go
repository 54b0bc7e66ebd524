package remote

import (
	"encoding/json"
	"fmt"
	"net/http"

	"contenthub/internal/app/client/collection"
)

// StatusError - ответ сервера с кодом >= 400, кроме 401 и 404.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Code)
	}
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Message)
}

// statusError переводит код ответа в ошибки коллекций.
func statusError(code int, body []byte) error {
	switch code {
	case http.StatusUnauthorized:
		return collection.ErrUnauthenticated
	case http.StatusNotFound:
		return collection.ErrNotFound
	}
	return &StatusError{Code: code, Message: errorMessage(body)}
}

// errorMessage достает текст ошибки из тела huma (detail) или из {"error": ...}.
func errorMessage(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
		Title  string `json:"title"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	switch {
	case payload.Detail != "":
		return payload.Detail
	case payload.Error != "":
		return payload.Error
	}
	return payload.Title
}
