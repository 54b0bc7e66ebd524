package user

import (
	"github.com/google/uuid"

	"contenthub/internal/domain/profile"
	"contenthub/internal/domain/user"
)

type credentialsInput struct {
	Body user.Credentials
}

type sessionOutput struct {
	Body SessionResponse
}

// SessionResponse - выданный токен и его владелец.
type SessionResponse struct {
	Token  string    `json:"token" doc:"Bearer-токен сессии"`
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

type meOutput struct {
	Body MeResponse
}

type MeResponse struct {
	UserID  uuid.UUID        `json:"user_id"`
	Email   string           `json:"email"`
	Profile *profile.Profile `json:"profile,omitempty"`
}
