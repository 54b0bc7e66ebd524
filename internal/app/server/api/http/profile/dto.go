package profile

import (
	"github.com/google/uuid"

	"contenthub/internal/domain/profile"
)

type profileOutput struct {
	Body *profile.Profile
}

type updateInput struct {
	Body updateRequest
}

type updateRequest struct {
	Username  *string `json:"username,omitempty" minLength:"1" maxLength:"64"`
	FullName  *string `json:"full_name,omitempty" maxLength:"200"`
	AvatarURL *string `json:"avatar_url,omitempty" maxLength:"2048"`
}

func (r updateRequest) toDomain() profile.Patch {
	return profile.Patch{Username: r.Username, FullName: r.FullName, AvatarURL: r.AvatarURL}
}

type incrementInput struct {
	Body incrementRequest
}

type incrementRequest struct {
	UserID uuid.UUID `json:"user_id" doc:"Должен совпадать с владельцем сессии"`
	Amount int       `json:"amount" minimum:"1"`
}

type incrementOutput struct {
	Body IncrementResponse
}

type IncrementResponse struct {
	CreditsUsed int `json:"credits_used"`
}
