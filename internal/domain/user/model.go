package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Password  string // хэш
	CreatedAt time.Time
}

// Credentials - тело запросов регистрации и входа.
type Credentials struct {
	Email    string `json:"email" doc:"Email пользователя" minLength:"3" maxLength:"254"`
	Password string `json:"password" doc:"Пароль" minLength:"1" maxLength:"72"`
}
