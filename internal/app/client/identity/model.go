// Package identity хранит сессию клиента и сообщает подписчикам о смене владельца.
package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"contenthub/internal/domain/profile"
)

// ErrNoSession - в локальном хранилище нет сохраненной сессии.
var ErrNoSession = errors.New("no saved session")

// Session - выданный сервером токен и его владелец.
type Session struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// Account - пользователь текущей сессии вместе с профилем.
type Account struct {
	UserID  uuid.UUID        `json:"user_id"`
	Email   string           `json:"email"`
	Profile *profile.Profile `json:"profile,omitempty"`
}

// AuthAPI - операции сервера, связанные с сессией и профилем.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (Session, error)
	Register(ctx context.Context, email, password string) (Session, error)
	Logout(ctx context.Context) error
	Account(ctx context.Context) (Account, error)
	FetchProfile(ctx context.Context) (profile.Profile, error)
	UpdateProfile(ctx context.Context, patch profile.Patch) (profile.Profile, error)
	SetToken(token string)
}

// TokenStore - локальное хранилище сессии между запусками.
type TokenStore interface {
	Load(ctx context.Context) (Session, error)
	Save(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// Listener получает нового владельца; nil - пользователь вышел.
type Listener func(ctx context.Context, owner *uuid.UUID) error
