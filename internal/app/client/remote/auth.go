package remote

import (
	"context"
	"net/http"

	"contenthub/internal/app/client/identity"
	"contenthub/internal/domain/profile"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (identity.Session, error) {
	var sess identity.Session
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, credentials{Email: email, Password: password}, &sess)
	return sess, err
}

func (c *Client) Register(ctx context.Context, email, password string) (identity.Session, error) {
	var sess identity.Session
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", nil, credentials{Email: email, Password: password}, &sess)
	return sess, err
}

// Logout отзывает текущий токен на сервере.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil, nil)
}

func (c *Client) Account(ctx context.Context) (identity.Account, error) {
	var acc identity.Account
	err := c.do(ctx, http.MethodGet, "/api/v1/auth/session", nil, nil, &acc)
	return acc, err
}

func (c *Client) FetchProfile(ctx context.Context) (profile.Profile, error) {
	var p profile.Profile
	err := c.do(ctx, http.MethodGet, "/api/v1/profiles/me", nil, nil, &p)
	return p, err
}

func (c *Client) UpdateProfile(ctx context.Context, patch profile.Patch) (profile.Profile, error) {
	var p profile.Profile
	err := c.do(ctx, http.MethodPatch, "/api/v1/profiles/me", nil, patch, &p)
	return p, err
}

var _ identity.AuthAPI = (*Client)(nil)
