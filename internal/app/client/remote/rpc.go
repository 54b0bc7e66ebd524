package remote

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type incrementRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Amount int       `json:"amount"`
}

// IncrementCredits вызывает процедуру increment_credits.
func (c *Client) IncrementCredits(ctx context.Context, userID uuid.UUID, amount int) error {
	req := incrementRequest{UserID: userID, Amount: amount}
	return c.do(ctx, http.MethodPost, "/api/v1/rpc/increment_credits", nil, req, nil)
}
