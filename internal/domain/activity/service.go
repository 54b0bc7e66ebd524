package activity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/query"
)

// DefaultLimit - размер ленты, если клиент не указал limit.
const DefaultLimit = 50

type Servicer interface {
	List(ctx context.Context, userID uuid.UUID, opts query.Options) ([]Activity, error)
	Create(ctx context.Context, userID uuid.UUID, n NewActivity) (*Activity, error)
}

// Service defines the business logic for the append-only activity feed
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "activity_service"),
	}
}

// List returns the user's activities, newest first by default
func (s *Service) List(ctx context.Context, userID uuid.UUID, opts query.Options) ([]Activity, error) {
	opts = opts.Normalize(query.OrderDesc)
	if opts.Limit == 0 {
		opts.Limit = DefaultLimit
	}

	items, err := s.repo.List(ctx, userID, opts)
	if err != nil {
		s.log.Error("failed to list activities", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return items, nil
}

// Create appends an activity. Credits are not charged here: the client
// calls increment_credits separately.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, n NewActivity) (*Activity, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.Create(ctx, userID, n)
	if err != nil {
		s.log.Error("failed to create activity", "user_id", userID, "action", n.Action, "error", err)
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.log.Info("activity recorded", "activity_id", a.ID, "user_id", userID, "action", a.Action, "credits_used", a.CreditsUsed)
	return a, nil
}
