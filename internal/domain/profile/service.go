package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Update(ctx context.Context, userID uuid.UUID, p Patch) (*Profile, error)
	IncrementCredits(ctx context.Context, callerID, userID uuid.UUID, amount int) (int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "profile_service"),
	}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, patch Patch) (*Profile, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	p, err := s.repo.Update(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUsernameTaken) {
			return nil, err
		}
		s.log.Error("failed to update profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

// IncrementCredits is the increment_credits remote procedure. A caller may
// only charge its own profile.
func (s *Service) IncrementCredits(ctx context.Context, callerID, userID uuid.UUID, amount int) (int, error) {
	if callerID != userID {
		return 0, ErrForbidden
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	total, err := s.repo.IncrementCredits(ctx, userID, amount)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, ErrNotFound
		}
		s.log.Error("failed to increment credits", "user_id", userID, "amount", amount, "error", err)
		return 0, fmt.Errorf("increment credits: %w", err)
	}

	s.log.Debug("credits incremented", "user_id", userID, "amount", amount, "credits_used", total)
	return total, nil
}
