package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/query"
)

type Servicer interface {
	List(ctx context.Context, userID uuid.UUID, f Filter) ([]Item, error)
	Create(ctx context.Context, userID uuid.UUID, n NewItem) (*Item, error)
	Update(ctx context.Context, userID, id uuid.UUID, p Patch) (*Item, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service defines the business logic for the content library
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "content_service"),
	}
}

// List returns the user's library, newest first by default
func (s *Service) List(ctx context.Context, userID uuid.UUID, f Filter) ([]Item, error) {
	f.Options = f.Options.Normalize(query.OrderDesc)

	items, err := s.repo.List(ctx, userID, f)
	if err != nil {
		s.log.Error("failed to list content", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list content: %w", err)
	}
	return items, nil
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, n NewItem) (*Item, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}

	item, err := s.repo.Create(ctx, userID, n)
	if err != nil {
		s.log.Error("failed to create content item", "user_id", userID, "type", n.Type, "error", err)
		return nil, fmt.Errorf("create content item: %w", err)
	}

	s.log.Info("content item created", "item_id", item.ID, "user_id", userID, "type", item.Type)
	return item, nil
}

// Update applies a partial update and returns the stored representation
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, p Patch) (*Item, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	item, err := s.repo.Update(ctx, userID, id, p)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update content item", "item_id", id, "user_id", userID, "error", err)
		return nil, fmt.Errorf("update content item: %w", err)
	}
	return item, nil
}

// Delete removes an item. Deleting an absent item is not an error.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		s.log.Error("failed to delete content item", "item_id", id, "user_id", userID, "error", err)
		return fmt.Errorf("delete content item: %w", err)
	}
	if !deleted {
		s.log.Debug("delete of absent content item", "item_id", id, "user_id", userID)
	}
	return nil
}
