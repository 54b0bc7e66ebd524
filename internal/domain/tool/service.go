package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/query"
)

type Servicer interface {
	List(ctx context.Context, opts query.Options) ([]Tool, error)
	Find(ctx context.Context, id uuid.UUID) (*Tool, error)
	Seed(ctx context.Context, tools []Tool) (int, error)
}

// Service defines the business logic for the public tool catalog
type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "tool_service"),
	}
}

// List returns public tools, oldest first unless asked otherwise
func (s *Service) List(ctx context.Context, opts query.Options) ([]Tool, error) {
	tools, err := s.repo.ListPublic(ctx, opts.Normalize(query.OrderAsc))
	if err != nil {
		s.log.Error("failed to list tools", "error", err)
		return nil, fmt.Errorf("list tools: %w", err)
	}
	return tools, nil
}

func (s *Service) Find(ctx context.Context, id uuid.UUID) (*Tool, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find tool: %w", err)
	}
	if !t.IsPublic {
		return nil, ErrNotFound
	}
	return t, nil
}

// Seed upserts catalog entries and returns how many were stored
func (s *Service) Seed(ctx context.Context, tools []Tool) (int, error) {
	stored := 0
	for i := range tools {
		t := tools[i]
		if err := t.Validate(); err != nil {
			return stored, fmt.Errorf("catalog entry %d (%q): %w", i, t.Title, err)
		}
		if err := s.repo.UpsertByTitle(ctx, &t); err != nil {
			return stored, fmt.Errorf("seed tool %q: %w", t.Title, err)
		}
		stored++
	}

	s.log.Info("tool catalog seeded", "count", stored)
	return stored, nil
}
