package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, email, password string) (uuid.UUID, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	Get(ctx context.Context, id uuid.UUID) (User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) Register(ctx context.Context, email, password string) (uuid.UUID, error) {
	email = normalizeEmail(email)
	if err := s.validator.ValidateRegister(email, password); err != nil {
		s.log.Debug("validation failed", "email", email, "error", err)
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return uuid.Nil, ErrAlreadyExists
		}
		return uuid.Nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", id)
	return id, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)
	if err := s.validator.ValidateEmail(email); err != nil {
		return User{}, ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return User{}, ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
