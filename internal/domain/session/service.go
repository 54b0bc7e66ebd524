package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const DefaultTTL = 24 * time.Hour

type Servicer interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Validate(ctx context.Context, token string) (uuid.UUID, error)
	Revoke(ctx context.Context, token string) error
}

type Service struct {
	repo Repository
	ttl  time.Duration
	log  *slog.Logger
}

func NewService(repo Repository, ttl time.Duration, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo: repo,
		ttl:  ttl,
		log:  log.With("component", "session_service"),
	}
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	// Генерация токена
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	expiresAt := time.Now().Add(s.ttl)
	if err := s.repo.Create(ctx, userID, hashToken(token), expiresAt); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrInvalidSession
	}
	userID, err := s.repo.Validate(ctx, hashToken(token))
	if err != nil {
		if errors.Is(err, ErrInvalidSession) {
			return uuid.Nil, ErrInvalidSession
		}
		return uuid.Nil, fmt.Errorf("validate session: %w", err)
	}
	return userID, nil
}

// Revoke идемпотентен: отзыв неизвестного токена не ошибка.
func (s *Service) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.repo.Revoke(ctx, hashToken(token)); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.log.Debug("session revoked")
	return nil
}
