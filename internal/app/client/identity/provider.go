package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"contenthub/internal/app/client/collection"
	"contenthub/internal/domain/profile"
)

// Provider - текущая сессия клиента. До завершения Resolve Loading() == true.
type Provider struct {
	api   AuthAPI
	store TokenStore
	log   *slog.Logger

	mu        sync.RWMutex
	session   *Session
	profile   *profile.Profile
	loading   bool
	listeners []Listener
}

func NewProvider(api AuthAPI, store TokenStore, log *slog.Logger) *Provider {
	return &Provider{
		api:     api,
		store:   store,
		log:     log.With("component", "identity_provider"),
		loading: true,
	}
}

// Subscribe добавляет подписчика на смену владельца.
func (p *Provider) Subscribe(l Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

// Current возвращает id владельца или nil без сессии.
func (p *Provider) Current() *uuid.UUID {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.session == nil {
		return nil
	}
	id := p.session.UserID
	return &id
}

func (p *Provider) Email() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.session == nil {
		return ""
	}
	return p.session.Email
}

func (p *Provider) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// Profile возвращает копию последнего полученного профиля.
func (p *Provider) Profile() *profile.Profile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.profile == nil {
		return nil
	}
	cp := *p.profile
	return &cp
}

// Resolve восстанавливает сохраненную сессию при запуске. Отозванная
// сервером сессия стирается без ошибки.
func (p *Provider) Resolve(ctx context.Context) error {
	defer p.setLoading(false)

	sess, err := p.store.Load(ctx)
	if errors.Is(err, ErrNoSession) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolve session: %w", err)
	}

	p.api.SetToken(sess.Token)
	acc, err := p.api.Account(ctx)
	if errors.Is(err, collection.ErrUnauthenticated) {
		p.log.Info("saved session expired")
		p.api.SetToken("")
		if err := p.store.Clear(ctx); err != nil {
			p.log.Warn("failed to clear session", "error", err)
		}
		return nil
	}
	if err != nil {
		p.api.SetToken("")
		return fmt.Errorf("resolve session: %w", err)
	}

	p.setSession(ctx, &sess, acc.Profile)
	return nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) error {
	sess, err := p.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("sign in: %w", err)
	}
	p.start(ctx, sess)
	return nil
}

func (p *Provider) SignUp(ctx context.Context, email, password string) error {
	sess, err := p.api.Register(ctx, email, password)
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	p.start(ctx, sess)
	return nil
}

func (p *Provider) start(ctx context.Context, sess Session) {
	p.api.SetToken(sess.Token)
	if err := p.store.Save(ctx, sess); err != nil {
		p.log.Warn("failed to persist session", "error", err)
	}

	var prof *profile.Profile
	if pr, err := p.api.FetchProfile(ctx); err != nil {
		p.log.Warn("failed to fetch profile", "error", err)
	} else {
		prof = &pr
	}
	p.setSession(ctx, &sess, prof)
}

// SignOut отзывает сессию на сервере и стирает локальную. Ошибка отзыва
// только логируется: локально пользователь выходит всегда.
func (p *Provider) SignOut(ctx context.Context) error {
	if p.Current() == nil {
		return nil
	}

	if err := p.api.Logout(ctx); err != nil && !errors.Is(err, collection.ErrUnauthenticated) {
		p.log.Warn("failed to revoke session", "error", err)
	}
	p.api.SetToken("")
	if err := p.store.Clear(ctx); err != nil {
		p.log.Warn("failed to clear session", "error", err)
	}

	p.setSession(ctx, nil, nil)
	return nil
}

func (p *Provider) RefreshProfile(ctx context.Context) error {
	if p.Current() == nil {
		return collection.ErrUnauthenticated
	}
	pr, err := p.api.FetchProfile(ctx)
	if err != nil {
		return fmt.Errorf("refresh profile: %w", err)
	}
	p.setProfile(&pr)
	return nil
}

func (p *Provider) UpdateProfile(ctx context.Context, patch profile.Patch) (profile.Profile, error) {
	if p.Current() == nil {
		return profile.Profile{}, collection.ErrUnauthenticated
	}
	pr, err := p.api.UpdateProfile(ctx, patch)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	p.setProfile(&pr)
	return pr, nil
}

func (p *Provider) setLoading(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = v
}

func (p *Provider) setProfile(pr *profile.Profile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.profile = pr
}

// setSession меняет сессию и, если сменился владелец, ждет всех подписчиков.
func (p *Provider) setSession(ctx context.Context, sess *Session, prof *profile.Profile) {
	p.mu.Lock()
	prev := p.session
	p.session = sess
	p.profile = prof
	listeners := append([]Listener(nil), p.listeners...)
	p.mu.Unlock()

	if sameOwner(prev, sess) {
		return
	}

	var owner *uuid.UUID
	if sess != nil {
		id := sess.UserID
		owner = &id
	}
	p.notify(ctx, owner, listeners)
}

func (p *Provider) notify(ctx context.Context, owner *uuid.UUID, listeners []Listener) {
	var g errgroup.Group
	for _, l := range listeners {
		g.Go(func() error {
			if err := l(ctx, owner); err != nil {
				p.log.Warn("owner change listener failed", "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func sameOwner(a, b *Session) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.UserID == b.UserID
}
