// Package client собирает клиент Content Hub: сессию и синхронизируемые
// коллекции инструментов, ленты действий и библиотеки контента.
package client

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"contenthub/internal/app/client/collection"
	"contenthub/internal/app/client/config"
	"contenthub/internal/app/client/identity"
	"contenthub/internal/app/client/remote"
	"contenthub/internal/domain/activity"
	"contenthub/internal/domain/content"
	"contenthub/internal/domain/query"
	"contenthub/internal/domain/tool"
)

const (
	toolsPath      = "/api/v1/tools"
	activitiesPath = "/api/v1/activities"
	contentPath    = "/api/v1/content_library"
)

// Backend - удаленные зависимости приложения.
type Backend struct {
	Auth       identity.AuthAPI
	Credits    collection.CreditCounter
	Store      identity.TokenStore
	Tools      collection.Table[tool.Tool]
	Activities collection.Table[activity.Activity]
	Content    collection.Table[content.Item]
}

type App struct {
	log     *slog.Logger
	credits collection.CreditCounter
	closers []func() error

	Identity   *identity.Provider
	Tools      *collection.Sync[tool.Tool]
	Activities *collection.Sync[activity.Activity]
	Content    *collection.Sync[content.Item]
}

// New создает приложение поверх HTTP-сервера и локальной базы сессии.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.ConfigDir, 0o700); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	store, err := identity.NewSQLiteStore(cfg.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	rc := remote.NewClient(cfg.BaseURL(), cfg.RequestTimeout, log)
	app := NewWithBackend(cfg, Backend{
		Auth:       rc,
		Credits:    rc,
		Store:      store,
		Tools:      remote.NewTable[tool.Tool](rc, toolsPath),
		Activities: remote.NewTable[activity.Activity](rc, activitiesPath),
		Content:    remote.NewTable[content.Item](rc, contentPath),
	}, log)
	app.closers = append(app.closers, store.Close)

	return app, nil
}

// NewWithBackend связывает коллекции с сессией: смена владельца
// перезагружает или сбрасывает коллекции пользователя.
func NewWithBackend(cfg *config.Config, b Backend, log *slog.Logger) *App {
	id := identity.NewProvider(b.Auth, b.Store, log)

	app := &App{
		log:      log.With("component", "client_app"),
		credits:  b.Credits,
		Identity: id,
		Tools: collection.NewSync(collection.Config{
			Table:    "tools",
			Order:    query.OrderAsc,
			Scope:    collection.ScopePublic,
			ReadOnly: true,
		}, b.Tools, id, log),
		Activities: collection.NewSync(collection.Config{
			Table:        "activities",
			Order:        query.OrderDesc,
			Scope:        collection.ScopeOwner,
			DefaultLimit: cfg.ActivityLimit,
		}, b.Activities, id, log),
		Content: collection.NewSync(collection.Config{
			Table: "content_library",
			Order: query.OrderDesc,
			Scope: collection.ScopeOwner,
		}, b.Content, id, log),
	}

	app.Activities.OnCreate(app.chargeCredits)
	id.Subscribe(app.Activities.OwnerChanged)
	id.Subscribe(app.Content.OwnerChanged)

	return app
}

// Start восстанавливает сессию и загружает каталог инструментов.
// Коллекции пользователя загружаются подписками на смену владельца.
func (a *App) Start(ctx context.Context) error {
	if err := a.Identity.Resolve(ctx); err != nil {
		a.log.Warn("session not restored", "error", err)
	}
	if err := a.Tools.Load(ctx, collection.DefaultLimit); err != nil {
		return fmt.Errorf("load tools: %w", err)
	}
	return nil
}

// Refresh параллельно перезагружает все доступные коллекции.
func (a *App) Refresh(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return a.Tools.Load(ctx, collection.DefaultLimit) })
	if a.Identity.Current() != nil {
		g.Go(func() error { return a.Activities.Load(ctx, collection.DefaultLimit) })
		g.Go(func() error { return a.Content.Load(ctx, collection.DefaultLimit) })
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	return nil
}

// LogActivity добавляет запись в ленту действий. При credits > 0
// кредиты списываются один раз после успешной записи.
func (a *App) LogActivity(ctx context.Context, action string, toolID *uuid.UUID, details map[string]any, credits int) (activity.Activity, error) {
	n := activity.NewActivity{
		ToolID:      toolID,
		Action:      action,
		Details:     details,
		CreditsUsed: credits,
	}
	if err := n.Validate(); err != nil {
		return activity.Activity{}, fmt.Errorf("log activity: %w", err)
	}
	return a.Activities.Create(ctx, n)
}

func (a *App) chargeCredits(ctx context.Context, act activity.Activity) {
	if act.CreditsUsed <= 0 {
		return
	}
	if err := a.credits.IncrementCredits(ctx, act.UserID, act.CreditsUsed); err != nil {
		a.log.Warn("failed to increment credits",
			"activity_id", act.ID,
			"amount", act.CreditsUsed,
			"error", err,
		)
	}
}

// AddContent создает элемент библиотеки.
func (a *App) AddContent(ctx context.Context, n content.NewItem) (content.Item, error) {
	if err := n.Validate(); err != nil {
		return content.Item{}, fmt.Errorf("add content: %w", err)
	}
	return a.Content.Create(ctx, n)
}

// ToggleFavorite инвертирует is_favorite у элемента из снимка. Элемента нет
// в снимке - collection.ErrNotFound без обращения к серверу.
func (a *App) ToggleFavorite(ctx context.Context, id uuid.UUID) (content.Item, error) {
	item, ok := a.Content.ByID(id)
	if !ok {
		return content.Item{}, collection.ErrNotFound
	}
	fav := !item.IsFavorite
	return a.Content.Update(ctx, id, content.Patch{IsFavorite: &fav})
}

func (a *App) RenameContent(ctx context.Context, id uuid.UUID, name string) (content.Item, error) {
	p := content.Patch{Name: &name}
	if err := p.Validate(); err != nil {
		return content.Item{}, fmt.Errorf("rename content: %w", err)
	}
	return a.Content.Update(ctx, id, p)
}

// TagContent заменяет теги элемента.
func (a *App) TagContent(ctx context.Context, id uuid.UUID, tags []string) (content.Item, error) {
	if tags == nil {
		tags = []string{}
	}
	return a.Content.Update(ctx, id, content.Patch{Tags: &tags})
}

// SearchTools ищет по загруженному каталогу.
func (a *App) SearchTools(q string) []tool.Tool {
	return tool.Search(a.Tools.Items(), q)
}

// FilterContent фильтрует загруженную библиотеку.
func (a *App) FilterContent(f content.Filter) []content.Item {
	return f.Apply(a.Content.Items())
}

func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
