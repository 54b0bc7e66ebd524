// Package collection держит локальный снимок удаленной таблицы и синхронизирует
// его с хранилищем: загрузка целиком, создание, частичное обновление и удаление.
//
// Результат загрузки применяется, только если это последняя начатая загрузка
// и с ее начала не было сброса. Иначе результат отбрасывается и учитывается
// в State.Discarded. Мутации не ставятся в очередь: каждая применяет ответ
// сервера в момент завершения, а мутации, завершенные во время загрузки,
// повторно накладываются на ее результат. Ошибка загрузки всегда
// возвращается вызывающему.
package collection

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"contenthub/internal/domain/query"
)

// mutation - примененная к снимку мутация, которую нужно наложить на
// результат загрузки, начатой до нее.
type mutation[T Entity] struct {
	generation uint64
	apply      func([]T) []T
}

type Sync[T Entity] struct {
	cfg   Config
	table Table[T]
	owner OwnerSource
	log   *slog.Logger
	now   func() time.Time

	onCreate func(context.Context, T)

	mu    sync.Mutex
	items []T
	state State
	// generation растет при каждой примененной мутации и сбросе.
	generation uint64
	// epoch растет только при сбросе: загрузки и мутации, начатые до смены
	// владельца, не попадают в снимок.
	epoch uint64
	// pending - мутации, завершенные пока идет загрузка.
	pending []mutation[T]
}

// NewSync создает синхронизацию. owner может быть nil для публичных коллекций.
func NewSync[T Entity](cfg Config, table Table[T], owner OwnerSource, log *slog.Logger) *Sync[T] {
	if cfg.Order.Validate() != nil {
		cfg.Order = query.OrderDesc
	}
	return &Sync[T]{
		cfg:   cfg,
		table: table,
		owner: owner,
		log:   log.With("component", "collection_sync", "table", cfg.Table),
		now:   time.Now,
	}
}

// OnCreate регистрирует действие после успешного создания записи.
// Вызывается ровно один раз на запись, без удержания блокировки.
func (s *Sync[T]) OnCreate(fn func(context.Context, T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCreate = fn
}

func (s *Sync[T]) Config() Config {
	return s.cfg
}

func (s *Sync[T]) currentOwner() *uuid.UUID {
	if s.owner == nil {
		return nil
	}
	return s.owner.Current()
}

func (s *Sync[T]) scoped() bool {
	return s.cfg.Scope == ScopeOwner
}

func (s *Sync[T]) writable() error {
	if s.cfg.ReadOnly {
		return ErrReadOnly
	}
	if s.scoped() && s.currentOwner() == nil {
		return ErrUnauthenticated
	}
	return nil
}

// commit применяет мутацию к снимку и запоминает ее для идущей загрузки.
// Вызывается под блокировкой.
func (s *Sync[T]) commit(apply func([]T) []T) {
	s.generation++
	s.items = apply(s.items)
	if s.state.Loading {
		s.pending = append(s.pending, mutation[T]{generation: s.generation, apply: apply})
	}
}

func (s *Sync[T]) resolveLimit(limit int) int {
	switch {
	case limit < 0:
		return 0
	case limit == 0:
		return s.cfg.DefaultLimit
	}
	return limit
}

// Load заменяет снимок результатом select-all. limit == 0 берет DefaultLimit,
// NoLimit снимает ограничение. При ошибке снимок не меняется, ошибка
// возвращается и, если загрузка последняя, сохраняется в State.Err.
func (s *Sync[T]) Load(ctx context.Context, limit int) error {
	owner := s.currentOwner()
	if s.scoped() && owner == nil {
		return ErrUnauthenticated
	}

	q := Query{Order: s.cfg.Order, Limit: s.resolveLimit(limit)}
	if s.scoped() {
		q.Filter.OwnerID = owner
	} else {
		q.Filter.PublicOnly = true
	}

	s.mu.Lock()
	s.state.LoadID++
	loadID := s.state.LoadID
	generation := s.generation
	epoch := s.epoch
	s.state.Loading = true
	s.state.LoadStartedAt = s.now()
	s.mu.Unlock()

	s.log.Debug("load started", "load_id", loadID, "limit", q.Limit)
	items, err := s.table.Select(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	newest := loadID == s.state.LoadID
	current := newest && epoch == s.epoch
	pending := s.pending
	if newest {
		s.state.Loading = false
		s.pending = nil
	}

	if err != nil {
		err = wrapRemote("select", s.cfg.Table, err)
		if current {
			s.state.Err = err
		} else {
			s.state.Discarded++
		}
		s.log.Warn("load failed", "load_id", loadID, "current", current, "error", err)
		return err
	}
	if !current {
		s.state.Discarded++
		s.log.Debug("load result discarded", "load_id", loadID, "newest", newest)
		return nil
	}

	if s.scoped() {
		items = slices.DeleteFunc(items, func(it T) bool {
			o := it.OwnerID()
			return o == nil || *o != *owner
		})
	}
	items = slices.Clone(items)
	for _, m := range pending {
		if m.generation > generation {
			items = m.apply(items)
		}
	}
	s.items = items
	s.state.Err = nil
	s.state.LastLoadedAt = s.now()
	s.log.Debug("load applied", "load_id", loadID, "count", len(items), "replayed", len(pending))
	return nil
}

// Create вставляет запись; хранилище подставляет владельца из сессии.
func (s *Sync[T]) Create(ctx context.Context, fields any) (T, error) {
	var zero T
	if err := s.writable(); err != nil {
		return zero, err
	}

	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()

	created, err := s.table.Insert(ctx, fields)
	if err != nil {
		return zero, wrapRemote("insert", s.cfg.Table, err)
	}

	s.mu.Lock()
	if epoch == s.epoch {
		s.commit(func(items []T) []T { return s.insert(items, created) })
	}
	hook := s.onCreate
	s.mu.Unlock()

	if hook != nil {
		hook(ctx, created)
	}
	return created, nil
}

// insert кладет запись первой для убывающего порядка и по created_at для
// возрастающего. Запись с тем же id заменяется.
func (s *Sync[T]) insert(items []T, item T) []T {
	id := item.EntityID()
	items = slices.DeleteFunc(items, func(it T) bool { return it.EntityID() == id })

	if !s.cfg.Order.Ascending() {
		return slices.Insert(items, 0, item)
	}
	pos := len(items)
	for i, it := range items {
		if it.Created().After(item.Created()) {
			pos = i
			break
		}
	}
	return slices.Insert(items, pos, item)
}

// Update применяет частичное обновление и заменяет запись ответом сервера.
func (s *Sync[T]) Update(ctx context.Context, id uuid.UUID, patch any) (T, error) {
	var zero T
	if err := s.writable(); err != nil {
		return zero, err
	}

	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()

	updated, err := s.table.Update(ctx, id, patch)
	if err != nil {
		return zero, wrapRemote("update", s.cfg.Table, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch == s.epoch {
		s.commit(func(items []T) []T {
			if i := indexOf(items, id); i >= 0 {
				items[i] = updated
			}
			return items
		})
	}
	return updated, nil
}

// Delete удаляет запись. Отсутствующий id - забота хранилища.
func (s *Sync[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.writable(); err != nil {
		return err
	}

	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()

	if err := s.table.Delete(ctx, id); err != nil {
		return wrapRemote("delete", s.cfg.Table, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch == s.epoch {
		s.commit(func(items []T) []T {
			return slices.DeleteFunc(items, func(it T) bool { return it.EntityID() == id })
		})
	}
	return nil
}

func indexOf[T Entity](items []T, id uuid.UUID) int {
	return slices.IndexFunc(items, func(it T) bool { return it.EntityID() == id })
}

// ByID ищет запись в снимке без обращения к хранилищу.
func (s *Sync[T]) ByID(id uuid.UUID) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOf(s.items, id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Items возвращает копию снимка.
func (s *Sync[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *Sync[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Sync[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset очищает снимок, ошибку и флаг загрузки. Загрузки и мутации,
// начатые до сброса, в снимок уже не попадут.
func (s *Sync[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.pending = nil
	s.state.Loading = false
	s.state.Err = nil
	s.state.LastLoadedAt = time.Time{}
	s.generation++
	s.epoch++
}

// OwnerChanged - подписчик на смену владельца: сброс и загрузка для нового
// владельца, только сброс при выходе. Публичные коллекции не реагируют.
func (s *Sync[T]) OwnerChanged(ctx context.Context, owner *uuid.UUID) error {
	if !s.scoped() {
		return nil
	}
	s.Reset()
	if owner == nil {
		return nil
	}
	return s.Load(ctx, DefaultLimit)
}
