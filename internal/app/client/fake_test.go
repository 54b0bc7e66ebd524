package client

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"contenthub/internal/app/client/collection"
	"contenthub/internal/app/client/identity"
	"contenthub/internal/domain/activity"
	"contenthub/internal/domain/content"
	"contenthub/internal/domain/profile"
)

// memTable - таблица в памяти с фильтрацией и сортировкой как на сервере.
type memTable[T collection.Entity] struct {
	mu      sync.Mutex
	rows    []T
	selects int
	updates int

	insert func(fields any) (T, error)
	patch  func(row T, patch any) T
}

func (m *memTable[T]) Select(_ context.Context, q collection.Query) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selects++

	out := make([]T, 0, len(m.rows))
	for _, r := range m.rows {
		if q.Filter.OwnerID != nil {
			if o := r.OwnerID(); o == nil || *o != *q.Filter.OwnerID {
				continue
			}
		}
		out = append(out, r)
	}
	slices.SortStableFunc(out, func(a, b T) int {
		c := a.Created().Compare(b.Created())
		if !q.Order.Ascending() {
			c = -c
		}
		return c
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *memTable[T]) Insert(_ context.Context, fields any) (T, error) {
	row, err := m.insert(fields)
	if err != nil {
		return row, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, row)
	return row, nil
}

func (m *memTable[T]) Update(_ context.Context, id uuid.UUID, patch any) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	for i, r := range m.rows {
		if r.EntityID() == id {
			m.rows[i] = m.patch(r, patch)
			return m.rows[i], nil
		}
	}
	var zero T
	return zero, collection.ErrNotFound
}

func (m *memTable[T]) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = slices.DeleteFunc(m.rows, func(r T) bool { return r.EntityID() == id })
	return nil
}

func (m *memTable[T]) selectCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selects
}

// fakeServer - сессии, профили и кредиты одного тестового сервера.
type fakeServer struct {
	mu      sync.Mutex
	users   map[string]uuid.UUID
	current *uuid.UUID
	credits map[uuid.UUID]int
	calls   int
	failRPC bool
	clock   time.Time
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		users:   map[string]uuid.UUID{},
		credits: map[uuid.UUID]int{},
		clock:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *fakeServer) addUser(email string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.users[email] = id
	return id
}

func (f *fakeServer) owner() (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == nil {
		return uuid.Nil, collection.ErrUnauthenticated
	}
	return *f.current, nil
}

func (f *fakeServer) tick() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clock = f.clock.Add(time.Minute)
	return f.clock
}

func (f *fakeServer) Login(_ context.Context, email, _ string) (identity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.users[email]
	if !ok {
		return identity.Session{}, collection.ErrUnauthenticated
	}
	return identity.Session{Token: "tok-" + email, UserID: id, Email: email}, nil
}

func (f *fakeServer) Register(ctx context.Context, email, password string) (identity.Session, error) {
	f.addUser(email)
	return f.Login(ctx, email, password)
}

func (f *fakeServer) Logout(context.Context) error { return nil }

func (f *fakeServer) Account(context.Context) (identity.Account, error) {
	id, err := f.owner()
	if err != nil {
		return identity.Account{}, err
	}
	return identity.Account{UserID: id, Profile: &profile.Profile{ID: id}}, nil
}

func (f *fakeServer) FetchProfile(context.Context) (profile.Profile, error) {
	id, err := f.owner()
	if err != nil {
		return profile.Profile{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return profile.Profile{ID: id, CreditsUsed: f.credits[id], CreditsLimit: profile.DefaultCreditsLimit}, nil
}

func (f *fakeServer) UpdateProfile(ctx context.Context, _ profile.Patch) (profile.Profile, error) {
	return f.FetchProfile(ctx)
}

// SetToken переключает владельца: токен имеет вид tok-<email>.
func (f *fakeServer) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = nil
	for email, id := range f.users {
		if token == "tok-"+email {
			f.current = &id
		}
	}
}

func (f *fakeServer) IncrementCredits(_ context.Context, userID uuid.UUID, amount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failRPC {
		return collection.ErrUnauthenticated
	}
	f.credits[userID] += amount
	return nil
}

func (f *fakeServer) rpcCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type memStore struct {
	mu   sync.Mutex
	sess *identity.Session
}

func (m *memStore) Load(context.Context) (identity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil {
		return identity.Session{}, identity.ErrNoSession
	}
	return *m.sess, nil
}

func (m *memStore) Save(_ context.Context, s identity.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = &s
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = nil
	return nil
}

func activityRows(srv *fakeServer) *memTable[activity.Activity] {
	return &memTable[activity.Activity]{
		insert: func(fields any) (activity.Activity, error) {
			owner, err := srv.owner()
			if err != nil {
				return activity.Activity{}, err
			}
			n := fields.(activity.NewActivity)
			return activity.Activity{
				ID:          uuid.New(),
				UserID:      owner,
				ToolID:      n.ToolID,
				Action:      n.Action,
				Details:     n.Details,
				CreditsUsed: n.CreditsUsed,
				CreatedAt:   srv.tick(),
			}, nil
		},
	}
}

func contentRows(srv *fakeServer) *memTable[content.Item] {
	return &memTable[content.Item]{
		insert: func(fields any) (content.Item, error) {
			owner, err := srv.owner()
			if err != nil {
				return content.Item{}, err
			}
			n := fields.(content.NewItem)
			now := srv.tick()
			return content.Item{
				ID:         uuid.New(),
				UserID:     owner,
				Name:       n.Name,
				Type:       n.Type,
				IsFavorite: n.IsFavorite,
				Tags:       n.Tags,
				CreatedAt:  now,
				UpdatedAt:  now,
			}, nil
		},
		patch: func(row content.Item, patch any) content.Item {
			p := patch.(content.Patch)
			if p.Name != nil {
				row.Name = *p.Name
			}
			if p.IsFavorite != nil {
				row.IsFavorite = *p.IsFavorite
			}
			if p.Tags != nil {
				row.Tags = *p.Tags
			}
			return row
		},
	}
}
