package collection

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"contenthub/internal/domain/activity"
)

type selectResult[T Entity] struct {
	items []T
	err   error
}

// selectCall - запрос Select, который тест завершает вручную.
type selectCall[T Entity] struct {
	query Query
	reply chan selectResult[T]
}

type fakeTable[T Entity] struct {
	mu      sync.Mutex
	rows    []T
	queries []Query

	selectErr error
	insertErr error
	updateErr error
	deleteErr error

	// calls != nil переводит Select в ручной режим.
	calls chan *selectCall[T]

	insertFn func(fields any) T
	updateFn func(id uuid.UUID, patch any) (T, error)

	inserts int
	deletes []uuid.UUID
}

func (f *fakeTable[T]) Select(ctx context.Context, q Query) ([]T, error) {
	f.mu.Lock()
	f.queries = append(f.queries, q)
	calls := f.calls
	rows := append([]T(nil), f.rows...)
	err := f.selectErr
	f.mu.Unlock()

	if calls == nil {
		return rows, err
	}
	call := &selectCall[T]{query: q, reply: make(chan selectResult[T], 1)}
	calls <- call
	select {
	case res := <-call.reply:
		return res.items, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (f *fakeTable[T]) Insert(_ context.Context, fields any) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	if f.insertErr != nil {
		return zero, f.insertErr
	}
	f.inserts++
	item := f.insertFn(fields)
	f.rows = append(f.rows, item)
	return item, nil
}

func (f *fakeTable[T]) Update(_ context.Context, id uuid.UUID, patch any) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	if f.updateErr != nil {
		return zero, f.updateErr
	}
	return f.updateFn(id, patch)
}

func (f *fakeTable[T]) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeTable[T]) lastQuery() Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[len(f.queries)-1]
}

type staticOwner struct {
	mu sync.Mutex
	id *uuid.UUID
}

func (o *staticOwner) Current() *uuid.UUID {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.id
}

func (o *staticOwner) set(id *uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.id = id
}

var baseTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newActivity(owner uuid.UUID, action string, minutes int) activity.Activity {
	return activity.Activity{
		ID:        uuid.New(),
		UserID:    owner,
		Action:    action,
		CreatedAt: baseTime.Add(time.Duration(minutes) * time.Minute),
	}
}

// activityTable создает таблицу, которая присваивает id и время вставки.
func activityTable(owner uuid.UUID, rows ...activity.Activity) *fakeTable[activity.Activity] {
	minute := 100
	return &fakeTable[activity.Activity]{
		rows: rows,
		insertFn: func(fields any) activity.Activity {
			n := fields.(activity.NewActivity)
			minute++
			return activity.Activity{
				ID:          uuid.New(),
				UserID:      owner,
				ToolID:      n.ToolID,
				Action:      n.Action,
				Details:     n.Details,
				CreditsUsed: n.CreditsUsed,
				CreatedAt:   baseTime.Add(time.Duration(minute) * time.Minute),
			}
		},
	}
}
