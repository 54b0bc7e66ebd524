package collection

import (
	"context"
	"time"

	"github.com/google/uuid"

	"contenthub/internal/domain/query"
)

// Entity - запись удаленной таблицы.
type Entity interface {
	EntityID() uuid.UUID
	// OwnerID возвращает nil для публичных записей.
	OwnerID() *uuid.UUID
	Created() time.Time
}

// Filter - условия равенства по видимости и владельцу.
type Filter struct {
	OwnerID    *uuid.UUID
	PublicOnly bool
}

// Query - параметры select-all. Limit == 0 означает без ограничения.
type Query struct {
	Filter Filter
	Order  query.Order
	Limit  int
}

// Table - удаленная таблица, не зависящая от транспорта.
type Table[T Entity] interface {
	Select(ctx context.Context, q Query) ([]T, error)
	Insert(ctx context.Context, fields any) (T, error)
	Update(ctx context.Context, id uuid.UUID, patch any) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreditCounter - удаленная процедура increment_credits.
type CreditCounter interface {
	IncrementCredits(ctx context.Context, userID uuid.UUID, amount int) error
}

// OwnerSource сообщает текущего владельца; nil - сессии нет.
type OwnerSource interface {
	Current() *uuid.UUID
}
