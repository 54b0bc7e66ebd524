// Package query описывает общие параметры выборки коллекций: порядок и лимит.
package query

import "fmt"

// Order - направление сортировки по created_at.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// MaxLimit ограничивает размер одной выборки.
const MaxLimit = 1000

// Validate проверяет значение направления сортировки.
func (o Order) Validate() error {
	switch o {
	case OrderAsc, OrderDesc:
		return nil
	}
	return fmt.Errorf("invalid order: %q", o)
}

func (o Order) Ascending() bool {
	return o == OrderAsc
}

func (o Order) String() string {
	return string(o)
}

// Options - параметры select-all для одной коллекции.
// Limit == 0 означает выборку без ограничения.
type Options struct {
	Order Order
	Limit int
}

// Normalize подставляет порядок по умолчанию и ограничивает лимит.
func (o Options) Normalize(def Order) Options {
	if o.Order.Validate() != nil {
		o.Order = def
	}
	if o.Limit < 0 {
		o.Limit = 0
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	return o
}
