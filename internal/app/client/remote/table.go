package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"contenthub/internal/app/client/collection"
)

// Table - коллекция сервера по REST-пути. Владельца и видимость фильтрует
// сервер по сессии, поэтому Filter в запрос не попадает.
type Table[T collection.Entity] struct {
	c    *Client
	path string
}

func NewTable[T collection.Entity](c *Client, path string) *Table[T] {
	return &Table[T]{c: c, path: path}
}

func (t *Table[T]) Select(ctx context.Context, q collection.Query) ([]T, error) {
	params := url.Values{}
	if q.Order != "" {
		params.Set("order", q.Order.String())
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	var items []T
	if err := t.c.do(ctx, http.MethodGet, t.path, params, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (t *Table[T]) Insert(ctx context.Context, fields any) (T, error) {
	var item T
	err := t.c.do(ctx, http.MethodPost, t.path, nil, fields, &item)
	return item, err
}

func (t *Table[T]) Update(ctx context.Context, id uuid.UUID, patch any) (T, error) {
	var item T
	err := t.c.do(ctx, http.MethodPatch, t.itemPath(id), nil, patch, &item)
	return item, err
}

func (t *Table[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return t.c.do(ctx, http.MethodDelete, t.itemPath(id), nil, nil, nil)
}

func (t *Table[T]) itemPath(id uuid.UUID) string {
	return t.path + "/" + id.String()
}
