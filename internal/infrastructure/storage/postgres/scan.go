package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"contenthub/internal/domain/query"
)

// orderAndLimit добавляет сортировку по created_at и лимит к выборке.
func orderAndLimit(b sq.SelectBuilder, opts query.Options) sq.SelectBuilder {
	dir := "DESC"
	if opts.Order.Ascending() {
		dir = "ASC"
	}
	b = b.OrderBy("created_at "+dir, "id "+dir)
	if opts.Limit > 0 {
		b = b.Limit(uint64(opts.Limit))
	}
	return b
}

// collect читает все строки через scan и закрывает rows.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func emptyIfNil(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
