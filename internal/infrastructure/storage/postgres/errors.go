package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// mapError переводит ошибки pgx в доменные ошибки вызывающего репозитория.
// notFound подставляется для pgx.ErrNoRows, conflict - для нарушения уникальности,
// invalid - для нарушения внешнего ключа или CHECK. nil оставляет ошибку как есть.
func mapError(err error, op string, notFound, conflict, invalid error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if notFound != nil && errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			if conflict != nil {
				return conflict
			}
		case codeForeignKeyViolation, codeCheckViolation:
			if invalid != nil {
				return fmt.Errorf("%w: %s", invalid, pgErr.ConstraintName)
			}
		}
	}

	return fmt.Errorf("%s: %w", op, err)
}
