package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/taskdesk/internal/store"
)

// PostgreSQL error codes
const (
	pgCheckViolationCode   = "23514"
	pgNotNullViolationCode = "23502"
	pgInvalidTextRepCode   = "22P02"
	pgStringTooLongCode    = "22001"
)

// mapStoreError translates constraint violations into store.ErrInvalidEntity
// so callers can treat them as bad input rather than infrastructure
// failures. Anything else is wrapped in a store.StoreError carrying the
// failed operation for logs, with the original error preserved for
// errors.Is/errors.As.
func mapStoreError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCheckViolationCode, pgNotNullViolationCode, pgInvalidTextRepCode, pgStringTooLongCode:
			return fmt.Errorf("%w: %s", store.ErrInvalidEntity, pgErr.Message)
		}
	}

	return store.NewStoreError("task", operation, "database operation failed", err)
}
