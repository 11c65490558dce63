// Package store contains the per-table data access layer over PostgreSQL.
// Each store wraps a *sql.DB and exposes typed CRUD and query methods for
// one entity. Lookups return nil (not an error) when no row matches.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned when an insert violates a uniqueness
// constraint: a category name/slug that already exists, or a second
// rating from the same IP for the same content item.
var ErrDuplicate = errors.New("duplicate record")

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
