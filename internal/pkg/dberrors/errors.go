package dberrors

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// PostgreSQL SQLSTATE codes that mean the request itself was malformed
const (
	pgNotNullViolation       = "23502"
	pgCheckViolation         = "23514"
	pgInvalidTextRepr        = "22P02"
	pgNumericValueOutOfRange = "22003"
	pgInvalidDatetimeFormat  = "22007"
)

// IsNoRows reports whether a single-row statement matched nothing, for either driver.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// IsInputRejected reports whether the storage engine refused the row because of
// the submitted values rather than because of an infrastructure failure.
func IsInputRejected(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgNotNullViolation, pgCheckViolation, pgInvalidTextRepr, pgNumericValueOutOfRange, pgInvalidDatetimeFormat:
			return true
		}
		return false
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintNotNull ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintCheck
	}

	return false
}
