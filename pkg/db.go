package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgCodeForeignKeyViolation  = "23503"
	PgCodeSerializationFailure = "40001"
	PgCodeDeadlockDetected     = "40P01"
)

// PgErrorCode returns the SQLSTATE carried by err, or "" when err is not a
// postgres error.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsForeignKeyViolationError reports whether a referenced row is missing.
func IsForeignKeyViolationError(err error) bool {
	return PgErrorCode(err) == PgCodeForeignKeyViolation
}

// IsRetryableTxError reports whether a transaction failed on a conflict with
// a concurrent one and can be run again.
func IsRetryableTxError(err error) bool {
	switch PgErrorCode(err) {
	case PgCodeSerializationFailure, PgCodeDeadlockDetected:
		return true
	}
	return false
}
