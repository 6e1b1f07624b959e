package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isDuplicateKeyError checks whether err is a unique-constraint violation
// touching the named column. Postgres reports a structured error code;
// sqlite only gives a message ("UNIQUE constraint failed: patients.email"),
// so both shapes are checked.
func isDuplicateKeyError(err error, constraintName string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505" &&
			strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") && strings.Contains(msg, strings.ToLower(constraintName))
}

// isForeignKeyError checks whether err is a foreign-key violation.
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		return pgErr.Code == "23503"
	}

	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
