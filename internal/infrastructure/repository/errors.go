package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a postgres unique violation on a constraint whose
// name contains constraintPart.
func isUniqueViolation(err error, constraintPart string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation && strings.Contains(pgErr.ConstraintName, constraintPart)
}
