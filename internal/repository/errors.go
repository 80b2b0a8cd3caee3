package repository

import (
	"errors"

	"problem-bank/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the Postgres SQLSTATE for a unique-constraint breach.
const uniqueViolation = "23505"

// mapDBError translates driver errors into the domain taxonomy: a unique
// violation becomes a conflict with the given message, everything else is
// surfaced as storage unavailability. Callers handle sql.ErrNoRows before
// reaching this.
func mapDBError(err error, conflictMessage string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.NewConflictError(conflictMessage, err)
	}
	return domain.NewStorageUnavailableError(err)
}
