package events

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when no event has the requested id.
var ErrNotFound = errors.New("event not found")

// ErrUnknownOrganization is returned when an event references an
// organization that does not exist.
var ErrUnknownOrganization = errors.New("organization does not exist")

const foreignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
