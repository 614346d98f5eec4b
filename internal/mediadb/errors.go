package mediadb

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyError maps pgx errors onto the package's error classes so callers
// never inspect Postgres error codes themselves.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound.Wrap(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrAlreadyExists.Wrap(err)
		case pgerrcode.ForeignKeyViolation:
			return ErrReferenceNotFound.Wrap(err)
		}
	}

	return Error.Wrap(err)
}
