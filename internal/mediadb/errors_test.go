package mediadb

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	require.NoError(t, classifyError(nil))

	require.True(t, ErrNotFound.Has(classifyError(pgx.ErrNoRows)))

	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	require.True(t, ErrAlreadyExists.Has(classifyError(unique)))

	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	require.True(t, ErrReferenceNotFound.Has(classifyError(fk)))

	other := &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	err := classifyError(other)
	require.True(t, Error.Has(err))
	require.False(t, ErrNotFound.Has(err))
}
