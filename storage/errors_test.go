package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWrapDBErrorNil(t *testing.T) {
	assert.Nil(t, wrapDBError(nil))
}

func TestWrapDBErrorNotFound(t *testing.T) {
	err := wrapDBError(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestWrapDBErrorConstraints(t *testing.T) {
	cases := []struct {
		code       string
		constraint string
	}{
		{"23514", "stories_category_check"},
		{"23503", "stories_owner_id_fkey"},
		{"23505", "users_email_key"},
	}
	for _, c := range cases {
		pgErr := &pgconn.PgError{Code: c.code, ConstraintName: c.constraint}
		err := wrapDBError(fmt.Errorf("insert: %w", pgErr))

		var constraintErr *ConstraintError
		require.ErrorAs(t, err, &constraintErr, "code %s", c.code)
		assert.Equal(t, c.constraint, constraintErr.Constraint)
	}
}

func TestWrapDBErrorDataException(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type uuid"}
	err := wrapDBError(pgErr)

	var dataErr *DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Contains(t, dataErr.Detail, "invalid input syntax")
}

func TestWrapDBErrorPassthrough(t *testing.T) {
	plain := errors.New("connection reset")
	assert.Equal(t, plain, wrapDBError(plain))
}
