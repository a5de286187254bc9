package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by identifier yields no record.
var ErrNotFound = errors.New("record not found")

// ConstraintError reports a write the store rejected despite passing
// request validation: a check constraint, foreign key or unique index.
// Constraint carries the violated constraint's name so the HTTP layer
// can translate it into a field-specific message.
type ConstraintError struct {
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("constraint %s violated: %v", e.Constraint, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// DataError reports malformed scalar data rejected by the store, e.g.
// an unparseable identifier or a numeric overflow.
type DataError struct {
	Detail string
	Err    error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid data: %s", e.Detail)
}

func (e *DataError) Unwrap() error { return e.Err }

// wrapDBError normalizes driver and gorm errors into the storage error
// taxonomy. PostgreSQL class 23 is integrity violation, class 22 is
// data exception.
func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			return &ConstraintError{Constraint: pgErr.ConstraintName, Err: err}
		case strings.HasPrefix(pgErr.Code, "22"):
			return &DataError{Detail: pgErr.Message, Err: err}
		}
	}
	return err
}
