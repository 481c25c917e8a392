package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/orgcharts/orgcharts-backend/models"
)

// storageError classifies a driver error: no rows is a NotFoundError, a malformed identifier is an
// InvalidIdentifierError, a violated constraint is a BadParameterError, a canceled or expired context
// is returned as is, anything else is a StorageUnavailableError. The sentinel is joined to the cause
// so that both stay reachable from errors.Is.
func storageError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.Wrap(models.NotFoundError, msg)
	}
	if IsInvalidTextRepresentationError(err) {
		return errors.Join(errors.Wrap(err, msg), models.InvalidIdentifierError)
	}
	if IsIntegrityViolationError(err) {
		return errors.Join(errors.Wrap(err, msg), models.BadParameterError)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, msg)
	}
	return errors.Join(errors.Wrap(err, msg), models.StorageUnavailableError)
}

func IsInvalidTextRepresentationError(err error) bool {
	var pgxErr *pgconn.PgError
	return errors.As(err, &pgxErr) && pgxErr.Code == pgerrcode.InvalidTextRepresentation
}

// IsIntegrityViolationError is true for foreign key, unique, check and not null violations.
func IsIntegrityViolationError(err error) bool {
	var pgxErr *pgconn.PgError
	if !errors.As(err, &pgxErr) {
		return false
	}
	switch pgxErr.Code {
	case pgerrcode.ForeignKeyViolation,
		pgerrcode.UniqueViolation,
		pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation:
		return true
	}
	return false
}
