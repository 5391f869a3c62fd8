package postgres

import (
	"errors"
	"fmt"

	"domainfinder/pkg/serrors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// wrapError annotates err with msg. Serialization failures, deadlocks, lock
// timeouts and unique violations are reported as serrors.ErrConflict so
// callers can retry the write.
func wrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure,
			pgerrcode.DeadlockDetected,
			pgerrcode.LockNotAvailable,
			pgerrcode.UniqueViolation:
			return serrors.Wrap(serrors.ErrConflict, err, "%s", msg)
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}
