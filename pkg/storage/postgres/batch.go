package postgres

import (
	"context"
	"domainfinder/pkg/serrors"
	"domainfinder/pkg/storage"
	"sync"
)

// The two-key form lives in a different lock space than the single-key
// pg_advisory_xact_lock taken by LockDomain.
const (
	batchLockKey = "domainfinder:batch"
	tryBatchLock = "SELECT pg_try_advisory_lock(hashtext($1), 0)"
	unlockBatch  = "SELECT pg_advisory_unlock(hashtext($1), 0)"
)

// TryLockBatch takes a session advisory lock on a connection checked out of
// the pool for as long as the lock is held.
func (p *PgSQL) TryLockBatch(ctx context.Context) (func(context.Context) error, error) {
	if p.Pool == nil {
		return nil, storage.ErrAlreadyInTx
	}

	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		return nil, wrapError(err, "could not acquire connection for batch lock")
	}

	var locked bool
	if err := conn.QueryRow(ctx, tryBatchLock, batchLockKey).Scan(&locked); err != nil {
		conn.Release()

		return nil, wrapError(err, "could not take batch lock")
	}
	if !locked {
		conn.Release()

		return nil, serrors.With(serrors.ErrConflict, "a batch is already running")
	}

	var once sync.Once
	var releaseErr error
	release := func(ctx context.Context) error {
		once.Do(func() {
			if _, err := conn.Exec(ctx, unlockBatch, batchLockKey); err != nil {
				// closing the session drops the lock; the conn must not return to the pool
				_ = conn.Hijack().Close(context.WithoutCancel(ctx))
				releaseErr = wrapError(err, "could not release batch lock")

				return
			}
			conn.Release()
		})

		return releaseErr
	}

	return release, nil
}
