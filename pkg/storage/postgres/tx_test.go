package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"domainfinder/pkg/domain"
	"domainfinder/pkg/serrors"
	"domainfinder/pkg/storage"
	"domainfinder/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, _, err = txStorage.UpsertDomain(ctx, testRecord("committed", "com"))
	require.NoError(t, err)
	require.NoError(t, txStorage.Commit())

	rec, err := pg.DomainByKey(ctx, domain.NewDomainKey("committed", "com"))
	require.NoError(t, err)
	require.NotNil(t, rec)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, _, err = txStorage.UpsertDomain(ctx, testRecord("discarded", "com"))
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	rec, err := pg.DomainByKey(ctx, domain.NewDomainKey("discarded", "com"))
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	key := domain.NewDomainKey("withtx", "io")

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if err := s.LockDomain(ctx, key); err != nil {
			return err
		}
		if _, _, err := s.UpsertDomain(ctx, testRecord(key.Name, key.TLD)); err != nil {
			return err
		}
		_, err := s.AppendHistory(ctx, key, domain.ScoreBreakdown{TotalScore: 10}, time.Now())

		return err
	})
	require.NoError(t, err)

	history, err := pg.ScoreHistory(ctx, key)
	require.NoError(t, err)
	require.Len(t, history, 1)

	// a failing callback discards both the record update and the history entry
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		rec := testRecord(key.Name, key.TLD)
		rec.Score.TotalScore = 99
		if _, _, err := s.UpsertDomain(ctx, rec); err != nil {
			return err
		}
		if _, err := s.AppendHistory(ctx, key, rec.Score, time.Now()); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.Error(t, err)

	history, err = pg.ScoreHistory(ctx, key)
	require.NoError(t, err)
	require.Len(t, history, 1)
	rec, err := pg.DomainByKey(ctx, key)
	require.NoError(t, err)
	require.NotEqual(t, 99.0, rec.Score.TotalScore)
}

func TestPgSQL_LockDomain(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	key := domain.NewDomainKey("locked", "com")

	require.ErrorIs(t, pg.LockDomain(ctx, key), storage.ErrNotInTx)

	first, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = first.Rollback() }()
	require.NoError(t, first.LockDomain(ctx, key))

	second, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = second.Rollback() }()

	// another key is not blocked
	require.NoError(t, second.LockDomain(ctx, domain.NewDomainKey("other", "com")))

	// the same key waits for the first transaction
	lockCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()
	require.Error(t, second.LockDomain(lockCtx, key))
}

func TestPgSQL_TryLockBatch(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	release, err := pg.TryLockBatch(ctx)
	require.NoError(t, err)

	// a second holder, as another process would be, is turned away
	_, err = pg.TryLockBatch(ctx)
	require.ErrorIs(t, err, serrors.ErrConflict)

	// per-domain locks are not affected by the batch lock
	require.NoError(t, pg.WithTx(ctx, func(s storage.AllStorage) error {
		return s.LockDomain(ctx, domain.NewDomainKey("domainfinder", "batch"))
	}))

	require.NoError(t, release(ctx))
	require.NoError(t, release(ctx))

	again, err := pg.TryLockBatch(ctx)
	require.NoError(t, err)
	require.NoError(t, again(ctx))

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()
	_, err = tx.(*postgres.PgSQL).TryLockBatch(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)
}
