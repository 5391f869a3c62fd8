package storage

import (
	"context"
	"domainfinder/pkg/domain"
	"time"
)

// DomainStorage persists the current record of every domain and its
// append-only score history.
type DomainStorage interface {
	// LockDomain serializes writers of key until the surrounding transaction
	// ends. It returns ErrNotInTx outside a transaction.
	LockDomain(ctx context.Context, key domain.DomainKey) error
	// UpsertDomain creates the record of rec.Key or overwrites its mutable
	// fields. The returned bool is true when the record was created.
	UpsertDomain(ctx context.Context, rec domain.DomainRecord) (*domain.DomainRecord, bool, error)
	// AppendHistory adds one immutable score entry for an existing domain.
	AppendHistory(ctx context.Context, key domain.DomainKey, score domain.ScoreBreakdown, calculatedAt time.Time) (*domain.ScoreHistoryEntry, error)

	// DomainByKey returns nil without error when the domain is unknown.
	DomainByKey(ctx context.Context, key domain.DomainKey) (*domain.DomainRecord, error)
	// TopDomains returns up to limit records with a total score of at least
	// minScore, best first.
	TopDomains(ctx context.Context, minScore float64, limit uint) ([]domain.DomainRecord, error)
	// ScoreHistory returns the entries of key, oldest first.
	ScoreHistory(ctx context.Context, key domain.DomainKey) ([]domain.ScoreHistoryEntry, error)
}
