package postgres

import (
	"context"
	"database/sql"
	"time"

	"domainfinder/pkg/domain"
	"domainfinder/pkg/serrors"
	"domainfinder/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const (
	domainsTable = "domains"
	historyTable = "domain_scores"

	// advisoryLockPrefix namespaces the advisory lock keys of domain writers.
	advisoryLockPrefix = "domain:"
)

// mutableDomainColumns are overwritten when an existing domain is upserted.
var mutableDomainColumns = []string{ //nolint: gochecknoglobals
	"registered", "registered_date", "registrar", "domain_age_days", "backlink_count",
	"estimated_authority", "snapshot_count", "first_seen", "monthly_visitors", "traffic_trend",
	"age_score", "backlink_score", "authority_score", "brandability_score", "keyword_score",
	"traffic_score", "tld_score", "total_score",
	"price_low", "price_high", "roi_percent", "grade", "last_checked",
}

func keyWhere(key domain.DomainKey) goqu.Ex {
	return goqu.Ex{"domain_name": key.Name, "tld": key.TLD}
}

// LockDomain takes a transaction scoped advisory lock on key.
func (p *PgSQL) LockDomain(ctx context.Context, key domain.DomainKey) error {
	if _, ok := p.DB.(*sql.Tx); !ok {
		return storage.ErrNotInTx
	}

	if _, err := p.DB.ExecContext(ctx,
		"SELECT pg_advisory_xact_lock(hashtext($1))", advisoryLockPrefix+key.String()); err != nil {
		return wrapError(err, "could not lock domain")
	}

	return nil
}

func (p *PgSQL) UpsertDomain(ctx context.Context, rec domain.DomainRecord) (*domain.DomainRecord, bool, error) {
	var row PgDomain
	row.FromDomain(rec)

	update := goqu.Record{"updated_at": goqu.L("CURRENT_TIMESTAMP")}
	for _, col := range mutableDomainColumns {
		update[col] = goqu.L("EXCLUDED." + col)
	}

	var result pgUpsertedDomain
	found, err := p.Builder.Insert(domainsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("domain_name, tld", update)).
		Returning(goqu.Star(), goqu.L("(xmax = 0)").As("inserted")).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, false, wrapError(err, "could not upsert domain into pg")
	}
	if !found {
		return nil, false, serrors.With(serrors.ErrInternal, "upsert of %s returned no row", rec.Key)
	}

	return result.PgDomain.ToDomain(), result.Inserted, nil
}

func (p *PgSQL) domainID(ctx context.Context, key domain.DomainKey) (int64, bool, error) {
	var id int64
	found, err := p.Builder.From(domainsTable).
		Select("id").
		Where(keyWhere(key)).
		ScanValContext(ctx, &id)
	if err != nil {
		return 0, false, wrapError(err, "could not get domain id from pg")
	}

	return id, found, nil
}

func (p *PgSQL) AppendHistory(
	ctx context.Context,
	key domain.DomainKey,
	score domain.ScoreBreakdown,
	calculatedAt time.Time,
) (*domain.ScoreHistoryEntry, error) {
	id, found, err := p.domainID(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, serrors.With(serrors.ErrNotFound, "domain %s does not exist", key)
	}

	row := PgScoreHistory{
		DomainID:     id,
		PgScores:     pgScoresFromDomain(score),
		CalculatedAt: calculatedAt,
	}
	var result PgScoreHistory
	if _, err := p.Builder.Insert(historyTable).
		Rows(row).
		Returning(&PgScoreHistory{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapError(err, "could not append score history into pg")
	}

	entry := result.ToDomain(key)

	return &entry, nil
}

func (p *PgSQL) DomainByKey(ctx context.Context, key domain.DomainKey) (*domain.DomainRecord, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(keyWhere(key)).
		ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapError(err, "could not get domain from pg")
	}
	if !found {
		return nil, nil //nolint: nilnil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) TopDomains(ctx context.Context, minScore float64, limit uint) ([]domain.DomainRecord, error) {
	var rows []PgDomain
	if err := p.Builder.From(domainsTable).
		Where(goqu.I("total_score").Gte(minScore)).
		Order(goqu.I("total_score").Desc(), goqu.I("id").Asc()).
		Limit(limit).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not get top domains from pg")
	}

	out := make([]domain.DomainRecord, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) ScoreHistory(ctx context.Context, key domain.DomainKey) ([]domain.ScoreHistoryEntry, error) {
	id, found, err := p.domainID(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	var rows []PgScoreHistory
	if err := p.Builder.From(historyTable).
		Where(goqu.I("domain_id").Eq(id)).
		Order(goqu.I("calculated_at").Asc(), goqu.I("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not get score history from pg")
	}

	out := make([]domain.ScoreHistoryEntry, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain(key))
	}

	return out, nil
}
