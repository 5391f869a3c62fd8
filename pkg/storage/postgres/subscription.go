package postgres

import (
	"context"

	"domainfinder/pkg/domain"
	"domainfinder/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
)

const subscriptionsTable = "alert_subscriptions"

func (p *PgSQL) ActiveSubscriptions(ctx context.Context) ([]domain.AlertSubscription, error) {
	var rows []PgSubscription
	if err := p.Builder.From(subscriptionsTable).
		Where(goqu.I("enabled").IsTrue()).
		Order(goqu.I("id").Asc()).
		ScanStructsContext(ctx, &rows); err != nil {
		return nil, wrapError(err, "could not get active subscriptions from pg")
	}

	out := make([]domain.AlertSubscription, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreSubscription(ctx context.Context, sub domain.AlertSubscription) (*domain.AlertSubscription, error) {
	if sub.Email == "" && sub.WebhookURL == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "subscription needs an email or a webhook url")
	}

	var row PgSubscription
	row.FromDomain(sub)

	var result PgSubscription
	if _, err := p.Builder.Insert(subscriptionsTable).
		Rows(row).
		Returning(&PgSubscription{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapError(err, "could not store subscription into pg")
	}

	stored := result.ToDomain()

	return &stored, nil
}
