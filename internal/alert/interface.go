package alert

import (
	"context"
	"domainfinder/pkg/domain"
)

//go:generate mockgen -package mockalert -source=interface.go -destination=mock/mockalert.go *
type Dispatcher interface {
	// Dispatch sends every subscription the records matching its thresholds.
	// Channel failures never abort other sends; they are collected in the
	// returned Summary.
	Dispatch(ctx context.Context, subs []domain.AlertSubscription, records []domain.DomainRecord) Summary
}
