package storage

import (
	"context"
	"domainfinder/pkg/domain"
)

// SubscriptionStorage reads and registers alert subscriptions.
type SubscriptionStorage interface {
	// ActiveSubscriptions lists enabled subscriptions ordered by id.
	ActiveSubscriptions(ctx context.Context) ([]domain.AlertSubscription, error)
	// StoreSubscription registers a new enabled subscription.
	StoreSubscription(ctx context.Context, sub domain.AlertSubscription) (*domain.AlertSubscription, error)
}
