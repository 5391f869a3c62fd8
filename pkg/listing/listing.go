// Package listing defines the batch source of candidate domains.
package listing

import (
	"context"
	"domainfinder/pkg/domain"
)

// Sort fields understood by every provider.
const (
	SortByPrice     = "price"
	SortByAge       = "age"
	SortByBacklinks = "backlinks"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// MaxLimit is the largest batch a provider returns.
const MaxLimit = 1000

// Provider fetches the ordered list of candidate domains for one batch.
//
//go:generate mockgen -package mocklisting -source=listing.go -destination=mock/mocklisting.go *
type Provider interface {
	// Fetch returns at most limit candidates ordered by sort. Malformed
	// entries are dropped by the provider; an error means the listing as a
	// whole could not be produced.
	Fetch(ctx context.Context, limit int, sort domain.SortCriteria) ([]domain.Candidate, error)
}

// ClampLimit bounds limit to [1, MaxLimit].
func ClampLimit(limit int) int {
	return min(max(limit, 1), MaxLimit)
}
