// Package sample provides a fixed listing of expired domains for local runs
// and demos that should not hit a paid scraper.
package sample

import (
	"cmp"
	"context"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/listing"
	"domainfinder/pkg/logger"
	"slices"
	"strings"

	"go.uber.org/zap"
)

type entry struct {
	name      string
	tld       string
	backlinks int
	ageDays   int
	price     float64
}

var entries = []entry{ //nolint: gochecknoglobals
	{"techstartup", "com", 45, 2920, 79},
	{"aitools", "io", 78, 1095, 89},
	{"cryptoanalysis", "com", 34, 4380, 199},
	{"dataservices", "net", 56, 3285, 69},
	{"digitalmarketing", "co", 92, 2555, 129},
	{"cloudservices", "com", 67, 5475, 149},
	{"webdevelopment", "app", 23, 730, 49},
	{"investmenttools", "com", 89, 3650, 299},
	{"financeplatform", "io", 102, 5840, 349},
	{"tradinganalysis", "com", 156, 7300, 599},
	{"websolutions", "dev", 45, 1825, 99},
	{"smartinvest", "ai", 78, 2555, 179},
}

// Provider serves the built-in sample list.
type Provider struct{}

// New returns a Provider.
func New() *Provider { return &Provider{} }

// Fetch implements listing.Provider. Without a sort field the list keeps its
// built-in order.
func (p *Provider) Fetch(ctx context.Context, limit int, sort domain.SortCriteria) ([]domain.Candidate, error) {
	list := slices.Clone(entries)

	var key func(e entry) float64
	switch sort.By {
	case listing.SortByPrice:
		key = func(e entry) float64 { return e.price }
	case listing.SortByAge:
		key = func(e entry) float64 { return float64(e.ageDays) }
	case listing.SortByBacklinks:
		key = func(e entry) float64 { return float64(e.backlinks) }
	}
	if key != nil {
		desc := strings.EqualFold(sort.Order, listing.SortDesc)
		slices.SortStableFunc(list, func(a, b entry) int {
			if desc {
				return cmp.Compare(key(b), key(a))
			}

			return cmp.Compare(key(a), key(b))
		})
	}

	list = list[:min(listing.ClampLimit(limit), len(list))]
	out := make([]domain.Candidate, 0, len(list))
	for _, e := range list {
		age, links := e.ageDays, e.backlinks
		out = append(out, domain.Candidate{
			Key:                  domain.NewDomainKey(e.name, e.tld),
			Price:                e.price,
			ProvisionalAgeDays:   &age,
			ProvisionalBacklinks: &links,
		})
	}
	logger.Info(ctx, "using sample listing", zap.Int("limit", limit), zap.Int("candidates", len(out)))

	return out, nil
}

// Ensure Provider conforms to the listing.Provider interface at compile time.
var _ listing.Provider = (*Provider)(nil)
