package alert

import (
	"cmp"
	"domainfinder/pkg/domain"
	"slices"
)

// DefaultCap is the maximum number of domains sent to one subscription.
const DefaultCap = 20

// Filter returns the records matching sub, best total score first, capped at
// limit. Ties keep a stable order by domain name.
func Filter(sub domain.AlertSubscription, records []domain.DomainRecord, limit int) []domain.DomainRecord {
	matched := make([]domain.DomainRecord, 0, len(records))
	for _, rec := range records {
		if sub.Matches(rec) {
			matched = append(matched, rec)
		}
	}

	slices.SortStableFunc(matched, func(a, b domain.DomainRecord) int {
		if c := cmp.Compare(b.Score.TotalScore, a.Score.TotalScore); c != 0 {
			return c
		}

		return cmp.Compare(a.Key.String(), b.Key.String())
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}

	return matched
}
