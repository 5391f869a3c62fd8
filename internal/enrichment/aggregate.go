// Package enrichment fans a domain out to every configured source and merges
// the partial answers into one EnrichmentResult.
package enrichment

import (
	"domainfinder/internal/scoring"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/source"
)

// ListingResult turns the provisional values of a listing candidate into a
// source result so they can take part in the merge at the lowest priority.
func ListingResult(c domain.Candidate) source.Result {
	facts := source.Facts{
		AgeDays:       c.ProvisionalAgeDays,
		BacklinkCount: c.ProvisionalBacklinks,
	}
	if c.ProvisionalTraffic != nil {
		visitors := *c.ProvisionalTraffic
		facts.MonthlyVisitors = &visitors
	}

	return source.Found(source.NameListing, facts)
}

// Merge combines results ordered from the highest to the lowest priority.
// For every field the first result that supplies a value wins; unavailable
// results supply nothing. The estimated authority is derived from the merged
// backlink count. Merge is deterministic for a given input order.
func Merge(results ...source.Result) domain.EnrichmentResult {
	var merged source.Facts
	for _, r := range results {
		if r.Status == source.StatusUnavailable {
			continue
		}
		f := r.Facts
		merged.Registered = first(merged.Registered, f.Registered)
		merged.RegisteredDate = first(merged.RegisteredDate, f.RegisteredDate)
		merged.Registrar = first(merged.Registrar, f.Registrar)
		merged.AgeDays = first(merged.AgeDays, f.AgeDays)
		merged.BacklinkCount = first(merged.BacklinkCount, f.BacklinkCount)
		merged.SnapshotCount = first(merged.SnapshotCount, f.SnapshotCount)
		merged.FirstSeen = first(merged.FirstSeen, f.FirstSeen)
		merged.MonthlyVisitors = first(merged.MonthlyVisitors, f.MonthlyVisitors)
	}

	var out domain.EnrichmentResult
	if merged.Registered != nil {
		out.Registered = *merged.Registered
	}
	if merged.RegisteredDate != nil {
		d := *merged.RegisteredDate
		out.RegisteredDate = &d
	}
	if merged.Registrar != nil {
		out.Registrar = *merged.Registrar
	}
	if merged.AgeDays != nil {
		out.AgeDays = max(0, *merged.AgeDays)
	}
	if merged.BacklinkCount != nil {
		out.BacklinkCount = max(0, *merged.BacklinkCount)
	}
	if merged.SnapshotCount != nil {
		out.SnapshotCount = max(0, *merged.SnapshotCount)
	}
	if merged.FirstSeen != nil {
		d := *merged.FirstSeen
		out.FirstSeen = &d
	}
	if merged.MonthlyVisitors != nil {
		out.Traffic = &domain.Traffic{MonthlyVisitors: max(0, *merged.MonthlyVisitors)}
	}
	out.EstimatedAuthority = scoring.EstimateAuthority(out.BacklinkCount)

	return out
}

func first[T any](current, candidate *T) *T {
	if current != nil {
		return current
	}

	return candidate
}
