package enrichment_test

import (
	"domainfinder/internal/enrichment"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/serrors"
	"domainfinder/pkg/source"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestMerge_NotFoundBeatsUnavailable(t *testing.T) {
	got := enrichment.Merge(
		source.NotFound(source.NameRDAP),
		source.Unavailable(source.NameWhois, serrors.KindOnly(serrors.ErrTimeout)),
		source.Found(source.NameWayback, source.Facts{SnapshotCount: ptr(0)}),
	)

	require.False(t, got.Registered)
	require.Nil(t, got.RegisteredDate)
	require.Zero(t, got.AgeDays)
	require.Zero(t, got.SnapshotCount)
}

func TestMerge_Priority(t *testing.T) {
	rdapDate := time.Date(2017, 6, 3, 0, 0, 0, 0, time.UTC)
	whoisDate := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	firstSeen := time.Date(2001, 3, 4, 0, 0, 0, 0, time.UTC)

	got := enrichment.Merge(
		source.Found(source.NameRDAP, source.Facts{Registered: ptr(true), RegisteredDate: &rdapDate, AgeDays: ptr(2920)}),
		source.Found(source.NameWhois, source.Facts{
			Registered: ptr(true), RegisteredDate: &whoisDate, AgeDays: ptr(3300), Registrar: ptr("Whois Registrar"),
		}),
		source.Found(source.NameWayback, source.Facts{SnapshotCount: ptr(120), FirstSeen: &firstSeen}),
		enrichment.ListingResult(domain.Candidate{ProvisionalAgeDays: ptr(9999), ProvisionalBacklinks: ptr(45)}),
	)

	require.True(t, got.Registered)
	require.Equal(t, rdapDate, *got.RegisteredDate, "higher priority source wins")
	require.Equal(t, 2920, got.AgeDays)
	require.Equal(t, "Whois Registrar", got.Registrar, "lower priority fills empty fields")
	require.Equal(t, 120, got.SnapshotCount)
	require.Equal(t, firstSeen, *got.FirstSeen)
	require.Equal(t, 45, got.BacklinkCount, "listing supplies what nobody else did")
	require.NotNil(t, got.EstimatedAuthority)
	require.Equal(t, 20, *got.EstimatedAuthority)
}

func TestMerge_UnavailableRegistryFallsBackToWhois(t *testing.T) {
	got := enrichment.Merge(
		source.Unavailable(source.NameRDAP, serrors.KindOnly(serrors.ErrUnavailable)),
		source.Found(source.NameWhois, source.Facts{Registered: ptr(true), AgeDays: ptr(400)}),
	)

	require.True(t, got.Registered)
	require.Equal(t, 400, got.AgeDays)
}

func TestMerge_AllUnavailable(t *testing.T) {
	got := enrichment.Merge(
		source.Unavailable(source.NameRDAP, serrors.KindOnly(serrors.ErrTimeout)),
		source.Unavailable(source.NameWhois, serrors.KindOnly(serrors.ErrTimeout)),
		source.Unavailable(source.NameWayback, serrors.KindOnly(serrors.ErrTimeout)),
	)

	require.Equal(t, domain.EnrichmentResult{}, got)
}

func TestMerge_ListingTrafficAndClamping(t *testing.T) {
	got := enrichment.Merge(
		source.Found(source.NameWayback, source.Facts{SnapshotCount: ptr(-3)}),
		enrichment.ListingResult(domain.Candidate{
			ProvisionalAgeDays:   ptr(-10),
			ProvisionalBacklinks: ptr(0),
			ProvisionalTraffic:   ptr(int64(1500)),
		}),
	)

	require.Zero(t, got.SnapshotCount)
	require.Zero(t, got.AgeDays)
	require.Zero(t, got.BacklinkCount)
	require.Nil(t, got.EstimatedAuthority, "no authority without backlinks")
	require.Equal(t, &domain.Traffic{MonthlyVisitors: 1500}, got.Traffic)
}
