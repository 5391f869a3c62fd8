package enrichment_test

import (
	"context"
	"domainfinder/internal/enrichment"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/serrors"
	"domainfinder/pkg/source"
	mocksource "domainfinder/pkg/source/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEnricher_Enrich(t *testing.T) {
	ctrl := gomock.NewController(t)
	key := domain.NewDomainKey("techstartup", "com")
	regDate := time.Date(2017, 6, 3, 0, 0, 0, 0, time.UTC)

	rdap := mocksource.NewMockFetcher(ctrl)
	rdap.EXPECT().Name().Return(source.NameRDAP).AnyTimes()
	rdap.EXPECT().Fetch(gomock.Any(), key).Return(source.Found(source.NameRDAP, source.Facts{
		Registered: ptr(true), RegisteredDate: &regDate, AgeDays: ptr(2920),
	}))

	// The archive hangs until its own deadline; the other sources must not
	// be held up by it.
	wayback := mocksource.NewMockFetcher(ctrl)
	wayback.EXPECT().Name().Return(source.NameWayback).AnyTimes()
	wayback.EXPECT().Fetch(gomock.Any(), key).DoAndReturn(func(ctx context.Context, _ domain.DomainKey) source.Result {
		deadline, ok := ctx.Deadline()
		require.True(t, ok, "every call carries its own deadline")
		require.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
		<-ctx.Done()

		return source.Unavailable(source.NameWayback, serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "cdx"))
	})

	e := enrichment.New([]source.Fetcher{rdap, wayback}, enrichment.WithTimeout(50*time.Millisecond))

	start := time.Now()
	got := e.Enrich(context.Background(), domain.Candidate{Key: key, ProvisionalBacklinks: ptr(45)})
	require.Less(t, time.Since(start), time.Second)

	require.True(t, got.Registered)
	require.Equal(t, 2920, got.AgeDays)
	require.Equal(t, 45, got.BacklinkCount)
	require.Equal(t, 20, *got.EstimatedAuthority)
	require.Zero(t, got.SnapshotCount)
}

func TestEnricher_Fetch_order(t *testing.T) {
	ctrl := gomock.NewController(t)
	key := domain.NewDomainKey("aitools", "io")

	slow := mocksource.NewMockFetcher(ctrl)
	slow.EXPECT().Name().Return("slow").AnyTimes()
	slow.EXPECT().Fetch(gomock.Any(), key).DoAndReturn(func(context.Context, domain.DomainKey) source.Result {
		time.Sleep(20 * time.Millisecond)

		return source.NotFound("slow")
	})
	fast := mocksource.NewMockFetcher(ctrl)
	fast.EXPECT().Name().Return("fast").AnyTimes()
	fast.EXPECT().Fetch(gomock.Any(), key).Return(source.Result{Status: source.StatusFound})

	results := enrichment.New([]source.Fetcher{slow, fast}).Fetch(context.Background(), key)
	require.Len(t, results, 2)
	require.Equal(t, "slow", results[0].Source)
	require.Equal(t, source.StatusNotFound, results[0].Status)
	require.Equal(t, "fast", results[1].Source, "missing source names are filled in")
}

func TestEnricher_NoFetchers(t *testing.T) {
	got := enrichment.New(nil).Enrich(context.Background(), domain.Candidate{
		Key:                domain.NewDomainKey("aitools", "io"),
		ProvisionalAgeDays: ptr(1095),
	})

	require.False(t, got.Registered)
	require.Equal(t, 1095, got.AgeDays)
}
