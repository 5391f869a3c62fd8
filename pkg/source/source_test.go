package source_test

import (
	"context"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/serrors"
	"domainfinder/pkg/source"
	mocksource "domainfinder/pkg/source/mock"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/time/rate"
)

func TestFromError(t *testing.T) {
	res := source.FromError(source.NameRDAP, serrors.With(serrors.ErrNotFound, "gone"))
	require.Equal(t, source.StatusNotFound, res.Status)
	require.False(t, *res.Facts.Registered)
	require.NoError(t, res.Err)

	cause := serrors.With(serrors.ErrTimeout, "slow")
	res = source.FromError(source.NameRDAP, cause)
	require.Equal(t, source.StatusUnavailable, res.Status)
	require.ErrorIs(t, res.Err, serrors.ErrTimeout)
	require.Equal(t, source.Facts{}, res.Facts)
}

func TestAgeDays(t *testing.T) {
	reg := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, 366, source.AgeDays(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), reg))
	require.Zero(t, source.AgeDays(reg.Add(-time.Hour), reg), "future registration dates clamp to zero")
}

func TestParseDate(t *testing.T) {
	want := time.Date(2017, 6, 3, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2017-06-03T04:00:00Z",
		"2017-06-03T04:00:00.123Z",
		"2017-06-03T04:00:00+0000",
		"2017-06-03 04:00:00 UTC",
		"2017-06-03 04:00:00",
		"2017-06-03",
		"2017-06-03T04:00:00 garbage",
	} {
		t.Run(in, func(t *testing.T) {
			got, err := source.ParseDate(in)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}

	_, err := source.ParseDate("yesterday")
	require.ErrorIs(t, err, serrors.ErrParse)
}

func TestRegistration_Facts(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	facts := source.Registration{RegisteredDate: &date, Registrar: "Example"}.Facts(now)
	require.True(t, *facts.Registered)
	require.Equal(t, 366, *facts.AgeDays)
	require.Equal(t, "Example", *facts.Registrar)

	facts = source.Registration{}.Facts(now)
	require.True(t, *facts.Registered)
	require.Nil(t, facts.AgeDays)
	require.Nil(t, facts.Registrar)
}

func TestRateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	key := domain.NewDomainKey("aitools", "io")

	f := mocksource.NewMockFetcher(ctrl)
	f.EXPECT().Name().Return(source.NameWayback).AnyTimes()
	f.EXPECT().Fetch(gomock.Any(), key).Return(source.Found(source.NameWayback, source.Facts{})).Times(1)

	limited := source.RateLimited(f, rate.NewLimiter(rate.Every(time.Hour), 1))

	res := limited.Fetch(context.Background(), key)
	require.Equal(t, source.StatusFound, res.Status)

	// The bucket is empty and the next token is an hour away.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	res = limited.Fetch(ctx, key)
	require.Equal(t, source.StatusUnavailable, res.Status)
	require.Equal(t, source.NameWayback, res.Source)
	require.ErrorIs(t, res.Err, serrors.ErrRateLimited)
}

func TestRateLimited_disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	f := mocksource.NewMockFetcher(ctrl)

	require.Nil(t, source.NewLimiter(0))
	require.Same(t, source.Fetcher(f), source.RateLimited(f, source.NewLimiter(0)))
	require.NotNil(t, source.NewLimiter(2.5))
}
