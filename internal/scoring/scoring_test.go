package scoring_test

import (
	"domainfinder/internal/scoring"
	"domainfinder/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestBacklinkScore(t *testing.T) {
	require.Zero(t, scoring.BacklinkScore(0))
	require.Zero(t, scoring.BacklinkScore(-10))
	require.InDelta(t, 16.04, scoring.BacklinkScore(100), 0.01)
	require.InDelta(t, 8.33, scoring.BacklinkScore(10), 0.01)
	require.Equal(t, domain.MaxBacklinkScore, scoring.BacklinkScore(1_000_000))
}

func TestAgeScore(t *testing.T) {
	require.Zero(t, scoring.AgeScore(0))
	require.Zero(t, scoring.AgeScore(-365))
	require.InDelta(t, 2.26, scoring.AgeScore(365), 0.01)
	require.Equal(t, domain.MaxAgeScore, scoring.AgeScore(365*1000))

	prev := 0.0
	for days := 0; days <= 365*50; days += 17 {
		s := scoring.AgeScore(days)
		require.GreaterOrEqual(t, s, prev, "age score must not decrease at %d days", days)
		prev = s
	}
}

func TestAuthorityScore(t *testing.T) {
	require.Zero(t, scoring.AuthorityScore(nil))
	require.Zero(t, scoring.AuthorityScore(intPtr(0)))
	require.Zero(t, scoring.AuthorityScore(intPtr(-4)))
	require.InDelta(t, 14.0, scoring.AuthorityScore(intPtr(35)), 1e-9)
	require.Equal(t, domain.MaxAuthorityScore, scoring.AuthorityScore(intPtr(90)))
}

func TestTLDScore(t *testing.T) {
	tests := []struct {
		tld  string
		want float64
	}{
		{"com", 25},
		{".COM", 25},
		{"io", 20},
		{"ai", 18},
		{"biz", 3},
		{"xyz", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.tld, func(t *testing.T) {
			require.InDelta(t, tt.want, scoring.TLDScore(tt.tld), 1e-9)
		})
	}
}

func TestBrandabilityScore(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "medium length without vowel balance", in: "techstartup", want: 5},
		{name: "medium length with vowel balance", in: "banana", want: 8},
		{name: "short", in: "cloud", want: 6},
		{name: "too short", in: "abc", want: 3},
		{name: "long", in: "supercalifragilistic", want: 4},
		{name: "hyphen and digit", in: "go-4u", want: 1},
		{name: "triple runs", in: "aaabbb", want: 4},
		{name: "never negative", in: "zzzz", want: 1},
		{name: "empty", in: "", want: 0},
		{name: "case insensitive", in: "BANANA", want: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoring.BrandabilityScore(tt.in)
			require.InDelta(t, tt.want, got, 1e-9)
			require.GreaterOrEqual(t, got, 0.0)
			require.LessOrEqual(t, got, domain.MaxBrandabilityScore)
		})
	}
}

func TestKeywordScore(t *testing.T) {
	require.InDelta(t, 3.0, scoring.KeywordScore("techstartup"), 1e-9)
	require.InDelta(t, 5.0, scoring.KeywordScore("aitools"), 1e-9)
	require.Zero(t, scoring.KeywordScore("testdemo"))
	require.Zero(t, scoring.KeywordScore("qwzx"))
	require.Equal(t, domain.MaxKeywordScore, scoring.KeywordScore("aitechcloudcryptoinvestfinance"))
}

func TestTrafficScore(t *testing.T) {
	require.Zero(t, scoring.TrafficScore(nil))
	require.Zero(t, scoring.TrafficScore(&domain.Traffic{MonthlyVisitors: 100}))
	require.InDelta(t, 1.0, scoring.TrafficScore(&domain.Traffic{MonthlyVisitors: 101}), 1e-9)
	require.InDelta(t, 3.0, scoring.TrafficScore(&domain.Traffic{MonthlyVisitors: 5000}), 1e-9)
	require.InDelta(t, 5.0, scoring.TrafficScore(&domain.Traffic{MonthlyVisitors: 20000}), 1e-9)
	require.Equal(t, domain.MaxTrafficScore,
		scoring.TrafficScore(&domain.Traffic{MonthlyVisitors: 20000, Trend: "Increasing"}))
	require.InDelta(t, 2.0, scoring.TrafficScore(&domain.Traffic{Trend: domain.TrafficTrendIncreasing}), 1e-9)
}

func TestScore_EstablishedDomain(t *testing.T) {
	key := domain.NewDomainKey("techstartup", "com")
	got := scoring.Score(key, domain.EnrichmentResult{
		Registered:         true,
		AgeDays:            2920,
		BacklinkCount:      45,
		EstimatedAuthority: intPtr(35),
	})

	require.InDelta(t, 7.15, got.AgeScore, 0.01)
	require.InDelta(t, 13.30, got.BacklinkScore, 0.01)
	require.InDelta(t, 14.0, got.AuthorityScore, 1e-9)
	require.InDelta(t, 5.0, got.BrandabilityScore, 1e-9)
	require.InDelta(t, 3.0, got.KeywordScore, 1e-9)
	require.Zero(t, got.TrafficScore)
	require.InDelta(t, 25.0, got.TLDScore, 1e-9)

	sum := got.AgeScore + got.BacklinkScore + got.AuthorityScore + got.BrandabilityScore +
		got.KeywordScore + got.TrafficScore
	require.InDelta(t, sum, got.TotalScore, 1e-9, "tld score is not part of the total")
	require.InDelta(t, 42.46, domain.Round2(got.TotalScore), 1e-9)
}

func TestScore_NothingKnown(t *testing.T) {
	got := scoring.Score(domain.NewDomainKey("techstartup", "com"), domain.EnrichmentResult{})

	require.Zero(t, got.AgeScore)
	require.Zero(t, got.BacklinkScore)
	require.Zero(t, got.AuthorityScore)
	require.Zero(t, got.TrafficScore)
	require.InDelta(t, 8.0, got.TotalScore, 1e-9)
	require.Less(t, got.TotalScore, 25.0)
}

func TestScore_TotalBounded(t *testing.T) {
	huge := domain.EnrichmentResult{
		AgeDays:            365 * 10000,
		BacklinkCount:      10_000_000,
		EstimatedAuthority: intPtr(100),
		Traffic:            &domain.Traffic{MonthlyVisitors: 1_000_000, Trend: domain.TrafficTrendIncreasing},
	}
	got := scoring.Score(domain.NewDomainKey("aitechcloud", "com"), huge)
	require.LessOrEqual(t, got.TotalScore, domain.MaxTotalScore)
	require.GreaterOrEqual(t, got.TotalScore, 0.0)

	got = scoring.Score(domain.NewDomainKey("xxx-porn-spam-9", "zz"), domain.EnrichmentResult{AgeDays: -10, BacklinkCount: -5})
	require.Zero(t, got.TotalScore)
}

func TestEstimateAuthority(t *testing.T) {
	require.Nil(t, scoring.EstimateAuthority(0))
	require.Nil(t, scoring.EstimateAuthority(-1))

	tests := []struct {
		backlinks int
		want      int
	}{
		{1, 5},
		{5, 10},
		{24, 15},
		{45, 20},
		{99, 30},
		{100, 40},
		{499, 50},
		{999, 60},
		{4999, 70},
		{5000, 75},
		{120_000, 87},
		{50_000_000, 100},
	}
	for _, tt := range tests {
		got := scoring.EstimateAuthority(tt.backlinks)
		require.NotNil(t, got)
		require.Equal(t, tt.want, *got, "backlinks=%d", tt.backlinks)
	}
}
