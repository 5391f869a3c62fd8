package valuation_test

import (
	"domainfinder/internal/valuation"
	"domainfinder/pkg/domain"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGradeFor(t *testing.T) {
	tests := []struct {
		score float64
		want  domain.Grade
	}{
		{0, domain.GradeF},
		{24.99, domain.GradeF},
		{25, domain.GradeE},
		{39.99, domain.GradeE},
		{40, domain.GradeD},
		{54.99, domain.GradeD},
		{55, domain.GradeC},
		{69.99, domain.GradeC},
		{70, domain.GradeB},
		{84.99, domain.GradeB},
		{85, domain.GradeA},
		{100, domain.GradeA},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%.2f", tt.score), func(t *testing.T) {
			require.Equal(t, tt.want, valuation.GradeFor(tt.score))
		})
	}
}

func TestPriceRange_Ordered(t *testing.T) {
	prevHigh := 0.0
	for score := 0.0; score <= 100; score += 0.5 {
		low, high := valuation.PriceRange(score)
		require.GreaterOrEqual(t, low, 0.0)
		require.LessOrEqual(t, low, high, "score %.1f", score)
		require.GreaterOrEqual(t, high, prevHigh, "bands grow with the score")
		prevHigh = high
	}
}

func TestROI(t *testing.T) {
	require.InDelta(t, 1100.0, valuation.ROI(600, 50), 1e-9)
	require.InDelta(t, 1100.0, valuation.ROI(600, 0), 1e-9, "unknown price uses the default")
	require.InDelta(t, -50.0, valuation.ROI(25, 50), 1e-9)
	require.InDelta(t, 0.0, valuation.ROI(150, 150), 1e-9)
}

func TestEstimator_Estimate(t *testing.T) {
	e := valuation.NewEstimator(0)

	got := e.Estimate(42.46, 0)
	require.Equal(t, domain.ValuationEstimate{
		PriceLow:   100,
		PriceHigh:  600,
		ROIPercent: 1100,
		Grade:      domain.GradeD,
	}, got)

	got = e.Estimate(8, 0)
	require.Equal(t, domain.GradeF, got.Grade)
	require.InDelta(t, -50.0, got.ROIPercent, 1e-9)

	got = e.Estimate(90, 20000)
	require.Equal(t, domain.GradeA, got.Grade)
	require.InDelta(t, 400.0, got.ROIPercent, 1e-9)

	custom := valuation.NewEstimator(100)
	require.InDelta(t, 500.0, custom.Estimate(40, 0).ROIPercent, 1e-9)
}
