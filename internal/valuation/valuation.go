// Package valuation maps a total score to a letter grade, a resale price band
// and an ROI estimate.
package valuation

import "domainfinder/pkg/domain"

// DefaultPurchasePrice is assumed when the listing carries no usable price.
const DefaultPurchasePrice = 50.0

type band struct {
	minScore  float64
	grade     domain.Grade
	priceLow  float64
	priceHigh float64
}

// bands are ordered from the highest threshold down; the last one matches
// every score.
var bands = []band{ //nolint: gochecknoglobals
	{minScore: 85, grade: domain.GradeA, priceLow: 10000, priceHigh: 100000},
	{minScore: 70, grade: domain.GradeB, priceLow: 2000, priceHigh: 15000},
	{minScore: 55, grade: domain.GradeC, priceLow: 500, priceHigh: 3000},
	{minScore: 40, grade: domain.GradeD, priceLow: 100, priceHigh: 600},
	{minScore: 25, grade: domain.GradeE, priceLow: 20, priceHigh: 150},
	{minScore: 0, grade: domain.GradeF, priceLow: 5, priceHigh: 25},
}

func bandFor(totalScore float64) band {
	for _, b := range bands {
		if totalScore >= b.minScore {
			return b
		}
	}

	return bands[len(bands)-1]
}

// GradeFor returns the letter grade of totalScore.
func GradeFor(totalScore float64) domain.Grade {
	return bandFor(totalScore).grade
}

// PriceRange returns the estimated resale band of totalScore.
func PriceRange(totalScore float64) (low, high float64) {
	b := bandFor(totalScore)

	return b.priceLow, b.priceHigh
}

// ROI is the percentage return of buying at purchasePrice and selling at
// priceHigh. A non-positive purchase price falls back to DefaultPurchasePrice.
func ROI(priceHigh, purchasePrice float64) float64 {
	if purchasePrice <= 0 {
		purchasePrice = DefaultPurchasePrice
	}

	return (priceHigh - purchasePrice) / purchasePrice * 100
}

// Estimator values scores against a configurable default purchase price.
type Estimator struct {
	defaultPurchasePrice float64
}

// NewEstimator returns an Estimator. A non-positive default is replaced by
// DefaultPurchasePrice.
func NewEstimator(defaultPurchasePrice float64) *Estimator {
	if defaultPurchasePrice <= 0 {
		defaultPurchasePrice = DefaultPurchasePrice
	}

	return &Estimator{defaultPurchasePrice: defaultPurchasePrice}
}

// Estimate values totalScore. purchasePrice is the listing price of the
// domain; zero or negative means unknown.
func (e *Estimator) Estimate(totalScore, purchasePrice float64) domain.ValuationEstimate {
	if purchasePrice <= 0 {
		purchasePrice = e.defaultPurchasePrice
	}
	b := bandFor(totalScore)

	return domain.ValuationEstimate{
		PriceLow:   b.priceLow,
		PriceHigh:  b.priceHigh,
		ROIPercent: ROI(b.priceHigh, purchasePrice),
		Grade:      b.grade,
	}
}
