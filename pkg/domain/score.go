package domain

import (
	"math"
	"time"
)

// Upper bounds of every sub-score of a ScoreBreakdown.
const (
	MaxAgeScore          = 20.0
	MaxBacklinkScore     = 25.0
	MaxAuthorityScore    = 20.0
	MaxBrandabilityScore = 15.0
	MaxKeywordScore      = 15.0
	MaxTrafficScore      = 5.0
	MaxTLDScore          = 25.0
	MaxTotalScore        = 100.0
)

// ScoreBreakdown holds every sub-score at full precision. TLDScore is reported
// for information only and is not part of TotalScore.
type ScoreBreakdown struct {
	AgeScore          float64 `json:"ageScore"`
	BacklinkScore     float64 `json:"backlinkScore"`
	AuthorityScore    float64 `json:"authorityScore"`
	BrandabilityScore float64 `json:"brandabilityScore"`
	KeywordScore      float64 `json:"keywordScore"`
	TrafficScore      float64 `json:"trafficScore"`
	TLDScore          float64 `json:"tldScore"`
	TotalScore        float64 `json:"totalScore"`
}

// Rounded returns a copy with every component rounded to two decimals. It is
// meant for display; calculations must keep using the receiver.
func (s ScoreBreakdown) Rounded() ScoreBreakdown {
	return ScoreBreakdown{
		AgeScore:          Round2(s.AgeScore),
		BacklinkScore:     Round2(s.BacklinkScore),
		AuthorityScore:    Round2(s.AuthorityScore),
		BrandabilityScore: Round2(s.BrandabilityScore),
		KeywordScore:      Round2(s.KeywordScore),
		TrafficScore:      Round2(s.TrafficScore),
		TLDScore:          Round2(s.TLDScore),
		TotalScore:        Round2(s.TotalScore),
	}
}

// Round2 rounds v half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Grade is the letter band a total score falls into.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
)

// ValuationEstimate is the price band and ROI derived from a total score.
type ValuationEstimate struct {
	// PriceLow is the lower bound of the estimated resale value.
	PriceLow float64 `json:"priceLow"`
	// PriceHigh is the upper bound of the estimated resale value.
	PriceHigh float64 `json:"priceHigh"`
	// ROIPercent is the return on the purchase price if sold at PriceHigh.
	ROIPercent float64 `json:"roiPercent"`
	// Grade is the letter band of the total score.
	Grade Grade `json:"grade"`
}

// DomainRecord is the current, mutable projection of a domain.
type DomainRecord struct {
	Key         DomainKey         `json:"key"`
	Enrichment  EnrichmentResult  `json:"enrichment"`
	Score       ScoreBreakdown    `json:"score"`
	Valuation   ValuationEstimate `json:"valuation"`
	LastChecked time.Time         `json:"lastChecked"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ScoreHistoryEntry is an immutable record of one scoring run.
type ScoreHistoryEntry struct {
	ID           int64          `json:"id"`
	Key          DomainKey      `json:"key"`
	Score        ScoreBreakdown `json:"score"`
	CalculatedAt time.Time      `json:"calculatedAt"`
}
