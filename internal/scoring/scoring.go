// Package scoring computes the 0-100 quality score of a domain from its
// enrichment facts and from lexical features of the name. Every function in
// this package is pure and deterministic.
//
// Factors and their caps:
//   - age (20): logarithmic in years since registration
//   - backlinks (25): logarithmic in the backlink count
//   - authority (20): linear in the estimated authority
//   - brandability (15): length, hyphens, digits, vowels, repetition
//   - keywords (15): valuable and harmful substrings
//   - traffic (5): monthly visitors and trend
//
// The TLD score is reported alongside but never added to the total.
package scoring

import (
	"domainfinder/pkg/domain"
	"math"
	"strings"
	"unicode"
)

const daysPerYear = 365.25

type keyword struct {
	term  string
	value float64
}

// valuableKeywords add to the keyword score when contained in the name.
var valuableKeywords = []keyword{ //nolint: gochecknoglobals
	{"tech", 3}, {"ai", 4}, {"app", 2}, {"cloud", 3}, {"data", 2}, {"web", 2}, {"digital", 2},
	{"invest", 3}, {"finance", 3}, {"money", 2}, {"crypto", 3}, {"nft", 2}, {"forex", 2},
	{"trade", 2}, {"shop", 2}, {"store", 2}, {"market", 2}, {"sale", 1}, {"buy", 1},
	{"pro", 1}, {"hub", 1}, {"labs", 1}, {"io", 2},
	{"studio", 1}, {"group", 1}, {"systems", 1}, {"solutions", 1}, {"platform", 2},
	{"services", 1}, {"works", 1}, {"tools", 1}, {"gear", 1}, {"smart", 2},
}

// harmfulKeywords subtract from the keyword score when contained in the name.
var harmfulKeywords = []keyword{ //nolint: gochecknoglobals
	{"test", -5}, {"demo", -5}, {"xxx", -10}, {"porn", -10}, {"adult", -10},
	{"spam", -10}, {"click", -2}, {"tmp", -10}, {"temp", -10},
}

// tldValues is the fixed TLD lookup table. Unknown TLDs score 0.
var tldValues = map[string]float64{ //nolint: gochecknoglobals
	"com":     25,
	"io":      20,
	"ai":      18,
	"co":      15,
	"dev":     15,
	"app":     12,
	"tech":    12,
	"net":     10,
	"org":     10,
	"online":  5,
	"site":    5,
	"website": 5,
	"info":    3,
	"biz":     3,
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// AgeScore scores the registration age. 1 year is about 2.3 points, 10 years
// about 7.8 and the cap of 20 is reached after roughly 460 years.
func AgeScore(ageDays int) float64 {
	if ageDays <= 0 {
		return 0
	}
	years := float64(ageDays) / daysPerYear

	return clamp(math.Log10(years+1)*7.5, 0, domain.MaxAgeScore)
}

// BacklinkScore scores the backlink count: 10 links is about 8.3 points, 100
// about 16 and the cap of 25 is reached after roughly 1330 links.
func BacklinkScore(backlinks int) float64 {
	if backlinks <= 0 {
		return 0
	}

	return clamp(math.Log10(float64(backlinks)+1)*8, 0, domain.MaxBacklinkScore)
}

// AuthorityScore scores the estimated authority linearly; DA 50 and above hit
// the cap. A missing authority scores 0.
func AuthorityScore(authority *int) float64 {
	if authority == nil || *authority <= 0 {
		return 0
	}

	return clamp(float64(*authority)*0.4, 0, domain.MaxAuthorityScore)
}

// TLDScore looks the TLD up in the fixed table. A leading dot is accepted.
func TLDScore(tld string) float64 {
	return tldValues[strings.TrimPrefix(strings.ToLower(tld), ".")]
}

// BrandabilityScore rates how memorable and pronounceable name is.
func BrandabilityScore(name string) float64 {
	name = strings.ToLower(name)
	runes := []rune(name)
	length := len(runes)

	var score float64
	switch {
	case length >= 6 && length <= 12:
		score += 5
	case length >= 4 && length < 6:
		score += 3
	case length > 12:
		score++
	}

	if strings.Contains(name, "-") {
		score -= 3
	}
	if strings.IndexFunc(name, unicode.IsDigit) >= 0 {
		score -= 2
	}

	if length > 0 {
		vowels := 0
		for _, r := range runes {
			if strings.ContainsRune("aeiou", r) {
				vowels++
			}
		}
		ratio := float64(vowels) / float64(length)
		if ratio >= 0.3 && ratio <= 0.5 {
			score += 3
		}
	}

	seen := make(map[rune]struct{}, length)
	for _, r := range runes {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		if strings.Contains(name, strings.Repeat(string(r), 3)) {
			score -= 2
		}
	}

	return clamp(score, 0, domain.MaxBrandabilityScore)
}

// KeywordScore sums the values of every valuable and harmful keyword found in
// name. Each keyword counts at most once.
func KeywordScore(name string) float64 {
	name = strings.ToLower(name)

	var score float64
	for _, kw := range valuableKeywords {
		if strings.Contains(name, kw.term) {
			score += kw.value
		}
	}
	for _, kw := range harmfulKeywords {
		if strings.Contains(name, kw.term) {
			score += kw.value
		}
	}

	return clamp(score, 0, domain.MaxKeywordScore)
}

// TrafficScore scores the visitor signal. A nil signal scores 0.
func TrafficScore(traffic *domain.Traffic) float64 {
	if traffic == nil {
		return 0
	}

	var score float64
	switch {
	case traffic.MonthlyVisitors > 10000:
		score += 5
	case traffic.MonthlyVisitors > 1000:
		score += 3
	case traffic.MonthlyVisitors > 100:
		score++
	}
	if strings.EqualFold(traffic.Trend, domain.TrafficTrendIncreasing) {
		score += 2
	}

	return clamp(score, 0, domain.MaxTrafficScore)
}

// Score computes the full breakdown for key given its enrichment facts.
func Score(key domain.DomainKey, e domain.EnrichmentResult) domain.ScoreBreakdown {
	b := domain.ScoreBreakdown{
		AgeScore:          AgeScore(e.AgeDays),
		BacklinkScore:     BacklinkScore(e.BacklinkCount),
		AuthorityScore:    AuthorityScore(e.EstimatedAuthority),
		BrandabilityScore: BrandabilityScore(key.Name),
		KeywordScore:      KeywordScore(key.Name),
		TrafficScore:      TrafficScore(e.Traffic),
		TLDScore:          TLDScore(key.TLD),
	}
	b.TotalScore = clamp(
		b.AgeScore+b.BacklinkScore+b.AuthorityScore+b.BrandabilityScore+b.KeywordScore+b.TrafficScore,
		0, domain.MaxTotalScore)

	return b
}

// EstimateAuthority maps a backlink count to a rough 0-100 authority proxy.
// It returns nil when there are no backlinks to estimate from.
func EstimateAuthority(backlinks int) *int {
	var da int
	switch {
	case backlinks <= 0:
		return nil
	case backlinks < 5:
		da = 5
	case backlinks < 10:
		da = 10
	case backlinks < 25:
		da = 15
	case backlinks < 50:
		da = 20
	case backlinks < 100:
		da = 30
	case backlinks < 250:
		da = 40
	case backlinks < 500:
		da = 50
	case backlinks < 1000:
		da = 60
	case backlinks < 5000:
		da = 70
	default:
		da = min(100, 75+backlinks/10000)
	}

	return &da
}
