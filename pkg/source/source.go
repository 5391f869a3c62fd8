// Package source defines the per-domain fact sources used by enrichment and
// the tagged result every fetch produces.
package source

import (
	"context"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/serrors"
	"errors"
	"time"
)

// Names of the built-in sources.
const (
	NameRDAP    = "rdap"
	NameWhois   = "whois"
	NameWayback = "wayback"
	NameListing = "listing"
)

const hoursPerDay = 24

// Status tags a Result.
type Status int

const (
	// StatusUnavailable means the source could not answer: timeout, transport
	// failure, rate limit or an unparsable response. It carries no facts.
	StatusUnavailable Status = iota
	// StatusFound means the source answered with (possibly partial) facts.
	StatusFound
	// StatusNotFound is an authoritative negative answer, e.g. RDAP 404.
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	default:
		return "unavailable"
	}
}

// Facts are the values a single source can report. A nil field means the
// source said nothing about it.
type Facts struct {
	Registered      *bool
	RegisteredDate  *time.Time
	Registrar       *string
	AgeDays         *int
	BacklinkCount   *int
	SnapshotCount   *int
	FirstSeen       *time.Time
	MonthlyVisitors *int64
}

// Result is the tagged outcome of one fetch.
type Result struct {
	Source string
	Status Status
	Facts  Facts
	// Err is set for StatusUnavailable.
	Err error
}

// Found tags facts reported by src.
func Found(src string, facts Facts) Result {
	return Result{Source: src, Status: StatusFound, Facts: facts}
}

// NotFound is an authoritative "not registered" answer from src.
func NotFound(src string) Result {
	registered := false

	return Result{Source: src, Status: StatusNotFound, Facts: Facts{Registered: &registered}}
}

// Unavailable records that src could not answer.
func Unavailable(src string, err error) Result {
	return Result{Source: src, Status: StatusUnavailable, Err: err}
}

// FromError converts a lookup error into NotFound or Unavailable.
func FromError(src string, err error) Result {
	if errors.Is(err, serrors.ErrNotFound) {
		return NotFound(src)
	}

	return Unavailable(src, err)
}

// Fetcher retrieves partial facts about one domain. Implementations never
// retry and never panic on bad upstream data; every failure is folded into the
// returned Result.
//
//go:generate mockgen -package mocksource -source=source.go -destination=mock/mocksource.go *
type Fetcher interface {
	// Name identifies the source in logs, metrics and results.
	Name() string
	// Fetch looks key up. ctx carries the per-call timeout.
	Fetch(ctx context.Context, key domain.DomainKey) Result
}

// Clock returns the current time. Fetchers that derive ages take one so tests
// can pin "now".
type Clock func() time.Time

// AgeDays returns the whole days elapsed between registered and now, never
// negative.
func AgeDays(now, registered time.Time) int {
	days := int(now.Sub(registered).Hours() / hoursPerDay)

	return max(0, days)
}

// ParseDate accepts the date layouts returned by RDAP and WHOIS services. Only
// the calendar date is kept.
func ParseDate(s string) (time.Time, error) {
	layouts := []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05Z0700", "2006-01-02 15:04:05 MST", time.DateTime, time.DateOnly}
	if len(s) >= len(time.DateOnly) {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				t = t.UTC()

				return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
			}
		}
		if t, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)]); err == nil {
			return t, nil
		}
	}

	return time.Time{}, serrors.With(serrors.ErrParse, "unrecognized date %q", s)
}

// Registration is what a registry-style source (RDAP, WHOIS) reports for a
// registered domain.
type Registration struct {
	RegisteredDate *time.Time
	Registrar      string
}

// Facts converts r into source facts, deriving the age from now.
func (r Registration) Facts(now time.Time) Facts {
	registered := true
	facts := Facts{Registered: &registered}
	if r.RegisteredDate != nil {
		date := *r.RegisteredDate
		age := AgeDays(now, date)
		facts.RegisteredDate = &date
		facts.AgeDays = &age
	}
	if r.Registrar != "" {
		registrar := r.Registrar
		facts.Registrar = &registrar
	}

	return facts
}
