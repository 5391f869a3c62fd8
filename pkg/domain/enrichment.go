package domain

import "time"

// TrafficTrendIncreasing is the only trend value that earns a traffic bonus.
const TrafficTrendIncreasing = "increasing"

// Traffic is an optional visitor signal attached to a domain.
type Traffic struct {
	// MonthlyVisitors is the estimated number of visitors per month.
	MonthlyVisitors int64 `json:"monthlyVisitors"`
	// Trend describes the traffic direction, e.g. "increasing" or "decreasing".
	Trend string `json:"trend,omitempty"`
}

// EnrichmentResult is the merged view of everything the sources reported about
// one domain. Optional facts are pointers: nil means no source supplied the
// value, which is different from a reported zero.
type EnrichmentResult struct {
	// Registered is true when a registry or WHOIS source confirmed a registration.
	Registered bool `json:"registered"`
	// RegisteredDate is the registration (creation) date, if known.
	RegisteredDate *time.Time `json:"registeredDate,omitempty"`
	// Registrar is the sponsoring registrar name, if known.
	Registrar string `json:"registrar,omitempty"`
	// AgeDays is the domain age in days. Never negative.
	AgeDays int `json:"ageDays"`
	// BacklinkCount is the number of known backlinks. Never negative.
	BacklinkCount int `json:"backlinkCount"`
	// EstimatedAuthority is a 0-100 proxy for link authority, if it could be estimated.
	EstimatedAuthority *int `json:"estimatedAuthority,omitempty"`
	// SnapshotCount is the number of web-archive captures. Never negative. The
	// archive client requests at most a bounded number of captures (10000 by
	// default), so a busier domain saturates at that bound.
	SnapshotCount int `json:"snapshotCount"`
	// FirstSeen is the date of the oldest web-archive capture, if any.
	FirstSeen *time.Time `json:"firstSeen,omitempty"`
	// Traffic is the optional visitor signal.
	Traffic *Traffic `json:"traffic,omitempty"`
}

// Candidate is one raw entry produced by a listing provider. The provisional
// values are hints from the listing feed and are only used when no live source
// reports the same fact.
type Candidate struct {
	// Key identifies the candidate domain.
	Key DomainKey `json:"key"`
	// Price is the asking/purchase price on the listing, 0 when unknown.
	Price float64 `json:"price"`
	// ProvisionalAgeDays is the listing's age estimate in days.
	ProvisionalAgeDays *int `json:"provisionalAgeDays,omitempty"`
	// ProvisionalBacklinks is the listing's backlink estimate.
	ProvisionalBacklinks *int `json:"provisionalBacklinks,omitempty"`
	// ProvisionalTraffic is the listing's monthly traffic estimate.
	ProvisionalTraffic *int64 `json:"provisionalTraffic,omitempty"`
}

// SortCriteria tells a listing provider how to order its output.
type SortCriteria struct {
	// By is the provider-specific sort field, e.g. "price" or "age".
	By string
	// Order is either "asc" or "desc".
	Order string
}
