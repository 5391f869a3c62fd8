// Package domain contains the core entities of the domain valuation pipeline:
// domain keys, enrichment facts, score breakdowns, valuations, persisted
// records and alert subscriptions. The types are free of infrastructure
// concerns so they can be shared by fetchers, storage and notifiers.
package domain
