package main

import (
	"context"
	"domainfinder/internal/alert"
	"domainfinder/internal/config"
	"domainfinder/internal/enrichment"
	"domainfinder/internal/pipeline"
	"domainfinder/pkg/listing"
	"domainfinder/pkg/listing/apify"
	"domainfinder/pkg/listing/sample"
	"domainfinder/pkg/logger"
	"domainfinder/pkg/metrics"
	"domainfinder/pkg/notify"
	"domainfinder/pkg/notify/sendgrid"
	"domainfinder/pkg/notify/webhook"
	"domainfinder/pkg/source"
	"domainfinder/pkg/source/rdap"
	"domainfinder/pkg/source/wayback"
	"domainfinder/pkg/source/whoisxml"
	"domainfinder/pkg/storage"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// newFetchers returns the enrichment sources in merge priority order. The
// WHOIS source is only enabled with an API key.
func newFetchers(ctx context.Context, cfg *config.Config, httpClient *http.Client) []source.Fetcher {
	src := cfg.Sources
	fetchers := []source.Fetcher{
		source.RateLimited(rdap.New(httpClient, rdap.WithBaseURL(src.RDAP.URL)),
			source.NewLimiter(src.RDAP.RatePerSecond)),
	}
	if src.Whois.APIKey != "" {
		fetchers = append(fetchers, source.RateLimited(
			whoisxml.New(httpClient, src.Whois.APIKey, whoisxml.WithBaseURL(src.Whois.URL)),
			source.NewLimiter(src.Whois.RatePerSecond)))
	} else {
		logger.Info(ctx, "whois api key not set, whois source disabled")
	}
	fetchers = append(fetchers, source.RateLimited(
		wayback.New(httpClient, wayback.WithBaseURL(src.Wayback.URL), wayback.WithMaxCaptures(src.Wayback.MaxCaptures)),
		source.NewLimiter(src.Wayback.RatePerSecond)))

	return fetchers
}

func newListing(cfg *config.Config, httpClient *http.Client) (listing.Provider, error) {
	switch cfg.Listing.Provider {
	case "apify":
		a := cfg.Listing.Apify
		if a.Token == "" {
			return nil, errors.New("listing provider apify requires a token")
		}

		return apify.New(httpClient, a.Token,
			apify.WithBaseURL(a.URL),
			apify.WithActor(a.Actor),
			apify.WithPolling(a.PollInterval, a.RunTimeout)), nil
	case "sample", "":
		return sample.New(), nil
	default:
		return nil, fmt.Errorf("unknown listing provider %q", cfg.Listing.Provider)
	}
}

// newDispatcher wires the alert channels. Email is only enabled with a
// SendGrid API key.
func newDispatcher(ctx context.Context, cfg *config.Config, m *metrics.Metrics) alert.Dispatcher {
	httpClient := &http.Client{Timeout: cfg.Notify.Timeout}

	var email notify.EmailSender
	if sg := cfg.Notify.SendGrid; sg.APIKey != "" {
		email = sendgrid.New(httpClient, sg.APIKey, sg.From, sg.URL)
	} else {
		logger.Info(ctx, "sendgrid api key not set, email alerts disabled")
	}

	return alert.New(email, webhook.New(httpClient), m, alert.NewOptions(cfg))
}

// newPipeline builds a batch runner from cfg.
func newPipeline(ctx context.Context, cfg *config.Config, strg storage.Storage, m *metrics.Metrics) (pipeline.Runner, error) {
	// each call is bounded by its context
	httpClient := &http.Client{}

	provider, err := newListing(cfg, httpClient)
	if err != nil {
		return nil, err
	}

	enricher := enrichment.New(newFetchers(ctx, cfg, httpClient),
		enrichment.WithTimeout(cfg.Pipeline.FetchTimeout),
		enrichment.WithMetrics(m))

	logger.Info(ctx, "pipeline configured",
		zap.String("listing", cfg.Listing.Provider),
		zap.Int("concurrency", cfg.Pipeline.Concurrency),
		zap.Int("listingLimit", cfg.Pipeline.ListingLimit))

	return pipeline.New(pipeline.Deps{
		Storage:  strg,
		Listing:  provider,
		Enricher: enricher,
		Alerts:   newDispatcher(ctx, cfg, m),
		Metrics:  m,
	}, pipeline.NewOptions(cfg)), nil
}
