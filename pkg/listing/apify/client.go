// Package apify provides a listing.Provider that runs an expired-domains
// scraper actor on Apify and reads the resulting dataset.
package apify

import (
	"bytes"
	"context"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/httpx"
	"domainfinder/pkg/listing"
	"domainfinder/pkg/logger"
	"domainfinder/pkg/serrors"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the Apify v2 REST API.
	DefaultBaseURL = "https://api.apify.com/v2"
	// DefaultActor scrapes ExpiredDomains.net.
	DefaultActor = "Dexnis~expireddomains-scraper"

	defaultPollInterval = 5 * time.Second
	defaultRunTimeout   = 5 * time.Minute
	daysPerListingYear  = 365
)

// Run states reported by Apify.
const (
	StatusSucceeded = "SUCCEEDED"
	StatusFailed    = "FAILED"
	StatusAborted   = "ABORTED"
	StatusTimedOut  = "TIMED-OUT"
)

// Client starts actor runs and collects their dataset. It is safe for
// concurrent use.
type Client struct {
	httpClient   *http.Client
	token        string
	baseURL      string
	actor        string
	pollInterval time.Duration
	runTimeout   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithActor overrides DefaultActor. Both "user/name" and "user~name" work.
func WithActor(actor string) Option {
	return func(c *Client) {
		if actor != "" {
			c.actor = strings.ReplaceAll(actor, "/", "~")
		}
	}
}

// WithPolling sets how often a run is polled and how long it may take.
func WithPolling(interval, timeout time.Duration) Option {
	return func(c *Client) {
		if interval > 0 {
			c.pollInterval = interval
		}
		if timeout > 0 {
			c.runTimeout = timeout
		}
	}
}

// New constructs a Client authenticating with token.
func New(httpClient *http.Client, token string, opts ...Option) *Client {
	c := &Client{
		httpClient:   httpClient,
		token:        token,
		baseURL:      DefaultBaseURL,
		actor:        DefaultActor,
		pollInterval: defaultPollInterval,
		runTimeout:   defaultRunTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Run is the subset of an actor run the client needs.
type Run struct {
	ID               string
	Status           string
	DefaultDatasetID string
}

// Fetch implements listing.Provider: it starts a run, waits for it to finish
// and returns the parsed dataset items.
func (c *Client) Fetch(ctx context.Context, limit int, sort domain.SortCriteria) ([]domain.Candidate, error) {
	run, err := c.StartRun(ctx, listing.ClampLimit(limit), sort)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "apify run started", zap.String("runID", run.ID), zap.String("actor", c.actor))

	run, err = c.WaitForRun(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	if run.Status != StatusSucceeded {
		return nil, serrors.With(serrors.ErrUnavailable, "apify run %s ended with status %s", run.ID, run.Status)
	}
	if run.DefaultDatasetID == "" {
		return nil, serrors.With(serrors.ErrParse, "apify run %s has no dataset", run.ID)
	}

	return c.DatasetItems(ctx, run.DefaultDatasetID)
}

// StartRun starts the actor with the listing input.
func (c *Client) StartRun(ctx context.Context, limit int, sort domain.SortCriteria) (Run, error) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.ObjStart()
	e.FieldStart("limit")
	e.Int(limit)
	if sort.By != "" {
		e.FieldStart("sortBy")
		e.Str(sort.By)
	}
	if sort.Order != "" {
		e.FieldStart("sortOrder")
		e.Str(sort.Order)
	}
	e.ObjEnd()

	req, err := c.newRequest(ctx, http.MethodPost, "/acts/"+url.PathEscape(c.actor)+"/runs", bytes.NewReader(e.Bytes()))
	if err != nil {
		return Run{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doRun(req)
}

// GetRun returns the current state of a run.
func (c *Client) GetRun(ctx context.Context, runID string) (Run, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/actor-runs/"+url.PathEscape(runID), nil)
	if err != nil {
		return Run{}, err
	}

	return c.doRun(req)
}

// WaitForRun polls runID until it reaches a terminal state or the run timeout
// elapses.
func (c *Client) WaitForRun(ctx context.Context, runID string) (Run, error) {
	ctx, cancel := context.WithTimeout(ctx, c.runTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		run, err := c.GetRun(ctx, runID)
		if err != nil {
			return Run{}, err
		}
		switch run.Status {
		case StatusSucceeded, StatusFailed, StatusAborted, StatusTimedOut:
			return run, nil
		}
		logger.Debug(ctx, "waiting for apify run", zap.String("runID", runID), zap.String("status", run.Status))

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return Run{}, serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "apify run %s did not finish", runID)
			}

			return Run{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

// DatasetItems downloads and parses the items of a dataset. Items that cannot
// be turned into a candidate are skipped.
func (c *Client) DatasetItems(ctx context.Context, datasetID string) ([]domain.Candidate, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/datasets/"+url.PathEscape(datasetID)+"/items?format=json&clean=true", nil)
	if err != nil {
		return nil, err
	}

	b, err := httpx.Do(c.httpClient, req)
	if err != nil {
		return nil, err
	}

	var out []domain.Candidate
	skipped := 0
	d := jx.DecodeBytes(b)
	err = d.Arr(func(d *jx.Decoder) error {
		raw, err := d.Raw()
		if err != nil {
			return err
		}
		cand, err := ParseItem(raw)
		if err != nil {
			skipped++
			logger.Warn(ctx, "skipping listing item", zap.Error(err), zap.ByteString("item", raw))

			return nil
		}
		out = append(out, cand)

		return nil
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrParse, err, "decode dataset %s", datasetID)
	}
	logger.Info(ctx, "apify dataset fetched", zap.Int("items", len(out)), zap.Int("skipped", skipped))

	return out, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	return req, nil
}

func (c *Client) doRun(req *http.Request) (Run, error) {
	b, err := httpx.Do(c.httpClient, req)
	if err != nil {
		return Run{}, err
	}

	var run Run
	d := jx.DecodeBytes(b)
	err = d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "data" {
			return d.Skip()
		}

		return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
			var err error
			switch string(key) {
			case "id":
				run.ID, err = d.Str()
			case "status":
				run.Status, err = d.Str()
			case "defaultDatasetId":
				run.DefaultDatasetID, err = d.Str()
			default:
				err = d.Skip()
			}

			return err
		})
	})
	if err != nil {
		return Run{}, serrors.Wrap(serrors.ErrParse, err, "decode actor run")
	}
	if run.ID == "" {
		return Run{}, serrors.With(serrors.ErrParse, "actor run without id")
	}

	return run, nil
}

// ParseItem converts one dataset item into a candidate. Numbers may arrive as
// JSON numbers or strings; domainAge is in years.
func ParseItem(raw []byte) (domain.Candidate, error) {
	var (
		full                       string
		price, age, links, traffic float64
		hasName, hasAge, hasLinks  bool
		hasTraffic                 bool
	)
	d := jx.DecodeBytes(raw)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "domain":
			if d.Next() != jx.String {
				return d.Skip()
			}
			full, err = d.Str()
			hasName = err == nil
		case "price":
			price, _, err = readNumber(d)
		case "domainAge":
			age, hasAge, err = readNumber(d)
		case "backlinks":
			links, hasLinks, err = readNumber(d)
		case "traffic":
			traffic, hasTraffic, err = readNumber(d)
		default:
			err = d.Skip()
		}

		return err
	})
	if err != nil {
		return domain.Candidate{}, serrors.Wrap(serrors.ErrParse, err, "decode item")
	}
	if !hasName {
		return domain.Candidate{}, serrors.With(serrors.ErrParse, "item without domain")
	}

	key, err := domain.ParseDomainKey(full)
	if err != nil {
		return domain.Candidate{}, serrors.Wrap(serrors.ErrParse, err, "item domain %q", full)
	}

	cand := domain.Candidate{Key: key, Price: max(0, price)}
	if hasAge {
		days := max(0, int(age)) * daysPerListingYear
		cand.ProvisionalAgeDays = &days
	}
	if hasLinks {
		n := max(0, int(links))
		cand.ProvisionalBacklinks = &n
	}
	if hasTraffic {
		n := max(0, int64(traffic))
		cand.ProvisionalTraffic = &n
	}

	return cand, nil
}

// readNumber reads a number that may be encoded as a string such as "8.99" or
// "$8.99". ok is false for null and for strings that are not numbers.
func readNumber(d *jx.Decoder) (v float64, ok bool, err error) {
	switch d.Next() {
	case jx.Number:
		v, err = d.Float64()

		return v, err == nil, err
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return 0, false, err
		}
		s = strings.TrimPrefix(strings.TrimSpace(s), "$")
		s = strings.ReplaceAll(s, ",", "")
		v, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			return 0, false, nil
		}

		return v, true, nil
	default:
		return 0, false, d.Skip()
	}
}

// Ensure Client conforms to the listing.Provider interface at compile time.
var _ listing.Provider = (*Client)(nil)
