// Package wayback provides a source.Fetcher reporting how often and since when
// a domain was captured by the Internet Archive, using the CDX server API.
package wayback

import (
	"bytes"
	"context"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/httpx"
	"domainfinder/pkg/serrors"
	"domainfinder/pkg/source"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

const (
	// DefaultBaseURL is the public CDX endpoint.
	DefaultBaseURL = "https://web.archive.org/cdx/search/cdx"
	// DefaultMaxCaptures caps the number of captures requested per domain.
	// Snapshots.Count never exceeds it.
	DefaultMaxCaptures = 10000

	timestampLayout = "20060102150405"
)

// Snapshots summarizes the captures of a domain.
type Snapshots struct {
	// Count is capped at the client's max captures.
	Count     int
	FirstSeen *time.Time
}

// Client queries the CDX API. It is safe for concurrent use.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	maxCaptures int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithMaxCaptures overrides DefaultMaxCaptures. Domains with more captures
// report exactly n.
func WithMaxCaptures(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxCaptures = n
		}
	}
}

// New constructs a Client.
func New(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{httpClient: httpClient, baseURL: DefaultBaseURL, maxCaptures: DefaultMaxCaptures}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name implements source.Fetcher.
func (c *Client) Name() string { return source.NameWayback }

// Lookup returns the capture summary of key. A domain that was never captured
// yields a zero count and no error.
func (c *Client) Lookup(ctx context.Context, key domain.DomainKey) (Snapshots, error) {
	q := url.Values{}
	q.Set("url", key.String())
	q.Set("output", "json")
	q.Set("fl", "timestamp")
	q.Set("limit", strconv.Itoa(c.maxCaptures))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Snapshots{}, serrors.Wrap(serrors.ErrInternal, err, "could not create request")
	}

	b, err := httpx.Do(c.httpClient, req)
	if err != nil {
		return Snapshots{}, err
	}

	snaps, err := decodeCDX(b)
	if err != nil {
		return Snapshots{}, serrors.Wrap(serrors.ErrParse, err, "cdx %s", key)
	}
	snaps.Count = min(snaps.Count, c.maxCaptures)

	return snaps, nil
}

// Fetch implements source.Fetcher. The archive is never authoritative about
// registration, so a 404 is reported as unavailable.
func (c *Client) Fetch(ctx context.Context, key domain.DomainKey) source.Result {
	snaps, err := c.Lookup(ctx, key)
	if err != nil {
		return source.Unavailable(source.NameWayback, err)
	}

	count := snaps.Count
	facts := source.Facts{SnapshotCount: &count, FirstSeen: snaps.FirstSeen}

	return source.Found(source.NameWayback, facts)
}

// decodeCDX reads the JSON output of the CDX API: an array of rows whose first
// row is the field header, e.g. [["timestamp"],["19990125023512"],...]. Rows
// are sorted by timestamp so the first data row is the oldest capture.
func decodeCDX(b []byte) (Snapshots, error) {
	var out Snapshots
	if len(bytes.TrimSpace(b)) == 0 {
		return out, nil
	}

	row := 0
	d := jx.DecodeBytes(b)
	err := d.Arr(func(d *jx.Decoder) error {
		defer func() { row++ }()
		if row == 0 {
			return d.Skip()
		}

		col := 0
		return d.Arr(func(d *jx.Decoder) error {
			defer func() { col++ }()
			if col != 0 || out.FirstSeen != nil {
				return d.Skip()
			}
			ts, err := d.Str()
			if err != nil {
				return err
			}
			if len(ts) < len(timestampLayout) {
				return errors.Errorf("short timestamp %q", ts)
			}
			t, err := time.Parse(timestampLayout, ts[:len(timestampLayout)])
			if err != nil {
				return errors.Wrap(err, "timestamp")
			}
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			out.FirstSeen = &t

			return nil
		})
	})
	if err != nil {
		return Snapshots{}, errors.Wrap(err, "decode cdx rows")
	}
	if row > 0 {
		out.Count = row - 1
	}

	return out, nil
}

// Ensure Client conforms to the source.Fetcher interface at compile time.
var _ source.Fetcher = (*Client)(nil)
