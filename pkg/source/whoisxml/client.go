// Package whoisxml provides a source.Fetcher backed by the paid WhoisXML API.
// It is a secondary registration source and is only wired when an API key is
// configured.
package whoisxml

import (
	"context"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/httpx"
	"domainfinder/pkg/serrors"
	"domainfinder/pkg/source"
	"net/http"
	"net/url"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DefaultBaseURL is the WhoisXML WHOIS service endpoint.
const DefaultBaseURL = "https://www.whoisxmlapi.com/whoisserver/WhoisService"

// missingData is the dataError WhoisXML reports for unregistered domains.
const missingData = "MISSING_WHOIS_DATA"

// Client talks to the WhoisXML API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	now        source.Clock
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithClock overrides the clock used to derive the domain age.
func WithClock(now source.Clock) Option {
	return func(c *Client) { c.now = now }
}

// New constructs a Client using apiKey for every request.
func New(httpClient *http.Client, apiKey string, opts ...Option) *Client {
	c := &Client{httpClient: httpClient, apiKey: apiKey, baseURL: DefaultBaseURL, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name implements source.Fetcher.
func (c *Client) Name() string { return source.NameWhois }

type record struct {
	found         bool
	createdDate   string
	registrarName string
	dataError     string
	errorMessage  string
}

// Lookup returns the WHOIS registration of key or serrors.ErrNotFound when
// the service reports no WHOIS data for it.
func (c *Client) Lookup(ctx context.Context, key domain.DomainKey) (*source.Registration, error) {
	q := url.Values{}
	q.Set("apiKey", c.apiKey)
	q.Set("domainName", key.String())
	q.Set("outputFormat", "JSON")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not create request")
	}

	b, err := httpx.Do(c.httpClient, req)
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		// Unregistered domains come back as 200 with dataError, so a 404 is a
		// broken endpoint rather than an answer about key.
		return nil, serrors.With(serrors.ErrUnavailable, "whois %s: %s", key, err)
	case err != nil:
		return nil, err
	}

	rec, err := decodeRecord(b)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrParse, err, "whois %s", key)
	}
	switch {
	case rec.errorMessage != "":
		return nil, serrors.With(serrors.ErrUnavailable, "whois %s: %s", key, rec.errorMessage)
	case !rec.found || rec.dataError == missingData:
		return nil, serrors.With(serrors.ErrNotFound, "whois %s: no record", key)
	}

	reg := &source.Registration{Registrar: rec.registrarName}
	if rec.createdDate != "" {
		if t, err := source.ParseDate(rec.createdDate); err == nil {
			reg.RegisteredDate = &t
		}
	}

	return reg, nil
}

// Fetch implements source.Fetcher.
func (c *Client) Fetch(ctx context.Context, key domain.DomainKey) source.Result {
	reg, err := c.Lookup(ctx, key)
	if err != nil {
		return source.FromError(source.NameWhois, err)
	}

	return source.Found(source.NameWhois, reg.Facts(c.now()))
}

// decodeRecord reads the fields of interest from a WhoisService response. The
// creation date is taken from the top level record and falls back to
// registryData.
func decodeRecord(b []byte) (record, error) {
	var rec record
	d := jx.DecodeBytes(b)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "WhoisRecord":
			if d.Next() == jx.Null {
				return d.Null()
			}
			rec.found = true

			return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
				switch string(key) {
				case "createdDate":
					return readStr(d, &rec.createdDate)
				case "registrarName":
					return readStr(d, &rec.registrarName)
				case "dataError":
					return readStr(d, &rec.dataError)
				case "registryData":
					return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
						if string(key) != "createdDate" || rec.createdDate != "" {
							return d.Skip()
						}

						return readStr(d, &rec.createdDate)
					})
				default:
					return d.Skip()
				}
			})
		case "ErrorMessage":
			return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
				if string(key) != "msg" {
					return d.Skip()
				}

				return readStr(d, &rec.errorMessage)
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return record{}, errors.Wrap(err, "decode whois record")
	}

	return rec, nil
}

// readStr reads a string, tolerating null.
func readStr(d *jx.Decoder, dst *string) error {
	if d.Next() == jx.Null {
		return d.Null()
	}
	s, err := d.Str()
	if err != nil {
		return err
	}
	*dst = s

	return nil
}

// Ensure Client conforms to the source.Fetcher interface at compile time.
var _ source.Fetcher = (*Client)(nil)
