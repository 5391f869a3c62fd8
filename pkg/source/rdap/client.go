// Package rdap provides a source.Fetcher backed by the public RDAP bootstrap
// service.
package rdap

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

// DefaultBaseURL resolves the authoritative RDAP server through redirects.
const DefaultBaseURL = "https://rdap.org/domain/"

// Client looks up registration data over RDAP. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	now        source.Clock
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL. The domain is appended to it.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithClock overrides the clock used to derive the domain age.
func WithClock(now source.Clock) Option {
	return func(c *Client) { c.now = now }
}

// New constructs a Client. Redirects are followed by httpClient.
func New(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{httpClient: httpClient, baseURL: DefaultBaseURL, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name implements source.Fetcher.
func (c *Client) Name() string { return source.NameRDAP }

// Lookup returns the registration of key, or serrors.ErrNotFound when the
// registry has no such domain.
func (c *Client) Lookup(ctx context.Context, key domain.DomainKey) (*source.Registration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+url.PathEscape(key.String()), nil)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not create request")
	}
	req.Header.Set("Accept", "application/rdap+json, application/json")

	b, err := httpx.Do(c.httpClient, req)
	if err != nil {
		return nil, err
	}

	reg, err := decodeRegistration(b)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrParse, err, "rdap %s", key)
	}

	return reg, nil
}

// Fetch implements source.Fetcher.
func (c *Client) Fetch(ctx context.Context, key domain.DomainKey) source.Result {
	reg, err := c.Lookup(ctx, key)
	if err != nil {
		return source.FromError(source.NameRDAP, err)
	}

	return source.Found(source.NameRDAP, reg.Facts(c.now()))
}

// decodeRegistration extracts the "registration" event and the registrar
// entity from an RDAP domain object (RFC 9083).
func decodeRegistration(b []byte) (*source.Registration, error) {
	var reg source.Registration
	d := jx.DecodeBytes(b)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "events":
			return d.Arr(func(d *jx.Decoder) error {
				action, date, err := decodeEvent(d)
				if err != nil {
					return err
				}
				if action != "registration" || date == "" || reg.RegisteredDate != nil {
					return nil
				}
				// An unreadable date degrades to "registered, age unknown".
				if t, err := source.ParseDate(date); err == nil {
					reg.RegisteredDate = &t
				}

				return nil
			})
		case "entities":
			return d.Arr(func(d *jx.Decoder) error {
				name, isRegistrar, err := decodeEntity(d)
				if err != nil {
					return err
				}
				if isRegistrar && reg.Registrar == "" {
					reg.Registrar = name
				}

				return nil
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "decode domain object")
	}

	return &reg, nil
}

func decodeEvent(d *jx.Decoder) (action, date string, err error) {
	err = d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "eventAction":
			action, err = d.Str()
		case "eventDate":
			date, err = d.Str()
		default:
			err = d.Skip()
		}

		return err
	})

	if err != nil {
		return "", "", errors.Wrap(err, "event")
	}

	return action, date, nil
}

// decodeEntity returns the vCard "fn" of an entity and whether the entity has
// the registrar role.
func decodeEntity(d *jx.Decoder) (name string, isRegistrar bool, err error) {
	err = d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "roles":
			return d.Arr(func(d *jx.Decoder) error {
				role, err := d.Str()
				if role == "registrar" {
					isRegistrar = true
				}

				return err
			})
		case "vcardArray":
			n, err := decodeVCardName(d)
			name = n

			return err
		default:
			return d.Skip()
		}
	})

	if err != nil {
		return "", false, errors.Wrap(err, "entity")
	}

	return name, isRegistrar, nil
}

// decodeVCardName walks a jCard (RFC 7095): ["vcard", [[name, params, type, value], ...]].
func decodeVCardName(d *jx.Decoder) (string, error) {
	var name string
	idx := 0
	err := d.Arr(func(d *jx.Decoder) error {
		defer func() { idx++ }()
		if idx != 1 || d.Next() != jx.Array {
			return d.Skip()
		}

		return d.Arr(func(d *jx.Decoder) error {
			prop, err := decodeVCardProperty(d)
			if err != nil {
				return err
			}
			if prop[0] == "fn" && name == "" {
				name = prop[1]
			}

			return nil
		})
	})

	return name, err
}

// decodeVCardProperty returns the property name and its value when the value
// is a string.
func decodeVCardProperty(d *jx.Decoder) ([2]string, error) {
	var out [2]string
	idx := 0
	err := d.Arr(func(d *jx.Decoder) error {
		defer func() { idx++ }()
		switch {
		case idx == 0 && d.Next() == jx.String:
			s, err := d.Str()
			out[0] = s

			return err
		case idx == 3 && d.Next() == jx.String:
			s, err := d.Str()
			out[1] = s

			return err
		default:
			return d.Skip()
		}
	})

	return out, err
}

// Ensure Client conforms to the source.Fetcher interface at compile time.
var _ source.Fetcher = (*Client)(nil)
