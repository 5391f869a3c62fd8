package whoisxml_test

import (
	"context"
	"domainfinder/pkg/domain"
	"domainfinder/pkg/serrors"
	"domainfinder/pkg/source"
	"domainfinder/pkg/source/whoisxml"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(status int, body string) *whoisxml.Client {
	rt := rtFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}, nil
	})
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	return whoisxml.New(&http.Client{Transport: rt}, "test-key", whoisxml.WithClock(func() time.Time { return now }))
}

func TestClient_Lookup_request(t *testing.T) {
	rt := rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "www.whoisxmlapi.com", r.URL.Host)
		require.Equal(t, "/whoisserver/WhoisService", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		require.Equal(t, "aitools.io", r.URL.Query().Get("domainName"))
		require.Equal(t, "JSON", r.URL.Query().Get("outputFormat"))

		body := `{"WhoisRecord":{"createdDate":"2022-01-01T00:00:00Z","registrarName":"Namecheap, Inc."}}`

		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body))}, nil
	})
	c := whoisxml.New(&http.Client{Transport: rt}, "test-key")

	reg, err := c.Lookup(context.Background(), domain.NewDomainKey("aitools", "io"))
	require.NoError(t, err)
	require.Equal(t, "Namecheap, Inc.", reg.Registrar)
	require.Equal(t, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), *reg.RegisteredDate)
}

func TestClient_Fetch_found(t *testing.T) {
	c := newTestClient(http.StatusOK, `{"WhoisRecord":{"registrarName":"Example Registrar","registryData":{"createdDate":"2020-01-01 00:00:00 UTC"}}}`)

	res := c.Fetch(context.Background(), domain.NewDomainKey("aitools", "io"))
	require.Equal(t, source.StatusFound, res.Status)
	require.Equal(t, source.NameWhois, res.Source)
	require.True(t, *res.Facts.Registered)
	require.Equal(t, "Example Registrar", *res.Facts.Registrar)
	require.Equal(t, 1827, *res.Facts.AgeDays)
}

func TestClient_Fetch_notFound(t *testing.T) {
	for name, body := range map[string]string{
		"null record":  `{"WhoisRecord":null}`,
		"no record":    `{}`,
		"missing data": `{"WhoisRecord":{"dataError":"MISSING_WHOIS_DATA","domainName":"zzqx.com"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			res := newTestClient(http.StatusOK, body).Fetch(context.Background(), domain.NewDomainKey("zzqx", "com"))
			require.Equal(t, source.StatusNotFound, res.Status)
			require.False(t, *res.Facts.Registered)
		})
	}
}

func TestClient_Fetch_errorMessage(t *testing.T) {
	c := newTestClient(http.StatusOK, `{"ErrorMessage":{"errorCode":"WHOIS_01","msg":"API key is invalid"}}`)

	res := c.Fetch(context.Background(), domain.NewDomainKey("aitools", "io"))
	require.Equal(t, source.StatusUnavailable, res.Status)
	require.ErrorIs(t, res.Err, serrors.ErrUnavailable)
	require.Contains(t, res.Err.Error(), "API key is invalid")
}

func TestClient_Fetch_rateLimited(t *testing.T) {
	c := newTestClient(http.StatusTooManyRequests, "quota exceeded")

	res := c.Fetch(context.Background(), domain.NewDomainKey("aitools", "io"))
	require.Equal(t, source.StatusUnavailable, res.Status)
	require.ErrorIs(t, res.Err, serrors.ErrRateLimited)
}

func TestClient_Fetch_endpointNotFound(t *testing.T) {
	c := newTestClient(http.StatusNotFound, "<html>not found</html>")

	res := c.Fetch(context.Background(), domain.NewDomainKey("aitools", "io"))
	require.Equal(t, source.StatusUnavailable, res.Status)
	require.ErrorIs(t, res.Err, serrors.ErrUnavailable)
	require.NotErrorIs(t, res.Err, serrors.ErrNotFound)
	require.Nil(t, res.Facts.Registered)
}
