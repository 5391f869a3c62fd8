package sendgrid_test

import (
	"context"
	"domainfinder/pkg/notify/sendgrid"
	"domainfinder/pkg/serrors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestClient_SendEmail(t *testing.T) {
	c := sendgrid.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "api.sendgrid.com", r.URL.Host)
		require.Equal(t, "/v3/mail/send", r.URL.Path)
		require.Equal(t, "Bearer sg-key", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"personalizations": [{"to": [{"email": "investor@example.com"}]}],
			"from": {"email": "alerts@domainfinder.dev"},
			"subject": "Domain Finder Pro - Top 2 Opportunities",
			"content": [{"type": "text/html", "value": "<p>\"hi\"</p>"}]
		}`, string(b))

		return &http.Response{StatusCode: http.StatusAccepted, Body: io.NopCloser(strings.NewReader(""))}, nil
	})}, "sg-key", "alerts@domainfinder.dev", "")

	err := c.SendEmail(context.Background(), "investor@example.com", "Domain Finder Pro - Top 2 Opportunities", `<p>"hi"</p>`)
	require.NoError(t, err)
}

func TestClient_SendEmail_rejected(t *testing.T) {
	c := sendgrid.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusForbidden,
			Body:       io.NopCloser(strings.NewReader(`{"errors":[{"message":"The from address does not match a verified Sender Identity."}]}`)),
		}, nil
	})}, "sg-key", "nobody@example.com", "")

	err := c.SendEmail(context.Background(), "investor@example.com", "s", "b")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "verified Sender Identity")
}

func TestClient_SendEmail_noRecipient(t *testing.T) {
	c := sendgrid.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		t.Fatal("no request expected")

		return nil, nil
	})}, "sg-key", "alerts@domainfinder.dev", "")

	require.ErrorIs(t, c.SendEmail(context.Background(), "", "s", "b"), serrors.ErrBadRequest)
}
