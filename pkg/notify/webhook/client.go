// Package webhook posts JSON alert payloads to subscriber URLs.
package webhook

import (
	"bytes"
	"context"
	"domainfinder/pkg/httpx"
	"domainfinder/pkg/notify"
	"domainfinder/pkg/serrors"
	"net/http"
	"net/url"
)

// Client posts payloads with the configured http.Client, whose Timeout bounds
// each delivery.
type Client struct {
	httpClient *http.Client
}

// New constructs a Client.
func New(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// SendWebhook implements notify.WebhookSender. Only http and https targets
// are accepted.
func (c *Client) SendWebhook(ctx context.Context, target string, payload []byte) error {
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return serrors.With(serrors.ErrBadRequest, "invalid webhook url %q", target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(payload))
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")

	if _, err := httpx.Do(c.httpClient, req); err != nil {
		return err
	}

	return nil
}

// Ensure Client conforms to the notify.WebhookSender interface at compile time.
var _ notify.WebhookSender = (*Client)(nil)
