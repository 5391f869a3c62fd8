// Package sendgrid sends alert emails through the SendGrid v3 mail API.
package sendgrid

import (
	"bytes"
	"context"
	"domainfinder/pkg/httpx"
	"domainfinder/pkg/notify"
	"domainfinder/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
)

// DefaultBaseURL is the SendGrid v3 API.
const DefaultBaseURL = "https://api.sendgrid.com/v3"

// Client sends mail on behalf of a fixed sender address.
type Client struct {
	httpClient *http.Client
	apiKey     string
	from       string
	baseURL    string
}

// New constructs a Client. baseURL may be empty to use DefaultBaseURL.
func New(httpClient *http.Client, apiKey, from, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{httpClient: httpClient, apiKey: apiKey, from: from, baseURL: baseURL}
}

// SendEmail implements notify.EmailSender.
func (c *Client) SendEmail(ctx context.Context, to, subject, htmlBody string) error {
	if to == "" {
		return serrors.With(serrors.ErrBadRequest, "empty recipient")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/mail/send",
		bytes.NewReader(encodeMessage(c.from, to, subject, htmlBody)))
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	// SendGrid answers 202 Accepted with an empty body.
	if _, err := httpx.Do(c.httpClient, req); err != nil {
		return err
	}

	return nil
}

func encodeMessage(from, to, subject, htmlBody string) []byte {
	e := &jx.Encoder{}
	e.ObjStart()
	e.FieldStart("personalizations")
	e.ArrStart()
	e.ObjStart()
	e.FieldStart("to")
	e.ArrStart()
	e.ObjStart()
	e.FieldStart("email")
	e.Str(to)
	e.ObjEnd()
	e.ArrEnd()
	e.ObjEnd()
	e.ArrEnd()

	e.FieldStart("from")
	e.ObjStart()
	e.FieldStart("email")
	e.Str(from)
	e.ObjEnd()

	e.FieldStart("subject")
	e.Str(subject)

	e.FieldStart("content")
	e.ArrStart()
	e.ObjStart()
	e.FieldStart("type")
	e.Str("text/html")
	e.FieldStart("value")
	e.Str(htmlBody)
	e.ObjEnd()
	e.ArrEnd()
	e.ObjEnd()

	return e.Bytes()
}

// Ensure Client conforms to the notify.EmailSender interface at compile time.
var _ notify.EmailSender = (*Client)(nil)
