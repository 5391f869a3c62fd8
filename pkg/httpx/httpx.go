// Package httpx holds the request helper shared by the outbound HTTP clients.
package httpx

import (
	"context"
	"domainfinder/pkg/serrors"
	"errors"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of a failed response ends up in an error.
const maxErrorBody = 512

// Do sends req and returns the response body of a 2xx response. Failures are
// mapped onto semantic kinds:
//   - 404 -> serrors.ErrNotFound
//   - 429 -> serrors.ErrRateLimited
//   - other non-2xx -> serrors.ErrUnavailable
//   - deadline exceeded -> serrors.ErrTimeout
//   - any other transport failure -> serrors.ErrUnavailable
func Do(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, serrors.Wrap(serrors.ErrTimeout, err, "%s %s", req.Method, req.URL.Host)
		}

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not read response body")
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, serrors.With(serrors.ErrNotFound, "%s: not found", req.URL.Host)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, serrors.With(serrors.ErrRateLimited, "%s: rate limited: %s", req.URL.Host, snippet(b))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, serrors.With(serrors.ErrUnavailable, "%s: status %d: %s", req.URL.Host, resp.StatusCode, snippet(b))
	}

	return b, nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody]
	}

	return s
}
