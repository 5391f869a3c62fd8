package httpx_test

import (
	"context"
	"domainfinder/pkg/httpx"
	"domainfinder/pkg/serrors"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) rtFunc {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}, nil
	}
}

func TestDo(t *testing.T) {
	tests := []struct {
		name    string
		rt      rtFunc
		body    string
		kind    serrors.Kind
		message string
	}{
		{name: "ok", rt: respond(http.StatusOK, `{"a":1}`), body: `{"a":1}`},
		{name: "not found", rt: respond(http.StatusNotFound, ""), kind: serrors.ErrNotFound},
		{name: "rate limited", rt: respond(http.StatusTooManyRequests, "slow down"), kind: serrors.ErrRateLimited, message: "slow down"},
		{name: "server error", rt: respond(http.StatusBadGateway, "bad upstream"), kind: serrors.ErrUnavailable, message: "bad upstream"},
		{
			name: "deadline",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, context.DeadlineExceeded
			},
			kind: serrors.ErrTimeout,
		},
		{
			name: "transport",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			kind: serrors.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "https://example.test/x", nil)
			require.NoError(t, err)

			b, err := httpx.Do(&http.Client{Transport: tt.rt}, req)
			if tt.kind == nil {
				require.NoError(t, err)
				require.Equal(t, tt.body, string(b))

				return
			}
			require.ErrorIs(t, err, tt.kind)
			require.Equal(t, tt.kind, serrors.KindOf(err))
			if tt.message != "" {
				require.Contains(t, err.Error(), tt.message)
			}
		})
	}
}
