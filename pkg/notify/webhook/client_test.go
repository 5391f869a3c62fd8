package webhook_test

import (
	"context"
	"domainfinder/pkg/notify/webhook"
	"domainfinder/pkg/serrors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClient_SendWebhook(t *testing.T) {
	var got []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = b
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := webhook.New(srv.Client())
	require.NoError(t, c.SendWebhook(context.Background(), srv.URL+"/hooks/T000/B000", []byte(`{"text":"hi"}`)))
	require.JSONEq(t, `{"text":"hi"}`, string(got))
}

func TestClient_SendWebhook_failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := webhook.New(srv.Client()).SendWebhook(context.Background(), srv.URL, []byte(`{}`))
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "invalid_payload")
}

func TestClient_SendWebhook_invalidURL(t *testing.T) {
	c := webhook.New(http.DefaultClient)
	for _, u := range []string{"", "ftp://example.com/x", "not a url", "https://"} {
		require.ErrorIs(t, c.SendWebhook(context.Background(), u, nil), serrors.ErrBadRequest, u)
	}
}
