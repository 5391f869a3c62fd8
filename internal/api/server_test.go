package api_test

import (
	"context"
	"domainfinder/internal/api"
	"domainfinder/pkg/logger"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func serve(t *testing.T, deps api.Deps) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.Handler(deps, api.Options{
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
	}))
	t.Cleanup(srv.Close)

	return srv
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	res, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestServer_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "domainfinder_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	srv := serve(t, api.Deps{Database: pinger{}, Gatherer: reg})

	res, body := get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "domainfinder_test_total 1")
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
}

func TestServer_Health(t *testing.T) {
	srv := serve(t, api.Deps{Database: pinger{}})
	res, body := get(t, srv.URL+api.HealthPath)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, body)

	srv = serve(t, api.Deps{Database: pinger{err: errors.New("db down")}})
	res, _ = get(t, srv.URL+api.HealthPath)
	require.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestServer_Pprof(t *testing.T) {
	srv := serve(t, api.Deps{})
	res, _ := get(t, srv.URL+"/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_NotFound(t *testing.T) {
	srv := serve(t, api.Deps{})
	res, _ := get(t, srv.URL+"/v1/scans")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}
