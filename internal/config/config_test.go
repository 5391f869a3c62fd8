package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"domainfinder/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 8, cfg.Pipeline.Concurrency)
	require.Equal(t, 10*time.Second, cfg.Pipeline.FetchTimeout)
	require.Equal(t, 50, cfg.Pipeline.ListingLimit)
	require.InEpsilon(t, 50.0, cfg.Pipeline.DefaultPurchasePrice, 1e-9)
	require.Equal(t, 20, cfg.Pipeline.AlertCap)
	require.Equal(t, "sample", cfg.Listing.Provider)
	require.Equal(t, "https://rdap.org/domain/", cfg.Sources.RDAP.URL)
	require.Empty(t, cfg.Sources.Whois.APIKey)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	t.Setenv("SOURCES_WHOIS_API_KEY", "secret")
	t.Setenv("PIPELINE_CONCURRENCY", "3")

	cfg, err := config.Load(writeConfig(t, `
pipeline:
  listingLimit: 100
  sortBy: backlinks
  sortOrder: desc
listing:
  provider: apify
  apify:
    token: apify-token
`))
	require.NoError(t, err)

	require.Equal(t, 100, cfg.Pipeline.ListingLimit)
	require.Equal(t, "backlinks", cfg.Pipeline.SortBy)
	require.Equal(t, 3, cfg.Pipeline.Concurrency)
	require.Equal(t, "secret", cfg.Sources.Whois.APIKey)
	require.Equal(t, "apify", cfg.Listing.Provider)
	require.Equal(t, "apify-token", cfg.Listing.Apify.Token)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
