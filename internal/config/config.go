package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the ops HTTP server, the database
// connection, the batch pipeline, its external sources and notification
// channels, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains the ops HTTP server (metrics, health, pprof) configuration
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":9090" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"domainfinder" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Pipeline controls a batch run
	Pipeline struct {
		// Concurrency bounds how many domains are enriched at the same time
		Concurrency int `env:"PIPELINE_CONCURRENCY" env-default:"8" yaml:"concurrency"`
		// FetchTimeout bounds every single source call
		FetchTimeout time.Duration `env:"PIPELINE_FETCH_TIMEOUT" env-default:"10s" yaml:"fetchTimeout"`
		// BatchTimeout bounds a whole run, listing fetch and alerts included
		BatchTimeout time.Duration `env:"PIPELINE_BATCH_TIMEOUT" env-default:"30m" yaml:"batchTimeout"`
		// ListingLimit is the number of candidates requested from the listing source
		ListingLimit int `env:"PIPELINE_LISTING_LIMIT" env-default:"50" yaml:"listingLimit"`
		// SortBy orders the listing: price, age or backlinks
		SortBy string `env:"PIPELINE_SORT_BY" env-default:"price" yaml:"sortBy"`
		// SortOrder is asc or desc
		SortOrder string `env:"PIPELINE_SORT_ORDER" env-default:"asc" yaml:"sortOrder"`
		// DefaultPurchasePrice is used for ROI when the listing has no price
		DefaultPurchasePrice float64 `env:"PIPELINE_DEFAULT_PURCHASE_PRICE" env-default:"50" yaml:"defaultPurchasePrice"`
		// AlertCap is the maximum number of domains sent per subscription
		AlertCap int `env:"PIPELINE_ALERT_CAP" env-default:"20" yaml:"alertCap"`
		// Interval is the period of the scheduled batch
		Interval time.Duration `env:"PIPELINE_INTERVAL" env-default:"24h" yaml:"interval"`
		// RunOnStart schedules a batch as soon as the worker starts
		RunOnStart bool `env:"PIPELINE_RUN_ON_START" env-default:"false" yaml:"runOnStart"`
	} `yaml:"pipeline"`

	// Sources configures the per-domain fetchers
	Sources struct {
		RDAP struct {
			URL string `env:"SOURCES_RDAP_URL" env-default:"https://rdap.org/domain/" yaml:"url"`
			// RatePerSecond limits calls; zero disables limiting
			RatePerSecond float64 `env:"SOURCES_RDAP_RATE" env-default:"5" yaml:"ratePerSecond"`
		} `yaml:"rdap"`
		Wayback struct {
			URL           string  `env:"SOURCES_WAYBACK_URL" env-default:"https://web.archive.org/cdx/search/cdx" yaml:"url"` //nolint: lll
			RatePerSecond float64 `env:"SOURCES_WAYBACK_RATE" env-default:"1" yaml:"ratePerSecond"`
			// MaxCaptures caps the number of CDX rows requested per domain
			MaxCaptures int `env:"SOURCES_WAYBACK_MAX_CAPTURES" env-default:"10000" yaml:"maxCaptures"`
		} `yaml:"wayback"`
		Whois struct {
			URL string `env:"SOURCES_WHOIS_URL" env-default:"https://www.whoisxmlapi.com/whoisserver/WhoisService" yaml:"url"` //nolint: lll
			// APIKey enables the paid WHOIS source when set
			APIKey        string  `env:"SOURCES_WHOIS_API_KEY" yaml:"apiKey"`
			RatePerSecond float64 `env:"SOURCES_WHOIS_RATE" env-default:"1" yaml:"ratePerSecond"`
		} `yaml:"whois"`
	} `yaml:"sources"`

	// Listing configures where candidates come from
	Listing struct {
		// Provider is apify or sample
		Provider string `env:"LISTING_PROVIDER" env-default:"sample" yaml:"provider"`
		Apify    struct {
			URL          string        `env:"LISTING_APIFY_URL" env-default:"https://api.apify.com/v2" yaml:"url"`
			Token        string        `env:"LISTING_APIFY_TOKEN" yaml:"token"`
			Actor        string        `env:"LISTING_APIFY_ACTOR" env-default:"Dexnis~expireddomains-scraper" yaml:"actor"`
			PollInterval time.Duration `env:"LISTING_APIFY_POLL_INTERVAL" env-default:"5s" yaml:"pollInterval"`
			RunTimeout   time.Duration `env:"LISTING_APIFY_RUN_TIMEOUT" env-default:"5m" yaml:"runTimeout"`
		} `yaml:"apify"`
	} `yaml:"listing"`

	// Notify configures alert channels
	Notify struct {
		SendGrid struct {
			// APIKey enables email alerts when set
			APIKey string `env:"NOTIFY_SENDGRID_API_KEY" yaml:"apiKey"`
			From   string `env:"NOTIFY_SENDGRID_FROM" env-default:"alerts@domainfinder.local" yaml:"from"`
			URL    string `env:"NOTIFY_SENDGRID_URL" env-default:"https://api.sendgrid.com/v3" yaml:"url"`
		} `yaml:"sendgrid"`
		// Timeout bounds every single email or webhook send
		Timeout time.Duration `env:"NOTIFY_TIMEOUT" env-default:"10s" yaml:"timeout"`
	} `yaml:"notify"`

	// Worker configures the river queue client
	Worker struct {
		// MaxWorkers is the concurrency of the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"2" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
