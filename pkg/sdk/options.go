package docgate

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	host     string
	port     int
	scheme   string
	username string
	password string

	maxRetries     int
	retryOnTimeout bool
	refresh        string

	readinessTimeout time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		scheme:           "http",
		maxRetries:       3,
		retryOnTimeout:   true,
		readinessTimeout: defaultReadinessTimeout,
	}
}

// WithElasticsearch sets the Elasticsearch host and port.
func WithElasticsearch(host string, port int) Option {
	return optionFunc(func(c *clientConfig) {
		c.host = host
		c.port = port
	})
}

// WithHTTPS connects over https instead of http.
func WithHTTPS() Option {
	return optionFunc(func(c *clientConfig) {
		c.scheme = "https"
	})
}

// WithBasicAuth sets credentials for HTTP basic authentication.
func WithBasicAuth(username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
		c.password = password
	})
}

// WithRetries sets client-side retries. maxRetries=0 disables them.
// onTimeout allows retrying requests that timed out.
// Default: 3 retries, timeouts retried.
func WithRetries(maxRetries int, onTimeout bool) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxRetries = maxRetries
		c.retryOnTimeout = onTimeout
	})
}

// WithRefresh sets the refresh policy for writes: "true", "false" or "wait_for".
// Use "wait_for" when a write must be visible to the next Read.
func WithRefresh(policy string) Option {
	return optionFunc(func(c *clientConfig) {
		c.refresh = policy
	})
}

// WithReadinessTimeout bounds the initial wait for the cluster in New.
// Zero skips the wait. Default: 10s.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.readinessTimeout = d
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
