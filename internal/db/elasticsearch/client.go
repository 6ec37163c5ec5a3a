package elasticsearch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docgate/internal/db"
	"github.com/kailas-cloud/docgate/internal/metrics"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for an Elasticsearch store.
type Config struct {
	Host     string
	Port     int
	Scheme   string // http (default) or https
	Username string
	Password string

	// MaxRetries bounds client-side retries. Zero disables retries.
	MaxRetries int
	// RetryOnTimeout allows retrying requests that failed with a network timeout.
	RetryOnTimeout bool
	// Refresh is passed to index requests: "", "true", "false" or "wait_for".
	Refresh string

	Logger *zap.Logger
	// Transport overrides the HTTP transport (tests).
	Transport http.RoundTripper
}

// Store implements db.Store via go-elasticsearch.
type Store struct {
	client  *es.Client
	refresh string
	logger  *zap.Logger
}

// NewStore creates an Elasticsearch store. It does not contact the cluster.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Host == "" {
		return nil, errors.New("host is required")
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	scheme := cfg.Scheme
	if scheme == "" {
		scheme = "http"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}

	clientCfg := es.Config{
		Addresses:    []string{scheme + "://" + net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))},
		Username:     cfg.Username,
		Password:     cfg.Password,
		Transport:    transport,
		MaxRetries:   cfg.MaxRetries,
		DisableRetry: cfg.MaxRetries <= 0,
		RetryOnError: retryOnError(cfg.RetryOnTimeout),
		Logger:       newTransportLogger(logger),
	}

	client, err := es.NewClient(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Store{
		client:  client,
		refresh: cfg.Refresh,
		logger:  logger,
	}, nil
}

// retryOnError decides whether a failed round trip is retried.
// Cancelled requests never are; timeouts only when allowed.
func retryOnError(onTimeout bool) func(*http.Request, error) bool {
	return func(_ *http.Request, err error) bool {
		if errors.Is(err, context.Canceled) {
			return false
		}
		if isTimeout(err) {
			return onTimeout
		}
		return true
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	start := time.Now()
	res, err := s.client.Ping(s.client.Ping.WithContext(ctx))
	if err != nil {
		return s.fail(db.OpPing, start, &db.TransportError{Err: err})
	}
	defer closeBody(res)

	if res.IsError() {
		return s.fail(db.OpPing, start, parseError(res))
	}
	s.ok(db.OpPing, start)
	return nil
}

// Close shuts down the client and its connection pool.
// Requests made after Close fail with a transport error.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Close(ctx); err != nil {
		return fmt.Errorf("close elasticsearch client: %w", err)
	}
	return nil
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		if err := s.Ping(ctx); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for elasticsearch: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (s *Store) ok(op string, start time.Time) {
	metrics.StoreRequestsTotal.WithLabelValues(op, "ok").Inc()
	metrics.StoreRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// fail records the failed call and wraps err with the operation name.
func (s *Store) fail(op string, start time.Time, err error) error {
	outcome := "rejected"
	if errors.Is(err, db.ErrTransport) {
		outcome = "transport_error"
	}
	metrics.StoreRequestsTotal.WithLabelValues(op, outcome).Inc()
	metrics.StoreRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	return &db.Error{Op: op, Err: err}
}

func closeBody(res *esapi.Response) {
	if res != nil && res.Body != nil {
		_ = res.Body.Close()
	}
}
