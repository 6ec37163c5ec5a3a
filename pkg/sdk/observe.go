package docgate

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for SDK metrics.
const (
	outcomeOK          = "ok"
	outcomeNotFound    = "index_not_found"
	outcomeInvalid     = "invalid_request"
	outcomeUnavailable = "store_unavailable"
	outcomeError       = "error"
)

// sdkMetrics counts calls per operation and index.
type sdkMetrics struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

func newSDKMetrics(reg prometheus.Registerer) (*sdkMetrics, error) {
	m := &sdkMetrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docgate",
			Subsystem: "sdk",
			Name:      "requests_total",
			Help:      "SDK calls by operation, index and outcome.",
		}, []string{"operation", "index", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "docgate",
			Subsystem: "sdk",
			Name:      "request_duration_seconds",
			Help:      "SDK call latency by operation and index.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "index"}),
	}
	if err := registerOrReuse(reg, &m.calls); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.latency); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers c, or points c at an identical collector that a
// previous client already registered.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	err := reg.Register(*c)
	if err == nil {
		return nil
	}
	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		return fmt.Errorf("docgate: register metric: %w", err)
	}
	existing, ok := are.ExistingCollector.(T)
	if !ok {
		return fmt.Errorf("docgate: metric already registered as %T", are.ExistingCollector)
	}
	*c = existing
	return nil
}

// outcome maps an SDK error onto a metric label.
func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrIndexNotFound):
		return outcomeNotFound
	case errors.Is(err, ErrInvalidRequest):
		return outcomeInvalid
	case errors.Is(err, ErrStoreUnavailable):
		return outcomeUnavailable
	default:
		return outcomeError
	}
}

// observer records each SDK call in slog and, when configured, prometheus.
type observer struct {
	logger  *slog.Logger
	metrics *sdkMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	o := &observer{logger: logger}
	if reg == nil {
		return o, nil
	}
	m, err := newSDKMetrics(reg)
	if err != nil {
		return nil, err
	}
	o.metrics = m
	return o, nil
}

func (o *observer) observe(op, index string, start time.Time, err error) {
	if o == nil {
		return
	}
	dur := time.Since(start)
	result := outcome(err)

	if o.metrics != nil {
		o.metrics.calls.WithLabelValues(op, index, result).Inc()
		o.metrics.latency.WithLabelValues(op, index).Observe(dur.Seconds())
	}
	if o.logger == nil {
		return
	}

	attrs := []any{"op", op, "index", index, "outcome", result, "duration", dur}
	if err != nil {
		o.logger.Warn("docgate call failed", append(attrs, "error", err)...)
		return
	}
	o.logger.Debug("docgate call done", attrs...)
}
