package health

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/docgate/internal/domain"
)

// Report is the outcome of a health check.
type Report struct {
	Connected bool
	// Err is the ping failure when Connected is false.
	Err error
}

// Service pings the store.
type Service struct {
	store StorePinger
}

// New creates a Service.
func New(store StorePinger) *Service {
	return &Service{store: store}
}

// Check pings the store. A failed ping is reported, not returned: the
// only error is a caller context that ended before the ping completed.
func (s *Service) Check(ctx context.Context) (Report, error) {
	err := s.store.Ping(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Report{}, fmt.Errorf("health check: %w: %w", domain.ErrStoreUnavailable, ctxErr)
	}
	if err != nil {
		return Report{Connected: false, Err: err}, nil
	}
	return Report{Connected: true}, nil
}
