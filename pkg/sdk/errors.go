package docgate

import "github.com/kailas-cloud/docgate/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrIndexNotFound    = domain.ErrIndexNotFound
	ErrInvalidRequest   = domain.ErrInvalidRequest
	ErrStoreUnavailable = domain.ErrStoreUnavailable
)
