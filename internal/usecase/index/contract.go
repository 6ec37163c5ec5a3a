package index

import (
	"context"

	"github.com/kailas-cloud/docgate/internal/domain"
)

// Repository defines the storage contract for indices.
type Repository interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name string) (domain.IndexStatus, error)
}
