package document

import (
	"context"

	"github.com/kailas-cloud/docgate/internal/domain"
)

// Repository defines the storage contract for documents.
type Repository interface {
	Insert(ctx context.Context, index string, doc domain.Document) (string, error)
	MatchAll(ctx context.Context, index string, size int) (domain.SearchResult, error)
}

// IndexChecker reports whether an index exists.
type IndexChecker interface {
	Exists(ctx context.Context, name string) (bool, error)
}
