package document

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/docgate/internal/db"
	"github.com/kailas-cloud/docgate/internal/domain"
	"github.com/kailas-cloud/docgate/internal/repository/storeerr"
)

// store is the consumer interface for documents (ISP).
type store interface {
	IndexDocument(ctx context.Context, index string, body []byte) (string, error)
	SearchAll(ctx context.Context, index string, size int) (*db.SearchResult, error)
}

// Repo implements usecase/document.Repository.
type Repo struct {
	store store
}

// New creates a document repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Insert stores doc in index as is and returns the store-assigned id.
func (r *Repo) Insert(ctx context.Context, index string, doc domain.Document) (string, error) {
	id, err := r.store.IndexDocument(ctx, index, []byte(doc))
	if err != nil {
		return "", storeerr.Translate(err, index)
	}
	return id, nil
}

// MatchAll returns up to size documents from index and the total match count.
func (r *Repo) MatchAll(ctx context.Context, index string, size int) (domain.SearchResult, error) {
	res, err := r.store.SearchAll(ctx, index, size)
	if err != nil {
		return domain.SearchResult{}, storeerr.Translate(err, index)
	}
	if res == nil {
		return domain.SearchResult{}, fmt.Errorf("search %s: empty result", index)
	}

	hits := make([]domain.Hit, len(res.Hits))
	for i, h := range res.Hits {
		hits[i] = domain.Hit{ID: h.ID, Raw: h.Raw}
	}
	return domain.SearchResult{Total: res.Total, Hits: hits}, nil
}
