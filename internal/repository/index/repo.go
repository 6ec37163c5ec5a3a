package index

import (
	"context"
	"errors"

	"github.com/kailas-cloud/docgate/internal/db"
	"github.com/kailas-cloud/docgate/internal/domain"
	"github.com/kailas-cloud/docgate/internal/repository/storeerr"
)

// store is the consumer interface for index management (ISP).
type store interface {
	IndexExists(ctx context.Context, name string) (bool, error)
	CreateIndex(ctx context.Context, name string) error
}

// Repo implements usecase/index.Repository.
type Repo struct {
	store store
}

// New creates an index repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Exists reports whether the index exists.
func (r *Repo) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := r.store.IndexExists(ctx, name)
	if err != nil {
		return false, storeerr.Translate(err, name)
	}
	return ok, nil
}

// Create creates the index. If another caller created it first the
// store's already-exists reply is reported as IndexExisting.
func (r *Repo) Create(ctx context.Context, name string) (domain.IndexStatus, error) {
	err := r.store.CreateIndex(ctx, name)
	switch {
	case err == nil:
		return domain.IndexCreated, nil
	case errors.Is(err, db.ErrIndexExists):
		return domain.IndexExisting, nil
	default:
		return "", storeerr.Translate(err, name)
	}
}
