package elasticsearch

import (
	"context"
	"net/http"
	"time"

	"github.com/kailas-cloud/docgate/internal/db"
)

// IndexExists reports whether the index exists.
func (s *Store) IndexExists(ctx context.Context, name string) (bool, error) {
	start := time.Now()
	res, err := s.client.Indices.Exists([]string{name}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return false, s.fail(db.OpIndexExists, start, &db.TransportError{Err: err})
	}
	defer closeBody(res)

	switch {
	case res.StatusCode == http.StatusNotFound:
		s.ok(db.OpIndexExists, start)
		return false, nil
	case res.IsError():
		return false, s.fail(db.OpIndexExists, start, parseError(res))
	default:
		s.ok(db.OpIndexExists, start)
		return true, nil
	}
}

// CreateIndex creates an index with default settings.
// Returns an error matching db.ErrIndexExists if it is already there.
func (s *Store) CreateIndex(ctx context.Context, name string) error {
	start := time.Now()
	res, err := s.client.Indices.Create(name, s.client.Indices.Create.WithContext(ctx))
	if err != nil {
		return s.fail(db.OpCreateIndex, start, &db.TransportError{Err: err})
	}
	defer closeBody(res)

	if res.IsError() {
		return s.fail(db.OpCreateIndex, start, parseError(res))
	}
	s.ok(db.OpCreateIndex, start)
	return nil
}
