package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kailas-cloud/docgate/internal/db"
)

type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []json.RawMessage `json:"hits"`
	} `json:"hits"`
}

type hitID struct {
	ID string `json:"_id"`
}

// buildMatchAll returns the match-all request body capped at size hits.
func buildMatchAll(size int) ([]byte, error) {
	return json.Marshal(map[string]any{
		"query": map[string]any{
			"match_all": map[string]any{},
		},
		"size": size,
	})
}

// SearchAll runs a match-all query on index returning at most size hits.
// Total counts every match, not only the returned hits.
func (s *Store) SearchAll(ctx context.Context, index string, size int) (*db.SearchResult, error) {
	start := time.Now()

	body, err := buildMatchAll(size)
	if err != nil {
		return nil, s.fail(db.OpSearch, start, fmt.Errorf("build query: %w", err))
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(index),
		s.client.Search.WithBody(bytes.NewReader(body)),
		s.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, s.fail(db.OpSearch, start, &db.TransportError{Err: err})
	}
	defer closeBody(res)

	if res.IsError() {
		return nil, s.fail(db.OpSearch, start, parseError(res))
	}

	var out searchResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, s.fail(db.OpSearch, start, fmt.Errorf("decode response: %w", err))
	}

	hits := make([]db.SearchHit, len(out.Hits.Hits))
	for i, raw := range out.Hits.Hits {
		var h hitID
		if err := json.Unmarshal(raw, &h); err != nil {
			return nil, s.fail(db.OpSearch, start, fmt.Errorf("decode hit %d: %w", i, err))
		}
		hits[i] = db.SearchHit{ID: h.ID, Raw: raw}
	}

	s.ok(db.OpSearch, start)
	return &db.SearchResult{Total: out.Hits.Total.Value, Hits: hits}, nil
}
