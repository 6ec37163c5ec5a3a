package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/kailas-cloud/docgate/internal/db"
)

type indexResponse struct {
	ID     string `json:"_id"`
	Result string `json:"result"`
}

// IndexDocument stores body with a store-generated id and returns the id.
func (s *Store) IndexDocument(ctx context.Context, index string, body []byte) (string, error) {
	start := time.Now()

	opts := []func(*esapi.IndexRequest){s.client.Index.WithContext(ctx)}
	if s.refresh != "" {
		opts = append(opts, s.client.Index.WithRefresh(s.refresh))
	}

	res, err := s.client.Index(index, bytes.NewReader(body), opts...)
	if err != nil {
		return "", s.fail(db.OpIndex, start, &db.TransportError{Err: err})
	}
	defer closeBody(res)

	if res.IsError() {
		return "", s.fail(db.OpIndex, start, parseError(res))
	}

	var out indexResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", s.fail(db.OpIndex, start, fmt.Errorf("decode response: %w", err))
	}
	if out.ID == "" {
		return "", s.fail(db.OpIndex, start, errors.New("response has no _id"))
	}

	s.ok(db.OpIndex, start)
	return out.ID, nil
}
