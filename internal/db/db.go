package db

import (
	"context"
	"encoding/json"
	"time"
)

// Store is the document store facade used by the gateway.
type Store interface {
	Pinger
	IndexManager
	DocumentWriter
	Searcher
	Close(ctx context.Context) error
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks store connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// IndexManager checks and creates indices.
type IndexManager interface {
	IndexExists(ctx context.Context, name string) (bool, error)
	CreateIndex(ctx context.Context, name string) error
}

// DocumentWriter indexes single documents.
type DocumentWriter interface {
	// IndexDocument stores body (a JSON object) and returns the store-assigned id.
	IndexDocument(ctx context.Context, index string, body []byte) (string, error)
}

// Searcher runs match-all reads.
type Searcher interface {
	SearchAll(ctx context.Context, index string, size int) (*SearchResult, error)
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total int64
	Hits  []SearchHit
}

// SearchHit is a single hit. Raw is the hit object exactly as the store sent it.
type SearchHit struct {
	ID  string
	Raw json.RawMessage
}
