package docgate

import "encoding/json"

// IndexStatus reports whether EnsureIndex created the index.
type IndexStatus string

// Index status constants.
const (
	IndexCreated  IndexStatus = "created"
	IndexExisting IndexStatus = "existing"
)

// ReadResult is a page of documents and the total match count.
type ReadResult struct {
	Total int64
	// Documents are the raw store hits (_index, _id, _source, ...).
	Documents []json.RawMessage
}
