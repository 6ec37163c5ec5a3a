package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Document is a caller-supplied JSON object, kept as the exact bytes received.
// The gateway never re-encodes it, so numbers and key order reach the store
// untouched.
type Document json.RawMessage

// DecodeDocument checks that raw is a single well-formed JSON object and
// returns it unchanged. Arrays, scalars, null, invalid UTF-8 and empty input
// are rejected.
func DecodeDocument(raw []byte) (Document, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, errors.New("empty body")
	}
	if !utf8.Valid(raw) {
		return nil, errors.New("body is not valid UTF-8")
	}
	if trimmed[0] != '{' {
		return nil, errors.New("body must be a JSON object")
	}
	// Values are left as raw messages: validation only, nothing is converted.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("body must be a JSON object: %w", err)
	}
	return Document(raw), nil
}

// Hit is a single search hit as returned by the store.
// Raw holds the full hit (_index, _id, _score, _source, ...) verbatim.
type Hit struct {
	ID  string
	Raw json.RawMessage
}

// IDs lists the document ids of hits in order.
func IDs(hits []Hit) []string {
	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.ID
	}
	return ids
}

// SearchResult is the outcome of a match-all read.
type SearchResult struct {
	Total int64
	Hits  []Hit
}
