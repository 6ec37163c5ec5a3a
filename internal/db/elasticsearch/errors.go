package elasticsearch

import (
	"encoding/json"
	"io"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/kailas-cloud/docgate/internal/db"
)

// maxErrorBody bounds how much of an error reply is read.
const maxErrorBody = 64 << 10

// errorBody is the shape of an Elasticsearch error reply. "error" is an
// object for API errors and a plain string for some proxy/security replies.
type errorBody struct {
	Error  json.RawMessage `json:"error"`
	Status int             `json:"status"`
}

type errorCause struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// parseError turns a non-2xx reply into a classified db.ResponseError.
func parseError(res *esapi.Response) error {
	re := &db.ResponseError{StatusCode: res.StatusCode}
	if res.Body == nil {
		return re
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return re
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Error) == 0 {
		re.Reason = string(raw)
		return re
	}

	var cause errorCause
	if err := json.Unmarshal(body.Error, &cause); err == nil {
		re.Type = cause.Type
		re.Reason = cause.Reason
		return re
	}

	var msg string
	if err := json.Unmarshal(body.Error, &msg); err == nil {
		re.Reason = msg
	}
	return re
}
