package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kailas-cloud/docgate/internal/db"
	"github.com/kailas-cloud/docgate/internal/domain"
	"github.com/kailas-cloud/docgate/internal/repository/storeerr"
	healthuc "github.com/kailas-cloud/docgate/internal/usecase/health"
)

// --- Fakes ---

type fakeHealth struct {
	report healthuc.Report
	err    error
}

func (f *fakeHealth) Check(context.Context) (healthuc.Report, error) { return f.report, f.err }

type fakeIndices struct {
	status domain.IndexStatus
	err    error
	names  []string
}

func (f *fakeIndices) Ensure(_ context.Context, name string) (domain.IndexStatus, error) {
	f.names = append(f.names, name)
	return f.status, f.err
}

type fakeDocuments struct {
	writeID  string
	writeErr error
	written  [][]byte

	readResult domain.SearchResult
	readErr    error
	readSize   *int
	readCalls  int
}

func (f *fakeDocuments) Write(_ context.Context, _ string, raw []byte) (string, error) {
	f.written = append(f.written, raw)
	return f.writeID, f.writeErr
}

func (f *fakeDocuments) Read(_ context.Context, _ string, size *int) (domain.SearchResult, error) {
	f.readCalls++
	f.readSize = size
	return f.readResult, f.readErr
}

type fixture struct {
	health  *fakeHealth
	indices *fakeIndices
	docs    *fakeDocuments
	logs    *observer.ObservedLogs
	handler http.Handler
}

func newFixture() *fixture {
	core, logs := observer.New(zapcore.DebugLevel)
	f := &fixture{
		health:  &fakeHealth{report: healthuc.Report{Connected: true}},
		indices: &fakeIndices{status: domain.IndexCreated},
		docs:    &fakeDocuments{writeID: "doc-1"},
		logs:    logs,
	}
	logger := zap.New(core)
	f.handler = NewRouter(NewServer(f.health, f.indices, f.docs, logger), logger)
	return f
}

func (f *fixture) do(t *testing.T, method, target, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("%s %s: expected application/json, got %q", method, target, ct)
	}
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("%s %s: response is not a JSON object: %v (%s)", method, target, err, rec.Body.String())
	}
	return rec.Code, out
}

// expectLogged asserts one entry with msg carrying the given string fields.
func expectLogged(t *testing.T, logs *observer.ObservedLogs, msg string, want map[string]any) {
	t.Helper()
	entries := logs.FilterMessage(msg).All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 %q log, got %d: %v", msg, len(entries), logs.All())
	}
	fields := entries[0].ContextMap()
	for k, v := range want {
		if fields[k] != v {
			t.Errorf("%q: expected %s=%v, got %v", msg, k, v, fields[k])
		}
	}
}

func expectBody(t *testing.T, got map[string]any, key, want string) {
	t.Helper()
	if got[key] != want {
		t.Errorf("expected %s=%q, got %v", key, want, got[key])
	}
}

// --- Health ---

func TestHealthCheck_Connected(t *testing.T) {
	f := newFixture()
	code, body := f.do(t, http.MethodGet, "/", "")

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	expectBody(t, body, "message", "docgate with Elasticsearch")
	expectBody(t, body, "status", "Connected to Elasticsearch")
}

func TestHealthCheck_PingFailedIsStill200(t *testing.T) {
	f := newFixture()
	f.health.report = healthuc.Report{Connected: false, Err: errors.New("connection refused")}
	code, body := f.do(t, http.MethodGet, "/", "")

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	expectBody(t, body, "status", "Elasticsearch connection failed")
}

func TestHealthCheck_CallerContextEnded(t *testing.T) {
	f := newFixture()
	f.health.err = domain.ErrStoreUnavailable
	code, body := f.do(t, http.MethodGet, "/", "")

	if code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", code)
	}
	expectBody(t, body, "code", "store_unavailable")
	expectBody(t, body, "message", "Elasticsearch service unavailable")
}

// --- Create index ---

func TestCreateIndex_Created(t *testing.T) {
	f := newFixture()
	code, body := f.do(t, http.MethodPost, "/index/books", "")

	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	expectBody(t, body, "message", "Index 'books' created successfully")
	expectBody(t, body, "status", "created")
	if len(f.indices.names) != 1 || f.indices.names[0] != "books" {
		t.Errorf("unexpected ensure calls %v", f.indices.names)
	}
	expectLogged(t, f.logs, "Created index", map[string]any{"index": "books"})
}

func TestCreateIndex_Existing(t *testing.T) {
	f := newFixture()
	f.indices.status = domain.IndexExisting
	code, body := f.do(t, http.MethodPost, "/index/books", "")

	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	expectBody(t, body, "message", "Index 'books' already exists")
	expectBody(t, body, "status", "existing")
	if f.logs.FilterMessage("Created index").Len() != 0 {
		t.Error("existing index must not be logged as created")
	}
}

func TestCreateIndex_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody map[string]string
	}{
		{
			name:     "invalid name",
			err:      domain.NewInvalidRequest("Invalid index name or settings: [invalid_index_name_exception] must be lowercase", nil),
			wantCode: http.StatusBadRequest,
			wantBody: map[string]string{
				"code":    "bad_request",
				"message": "Invalid index name or settings: [invalid_index_name_exception] must be lowercase",
			},
		},
		{
			name:     "store down",
			err:      errors.Join(domain.ErrStoreUnavailable, errors.New("dial tcp: refused")),
			wantCode: http.StatusServiceUnavailable,
			wantBody: map[string]string{"code": "store_unavailable", "message": "Elasticsearch service unavailable"},
		},
		{
			name:     "unexpected",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]string{"code": "internal_error", "message": "internal error"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.indices.err = tc.err
			code, body := f.do(t, http.MethodPost, "/index/Books", "")

			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			for k, v := range tc.wantBody {
				expectBody(t, body, k, v)
			}
		})
	}
}

func TestCreateIndex_ErrorLoggedWithOperationAndIndex(t *testing.T) {
	f := newFixture()
	f.indices.err = domain.ErrStoreUnavailable
	f.do(t, http.MethodPost, "/index/books", "")

	entries := f.logs.FilterMessage("domain error").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 domain error log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["operation"] != "create_index" || fields["index"] != "books" {
		t.Errorf("unexpected log fields %v", fields)
	}
	if _, ok := fields["request_id"]; !ok {
		t.Error("expected request_id on request-scoped log")
	}
}

// --- Write ---

func TestWriteDocument_Created(t *testing.T) {
	f := newFixture()
	code, body := f.do(t, http.MethodPost, "/write/books", `{"title":"Dune"}`)

	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	expectBody(t, body, "message", "Document added successfully")
	expectBody(t, body, "document_id", "doc-1")
	if len(f.docs.written) != 1 || string(f.docs.written[0]) != `{"title":"Dune"}` {
		t.Errorf("unexpected body passed to service: %q", f.docs.written)
	}
	expectLogged(t, f.logs, "Document added", map[string]any{"index": "books", "document_id": "doc-1"})
}

func TestWriteDocument_BodyReadFailure(t *testing.T) {
	tests := []struct {
		name string
		body func() *http.Request
	}{
		{"reset", func() *http.Request {
			return httptest.NewRequest(http.MethodPost, "/write/books", iotest.ErrReader(errors.New("connection reset")))
		}},
		{"too large", func() *http.Request {
			return httptest.NewRequest(http.MethodPost, "/write/books",
				strings.NewReader(strings.Repeat(" ", maxDocumentBytes+1)))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			rec := httptest.NewRecorder()
			f.handler.ServeHTTP(rec, tc.body())

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var body map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			expectBody(t, body, "code", "bad_request")
			if msg, _ := body["message"].(string); !strings.HasPrefix(msg, "Invalid document format: ") {
				t.Errorf("unexpected message %q", msg)
			}
			if len(f.docs.written) != 0 {
				t.Error("service must not be called")
			}
			expectLogged(t, f.logs, "domain error", map[string]any{"operation": "write_document", "index": "books"})
		})
	}
}

func TestWriteDocument_StoreForbiddenIsInternal(t *testing.T) {
	f := newFixture()
	f.docs.writeErr = fmt.Errorf("insert document: %w", storeerr.Translate(&db.Error{
		Op:  db.OpIndex,
		Err: &db.ResponseError{StatusCode: 403, Type: "security_exception", Reason: "unauthorized"},
	}, "books"))
	code, body := f.do(t, http.MethodPost, "/write/books", `{"a":1}`)

	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	expectBody(t, body, "code", "internal_error")
}

func TestWriteDocument_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"malformed", domain.NewInvalidRequest("Invalid document format: unexpected end of JSON input", nil),
			http.StatusBadRequest, "Invalid document format: unexpected end of JSON input"},
		{"missing index", domain.NewIndexNotFound("ghost"),
			http.StatusNotFound, "Index 'ghost' does not exist"},
		{"store down", domain.ErrStoreUnavailable,
			http.StatusServiceUnavailable, "Elasticsearch service unavailable"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.docs.writeErr = tc.err
			code, body := f.do(t, http.MethodPost, "/write/ghost", `{`)

			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			expectBody(t, body, "message", tc.wantMsg)
		})
	}
}

// --- Read ---

func TestReadDocuments_OK(t *testing.T) {
	f := newFixture()
	f.docs.readResult = domain.SearchResult{
		Total: 3,
		Hits: []domain.Hit{
			{ID: "a", Raw: json.RawMessage(`{"_index":"books","_id":"a","_source":{"title":"Dune"}}`)},
		},
	}
	code, body := f.do(t, http.MethodGet, "/read/books?size=1", "")

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["total"] != float64(3) {
		t.Errorf("expected total 3, got %v", body["total"])
	}
	docs, ok := body["documents"].([]any)
	if !ok || len(docs) != 1 {
		t.Fatalf("expected one document, got %v", body["documents"])
	}
	hit := docs[0].(map[string]any)
	if hit["_id"] != "a" || hit["_source"].(map[string]any)["title"] != "Dune" {
		t.Errorf("hit not passed through verbatim: %v", hit)
	}
	if f.docs.readSize == nil || *f.docs.readSize != 1 {
		t.Errorf("expected size 1, got %v", f.docs.readSize)
	}
	expectLogged(t, f.logs, "Read documents", map[string]any{"index": "books", "count": int64(1), "total": int64(3)})
}

func TestReadDocuments_NoSizeMeansDefault(t *testing.T) {
	f := newFixture()
	code, body := f.do(t, http.MethodGet, "/read/books", "")

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if f.docs.readSize != nil {
		t.Errorf("expected nil size for the service to default, got %d", *f.docs.readSize)
	}
	if docs, ok := body["documents"].([]any); !ok || len(docs) != 0 {
		t.Errorf("expected empty documents array, got %v", body["documents"])
	}
}

func TestReadDocuments_NonIntegerSize(t *testing.T) {
	f := newFixture()
	code, body := f.do(t, http.MethodGet, "/read/books?size=ten", "")

	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	expectBody(t, body, "code", "bad_request")
	msg, _ := body["message"].(string)
	if !strings.HasPrefix(msg, "Invalid query parameters: ") {
		t.Errorf("unexpected message %q", msg)
	}
	if f.docs.readCalls != 0 {
		t.Error("service must not be called for an unparsable size")
	}
	expectLogged(t, f.logs, "domain error", map[string]any{"operation": "read_documents", "index": "books"})
}

func TestReadDocuments_Errors(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantCode      int
		wantCodeField string
	}{
		{"missing index", domain.NewIndexNotFound("ghost"), http.StatusNotFound, "index_not_found"},
		{"negative size", domain.NewInvalidRequest("Invalid query parameters: [size] must be positive", nil),
			http.StatusBadRequest, "bad_request"},
		{"store down", domain.ErrStoreUnavailable, http.StatusServiceUnavailable, "store_unavailable"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			f.docs.readErr = tc.err
			code, body := f.do(t, http.MethodGet, "/read/ghost?size=-1", "")

			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			expectBody(t, body, "code", tc.wantCodeField)
		})
	}
}
