package docgate

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/kailas-cloud/docgate/internal/domain"
	healthuc "github.com/kailas-cloud/docgate/internal/usecase/health"
)

func TestPing(t *testing.T) {
	tests := []struct {
		name    string
		report  healthuc.Report
		err     error
		wantErr error
	}{
		{"connected", healthuc.Report{Connected: true}, nil, nil},
		{"ping failed", healthuc.Report{Err: errors.New("refused")}, nil, ErrStoreUnavailable},
		{"cancelled", healthuc.Report{}, context.Canceled, context.Canceled},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(&mockHealthUC{checkFn: func(context.Context) (healthuc.Report, error) {
				return tc.report, tc.err
			}}, nil, nil)

			err := c.Ping(context.Background())
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestEnsureIndex(t *testing.T) {
	var got string
	c := testClient(nil, &mockIndexUC{ensureFn: func(_ context.Context, name string) (domain.IndexStatus, error) {
		got = name
		return domain.IndexExisting, nil
	}}, nil)

	status, err := c.EnsureIndex(context.Background(), "books")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != IndexExisting {
		t.Errorf("expected %q, got %q", IndexExisting, status)
	}
	if got != "books" {
		t.Errorf("expected books, got %q", got)
	}
}

func TestEnsureIndex_Error(t *testing.T) {
	c := testClient(nil, &mockIndexUC{ensureFn: func(context.Context, string) (domain.IndexStatus, error) {
		return "", domain.NewInvalidRequest("Invalid index name or settings: bad", nil)
	}}, nil)

	_, err := c.EnsureIndex(context.Background(), "Bad")
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestWrite_EncodesDocument(t *testing.T) {
	type book struct {
		Title string `json:"title"`
	}

	var raw []byte
	c := testClient(nil, nil, &mockDocumentUC{writeFn: func(_ context.Context, _ string, b []byte) (string, error) {
		raw = b
		return "id-7", nil
	}})

	id, err := c.Write(context.Background(), "books", book{Title: "Dune"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "id-7" {
		t.Errorf("expected id-7, got %q", id)
	}
	if string(raw) != `{"title":"Dune"}` {
		t.Errorf("unexpected body %s", raw)
	}
}

func TestWrite_RawPassthrough(t *testing.T) {
	var raw []byte
	c := testClient(nil, nil, &mockDocumentUC{writeFn: func(_ context.Context, _ string, b []byte) (string, error) {
		raw = b
		return "x", nil
	}})

	const doc = `{"account":9007199254740993,"price":1.10}`
	if _, err := c.Write(context.Background(), "books", json.RawMessage(doc)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != doc {
		t.Errorf("unexpected body %s", raw)
	}
}

func TestWrite_Unencodable(t *testing.T) {
	called := false
	c := testClient(nil, nil, &mockDocumentUC{writeFn: func(context.Context, string, []byte) (string, error) {
		called = true
		return "", nil
	}})

	_, err := c.Write(context.Background(), "books", map[string]float64{"x": math.NaN()})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
	if called {
		t.Error("use case must not be called")
	}
}

func TestWrite_MissingIndex(t *testing.T) {
	c := testClient(nil, nil, &mockDocumentUC{writeFn: func(_ context.Context, index string, _ []byte) (string, error) {
		return "", domain.NewIndexNotFound(index)
	}})

	_, err := c.Write(context.Background(), "ghost", map[string]any{"a": 1})
	if !errors.Is(err, ErrIndexNotFound) {
		t.Errorf("expected ErrIndexNotFound, got %v", err)
	}
}

func TestRead(t *testing.T) {
	var gotSize *int
	c := testClient(nil, nil, &mockDocumentUC{readFn: func(_ context.Context, _ string, size *int) (domain.SearchResult, error) {
		gotSize = size
		return domain.SearchResult{
			Total: 5,
			Hits:  []domain.Hit{{ID: "a", Raw: json.RawMessage(`{"_id":"a"}`)}},
		}, nil
	}})

	res, err := c.Read(context.Background(), "books", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSize == nil || *gotSize != 1 {
		t.Errorf("expected size 1, got %v", gotSize)
	}
	if res.Total != 5 || len(res.Documents) != 1 || string(res.Documents[0]) != `{"_id":"a"}` {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestRead_StoreUnavailable(t *testing.T) {
	c := testClient(nil, nil, &mockDocumentUC{readFn: func(context.Context, string, *int) (domain.SearchResult, error) {
		return domain.SearchResult{}, domain.ErrStoreUnavailable
	}})

	_, err := c.Read(context.Background(), "books", 10)
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}
