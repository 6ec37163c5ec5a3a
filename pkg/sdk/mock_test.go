package docgate

import (
	"context"

	"github.com/kailas-cloud/docgate/internal/domain"
	healthuc "github.com/kailas-cloud/docgate/internal/usecase/health"
)

// --- healthUseCase mock ---

type mockHealthUC struct {
	checkFn func(ctx context.Context) (healthuc.Report, error)
}

func (m *mockHealthUC) Check(ctx context.Context) (healthuc.Report, error) {
	return m.checkFn(ctx)
}

// --- indexUseCase mock ---

type mockIndexUC struct {
	ensureFn func(ctx context.Context, name string) (domain.IndexStatus, error)
}

func (m *mockIndexUC) Ensure(ctx context.Context, name string) (domain.IndexStatus, error) {
	return m.ensureFn(ctx, name)
}

// --- documentUseCase mock ---

type mockDocumentUC struct {
	writeFn func(ctx context.Context, index string, raw []byte) (string, error)
	readFn  func(ctx context.Context, index string, size *int) (domain.SearchResult, error)
}

func (m *mockDocumentUC) Write(ctx context.Context, index string, raw []byte) (string, error) {
	return m.writeFn(ctx, index, raw)
}

func (m *mockDocumentUC) Read(ctx context.Context, index string, size *int) (domain.SearchResult, error) {
	return m.readFn(ctx, index, size)
}

// --- helpers ---

func testClient(health healthUseCase, index indexUseCase, docs documentUseCase) *Client {
	return &Client{
		healthSvc: health,
		indexSvc:  index,
		docSvc:    docs,
	}
}
