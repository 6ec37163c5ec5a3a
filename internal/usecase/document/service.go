package document

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/docgate/internal/domain"
)

const (
	invalidDocumentPrefix = "Invalid document format: "
	invalidQueryPrefix    = "Invalid query parameters: "
)

// Service handles document writes and reads.
type Service struct {
	repo            Repository
	indices         IndexChecker
	defaultReadSize int
}

// New creates a document service.
func New(repo Repository, indices IndexChecker) *Service {
	return &Service{
		repo:            repo,
		indices:         indices,
		defaultReadSize: domain.DefaultReadSize,
	}
}

// Write checks that raw is a JSON object and stores those exact bytes in index.
// Returns the store-assigned document id.
func (s *Service) Write(ctx context.Context, index string, raw []byte) (string, error) {
	doc, err := domain.DecodeDocument(raw)
	if err != nil {
		return "", domain.NewInvalidRequest(invalidDocumentPrefix+err.Error(), err)
	}

	if err := s.requireIndex(ctx, index); err != nil {
		return "", err
	}

	id, err := s.repo.Insert(ctx, index, doc)
	if err != nil {
		return "", fmt.Errorf("insert document: %w", domain.PrefixInvalid(err, invalidDocumentPrefix))
	}
	return id, nil
}

// Read returns up to size documents from index. A nil size means the default.
func (s *Service) Read(ctx context.Context, index string, size *int) (domain.SearchResult, error) {
	n := s.defaultReadSize
	if size != nil {
		n = *size
	}

	if err := s.requireIndex(ctx, index); err != nil {
		return domain.SearchResult{}, err
	}

	res, err := s.repo.MatchAll(ctx, index, n)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("search documents: %w", domain.PrefixInvalid(err, invalidQueryPrefix))
	}
	return res, nil
}

func (s *Service) requireIndex(ctx context.Context, index string) error {
	ok, err := s.indices.Exists(ctx, index)
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if !ok {
		return domain.NewIndexNotFound(index)
	}
	return nil
}
