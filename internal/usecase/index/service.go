package index

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/docgate/internal/domain"
)

const invalidPrefix = "Invalid index name or settings: "

// Service handles index provisioning.
type Service struct {
	repo Repository
}

// New creates an index service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Ensure creates the index unless it already exists. Calling it twice is safe.
func (s *Service) Ensure(ctx context.Context, name string) (domain.IndexStatus, error) {
	exists, err := s.repo.Exists(ctx, name)
	if err != nil {
		return "", fmt.Errorf("check index: %w", domain.PrefixInvalid(err, invalidPrefix))
	}
	if exists {
		return domain.IndexExisting, nil
	}

	status, err := s.repo.Create(ctx, name)
	if err != nil {
		return "", fmt.Errorf("create index: %w", domain.PrefixInvalid(err, invalidPrefix))
	}
	return status, nil
}
