package docgate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/docgate/internal/db"
	esstore "github.com/kailas-cloud/docgate/internal/db/elasticsearch"
	"github.com/kailas-cloud/docgate/internal/domain"
	documentrepo "github.com/kailas-cloud/docgate/internal/repository/document"
	indexrepo "github.com/kailas-cloud/docgate/internal/repository/index"
	documentuc "github.com/kailas-cloud/docgate/internal/usecase/document"
	healthuc "github.com/kailas-cloud/docgate/internal/usecase/health"
	indexuc "github.com/kailas-cloud/docgate/internal/usecase/index"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	closeTimeout            = 5 * time.Second
)

// Internal interfaces, replaced with mocks in tests.
type healthUseCase interface {
	Check(ctx context.Context) (healthuc.Report, error)
}

type indexUseCase interface {
	Ensure(ctx context.Context, name string) (domain.IndexStatus, error)
}

type documentUseCase interface {
	Write(ctx context.Context, index string, raw []byte) (string, error)
	Read(ctx context.Context, index string, size *int) (domain.SearchResult, error)
}

// Client is the docgate SDK entry point.
type Client struct {
	store     db.Store
	healthSvc healthUseCase
	indexSvc  indexUseCase
	docSvc    documentUseCase
	obs       *observer
}

// New creates a Client and waits for the cluster to answer a ping.
// The provided context bounds the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o.apply(cfg)
	}

	if cfg.host == "" || cfg.port == 0 {
		return nil, errors.New("docgate: elasticsearch address required (use WithElasticsearch)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := esstore.NewStore(esstore.Config{
		Host:           cfg.host,
		Port:           cfg.port,
		Scheme:         cfg.scheme,
		Username:       cfg.username,
		Password:       cfg.password,
		MaxRetries:     cfg.maxRetries,
		RetryOnTimeout: cfg.retryOnTimeout,
		Refresh:        cfg.refresh,
		Logger:         zap.NewNop(),
	})
	if err != nil {
		return nil, fmt.Errorf("docgate: create store: %w", err)
	}

	if cfg.readinessTimeout > 0 {
		if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
			_ = store.Close(context.Background())
			return nil, fmt.Errorf("docgate: elasticsearch not ready: %w", err)
		}
	}

	return wireClient(store, obs), nil
}

func wireClient(store db.Store, obs *observer) *Client {
	indexRepo := indexrepo.New(store)
	docRepo := documentrepo.New(store)

	return &Client{
		store:     store,
		healthSvc: healthuc.New(store),
		indexSvc:  indexuc.New(indexRepo),
		docSvc:    documentuc.New(docRepo, indexRepo),
		obs:       obs,
	}
}

// Close shuts down the store client and its connection pool.
func (c *Client) Close() error {
	if c.store == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := c.store.Close(ctx); err != nil {
		return fmt.Errorf("docgate: %w", err)
	}
	return nil
}

// Ping checks cluster connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", "", start, err) }()

	report, err := c.healthSvc.Check(ctx)
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	if !report.Connected {
		return fmt.Errorf("ping: %w: %w", ErrStoreUnavailable, report.Err)
	}
	return nil
}

// EnsureIndex creates the index unless it already exists.
func (c *Client) EnsureIndex(ctx context.Context, name string) (status IndexStatus, err error) {
	start := time.Now()
	defer func() { c.obs.observe("ensure_index", name, start, err) }()

	s, err := c.indexSvc.Ensure(ctx, name)
	if err != nil {
		return "", fmt.Errorf("ensure index: %w", err)
	}
	return IndexStatus(s), nil
}

// Write stores doc, which must marshal to a JSON object, and returns the
// store-generated document id. json.RawMessage and []byte are sent byte for
// byte, so large integers and number formatting survive.
func (c *Client) Write(ctx context.Context, index string, doc any) (id string, err error) {
	start := time.Now()
	defer func() { c.obs.observe("write", index, start, err) }()

	raw, err := encodeDocument(doc)
	if err != nil {
		return "", fmt.Errorf("write: %w", domain.NewInvalidRequest("Invalid document format: "+err.Error(), err))
	}

	id, err = c.docSvc.Write(ctx, index, raw)
	if err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	return id, nil
}

// Read returns up to size documents from index and the total number of
// documents in it.
func (c *Client) Read(ctx context.Context, index string, size int) (res ReadResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("read", index, start, err) }()

	sr, err := c.docSvc.Read(ctx, index, &size)
	if err != nil {
		return ReadResult{}, fmt.Errorf("read: %w", err)
	}

	docs := make([]json.RawMessage, len(sr.Hits))
	for i, h := range sr.Hits {
		docs[i] = h.Raw
	}
	return ReadResult{Total: sr.Total, Documents: docs}, nil
}

func encodeDocument(doc any) ([]byte, error) {
	switch v := doc.(type) {
	case json.RawMessage:
		return v, nil
	case []byte:
		return v, nil
	default:
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode document: %w", err)
		}
		return raw, nil
	}
}
