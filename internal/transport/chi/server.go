package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docgate/internal/domain"
	logpkg "github.com/kailas-cloud/docgate/internal/logger"
	"github.com/kailas-cloud/docgate/internal/metrics"
	gen "github.com/kailas-cloud/docgate/internal/transport/generated"
	healthuc "github.com/kailas-cloud/docgate/internal/usecase/health"
)

const (
	serviceMessage     = "docgate with Elasticsearch"
	unavailableMessage = "Elasticsearch service unavailable"
	maxDocumentBytes   = 10 << 20

	invalidDocumentPrefix = "Invalid document format: "
	invalidQueryPrefix    = "Invalid query parameters: "
)

// Operation names used in logs.
const (
	opHealth        = "health"
	opCreateIndex   = "create_index"
	opWriteDocument = "write_document"
	opReadDocuments = "read_documents"
)

// routeOps names the operation behind each parameterized route.
var routeOps = map[string]string{
	"/index/{index_name}": opCreateIndex,
	"/write/{index_name}": opWriteDocument,
	"/read/{index_name}":  opReadDocuments,
}

// HealthChecker pings the store.
type HealthChecker interface {
	Check(ctx context.Context) (healthuc.Report, error)
}

// IndexProvisioner creates indices on demand.
type IndexProvisioner interface {
	Ensure(ctx context.Context, name string) (domain.IndexStatus, error)
}

// DocumentService writes and reads documents.
type DocumentService interface {
	Write(ctx context.Context, index string, raw []byte) (string, error)
	Read(ctx context.Context, index string, size *int) (domain.SearchResult, error)
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server implements generated.ServerInterface for the oapi-codegen chi router.
type Server struct {
	gen.Unimplemented
	health        HealthChecker
	indices       IndexProvisioner
	documents     DocumentService
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(
	health HealthChecker,
	indices IndexProvisioner,
	documents DocumentService,
	logger *zap.Logger,
) *Server {
	return &Server{
		health:    health,
		indices:   indices,
		documents: documents,
		logger:    logger,
		errorHandlers: []errorHandler{
			sentinelHandler(domain.ErrStoreUnavailable, http.StatusServiceUnavailable,
				gen.ErrorResponseCodeStoreUnavailable, fixedMessage(unavailableMessage)),
			sentinelHandler(domain.ErrIndexNotFound, http.StatusNotFound,
				gen.ErrorResponseCodeIndexNotFound, indexNotFoundMessage),
			sentinelHandler(domain.ErrInvalidRequest, http.StatusBadRequest,
				gen.ErrorResponseCodeBadRequest, invalidRequestMessage),
		},
	}
}

// HealthCheck handles GET /.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report, err := s.health.Check(r.Context())
	if err != nil {
		s.handleDomainError(w, r, opHealth, "", err)
		return
	}

	status := gen.ConnectedToElasticsearch
	if !report.Connected {
		s.log(r).Warn("store ping failed", zap.Error(report.Err))
		status = gen.ElasticsearchConnectionFailed
	}

	writeJSON(w, http.StatusOK, gen.HealthResponse{
		Message: serviceMessage,
		Status:  status,
	})
}

// CreateIndex handles POST /index/{index_name}.
func (s *Server) CreateIndex(w http.ResponseWriter, r *http.Request, indexName gen.IndexName) {
	status, err := s.indices.Ensure(r.Context(), indexName)
	if err != nil {
		s.handleDomainError(w, r, opCreateIndex, indexName, err)
		return
	}

	msg := fmt.Sprintf("Index '%s' created successfully", indexName)
	if status == domain.IndexExisting {
		msg = fmt.Sprintf("Index '%s' already exists", indexName)
		s.log(r).Info("Index already exists", zap.String("index", indexName))
	} else {
		s.log(r).Info("Created index", zap.String("index", indexName))
	}

	writeJSON(w, http.StatusCreated, gen.CreateIndexResponse{
		Message: msg,
		Status:  gen.CreateIndexResponseStatus(status),
	})
}

// WriteDocument handles POST /write/{index_name}.
func (s *Server) WriteDocument(w http.ResponseWriter, r *http.Request, indexName gen.IndexName) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentBytes))
	if err != nil {
		s.handleDomainError(w, r, opWriteDocument, indexName,
			domain.NewInvalidRequest(invalidDocumentPrefix+err.Error(), err))
		return
	}

	id, err := s.documents.Write(r.Context(), indexName, raw)
	if err != nil {
		s.handleDomainError(w, r, opWriteDocument, indexName, err)
		return
	}
	s.log(r).Info("Document added", zap.String("index", indexName), zap.String("document_id", id))

	writeJSON(w, http.StatusCreated, gen.WriteDocumentResponse{
		Message:    "Document added successfully",
		DocumentId: id,
	})
}

// ReadDocuments handles GET /read/{index_name}.
func (s *Server) ReadDocuments(
	w http.ResponseWriter,
	r *http.Request,
	indexName gen.IndexName,
	params gen.ReadDocumentsParams,
) {
	res, err := s.documents.Read(r.Context(), indexName, params.Size)
	if err != nil {
		s.handleDomainError(w, r, opReadDocuments, indexName, err)
		return
	}
	s.log(r).Info("Read documents",
		zap.String("index", indexName),
		zap.Int("count", len(res.Hits)),
		zap.Int64("total", res.Total),
	)
	s.log(r).Debug("Read document ids", zap.Strings("ids", domain.IDs(res.Hits)))

	docs := make([]json.RawMessage, len(res.Hits))
	for i, h := range res.Hits {
		docs[i] = h.Raw
	}

	writeJSON(w, http.StatusOK, gen.ReadDocumentsResponse{
		Total:     res.Total,
		Documents: docs,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics.Handler().ServeHTTP(w, r)
}

// ParamError reports parameter binding failures as 400 through the error table.
func (s *Server) ParamError(w http.ResponseWriter, r *http.Request, err error) {
	op, index := "bind_params", ""
	if rctx := gochi.RouteContext(r.Context()); rctx != nil {
		if name, ok := routeOps[rctx.RoutePattern()]; ok {
			op = name
		}
		index = rctx.URLParam("index_name")
	}
	s.handleDomainError(w, r, op, index, domain.NewInvalidRequest(invalidQueryPrefix+err.Error(), err))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(
	sentinel error,
	status int,
	code gen.ErrorResponseCode,
	message func(error) string,
) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, message(err))
		return true
	}
}

func fixedMessage(msg string) func(error) string {
	return func(error) string { return msg }
}

func indexNotFoundMessage(err error) string {
	var nf *domain.IndexNotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return "Index does not exist"
}

func invalidRequestMessage(err error) string {
	var ire *domain.InvalidRequestError
	if errors.As(err, &ire) {
		return ire.Message
	}
	return err.Error()
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, op, index string, err error) {
	log := s.log(r).With(zap.String("operation", op), zap.String("index", index))
	log.Warn("domain error", zap.Error(err))
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}

// log returns the request-scoped logger, falling back to the server logger.
func (s *Server) log(r *http.Request) *zap.Logger {
	return logpkg.FromContextOr(r.Context(), s.logger)
}
