package chi

import (
	"net/http"

	gochi "github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/docgate/internal/metrics"
	gen "github.com/kailas-cloud/docgate/internal/transport/generated"
)

// NewRouter mounts the API on a chi router with the standard middleware chain.
func NewRouter(server *Server, logger *zap.Logger) http.Handler {
	r := gochi.NewRouter()
	r.Use(JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEvent(logger))
	r.Use(metrics.Middleware())

	return gen.HandlerWithOptions(server, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: server.ParamError,
	})
}
