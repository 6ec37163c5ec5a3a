package elasticsearch

import (
	"net/http"
	"time"

	"github.com/elastic/elastic-transport-go/v8/elastictransport"
	"go.uber.org/zap"
)

var _ elastictransport.Logger = (*transportLogger)(nil)

// transportLogger writes one debug line per store round trip.
type transportLogger struct {
	logger *zap.Logger
}

func newTransportLogger(logger *zap.Logger) *transportLogger {
	return &transportLogger{logger: logger.Named("elasticsearch")}
}

// LogRoundTrip implements elastictransport.Logger.
func (l *transportLogger) LogRoundTrip(
	req *http.Request, res *http.Response, err error, start time.Time, dur time.Duration,
) error {
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Time("start", start),
		zap.Duration("duration", dur),
	}
	if res != nil {
		fields = append(fields, zap.Int("status", res.StatusCode))
	}
	if err != nil {
		l.logger.Debug("elasticsearch round trip failed", append(fields, zap.Error(err))...)
		return nil
	}
	l.logger.Debug("elasticsearch round trip", fields...)
	return nil
}

// RequestBodyEnabled implements elastictransport.Logger.
func (l *transportLogger) RequestBodyEnabled() bool { return false }

// ResponseBodyEnabled implements elastictransport.Logger.
func (l *transportLogger) ResponseBodyEnabled() bool { return false }
