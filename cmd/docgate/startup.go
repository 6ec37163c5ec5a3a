package main

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type readinessWaiter interface {
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// awaitStore optionally waits for the store to answer a ping. A store that
// stays down is logged and tolerated: requests report it through the health
// route and 503 replies.
func awaitStore(ctx context.Context, store readinessWaiter, timeout time.Duration, logger *zap.Logger) {
	if timeout > 0 {
		if err := store.WaitForReady(ctx, timeout); err != nil {
			logger.Warn("Elasticsearch not reachable yet, serving anyway",
				zap.Duration("waited", timeout), zap.Error(err))
			return
		}
		logger.Info("Elasticsearch answered ping")
	}
	logger.Info("Elasticsearch client ready")
}
