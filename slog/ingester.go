// Package slog provides logging decorators for soliddocs domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/soliddocs"
)

// Ensure LoggingIngester implements soliddocs.Ingester.
var _ soliddocs.Ingester = (*LoggingIngester)(nil)

// LoggingIngester wraps an Ingester with debug logging.
type LoggingIngester struct {
	next   soliddocs.Ingester
	logger *slog.Logger
}

// NewLoggingIngester creates a new LoggingIngester.
func NewLoggingIngester(next soliddocs.Ingester, logger *slog.Logger) *LoggingIngester {
	return &LoggingIngester{next: next, logger: logger}
}

// Ingest delegates to the wrapped ingester and logs the operation.
func (in *LoggingIngester) Ingest(ctx context.Context, dest string) (err error) {
	defer func(begin time.Time) {
		in.logger.Info("documentation ingest",
			"dest", dest,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return in.next.Ingest(ctx, dest)
}
