package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/soliddocs"
)

// Ensure LoggingCache implements soliddocs.Cache.
var _ soliddocs.Cache = (*LoggingCache)(nil)

// LoggingCache wraps a Cache with debug logging.
type LoggingCache struct {
	next   soliddocs.Cache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next soliddocs.Cache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Fresh delegates to the wrapped cache and logs the verdict.
func (c *LoggingCache) Fresh(now time.Time) bool {
	fresh := c.next.Fresh(now)
	c.logger.Info("cache freshness check",
		"path", c.next.Path(),
		"fresh", fresh,
	)
	return fresh
}

// Read delegates to the wrapped cache and logs the artifact size, content
// hash, and duration. The hash identifies the artifact version across runs.
func (c *LoggingCache) Read(ctx context.Context) (text string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache read",
			"path", c.next.Path(),
			"bytes", len(text),
			"hash", fmt.Sprintf("%016x", xxhash.Sum64String(text)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Read(ctx)
}

// Path delegates to the wrapped cache.
func (c *LoggingCache) Path() string {
	return c.next.Path()
}
