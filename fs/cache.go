// Package fs provides filesystem-backed storage for the documentation
// cache artifact.
package fs

import (
	"context"
	"os"
	"time"

	"github.com/fwojciec/soliddocs"
)

// Ensure Cache implements soliddocs.Cache at compile time.
var _ soliddocs.Cache = (*Cache)(nil)

// Cache stores the consolidated documentation artifact as a single flat
// file and judges freshness by the file's modification time. The file is
// shared across invocations without locking; concurrent runs may race on
// reading and overwriting it.
type Cache struct {
	path string
	ttl  time.Duration
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the freshness window.
// Defaults to soliddocs.DefaultFreshFor (1h) if not specified.
func WithTTL(d time.Duration) Option {
	return func(c *Cache) {
		c.ttl = d
	}
}

// NewCache creates a Cache for the artifact at path.
func NewCache(path string, opts ...Option) *Cache {
	c := &Cache{
		path: path,
		ttl:  soliddocs.DefaultFreshFor,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fresh reports whether the artifact exists and its age at now is strictly
// less than the freshness window. Clock skew and filesystem timestamp
// anomalies are accepted, not guarded against.
func (c *Cache) Fresh(now time.Time) bool {
	info, err := os.Stat(c.path)
	if err != nil {
		return false
	}
	return now.Sub(info.ModTime()) < c.ttl
}

// Read returns the artifact text.
func (c *Cache) Read(ctx context.Context) (string, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", soliddocs.Errorf(soliddocs.ENOTFOUND, "cache artifact %q does not exist", c.path)
		}
		return "", soliddocs.Errorf(soliddocs.EINTERNAL, "reading cache artifact %q: %v", c.path, err)
	}
	return string(data), nil
}

// Path returns the artifact path.
func (c *Cache) Path() string {
	return c.path
}
