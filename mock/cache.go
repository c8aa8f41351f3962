package mock

import (
	"context"
	"time"

	"github.com/fwojciec/soliddocs"
)

var _ soliddocs.Cache = (*Cache)(nil)

// Cache is a mock implementation of soliddocs.Cache.
type Cache struct {
	FreshFn func(now time.Time) bool
	ReadFn  func(ctx context.Context) (string, error)
	PathFn  func() string
}

func (c *Cache) Fresh(now time.Time) bool {
	return c.FreshFn(now)
}

func (c *Cache) Read(ctx context.Context) (string, error) {
	return c.ReadFn(ctx)
}

func (c *Cache) Path() string {
	return c.PathFn()
}
