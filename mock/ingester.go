package mock

import (
	"context"

	"github.com/fwojciec/soliddocs"
)

var _ soliddocs.Ingester = (*Ingester)(nil)

// Ingester is a mock implementation of soliddocs.Ingester.
type Ingester struct {
	IngestFn func(ctx context.Context, dest string) error
}

func (in *Ingester) Ingest(ctx context.Context, dest string) error {
	return in.IngestFn(ctx, dest)
}
