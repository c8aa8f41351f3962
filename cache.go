package soliddocs

import (
	"context"
	"time"
)

// DefaultFreshFor is how long a fetched cache artifact stays fresh.
const DefaultFreshFor = time.Hour

// Cache owns the locally stored consolidated documentation artifact: its
// path, its freshness window, and access to its text.
type Cache interface {
	// Fresh reports whether the artifact exists and is younger than the
	// freshness window at the given time. An age exactly equal to the
	// window is stale.
	Fresh(now time.Time) bool

	// Read returns the artifact text.
	// Returns ENOTFOUND if the artifact does not exist.
	Read(ctx context.Context) (string, error)

	// Path returns the filesystem path the artifact is written to.
	Path() string
}
