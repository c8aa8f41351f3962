package soliddocs

import "context"

// Ingester populates a cache artifact with consolidated documentation text
// from a remote repository. Implementations wrap an external ingestion tool
// and treat it as an opaque collaborator returning an exit code and a text
// artifact.
type Ingester interface {
	// Ingest fetches the remote repository's documentation and writes the
	// consolidated text to dest, overwriting any existing file. It waits
	// synchronously for the external tool; there are no retries and no
	// partial results.
	// Returns EUNAVAILABLE if the external tool fails.
	Ingest(ctx context.Context, dest string) error
}
