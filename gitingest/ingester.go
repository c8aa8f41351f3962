// Package gitingest runs the external gitingest tool to consolidate a
// remote repository's documentation into a single text artifact.
package gitingest

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/fwojciec/soliddocs"
)

// DefaultCommand is the gitingest binary invoked by the Ingester.
const DefaultCommand = "gitingest"

// DefaultIncludes restricts ingestion to markdown-family files.
var DefaultIncludes = []string{"*.md", "*.mdx"}

// Ensure Ingester implements soliddocs.Ingester at compile time.
var _ soliddocs.Ingester = (*Ingester)(nil)

// Ingester invokes gitingest as a subprocess. gitingest's own behavior
// (network access, authentication, rate limiting) is outside this package's
// responsibility; it is a black box returning an exit code and a text
// artifact at the output path.
type Ingester struct {
	repoURL  string
	command  string
	includes []string
}

// Option configures an Ingester.
type Option func(*Ingester)

// WithCommand sets the gitingest binary name or path.
// Defaults to DefaultCommand if not specified.
func WithCommand(command string) Option {
	return func(in *Ingester) {
		in.command = command
	}
}

// WithIncludes sets the include-filter globs passed to gitingest.
// Defaults to DefaultIncludes (markdown and MDX) if not specified.
func WithIncludes(includes ...string) Option {
	return func(in *Ingester) {
		in.includes = includes
	}
}

// NewIngester creates an Ingester that fetches repoURL.
func NewIngester(repoURL string, opts ...Option) *Ingester {
	in := &Ingester{
		repoURL:  repoURL,
		command:  DefaultCommand,
		includes: DefaultIncludes,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Ingest runs gitingest synchronously and waits for it to exit. No timeout
// is imposed beyond the context's own deadline. On failure the error
// carries the captured stderr text; any stale artifact at dest is left
// as-is by this package.
func (in *Ingester) Ingest(ctx context.Context, dest string) error {
	args := []string{in.repoURL, "-o", dest}
	for _, include := range in.includes {
		args = append(args, "-i", include)
	}

	cmd := exec.CommandContext(ctx, in.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return soliddocs.Errorf(soliddocs.EUNAVAILABLE, "gitingest failed for %s: %s", in.repoURL, detail)
	}

	return nil
}
