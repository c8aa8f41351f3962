// Package search orchestrates the fetch-and-filter documentation pipeline:
// resolve the topic to a pattern, refresh the cache artifact if stale, then
// split the artifact into sections and match.
package search

import (
	"context"
	"time"

	"github.com/fwojciec/soliddocs"
)

// Searcher runs the documentation search pipeline. The flow is strictly
// linear with one conditional branch (fetch vs. cache hit) and one failure
// exit (a failed fetch aborts before the artifact is read).
type Searcher struct {
	Cache    soliddocs.Cache
	Ingester soliddocs.Ingester
	Resolver *soliddocs.Resolver

	// Now returns the current time for freshness checks.
	// Defaults to time.Now.
	Now func() time.Time
}

// Search returns the sections matching topic's resolved pattern, in order
// of appearance in the cache artifact. An empty result is not an error.
// progress may be nil.
func (s *Searcher) Search(ctx context.Context, topic string, progress soliddocs.SearchProgressFunc) ([]soliddocs.Section, error) {
	if topic == "" {
		return nil, soliddocs.Errorf(soliddocs.EINVALID, "topic required")
	}

	report := func(stage soliddocs.SearchStage, detail string) {
		if progress != nil {
			progress(soliddocs.SearchProgress{Stage: stage, Detail: detail})
		}
	}

	now := s.Now
	if now == nil {
		now = time.Now
	}

	report(soliddocs.StageResolving, topic)
	pattern := s.Resolver.Resolve(topic)

	if s.Cache.Fresh(now()) {
		report(soliddocs.StageCacheHit, s.Cache.Path())
	} else {
		report(soliddocs.StageFetching, s.Cache.Path())
		if err := s.Ingester.Ingest(ctx, s.Cache.Path()); err != nil {
			return nil, err
		}
		report(soliddocs.StageFetched, s.Cache.Path())
	}

	text, err := s.Cache.Read(ctx)
	if err != nil {
		return nil, err
	}

	report(soliddocs.StageSearching, pattern)
	return soliddocs.MatchSections(soliddocs.SplitSections(text), pattern), nil
}
