package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/soliddocs"
	"github.com/fwojciec/soliddocs/search"
)

// Dependencies holds the services and streams commands run against.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Searcher *search.Searcher
	Resolver *soliddocs.Resolver
}

// SearchCmd fetches and prints documentation sections for a topic.
type SearchCmd struct {
	Topic string
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "📚 Fetching SolidJS documentation for: %s\n", c.Topic)

	progress := func(p soliddocs.SearchProgress) {
		switch p.Stage {
		case soliddocs.StageCacheHit:
			fmt.Fprintln(deps.Stdout, "✅ Using cached documentation (less than 1 hour old)")
		case soliddocs.StageFetching:
			fmt.Fprintln(deps.Stdout, "⬇️  Fetching fresh documentation...")
		case soliddocs.StageFetched:
			fmt.Fprintln(deps.Stdout, "✅ Documentation fetched successfully")
		case soliddocs.StageSearching:
			fmt.Fprintf(deps.Stdout, "🔍 Searching for pattern: %q\n", p.Detail)
		}
	}

	matches, err := deps.Searcher.Search(deps.Ctx, c.Topic, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "❌ error: %s\n", soliddocs.ErrorMessage(err))
		return err
	}

	// An empty match set is informational, not a failure.
	if len(matches) == 0 {
		fmt.Fprint(deps.Stdout, soliddocs.FormatSuggestions(c.Topic, deps.Resolver.Topics()))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "✅ Found %d relevant file(s)\n", len(matches))
	for _, section := range matches {
		fmt.Fprint(deps.Stdout, soliddocs.FormatSection(section))
	}

	return nil
}
