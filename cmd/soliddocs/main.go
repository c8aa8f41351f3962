package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/soliddocs"
	"github.com/fwojciec/soliddocs/fs"
	"github.com/fwojciec/soliddocs/gitingest"
	"github.com/fwojciec/soliddocs/search"
	sdslog "github.com/fwojciec/soliddocs/slog"
	"github.com/fwojciec/soliddocs/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Cache artifact path. Set before calling Run().
	CachePath string

	// Remote documentation repository URL.
	RepoURL string

	// Topic override file path.
	TopicsPath string

	// Searcher for end-to-end testing. When nil, Run wires the real
	// filesystem cache and gitingest ingester.
	Searcher *search.Searcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CachePath:  defaultCachePath(),
		RepoURL:    defaultRepoURL(),
		TopicsPath: defaultTopicsPath(),
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Topic string `arg:"" help:"Documentation topic to search for"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("soliddocs"),
		kong.Description("Fetch and search SolidJS documentation"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Topic overrides are optional; a malformed file is a warning, not a
	// reason to fail the search.
	overrides, err := yaml.LoadTopics(m.TopicsPath)
	if err != nil {
		fmt.Fprintf(stderr, "warning: ignoring topic overrides: %s\n", soliddocs.ErrorMessage(err))
		overrides = nil
	}
	resolver := soliddocs.NewResolver(overrides)

	// Handle missing topic: usage plus example topics.
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "\n📚 Example topics:")
		for _, topic := range resolver.Topics() {
			fmt.Fprintf(stderr, "  - %s\n", topic)
		}
		return fmt.Errorf("no topic specified. Run 'soliddocs --help' for usage")
	}

	// Handle help flags using Kong
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	searcher := m.Searcher
	if searcher == nil {
		var cache soliddocs.Cache = fs.NewCache(m.CachePath)
		var ingester soliddocs.Ingester = gitingest.NewIngester(m.RepoURL)

		if os.Getenv("SOLIDDOCS_DEBUG") != "" {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			cache = sdslog.NewLoggingCache(cache, logger)
			ingester = sdslog.NewLoggingIngester(ingester, logger)
		}

		searcher = &search.Searcher{Cache: cache, Ingester: ingester}
	}
	if searcher.Resolver == nil {
		searcher.Resolver = resolver
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Searcher: searcher,
		Resolver: searcher.Resolver,
	}

	cmd := &SearchCmd{Topic: cli.Topic}
	return cmd.Run(deps)
}

func defaultCachePath() string {
	if path := os.Getenv("SOLIDDOCS_CACHE"); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "solidjs-docs.txt")
}

func defaultRepoURL() string {
	if url := os.Getenv("SOLIDDOCS_REPO"); url != "" {
		return url
	}
	return "https://github.com/solidjs/solid-docs"
}

func defaultTopicsPath() string {
	if path := os.Getenv("SOLIDDOCS_TOPICS"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".soliddocs", "topics.yaml")
}
