package soliddocs

import (
	"sort"
	"strings"
)

// defaultPatterns maps common topics to file name fragments in the
// solid-docs repository. Patterns are matched as case-insensitive
// substrings against section filenames and content.
var defaultPatterns = map[string]string{
	"createSignal":   "create-signal",
	"createMemo":     "create-memo",
	"createEffect":   "create-effect",
	"createResource": "create-resource",
	"createStore":    "stores.mdx",
	"Suspense":       "suspense.mdx",
	"Show":           "show.mdx",
	"For":            "for.mdx",
	"children":       "children.mdx",
	"splitProps":     "props.mdx",
	"batch":          "reactivity",
	"reactivity":     "intro-to-reactivity",
	"signals":        "signals.mdx",
	"effects":        "effects.mdx",
	"stores":         "stores.mdx",
	"context":        "context.mdx",
}

// Resolver maps topic names to search patterns.
type Resolver struct {
	patterns map[string]string
}

// NewResolver returns a Resolver seeded with the built-in topic map.
// Entries in overrides take precedence over built-ins.
func NewResolver(overrides map[string]string) *Resolver {
	patterns := make(map[string]string, len(defaultPatterns)+len(overrides))
	for topic, pattern := range defaultPatterns {
		patterns[topic] = pattern
	}
	for topic, pattern := range overrides {
		patterns[topic] = pattern
	}
	return &Resolver{patterns: patterns}
}

// Resolve returns the search pattern for a topic. The lookup is an exact
// match; unknown topics resolve to their own lowercased text. Total over
// all string inputs, never fails.
func (r *Resolver) Resolve(topic string) string {
	if pattern, ok := r.patterns[topic]; ok {
		return pattern
	}
	return strings.ToLower(topic)
}

// Topics returns the known topic names in sorted order.
func (r *Resolver) Topics() []string {
	topics := make([]string, 0, len(r.patterns))
	for topic := range r.patterns {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}
