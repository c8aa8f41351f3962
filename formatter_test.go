package soliddocs_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/soliddocs"
	"github.com/stretchr/testify/assert"
)

func TestFormatSection(t *testing.T) {
	t.Parallel()

	t.Run("emits filename header and full content when short", func(t *testing.T) {
		t.Parallel()

		out := soliddocs.FormatSection(soliddocs.Section{
			Filename: "create-signal.mdx",
			Content:  "Some signal content\n",
		})

		assert.Contains(t, out, "FILE: create-signal.mdx")
		assert.Contains(t, out, "Some signal content")
		assert.NotContains(t, out, "truncated")
	})

	t.Run("truncates content beyond 5000 characters and notes the omission", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("a", 6000)

		out := soliddocs.FormatSection(soliddocs.Section{
			Filename: "long.mdx",
			Content:  content,
		})

		assert.Contains(t, out, strings.Repeat("a", 5000))
		assert.NotContains(t, out, strings.Repeat("a", 5001))
		assert.Contains(t, out, "(truncated, 1000 more characters)")
	})

	t.Run("keeps content exactly at the limit untouched", func(t *testing.T) {
		t.Parallel()

		content := strings.Repeat("b", 5000)

		out := soliddocs.FormatSection(soliddocs.Section{
			Filename: "exact.mdx",
			Content:  content,
		})

		assert.Contains(t, out, content)
		assert.NotContains(t, out, "truncated")
	})

	t.Run("counts characters, not bytes", func(t *testing.T) {
		t.Parallel()

		// 5001 two-byte runes: one character over the limit.
		content := strings.Repeat("é", 5001)

		out := soliddocs.FormatSection(soliddocs.Section{
			Filename: "unicode.mdx",
			Content:  content,
		})

		assert.Contains(t, out, "(truncated, 1 more characters)")
	})
}

func TestFormatSuggestions(t *testing.T) {
	t.Parallel()

	out := soliddocs.FormatSuggestions("nosuchtopic", []string{"Show", "Suspense", "createSignal"})

	assert.Contains(t, out, "No documentation found for \"nosuchtopic\"")
	assert.Contains(t, out, "Try one of these topics")
	assert.Contains(t, out, "  - Show\n")
	assert.Contains(t, out, "  - Suspense\n")
	assert.Contains(t, out, "  - createSignal\n")
}
