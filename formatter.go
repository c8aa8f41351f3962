package soliddocs

import (
	"fmt"
	"strings"
)

// MaxSectionChars is the maximum number of content characters displayed for
// a single section before truncation.
const MaxSectionChars = 5000

// sectionRule separates rendered sections in the output.
var sectionRule = strings.Repeat("=", 80)

// FormatSection formats a section for display: the filename as a header,
// then the content truncated to the first MaxSectionChars characters with a
// note of how many characters were omitted.
func FormatSection(s Section) string {
	var b strings.Builder
	b.WriteString("\n📄 FILE: ")
	b.WriteString(s.Filename)
	b.WriteString("\n\n")
	b.WriteString(sectionRule)
	b.WriteString("\n")

	if runes := []rune(s.Content); len(runes) > MaxSectionChars {
		b.WriteString(string(runes[:MaxSectionChars]))
		fmt.Fprintf(&b, "\n... (truncated, %d more characters)\n", len(runes)-MaxSectionChars)
	} else {
		b.WriteString(s.Content)
	}

	b.WriteString("\n")
	b.WriteString(sectionRule)
	b.WriteString("\n")
	return b.String()
}

// FormatSuggestions formats the no-match notice for a topic together with
// the known topics to try instead.
func FormatSuggestions(topic string, topics []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "❌ No documentation found for %q\n", topic)
	b.WriteString("\n💡 Try one of these topics:\n")
	for _, t := range topics {
		b.WriteString("  - ")
		b.WriteString(t)
		b.WriteString("\n")
	}
	return b.String()
}
