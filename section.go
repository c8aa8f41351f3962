package soliddocs

import (
	"regexp"
	"strings"
)

// Section represents one file extracted from the consolidated cache
// artifact.
type Section struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// fileDelimiterRe matches the delimiter blocks gitingest writes between
// files: a line of 40 or more '=' characters, a "FILE: <name>" line, and
// another line of 40 or more '=' characters.
var fileDelimiterRe = regexp.MustCompile(`(?m)^={40,}\nFILE: (.+)\n={40,}\n?`)

// SplitSections parses consolidated artifact text into sections, one per
// delimiter block, in order of appearance. Content runs until the next
// delimiter block or the end of the text. Text before the first delimiter
// is discarded; text with no delimiter blocks yields no sections.
//
// The delimiter convention is assumed, not verified: non-conforming text
// degrades silently to zero sections.
func SplitSections(text string) []Section {
	matches := fileDelimiterRe.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		sections = append(sections, Section{
			Filename: text[m[2]:m[3]],
			Content:  text[m[1]:end],
		})
	}
	return sections
}

// MatchSections returns the sections whose filename or content contains
// pattern as a case-insensitive substring, preserving input order. Plain
// substring containment only: short patterns can match unrelated filenames.
func MatchSections(sections []Section, pattern string) []Section {
	pattern = strings.ToLower(pattern)

	var matches []Section
	for _, s := range sections {
		if strings.Contains(strings.ToLower(s.Filename), pattern) ||
			strings.Contains(strings.ToLower(s.Content), pattern) {
			matches = append(matches, s)
		}
	}
	return matches
}
