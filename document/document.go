// SPDX-License-Identifier: GPL-3.0-or-later
package document

import (
	"regexp"
	"strings"
	"unicode"
)

// EntryMarker starts every entry line of a reading list.
const EntryMarker = "* "

var entryPrefix = regexp.MustCompile(`^\*\s*(\{\{at\|.*?\}\}\s*)?`)

// Merge appends entries to existing as marked entry lines and removes
// duplicate entry lines, keeping the first occurrence of each.
func Merge(existing string, entries []string) string {
	bits := []string{}
	if trimmed := strings.TrimRightFunc(existing, unicode.IsSpace); len(trimmed) > 0 {
		bits = append(bits, trimmed)
	}
	for _, entry := range entries {
		bits = append(bits, EntryMarker+entry)
	}

	return Dedup(strings.Join(bits, "\n"))
}

// Dedup drops every entry line whose key was already seen. Other lines are
// kept as they are. The result ends with exactly one newline.
func Dedup(text string) string {
	lines := []string{}
	seen := map[string]bool{}
	for _, line := range strings.Split(strings.TrimRightFunc(text, unicode.IsSpace), "\n") {
		if key, ok := DedupKey(line); ok {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n") + "\n"
}

// DedupKey returns the content of an entry line without its marker and
// timestamp template. ok is false for lines that are not entries.
func DedupKey(line string) (key string, ok bool) {
	loc := entryPrefix.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	return line[loc[1]:], true
}

// Entries returns the dedup keys of all entry lines in text, in order.
func Entries(text string) []string {
	keys := []string{}
	for _, line := range strings.Split(text, "\n") {
		if key, ok := DedupKey(line); ok {
			keys = append(keys, key)
		}
	}
	return keys
}
