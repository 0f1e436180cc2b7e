// Package ats scores raw resume text against a job description and produces
// line-level, section-level, and document-level remediation feedback.
// Every function in this package is pure: no I/O, no shared state, and
// identical inputs always produce identical output.
package ats

import (
	"regexp"
	"strings"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// normalizeText collapses whitespace runs to single spaces, trims, and
// lowercases. Used for substring-containment checks.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " ")))
}

// normalizeLine collapses whitespace runs and trims, preserving case.
// Used for display and rewrites, not for matching.
func normalizeLine(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}

// splitLines normalizes line endings, replaces tabs with spaces, and returns
// the normalized non-empty lines in original order. Because blank lines are
// dropped, the index of a kept line is not the original file line number;
// all downstream line numbers are 1-based over kept lines.
func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	raw = strings.ReplaceAll(raw, "\t", " ")

	var out []string
	for _, l := range strings.Split(raw, "\n") {
		if cleaned := normalizeLine(l); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
