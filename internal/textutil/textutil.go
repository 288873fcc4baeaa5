// Package textutil holds the small text predicates shared by the feature
// extractor and the content assembler, so filtering logic cannot drift
// between call sites.
package textutil

import "strings"

// ContainsAny reports whether text contains any of the given substrings,
// case-insensitively.
func ContainsAny(text string, substrings []string) bool {
	lower := strings.ToLower(text)
	for _, s := range substrings {
		if s == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// WordCount returns the number of whitespace-separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// FirstSentence returns the text before the first period, trimmed.
// When s has no period the whole trimmed string is returned.
func FirstSentence(s string) string {
	if idx := strings.Index(s, "."); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return strings.TrimSpace(s)
}

// TruncateWords returns at most n leading words of s joined by single spaces.
func TruncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// IsBlank reports whether s is empty, whitespace, or the literal "nan"
// artifact that partially-populated catalog exports carry.
func IsBlank(s string) bool {
	trimmed := strings.TrimSpace(s)
	return trimmed == "" || strings.EqualFold(trimmed, "nan")
}
