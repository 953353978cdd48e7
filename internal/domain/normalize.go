package domain

import (
	"strings"
	"unicode/utf8"
)

// nameStripper removes the decoration characters that never take part in matching.
var nameStripper = strings.NewReplacer("*", "", "(", "", ")", "")

// Normalize returns the canonical form of a winery or producer name: uppercase,
// with "*", "(" and ")" removed, surrounding whitespace trimmed and inner
// whitespace runs collapsed to a single space.
// Stripping runs before collapsing so that Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	if name == "" {
		return ""
	}
	stripped := nameStripper.Replace(strings.ToUpper(name))
	return strings.Join(strings.Fields(stripped), " ")
}

// significantWords splits a normalized name into words longer than two characters.
func significantWords(normalized string) []string {
	fields := strings.Fields(normalized)
	words := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 2 {
			words = append(words, f)
		}
	}
	return words
}
