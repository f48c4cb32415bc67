// Package search turns a raw query string into a bounded, ordered SQL
// statement: tokenize, classify the match mode, build per-term predicates,
// and compose the final SELECT.
package search

import "strings"

// Tokenize splits a raw query into non-empty terms on runs of whitespace.
// A blank query yields a nil slice; callers treat that as "no search" and
// fall back to the default listing, never as an error.
func Tokenize(query string) []string {
	return strings.Fields(query)
}
