package search

import "strings"

// Mode is the logical combinator applied across per-term predicates.
type Mode string

const (
	// ModeAnd requires every term to match somewhere.
	ModeAnd Mode = "AND"
	// ModeOr accepts any single term matching.
	ModeOr Mode = "OR"
)

// companySuffixWords is the built-in vocabulary of words that mark a query
// as fragments of one company name ("Acme Financial Group") rather than
// independent attribute filters ("azure 89119").
//
// This is a known heuristic, not a guarantee: a single matching word flips
// the whole query to OR. Ambiguous queries may under- or over-match; that
// is accepted. Keep the list in sync with product before editing.
var companySuffixWords = []string{
	"inc", "corp", "llc", "ltd", "company", "companies", "group",
	"solutions", "systems", "technologies", "services", "investments",
	"financial", "bank", "consulting",
}

// Classifier decides the match mode for a term sequence.
type Classifier struct {
	suffixes map[string]struct{}
}

// NewClassifier builds a Classifier from the built-in vocabulary plus any
// extra words (e.g. from SEARCH_VOCABULARY_FILE). Extra words extend the
// list; they cannot remove built-ins.
func NewClassifier(extraWords ...string) *Classifier {
	suffixes := make(map[string]struct{}, len(companySuffixWords)+len(extraWords))
	for _, w := range companySuffixWords {
		suffixes[w] = struct{}{}
	}
	for _, w := range extraWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			suffixes[w] = struct{}{}
		}
	}
	return &Classifier{suffixes: suffixes}
}

// Classify returns the mode for the given terms, in this precedence:
//  1. zero or one term → ModeAnd (nothing to combine);
//  2. any term equals a company-suffix word (case-insensitive) → ModeOr;
//  3. otherwise → ModeAnd.
func (c *Classifier) Classify(terms []string) Mode {
	if len(terms) <= 1 {
		return ModeAnd
	}
	for _, t := range terms {
		if _, ok := c.suffixes[strings.ToLower(t)]; ok {
			return ModeOr
		}
	}
	return ModeAnd
}
