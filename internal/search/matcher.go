package search

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// jobSearchFields are the columns a job-search term is matched against.
// c.name is deliberate: a job search must surface results when the query
// matches the employer, not just the job content.
var jobSearchFields = []string{
	"j.title",
	"j.description",
	"j.location",
	"j.city",
	"j.state",
	"j.zip_code",
	"j.requirements",
	"c.name",
}

// companySearchFields are the columns a company-search term is matched against.
var companySearchFields = []string{
	"c.name",
	"c.industry",
	"c.location",
	"c.description",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// termPredicate builds the per-term predicate: the term as a
// case-insensitive substring of any one of the given columns. Presence is
// binary per field; there is no per-field weighting.
func termPredicate(term string, fields []string) sq.Sqlizer {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	or := make(sq.Or, 0, len(fields))
	for _, f := range fields {
		or = append(or, sq.ILike{f: pattern})
	}
	return or
}

// termPredicates maps each term to its field predicate, preserving order.
func termPredicates(terms []string, fields []string) []sq.Sqlizer {
	preds := make([]sq.Sqlizer, 0, len(terms))
	for _, t := range terms {
		preds = append(preds, termPredicate(t, fields))
	}
	return preds
}
