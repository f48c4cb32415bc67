package search

import (
	sq "github.com/Masterminds/squirrel"
)

// Query is a classified term sequence, ready for composition.
type Query struct {
	Terms []string
	Mode  Mode
}

// psql builds statements with $n placeholders for pgx.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// jobColumns is the job-search projection: job fields, the employer and
// category joins, and the two demand counters (category-matched job
// seekers, actual application rows — kept separate on purpose).
var jobColumns = []string{
	"j.id",
	"j.title",
	"COALESCE(j.description, '')",
	"COALESCE(j.requirements, '')",
	"COALESCE(j.location, '')",
	"COALESCE(j.city, '')",
	"COALESCE(j.state, '')",
	"COALESCE(j.zip_code, '')",
	"COALESCE(j.country, '')",
	"j.created_at",
	"j.updated_at",
	"c.id",
	"c.name",
	"c.logo_url",
	"c.website",
	"c.description",
	"cat.id",
	"cat.name",
	"(SELECT COUNT(*) FROM users u WHERE u.role = 'job_seeker' AND u.category_id = j.category_id) AS seeker_count",
	"(SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id) AS application_count",
}

var companyColumns = []string{
	"c.id",
	"c.name",
	"COALESCE(c.industry, '')",
	"COALESCE(c.location, '')",
	"COALESCE(c.description, '')",
	"COALESCE(c.logo_url, '')",
	"COALESCE(c.website, '')",
}

// JobsSQL composes the job search statement: visibility filter, term
// predicates combined per mode, recency order (id tiebreak, so identical
// calls return identical orderings), bounded result set.
// With zero terms no predicate is added at all — the statement degrades to
// the capped, recency-ordered listing of active jobs, never to an
// always-true scan.
func JobsSQL(q Query, limit int) (string, []any, error) {
	b := psql.Select(jobColumns...).
		From("jobs j").
		LeftJoin("companies c ON c.id = j.company_id").
		LeftJoin("categories cat ON cat.id = j.category_id").
		Where(sq.Eq{"j.is_active": true}).
		OrderBy("j.created_at DESC", "j.id").
		Limit(uint64(limit))

	if len(q.Terms) > 0 {
		b = b.Where(combine(q.Mode, termPredicates(q.Terms, jobSearchFields)))
	}

	return b.ToSql()
}

// CompaniesSQL composes the company search statement. Companies carry no
// recency signal, so name order is used for determinism.
func CompaniesSQL(q Query, limit int) (string, []any, error) {
	b := psql.Select(companyColumns...).
		From("companies c").
		Where(sq.Eq{"c.status": "approved"}).
		OrderBy("c.name ASC", "c.id").
		Limit(uint64(limit))

	if len(q.Terms) > 0 {
		b = b.Where(combine(q.Mode, termPredicates(q.Terms, companySearchFields)))
	}

	return b.ToSql()
}

func combine(mode Mode, preds []sq.Sqlizer) sq.Sqlizer {
	if mode == ModeOr {
		return sq.Or(preds)
	}
	return sq.And(preds)
}
