// Package store executes the composed search and aggregation statements
// against PostgreSQL. It is strictly read-only: every table it touches is
// owned and mutated by the platform's CRUD services.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobport/search-service/internal/model"
	"jobport/search-service/internal/search"
)

// Postgres runs the discovery queries over a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// New returns a Postgres store backed by the given pool.
func New(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// SearchJobs executes a composed job search and scans the rows.
func (s *Postgres) SearchJobs(ctx context.Context, q search.Query, limit int) ([]model.JobRow, error) {
	sql, args, err := search.JobsSQL(q, limit)
	if err != nil {
		return nil, fmt.Errorf("compose job search: %w", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("job search query: %w", err)
	}
	defer rows.Close()

	return scanJobRows(rows)
}

// SearchCompanies executes a composed company search and scans the rows.
func (s *Postgres) SearchCompanies(ctx context.Context, q search.Query, limit int) ([]model.CompanyRow, error) {
	sql, args, err := search.CompaniesSQL(q, limit)
	if err != nil {
		return nil, fmt.Errorf("compose company search: %w", err)
	}

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("company search query: %w", err)
	}
	defer rows.Close()

	companies := make([]model.CompanyRow, 0)
	for rows.Next() {
		var c model.CompanyRow
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Industry, &c.Location,
			&c.Description, &c.LogoURL, &c.Website,
		); err != nil {
			return nil, fmt.Errorf("company search scan: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// topCompaniesSQL aggregates per approved company with a recorded approver:
// job_count counts active jobs, vendor_count counts approved vendors.
// Companies without a single active job are dropped.
const topCompaniesSQL = `
	SELECT c.id, c.name, COALESCE(c.logo_url, ''), COALESCE(c.industry, ''),
	       COALESCE(c.location, ''),
	       COUNT(DISTINCT j.id) FILTER (WHERE j.is_active) AS job_count,
	       COUNT(DISTINCT v.id) FILTER (WHERE v.status = 'approved') AS vendor_count
	FROM companies c
	LEFT JOIN jobs j ON j.company_id = c.id
	LEFT JOIN vendors v ON v.company_id = c.id
	WHERE c.status = 'approved' AND c.approved_by IS NOT NULL
	GROUP BY c.id, c.name, c.logo_url, c.industry, c.location
	HAVING COUNT(DISTINCT j.id) FILTER (WHERE j.is_active) > 0
	ORDER BY job_count DESC, vendor_count DESC, c.id
	LIMIT $1`

// TopCompanies returns companies ranked by active-job count, tie-broken by
// approved-vendor count.
func (s *Postgres) TopCompanies(ctx context.Context, limit int) ([]model.CompanyActivity, error) {
	rows, err := s.pool.Query(ctx, topCompaniesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("top companies query: %w", err)
	}
	defer rows.Close()

	activities := make([]model.CompanyActivity, 0)
	for rows.Next() {
		var a model.CompanyActivity
		if err := rows.Scan(
			&a.ID, &a.Name, &a.LogoURL, &a.Industry, &a.Location,
			&a.JobCount, &a.VendorCount,
		); err != nil {
			return nil, fmt.Errorf("top companies scan: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// topCompanyJobsSQL picks one representative job per top company in a single
// statement: the aggregation above feeds a window-ranked join, and only
// rank 1 per company survives (the most recently created-or-updated active
// job). Final order is the company ranking, not the per-job timestamp.
// A partitioned ROW_NUMBER keeps this a single round-trip instead of one
// query per company.
const topCompanyJobsSQL = `
	WITH top_companies AS (` + topCompaniesSQL + `),
	ranked_jobs AS (
		SELECT j.id, t.job_count,
		       ROW_NUMBER() OVER (
		           PARTITION BY j.company_id
		           ORDER BY GREATEST(j.created_at, j.updated_at) DESC, j.id
		       ) AS rn
		FROM jobs j
		JOIN top_companies t ON t.id = j.company_id
		WHERE j.is_active
	)
	SELECT j.id, j.title, COALESCE(j.description, ''), COALESCE(j.requirements, ''),
	       COALESCE(j.location, ''), COALESCE(j.city, ''), COALESCE(j.state, ''),
	       COALESCE(j.zip_code, ''), COALESCE(j.country, ''),
	       j.created_at, j.updated_at,
	       c.id, c.name, c.logo_url, c.website, c.description,
	       cat.id, cat.name,
	       (SELECT COUNT(*) FROM users u WHERE u.role = 'job_seeker' AND u.category_id = j.category_id) AS seeker_count,
	       (SELECT COUNT(*) FROM applications a WHERE a.job_id = j.id) AS application_count
	FROM ranked_jobs r
	JOIN jobs j ON j.id = r.id
	LEFT JOIN companies c ON c.id = j.company_id
	LEFT JOIN categories cat ON cat.id = j.category_id
	WHERE r.rn = 1
	ORDER BY r.job_count DESC, j.id`

// JobsFromTopCompanies returns exactly one job per top company, ordered by
// the company's active-job count.
func (s *Postgres) JobsFromTopCompanies(ctx context.Context, limit int) ([]model.JobRow, error) {
	rows, err := s.pool.Query(ctx, topCompanyJobsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("top company jobs query: %w", err)
	}
	defer rows.Close()

	return scanJobRows(rows)
}

func scanJobRows(rows pgx.Rows) ([]model.JobRow, error) {
	jobs := make([]model.JobRow, 0)
	for rows.Next() {
		var j model.JobRow
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Description, &j.Requirements,
			&j.Location, &j.City, &j.State, &j.ZipCode, &j.Country,
			&j.CreatedAt, &j.UpdatedAt,
			&j.CompanyID, &j.CompanyName, &j.CompanyLogoURL,
			&j.CompanyWebsite, &j.CompanyDescription,
			&j.CategoryID, &j.CategoryName,
			&j.SeekerCount, &j.ApplicationCount,
		); err != nil {
			return nil, fmt.Errorf("job scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
