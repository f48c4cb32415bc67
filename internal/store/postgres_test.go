package store

import (
	"strings"
	"testing"
)

// The aggregation statements are fixed SQL, so their invariants are checked
// at the text level, the same way the composed search statements are.

// ── Top-companies aggregation ──────────────────────────────────────────────

func TestTopCompaniesSQL_OnlyApprovedCompaniesWithRecordedApprover(t *testing.T) {
	if !strings.Contains(topCompaniesSQL, "c.status = 'approved'") {
		t.Errorf("approved-only filter missing:\n%s", topCompaniesSQL)
	}
	if !strings.Contains(topCompaniesSQL, "c.approved_by IS NOT NULL") {
		t.Errorf("approver-present filter missing:\n%s", topCompaniesSQL)
	}
}

func TestTopCompaniesSQL_CountsActiveJobsAndApprovedVendorsOnly(t *testing.T) {
	if !strings.Contains(topCompaniesSQL, "COUNT(DISTINCT j.id) FILTER (WHERE j.is_active) AS job_count") {
		t.Errorf("job_count must count active jobs only:\n%s", topCompaniesSQL)
	}
	if !strings.Contains(topCompaniesSQL, "COUNT(DISTINCT v.id) FILTER (WHERE v.status = 'approved') AS vendor_count") {
		t.Errorf("vendor_count must count approved vendors only:\n%s", topCompaniesSQL)
	}
}

func TestTopCompaniesSQL_DropsCompaniesWithoutActiveJobs(t *testing.T) {
	if !strings.Contains(topCompaniesSQL, "HAVING COUNT(DISTINCT j.id) FILTER (WHERE j.is_active) > 0") {
		t.Errorf("job_count > 0 floor missing:\n%s", topCompaniesSQL)
	}
}

// Companies A (10 jobs, 3 vendors) and B (10 jobs, 1 vendor) must come out
// [A, B]: job count first, vendor count breaks the tie, id keeps ties stable.
func TestTopCompaniesSQL_VendorCountBreaksJobCountTies(t *testing.T) {
	if !strings.Contains(topCompaniesSQL, "ORDER BY job_count DESC, vendor_count DESC, c.id") {
		t.Errorf("ranking order wrong:\n%s", topCompaniesSQL)
	}
}

func TestTopCompaniesSQL_IsCapped(t *testing.T) {
	if !strings.HasSuffix(topCompaniesSQL, "LIMIT $1") {
		t.Errorf("result cap missing:\n%s", topCompaniesSQL)
	}
}

// ── Representative-job feed ────────────────────────────────────────────────

func TestTopCompanyJobsSQL_RanksWithinCompanyByMostRecentTouch(t *testing.T) {
	if !strings.Contains(topCompanyJobsSQL, "ROW_NUMBER() OVER (") {
		t.Errorf("window ranking missing:\n%s", topCompanyJobsSQL)
	}
	if !strings.Contains(topCompanyJobsSQL, "PARTITION BY j.company_id") {
		t.Errorf("per-company partition missing:\n%s", topCompanyJobsSQL)
	}
	if !strings.Contains(topCompanyJobsSQL, "ORDER BY GREATEST(j.created_at, j.updated_at) DESC, j.id") {
		t.Errorf("created-or-updated recency ranking missing:\n%s", topCompanyJobsSQL)
	}
}

func TestTopCompanyJobsSQL_KeepsExactlyOneJobPerCompany(t *testing.T) {
	if !strings.Contains(topCompanyJobsSQL, "WHERE r.rn = 1") {
		t.Errorf("rank-1 filter missing — a prolific poster would dominate the feed:\n%s", topCompanyJobsSQL)
	}
}

func TestTopCompanyJobsSQL_RanksActiveJobsOnly(t *testing.T) {
	ranking := topCompanyJobsSQL[:strings.Index(topCompanyJobsSQL, "WHERE r.rn = 1")]
	if !strings.Contains(ranking, "WHERE j.is_active") {
		t.Errorf("inactive jobs must not enter the ranking:\n%s", topCompanyJobsSQL)
	}
}

func TestTopCompanyJobsSQL_FinalOrderIsCompanyRanking(t *testing.T) {
	if !strings.HasSuffix(topCompanyJobsSQL, "ORDER BY r.job_count DESC, j.id") {
		t.Errorf("feed must be ordered by the company ranking, not the per-job timestamp:\n%s", topCompanyJobsSQL)
	}
}

func TestTopCompanyJobsSQL_EmbedsTheCompanyRankingUnchanged(t *testing.T) {
	if !strings.Contains(topCompanyJobsSQL, "WITH top_companies AS ("+topCompaniesSQL+")") {
		t.Errorf("feed must select companies with the same aggregation that ranks them:\n%s", topCompanyJobsSQL)
	}
}

func TestTopCompanyJobsSQL_ProjectsDemandCounters(t *testing.T) {
	if !strings.Contains(topCompanyJobsSQL, "AS seeker_count") ||
		!strings.Contains(topCompanyJobsSQL, "AS application_count") {
		t.Errorf("demand counters missing from projection:\n%s", topCompanyJobsSQL)
	}
}
