// Package model defines shared data structures for the search service.
package model

import "time"

// JobRow is one scanned row from a job search or top-company-jobs query.
// Nullable columns (the company/category joins) are pointers so the shaper
// can tell "no company" apart from an empty name.
type JobRow struct {
	ID           string
	Title        string
	Description  string
	Requirements string
	Location     string
	City         string
	State        string
	ZipCode      string
	Country      string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CompanyID          *string
	CompanyName        *string
	CompanyLogoURL     *string
	CompanyWebsite     *string
	CompanyDescription *string

	CategoryID   *string
	CategoryName *string

	SeekerCount      int
	ApplicationCount int
}

// CompanyRow is one scanned row from a company search query.
type CompanyRow struct {
	ID          string
	Name        string
	Industry    string
	Location    string
	Description string
	LogoURL     string
	Website     string
}

// CompanySummary is the employer object nested inside a job result.
type CompanySummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logoUrl"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

// CategorySummary is the category object nested inside a job result.
// Name defaults to "General" for uncategorised jobs.
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// JobResult is the public shape of one job returned to the gateway.
//
// CategoryMatchedSeekers and ActualApplications are deliberately separate:
// the first is the product's proxy-for-demand metric (job-seeker users
// sharing the job's category), the second counts real application rows.
type JobResult struct {
	ID                     string          `json:"id"`
	Title                  string          `json:"title"`
	Description            string          `json:"description"`
	Requirements           string          `json:"requirements"`
	Location               string          `json:"location"`
	City                   string          `json:"city"`
	State                  string          `json:"state"`
	ZipCode                string          `json:"zipCode"`
	Country                string          `json:"country"`
	Company                *CompanySummary `json:"company"`
	Category               CategorySummary `json:"category"`
	CategoryMatchedSeekers int             `json:"categoryMatchedSeekers"`
	ActualApplications     int             `json:"actualApplications"`
	CreatedAt              time.Time       `json:"createdAt"`
	UpdatedAt              time.Time       `json:"updatedAt"`
}

// CompanyResult is the public shape of one company search hit.
type CompanyResult struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
	Website     string `json:"website"`
}

// CompanyActivity is one homepage "top companies" entry: a company ranked
// by active-job count, tie-broken by approved-vendor count.
type CompanyActivity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logoUrl"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	JobCount    int    `json:"jobCount"`
	VendorCount int    `json:"vendorCount"`
}
