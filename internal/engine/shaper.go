package engine

import (
	"jobport/search-service/internal/model"
)

// defaultCategoryName labels uncategorised jobs in the public shape.
const defaultCategoryName = "General"

// shapeJobs maps scanned rows to the public job shape. Jobs without an
// employer get a nil company; jobs without a category get the "General"
// default. Internal columns (active flags, approval actors, raw status
// enums) never appear here — the row types simply do not carry them.
func shapeJobs(rows []model.JobRow) []model.JobResult {
	results := make([]model.JobResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, shapeJob(r))
	}
	return results
}

func shapeJob(r model.JobRow) model.JobResult {
	res := model.JobResult{
		ID:                     r.ID,
		Title:                  r.Title,
		Description:            r.Description,
		Requirements:           r.Requirements,
		Location:               r.Location,
		City:                   r.City,
		State:                  r.State,
		ZipCode:                r.ZipCode,
		Country:                r.Country,
		Category:               model.CategorySummary{Name: defaultCategoryName},
		CategoryMatchedSeekers: r.SeekerCount,
		ActualApplications:     r.ApplicationCount,
		CreatedAt:              r.CreatedAt,
		UpdatedAt:              r.UpdatedAt,
	}

	if r.CompanyID != nil {
		res.Company = &model.CompanySummary{
			ID:          *r.CompanyID,
			Name:        deref(r.CompanyName),
			LogoURL:     deref(r.CompanyLogoURL),
			Website:     deref(r.CompanyWebsite),
			Description: deref(r.CompanyDescription),
		}
	}

	if r.CategoryID != nil {
		res.Category = model.CategorySummary{
			ID:   *r.CategoryID,
			Name: deref(r.CategoryName),
		}
	}

	return res
}

func shapeCompanies(rows []model.CompanyRow) []model.CompanyResult {
	results := make([]model.CompanyResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, model.CompanyResult{
			ID:          r.ID,
			Name:        r.Name,
			Industry:    r.Industry,
			Location:    r.Location,
			Description: r.Description,
			LogoURL:     r.LogoURL,
			Website:     r.Website,
		})
	}
	return results
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
