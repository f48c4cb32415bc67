package engine_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobport/search-service/internal/engine"
	"jobport/search-service/internal/model"
	"jobport/search-service/internal/search"
)

// fakeStore records the query the engine hands to the datastore and returns
// canned rows.
type fakeStore struct {
	jobs       []model.JobRow
	companies  []model.CompanyRow
	activities []model.CompanyActivity
	err        error

	calls    int
	gotQuery search.Query
	gotLimit int
}

func (f *fakeStore) SearchJobs(_ context.Context, q search.Query, limit int) ([]model.JobRow, error) {
	f.calls++
	f.gotQuery, f.gotLimit = q, limit
	return f.jobs, f.err
}

func (f *fakeStore) SearchCompanies(_ context.Context, q search.Query, limit int) ([]model.CompanyRow, error) {
	f.calls++
	f.gotQuery, f.gotLimit = q, limit
	return f.companies, f.err
}

func (f *fakeStore) TopCompanies(_ context.Context, limit int) ([]model.CompanyActivity, error) {
	f.calls++
	f.gotLimit = limit
	return f.activities, f.err
}

func (f *fakeStore) JobsFromTopCompanies(_ context.Context, limit int) ([]model.JobRow, error) {
	f.calls++
	f.gotLimit = limit
	return f.jobs, f.err
}

func newService(store *fakeStore) *engine.Service {
	return engine.NewService(store, search.NewClassifier(), nil)
}

func strptr(s string) *string { return &s }

// ── Input validation ───────────────────────────────────────────────────────

func TestSearchJobs_RejectsNonPositiveLimit(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)

	for _, limit := range []int{0, -1} {
		_, err := svc.SearchJobs(context.Background(), "azure", limit)
		require.ErrorIs(t, err, engine.ErrInvalidInput)
	}
	assert.Zero(t, store.calls, "datastore must not be touched on invalid input")
}

func TestSearchJobs_RejectsOversizedQuery(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)

	_, err := svc.SearchJobs(context.Background(), strings.Repeat("a", 257), 10)
	require.ErrorIs(t, err, engine.ErrInvalidInput)
	assert.Zero(t, store.calls)
}

func TestSearchJobs_RejectsPathologicalTermCount(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)

	_, err := svc.SearchJobs(context.Background(), strings.Repeat("a ", 17), 10)
	require.ErrorIs(t, err, engine.ErrInvalidInput)
	assert.Zero(t, store.calls)
}

// ── Pipeline behaviour ─────────────────────────────────────────────────────

func TestSearchJobs_EmptyQueryIsDefaultListingNotError(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)

	results, err := svc.SearchJobs(context.Background(), "   ", 50)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Equal(t, 1, store.calls, "empty query still hits the capped default listing")
	assert.Empty(t, store.gotQuery.Terms)
	assert.Equal(t, 50, store.gotLimit)
}

func TestSearchJobs_AttributeQueryRunsInAndMode(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)

	_, err := svc.SearchJobs(context.Background(), "azure 89119", 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"azure", "89119"}, store.gotQuery.Terms)
	assert.Equal(t, search.ModeAnd, store.gotQuery.Mode)
}

func TestSearchJobs_CompanyNameQueryRunsInOrMode(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)

	_, err := svc.SearchJobs(context.Background(), "Acme Solutions", 50)
	require.NoError(t, err)
	assert.Equal(t, search.ModeOr, store.gotQuery.Mode)
}

func TestSearchJobs_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := newService(&fakeStore{err: storeErr})

	_, err := svc.SearchJobs(context.Background(), "azure", 50)
	require.ErrorIs(t, err, storeErr)
}

func TestSearchCompanies_PassesQueryThrough(t *testing.T) {
	store := &fakeStore{companies: []model.CompanyRow{{ID: "c1", Name: "Acme Corp"}}}
	svc := newService(store)

	results, err := svc.SearchCompanies(context.Background(), "Acme Corp", 25)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Acme Corp", results[0].Name)
	assert.Equal(t, 25, store.gotLimit)
	assert.Equal(t, search.ModeOr, store.gotQuery.Mode, "corp is a company-suffix word")
}

// ── Shaping ────────────────────────────────────────────────────────────────

func TestSearchJobs_ShapesCompanyCategoryAndCounters(t *testing.T) {
	now := time.Now()
	store := &fakeStore{jobs: []model.JobRow{
		{
			ID:               "j1",
			Title:            "Azure Cloud Engineer",
			CompanyID:        strptr("c1"),
			CompanyName:      strptr("Acme Corp"),
			CompanyLogoURL:   strptr("https://cdn/logo.png"),
			CategoryID:       strptr("cat1"),
			CategoryName:     strptr("Engineering"),
			SeekerCount:      7,
			ApplicationCount: 2,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
		{ID: "j2", Title: "Night Auditor"},
	}}
	svc := newService(store)

	results, err := svc.SearchJobs(context.Background(), "azure", 50)
	require.NoError(t, err)
	require.Len(t, results, 2)

	first := results[0]
	require.NotNil(t, first.Company)
	assert.Equal(t, "Acme Corp", first.Company.Name)
	assert.Equal(t, "Engineering", first.Category.Name)
	assert.Equal(t, 7, first.CategoryMatchedSeekers)
	assert.Equal(t, 2, first.ActualApplications)

	// No employer, no category: nil company, "General" default.
	second := results[1]
	assert.Nil(t, second.Company)
	assert.Equal(t, "General", second.Category.Name)
	assert.Empty(t, second.Category.ID)
}

// ── Aggregation entry points ───────────────────────────────────────────────

func TestTopCompanies_RejectsNonPositiveLimit(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)

	_, err := svc.TopCompanies(context.Background(), 0)
	require.ErrorIs(t, err, engine.ErrInvalidInput)
	assert.Zero(t, store.calls)
}

func TestTopCompanies_PassesThroughWithoutCache(t *testing.T) {
	want := []model.CompanyActivity{
		{ID: "a", Name: "A", JobCount: 10, VendorCount: 3},
		{ID: "b", Name: "B", JobCount: 10, VendorCount: 1},
		{ID: "c", Name: "C", JobCount: 2},
	}
	store := &fakeStore{activities: want}
	svc := newService(store)

	got, err := svc.TopCompanies(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 5, store.gotLimit)
}

func TestJobsFromTopCompanies_ShapesRows(t *testing.T) {
	store := &fakeStore{jobs: []model.JobRow{
		{ID: "j1", Title: "Rep Job", CompanyID: strptr("c1"), CompanyName: strptr("Acme")},
	}}
	svc := newService(store)

	results, err := svc.JobsFromTopCompanies(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Company)
	assert.Equal(t, "Acme", results[0].Company.Name)
}

func TestWarmCaches_NoCacheIsNoOp(t *testing.T) {
	store := &fakeStore{}
	svc := newService(store)

	require.NoError(t, svc.WarmCaches(context.Background()))
	assert.Zero(t, store.calls)
}
