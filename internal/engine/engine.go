// Package engine contains the discovery business logic for the search
// service. It is transport-agnostic: the HTTP layer (httpapi package) and
// the cron re-warm job both drive it through the same methods.
//
// Every call is a pure function of (input, datastore snapshot): the engine
// holds no per-request state, so any number of calls may run concurrently.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"jobport/search-service/internal/cache"
	"jobport/search-service/internal/model"
	"jobport/search-service/internal/search"
)

const (
	// DefaultSearchLimit bounds search results when the caller does not size them.
	DefaultSearchLimit = 50
	// DefaultTopCompaniesLimit bounds the homepage top-companies list.
	DefaultTopCompaniesLimit = 100
	// DefaultTopCompanyJobsLimit bounds the one-job-per-company feed.
	DefaultTopCompanyJobsLimit = 50

	maxQueryBytes = 256
	maxTerms      = 16
)

// ErrInvalidInput rejects a request before the datastore is touched:
// non-positive limit, oversized query, or pathological term count.
var ErrInvalidInput = errors.New("invalid input")

// Store is the read contract the engine needs from the datastore. It is
// injected so the engine can be tested against an in-memory fake.
type Store interface {
	SearchJobs(ctx context.Context, q search.Query, limit int) ([]model.JobRow, error)
	SearchCompanies(ctx context.Context, q search.Query, limit int) ([]model.CompanyRow, error)
	TopCompanies(ctx context.Context, limit int) ([]model.CompanyActivity, error)
	JobsFromTopCompanies(ctx context.Context, limit int) ([]model.JobRow, error)
}

// Service wires tokenizer → classifier → store → shaper.
type Service struct {
	store      Store
	classifier *search.Classifier
	cache      *cache.Cache // nil disables caching
}

// NewService returns a configured Service. cache may be nil.
func NewService(store Store, classifier *search.Classifier, cache *cache.Cache) *Service {
	return &Service{store: store, classifier: classifier, cache: cache}
}

// SearchJobs runs the full search pipeline over jobs. An empty or blank
// query is not an error: it returns the capped, recency-ordered listing of
// active jobs.
func (s *Service) SearchJobs(ctx context.Context, query string, limit int) ([]model.JobResult, error) {
	q, err := s.classify(query, limit)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.SearchJobs(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search jobs: %w", err)
	}
	return shapeJobs(rows), nil
}

// SearchCompanies runs the full search pipeline over companies.
func (s *Service) SearchCompanies(ctx context.Context, query string, limit int) ([]model.CompanyResult, error) {
	q, err := s.classify(query, limit)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.SearchCompanies(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	return shapeCompanies(rows), nil
}

// TopCompanies returns companies ranked by active-job count, tie-broken by
// approved-vendor count, read through the cache when one is configured.
func (s *Service) TopCompanies(ctx context.Context, limit int) ([]model.CompanyActivity, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidInput, limit)
	}

	if s.cache != nil {
		cached, err := s.cache.GetTopCompanies(ctx, limit)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("top companies cache read failed", "err", err)
		}
	}

	activities, err := s.store.TopCompanies(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top companies: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetTopCompanies(ctx, limit, activities); err != nil {
			slog.Warn("top companies cache write failed", "err", err)
		}
	}
	return activities, nil
}

// JobsFromTopCompanies returns exactly one representative job per top
// company, read through the cache when one is configured.
func (s *Service) JobsFromTopCompanies(ctx context.Context, limit int) ([]model.JobResult, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidInput, limit)
	}

	if s.cache != nil {
		cached, err := s.cache.GetTopCompanyJobs(ctx, limit)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("top company jobs cache read failed", "err", err)
		}
	}

	rows, err := s.store.JobsFromTopCompanies(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top company jobs: %w", err)
	}
	results := shapeJobs(rows)

	if s.cache != nil {
		if err := s.cache.SetTopCompanyJobs(ctx, limit, results); err != nil {
			slog.Warn("top company jobs cache write failed", "err", err)
		}
	}
	return results, nil
}

// WarmCaches recomputes the default-limit aggregation payloads and writes
// them to the cache. Called by the cron scheduler and once at startup.
func (s *Service) WarmCaches(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	activities, err := s.store.TopCompanies(ctx, DefaultTopCompaniesLimit)
	if err != nil {
		return fmt.Errorf("warm top companies: %w", err)
	}
	if err := s.cache.SetTopCompanies(ctx, DefaultTopCompaniesLimit, activities); err != nil {
		return fmt.Errorf("warm top companies: %w", err)
	}

	rows, err := s.store.JobsFromTopCompanies(ctx, DefaultTopCompanyJobsLimit)
	if err != nil {
		return fmt.Errorf("warm top company jobs: %w", err)
	}
	if err := s.cache.SetTopCompanyJobs(ctx, DefaultTopCompanyJobsLimit, shapeJobs(rows)); err != nil {
		return fmt.Errorf("warm top company jobs: %w", err)
	}
	return nil
}

// classify validates the raw input and produces the term sequence plus its
// match mode. Validation happens here, before any datastore round-trip.
func (s *Service) classify(query string, limit int) (search.Query, error) {
	if limit <= 0 {
		return search.Query{}, fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidInput, limit)
	}
	if len(query) > maxQueryBytes {
		return search.Query{}, fmt.Errorf("%w: query exceeds %d bytes", ErrInvalidInput, maxQueryBytes)
	}

	terms := search.Tokenize(query)
	if len(terms) > maxTerms {
		return search.Query{}, fmt.Errorf("%w: query exceeds %d terms", ErrInvalidInput, maxTerms)
	}

	return search.Query{Terms: terms, Mode: s.classifier.Classify(terms)}, nil
}
