// Package httpapi implements the HTTP handlers for the search service.
//
// Routes (consumed by the Gateway):
//
//	GET /search/jobs?q=&limit=        → ranked job search
//	GET /search/companies?q=&limit=   → ranked company search
//	GET /companies/top?limit=         → top companies by activity
//	GET /companies/top/jobs?limit=    → one job per top company
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"jobport/search-service/internal/engine"
	"jobport/search-service/internal/model"
)

// Discovery is the engine surface the handlers need; engine.Service
// implements it.
type Discovery interface {
	SearchJobs(ctx context.Context, query string, limit int) ([]model.JobResult, error)
	SearchCompanies(ctx context.Context, query string, limit int) ([]model.CompanyResult, error)
	TopCompanies(ctx context.Context, limit int) ([]model.CompanyActivity, error)
	JobsFromTopCompanies(ctx context.Context, limit int) ([]model.JobResult, error)
}

// Handler holds shared dependencies.
type Handler struct {
	svc Discovery
}

// NewHandler returns a configured Handler.
func NewHandler(svc Discovery) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts all search-service routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/search/jobs", h.searchJobs)
	mux.HandleFunc("/search/companies", h.searchCompanies)
	mux.HandleFunc("/companies/top", h.topCompanies)
	mux.HandleFunc("/companies/top/jobs", h.topCompanyJobs)
}

func (h *Handler) searchJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit, err := limitParam(r, engine.DefaultSearchLimit)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.svc.SearchJobs(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeEngineError(w, "searchJobs", err)
		return
	}
	jsonOK(w, results)
}

func (h *Handler) searchCompanies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit, err := limitParam(r, engine.DefaultSearchLimit)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.svc.SearchCompanies(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeEngineError(w, "searchCompanies", err)
		return
	}
	jsonOK(w, results)
}

func (h *Handler) topCompanies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit, err := limitParam(r, engine.DefaultTopCompaniesLimit)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.svc.TopCompanies(r.Context(), limit)
	if err != nil {
		writeEngineError(w, "topCompanies", err)
		return
	}
	jsonOK(w, results)
}

func (h *Handler) topCompanyJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		jsonError(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit, err := limitParam(r, engine.DefaultTopCompanyJobsLimit)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	results, err := h.svc.JobsFromTopCompanies(r.Context(), limit)
	if err != nil {
		writeEngineError(w, "topCompanyJobs", err)
		return
	}
	jsonOK(w, results)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// limitParam parses the optional limit query parameter. Absent → fallback;
// non-numeric → error. Range validation is the engine's job.
func limitParam(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer, got %q", raw)
	}
	return v, nil
}

func writeEngineError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, engine.ErrInvalidInput) {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("[search] %s error: %v", op, err)
	jsonError(w, "database error", http.StatusInternalServerError)
}

func jsonOK(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
