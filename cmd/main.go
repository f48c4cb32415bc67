// jobport-search-service
//
// Discovery engine for the job platform. Exposes the REST API used by the
// Gateway to implement:
//   - searchJobs(query, limit)      — free-text job search
//   - searchCompanies(query, limit) — free-text company search
//   - topCompanies(limit)           — companies ranked by job + vendor activity
//   - jobsFromTopCompanies(limit)   — one representative job per top company
//
// Top-company aggregations are cached in Redis and re-warmed on a cron.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobport/search-service/internal/cache"
	"jobport/search-service/internal/config"
	"jobport/search-service/internal/db"
	"jobport/search-service/internal/engine"
	"jobport/search-service/internal/httpapi"
	"jobport/search-service/internal/scheduler"
	"jobport/search-service/internal/search"
	"jobport/search-service/internal/store"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[search-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[search-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[search-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[search-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[search-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[search-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[search-service] Redis connected ✓")

	// ── Engine ───────────────────────────────────────────────────────────────
	svc := engine.NewService(
		store.New(pool),
		search.NewClassifier(cfg.ExtraSuffixWords...),
		cache.New(rdb, time.Duration(cfg.CacheTTLSeconds)*time.Second),
	)

	// ── Cache re-warm cron ───────────────────────────────────────────────────
	sched := scheduler.New(svc, cfg.RefreshIntervalMinutes)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("[search-service] Scheduler: %v", err)
	}
	defer sched.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	h := httpapi.NewHandler(svc)
	h.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[search-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[search-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[search-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[search-service] Shutdown error: %v", err)
	}
	log.Println("[search-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "search-service",
		"version": version,
	})
}
