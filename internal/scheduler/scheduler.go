// Package scheduler wires up the cron job that periodically re-warms the
// cached top-company aggregations.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"jobport/search-service/internal/engine"
)

// Scheduler wraps robfig/cron and manages the cache re-warm loop.
type Scheduler struct {
	cron *cron.Cron
	svc  *engine.Service
	spec string // cron spec, e.g. "@every 15m"
}

// New creates a Scheduler that fires every intervalMinutes minutes.
func New(svc *engine.Service, intervalMinutes int) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLogger(cron.DefaultLogger)),
		svc:  svc,
		spec: fmt.Sprintf("@every %dm", intervalMinutes),
	}
}

// Start registers the job and starts the scheduler. Also runs one warm-up
// immediately so the homepage is served from cache without waiting for the
// first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.warm(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	// Warm immediately on startup (non-blocking)
	go s.warm(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) warm(ctx context.Context) {
	log.Println("[scheduler] Cache warm-up started")
	if err := s.svc.WarmCaches(ctx); err != nil {
		log.Printf("[scheduler] WarmCaches error: %v", err)
		return
	}
	log.Println("[scheduler] Cache warm-up complete")
}
