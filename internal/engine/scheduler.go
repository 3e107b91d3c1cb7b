package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic rescore sweeps so stored analyses track the
// current rate table without manual intervention.
type Scheduler struct {
	cron *cron.Cron
	svc  *Service
	log  *slog.Logger
}

// NewScheduler wires a rescore sweep at the given interval.
func NewScheduler(svc *Service, interval time.Duration, log *slog.Logger) (*Scheduler, error) {
	if log == nil {
		log = slog.Default()
	}
	s := &Scheduler{
		cron: cron.New(),
		svc:  svc,
		log:  log,
	}
	if _, err := s.cron.AddFunc("@every "+interval.String(), s.runRescore); err != nil {
		return nil, fmt.Errorf("scheduling rescore every %s: %w", interval, err)
	}
	return s, nil
}

// Start begins running scheduled jobs in their own goroutines.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "jobs", len(s.cron.Entries()))
	s.cron.Start()
}

// Stop halts scheduling. The returned context is done once any running
// job has finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries exposes the scheduled jobs, mainly for tests.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runRescore() {
	stats, err := s.svc.Rescore(context.Background())
	if err != nil {
		s.log.Error("scheduled rescore had failures",
			"failed", stats.Failed, "error", err)
	}
}
