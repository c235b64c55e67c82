package jobconfigs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"resume-scoring/internal/shared/telemetry"
)

// Scheduler periodically triggers syncs for active configs that are due.
type Scheduler struct {
	Svc  *Service
	Spec string

	cron    *cron.Cron
	running sync.Mutex
	initial sync.WaitGroup
}

// NewScheduler builds a scheduler firing on spec, e.g. "@every 1h".
func NewScheduler(svc *Service, spec string) *Scheduler {
	return &Scheduler{
		Svc:  svc,
		Spec: spec,
		cron: cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger))),
	}
}

// Start registers the job, starts the cron loop and runs one cycle right away.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.Spec, func() { s.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	telemetry.Info("scheduler.started", map[string]any{"spec": s.Spec})

	s.initial.Add(1)
	go func() {
		defer s.initial.Done()
		s.RunOnce(ctx)
	}()
	return nil
}

// Stop halts the cron loop and waits for running cycles, including the one
// Start fired, to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.initial.Wait()
	telemetry.Info("scheduler.stopped", nil)
}

// RunOnce syncs every due config sequentially and returns how many
// succeeded. Overlapping cycles are skipped.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	if !s.running.TryLock() {
		telemetry.Warn("scheduler.cycle_skipped", map[string]any{"reason": "previous cycle still running"})
		return 0
	}
	defer s.running.Unlock()

	start := time.Now()
	due, err := s.Svc.DueConfigs(ctx)
	if err != nil {
		telemetry.Error("scheduler.load_failed", map[string]any{"error": err})
		return 0
	}
	if len(due) == 0 {
		telemetry.Info("scheduler.cycle_complete", map[string]any{"due": 0})
		return 0
	}

	succeeded := 0
	for _, cfg := range due {
		if ctx.Err() != nil {
			break
		}
		started := time.Now().UTC()
		res := s.Svc.TriggerSync(ctx, cfg.ID)
		if res.Success {
			succeeded++
			continue
		}
		if res.Kind == SyncKindRemoteFailure {
			if err := s.Svc.RecordSyncFailure(ctx, cfg.ID, started, res.Message); err != nil {
				telemetry.Error("scheduler.log_failed", map[string]any{"config_id": cfg.ID, "error": err})
			}
		}
	}

	telemetry.Info("scheduler.cycle_complete", map[string]any{
		"due":         len(due),
		"succeeded":   succeeded,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return succeeded
}
