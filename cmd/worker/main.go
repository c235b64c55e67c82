package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"resume-scoring/internal/bootstrap"
	"resume-scoring/internal/jobconfigs"
	"resume-scoring/internal/shared/config"
	"resume-scoring/internal/shared/telemetry"
)

// scheduler is the part of jobconfigs.Scheduler the worker drives.
type scheduler interface {
	Start(ctx context.Context) error
	Stop()
}

func main() {
	cfg := config.Load()
	telemetry.Init(cfg.LogLevel)
	defer telemetry.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		telemetry.Error("worker.bootstrap_failed", map[string]any{"error": err})
		os.Exit(1)
	}
	defer app.Close()

	sched := jobconfigs.NewScheduler(app.JobConfigs, cfg.SyncScheduleSpec)
	if err := run(ctx, sched); err != nil {
		telemetry.Error("worker.failed", map[string]any{"error": err})
		os.Exit(1)
	}
}

// run starts s and blocks until ctx is canceled, then waits for the
// in-flight cycle to finish.
func run(ctx context.Context, s scheduler) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	telemetry.Info("worker.started", nil)
	<-ctx.Done()
	telemetry.Info("worker.shutdown_requested", nil)
	s.Stop()
	return nil
}
