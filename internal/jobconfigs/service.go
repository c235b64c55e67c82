package jobconfigs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-scoring/internal/shared/events"
	"resume-scoring/internal/shared/metrics"
	"resume-scoring/internal/shared/telemetry"
)

// EventSyncTriggered is published after a successful sync trigger.
const EventSyncTriggered = "job_sync.triggered"

// Service coordinates job fetch configs, their sync logs and remote syncs.
type Service struct {
	Repo     Repo
	Invoker  SyncInvoker
	Platform PlatformClient
	Events   events.Publisher
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Create stores a new config, filling actor and search criteria from the
// platform defaults when omitted.
func (s *Service) Create(ctx context.Context, in CreateInput) (JobFetchConfig, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Platform = normalizePlatform(in.Platform)
	if err := validateStruct(in); err != nil {
		return JobFetchConfig{}, err
	}

	search := DefaultSearchConfig(in.Platform)
	if in.SearchConfig != nil {
		search = cloneSearchConfig(*in.SearchConfig)
	}
	if res := ValidateSearchConfig(search); !res.Valid {
		return JobFetchConfig{}, fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(res.Errors, "; "))
	}

	actorID := strings.TrimSpace(in.ActorID)
	if actorID == "" {
		actorID = DefaultActor(in.Platform)
	}
	if actorID == "" {
		return JobFetchConfig{}, fmt.Errorf("%w: actorId is required for platform %q", ErrInvalidInput, in.Platform)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	freq := in.FetchFrequencyHours
	if freq == 0 {
		freq = defaultFetchFrequencyHours
	}

	now := s.now()
	cfg := JobFetchConfig{
		ID:                  uuid.NewString(),
		Name:                in.Name,
		Platform:            in.Platform,
		ActorID:             actorID,
		SearchConfig:        search,
		IsActive:            active,
		FetchFrequencyHours: freq,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.Repo.CreateConfig(ctx, cfg); err != nil {
		return JobFetchConfig{}, fmt.Errorf("create config: %w", err)
	}
	return cfg, nil
}

// Get returns one config.
func (s *Service) Get(ctx context.Context, id string) (JobFetchConfig, error) {
	if strings.TrimSpace(id) == "" {
		return JobFetchConfig{}, ErrNotFound
	}
	return s.Repo.GetConfig(ctx, id)
}

// List returns every config, newest first.
func (s *Service) List(ctx context.Context) ([]JobFetchConfig, error) {
	return s.Repo.ListConfigs(ctx)
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (JobFetchConfig, error) {
	if err := validateStruct(patch); err != nil {
		return JobFetchConfig{}, err
	}
	cfg, err := s.Get(ctx, id)
	if err != nil {
		return JobFetchConfig{}, err
	}

	if patch.Name != nil {
		cfg.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Platform != nil {
		cfg.Platform = normalizePlatform(*patch.Platform)
	}
	if patch.ActorID != nil {
		cfg.ActorID = strings.TrimSpace(*patch.ActorID)
	}
	if patch.SearchConfig != nil {
		if res := ValidateSearchConfig(*patch.SearchConfig); !res.Valid {
			return JobFetchConfig{}, fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(res.Errors, "; "))
		}
		cfg.SearchConfig = cloneSearchConfig(*patch.SearchConfig)
	}
	if patch.IsActive != nil {
		cfg.IsActive = *patch.IsActive
	}
	if patch.FetchFrequencyHours != nil {
		cfg.FetchFrequencyHours = *patch.FetchFrequencyHours
	}
	if cfg.Name == "" || cfg.Platform == "" || cfg.ActorID == "" {
		return JobFetchConfig{}, fmt.Errorf("%w: name, platform and actorId cannot be empty", ErrInvalidInput)
	}
	cfg.UpdatedAt = s.now()

	if err := s.Repo.UpdateConfig(ctx, cfg); err != nil {
		if errors.Is(err, ErrNotFound) {
			return JobFetchConfig{}, err
		}
		return JobFetchConfig{}, fmt.Errorf("update config: %w", err)
	}
	return cfg, nil
}

// Delete removes a config and its logs.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	return s.Repo.DeleteConfig(ctx, id)
}

// Toggle flips IsActive and returns the updated config.
func (s *Service) Toggle(ctx context.Context, id string) (JobFetchConfig, error) {
	if strings.TrimSpace(id) == "" {
		return JobFetchConfig{}, ErrNotFound
	}
	return s.Repo.ToggleConfig(ctx, id, s.now())
}

// ListSyncLogs lists logs newest first; configID filters when set. Limit
// defaults to 50 and is capped at 500.
func (s *Service) ListSyncLogs(ctx context.Context, configID string, limit int) ([]JobSyncLog, error) {
	return s.Repo.ListSyncLogs(ctx, strings.TrimSpace(configID), clampSyncLogLimit(limit))
}

// RecordSyncFailure appends a failed log row for a sync that never started remotely.
func (s *Service) RecordSyncFailure(ctx context.Context, configID string, startedAt time.Time, message string) error {
	now := s.now()
	return s.Repo.AppendSyncLog(ctx, JobSyncLog{
		ID:           uuid.NewString(),
		ConfigID:     configID,
		Status:       SyncFailed,
		ErrorMessage: message,
		StartedAt:    startedAt,
		CompletedAt:  &now,
		CreatedAt:    now,
	})
}

// TriggerSync asks the remote sync function to fetch jobs for a config.
// Every failure is reported in the result.
func (s *Service) TriggerSync(ctx context.Context, id string) SyncResult {
	metrics.IncSyncTriggered()
	result := s.triggerSync(ctx, id)
	if result.Success {
		metrics.IncSyncSucceeded()
		telemetry.Info("job_sync.triggered", map[string]any{
			"config_id":    id,
			"jobs_fetched": result.JobsFetched,
			"jobs_created": result.JobsCreated,
		})
	} else {
		metrics.IncSyncFailed()
		telemetry.Warn("job_sync.failed", map[string]any{
			"config_id": id,
			"kind":      string(result.Kind),
			"message":   result.Message,
		})
	}
	return result
}

func (s *Service) triggerSync(ctx context.Context, id string) SyncResult {
	fail := func(kind SyncErrorKind, msg string) SyncResult {
		return SyncResult{Success: false, Kind: kind, Message: msg, ConfigID: id}
	}

	cfg, err := s.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fail(SyncKindNotFound, "Configuration not found")
		}
		return fail(SyncKindStoreFailure, "Failed to load configuration: "+err.Error())
	}
	if !cfg.IsActive {
		return fail(SyncKindInactive, "Configuration is not active")
	}
	if s.Invoker == nil {
		return fail(SyncKindRemoteFailure, "Sync function is not configured")
	}

	start := time.Now()
	resp, err := s.Invoker.InvokeSync(ctx, cfg.ID)
	metrics.ObserveSyncDurationMs(metrics.SinceMillis(start))
	if err != nil {
		return fail(SyncKindRemoteFailure, err.Error())
	}

	syncedAt := s.now()
	if err := s.Repo.MarkSynced(ctx, cfg.ID, syncedAt); err != nil {
		return fail(SyncKindStoreFailure, "Sync started but last sync time was not saved: "+err.Error())
	}

	s.publish(ctx, events.New(EventSyncTriggered, map[string]any{
		"configId":    cfg.ID,
		"platform":    cfg.Platform,
		"jobsFetched": resp.JobsFetched,
		"jobsCreated": resp.JobsCreated,
		"syncedAt":    syncedAt,
	}))

	msg := resp.Message
	if msg == "" {
		msg = "Sync triggered successfully"
	}
	return SyncResult{
		Success:     true,
		Message:     msg,
		ConfigID:    cfg.ID,
		JobsFetched: resp.JobsFetched,
		JobsCreated: resp.JobsCreated,
	}
}

// publish is best effort; failures are logged and dropped.
func (s *Service) publish(ctx context.Context, evt events.Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, evt); err != nil {
		telemetry.Warn("event.publish_failed", map[string]any{
			"event_type": evt.Type,
			"error":      err,
		})
	}
}

// TestConnection checks the platform token. It never fails; problems are
// reported in the result.
func (s *Service) TestConnection(ctx context.Context, token string) ConnectionResult {
	if s.Platform == nil {
		return ConnectionResult{Success: false, Message: "Platform API is not configured"}
	}
	return s.Platform.TestConnection(ctx, token)
}

// ActorInfo returns actor metadata from the platform.
func (s *Service) ActorInfo(ctx context.Context, actorID string) (ActorInfo, error) {
	if s.Platform == nil {
		return ActorInfo{}, fmt.Errorf("platform api: %w", ErrNotConfigured)
	}
	return s.Platform.ActorInfo(ctx, actorID)
}

// Stats aggregates configs and the full sync log table.
func (s *Service) Stats(ctx context.Context) (SyncStats, error) {
	configs, err := s.Repo.ListConfigs(ctx)
	if err != nil {
		return SyncStats{}, fmt.Errorf("load configs: %w", err)
	}
	logs, err := s.Repo.ListAllSyncLogs(ctx)
	if err != nil {
		return SyncStats{}, fmt.Errorf("load sync logs: %w", err)
	}

	stats := SyncStats{TotalConfigs: len(configs), TotalSyncs: len(logs)}
	for _, cfg := range configs {
		if cfg.IsActive {
			stats.ActiveConfigs++
		}
	}
	for _, l := range logs {
		switch l.Status {
		case SyncSuccess:
			stats.SuccessfulSyncs++
		case SyncFailed:
			stats.FailedSyncs++
		}
		stats.TotalJobsFetched += l.JobsFetched
		stats.TotalJobsCreated += l.JobsCreated
		ts := l.StartedAt
		if ts.IsZero() {
			ts = l.CreatedAt
		}
		if stats.LastSyncAt == nil || ts.After(*stats.LastSyncAt) {
			t := ts
			stats.LastSyncAt = &t
		}
	}
	return stats, nil
}

// DueConfigs returns active configs whose fetch interval has elapsed.
func (s *Service) DueConfigs(ctx context.Context) ([]JobFetchConfig, error) {
	configs, err := s.Repo.ListConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load configs: %w", err)
	}
	now := s.now()
	out := make([]JobFetchConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg.DueAt(now) {
			out = append(out, cfg)
		}
	}
	return out, nil
}
