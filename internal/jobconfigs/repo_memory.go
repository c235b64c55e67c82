package jobconfigs

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory Repo used in dev and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	configs map[string]JobFetchConfig
	logs    []JobSyncLog
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{configs: make(map[string]JobFetchConfig)}
}

func (r *MemoryRepo) CreateConfig(ctx context.Context, cfg JobFetchConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[cfg.ID] = copyConfig(cfg)
	return nil
}

func (r *MemoryRepo) GetConfig(ctx context.Context, id string) (JobFetchConfig, error) {
	if err := ctx.Err(); err != nil {
		return JobFetchConfig{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.configs[id]
	if !ok {
		return JobFetchConfig{}, ErrNotFound
	}
	return copyConfig(cfg), nil
}

func (r *MemoryRepo) ListConfigs(ctx context.Context) ([]JobFetchConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]JobFetchConfig, 0, len(r.configs))
	for _, cfg := range r.configs {
		out = append(out, copyConfig(cfg))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) UpdateConfig(ctx context.Context, cfg JobFetchConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.configs[cfg.ID]; !ok {
		return ErrNotFound
	}
	r.configs[cfg.ID] = copyConfig(cfg)
	return nil
}

func (r *MemoryRepo) DeleteConfig(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.configs[id]; !ok {
		return ErrNotFound
	}
	delete(r.configs, id)
	kept := r.logs[:0]
	for _, l := range r.logs {
		if l.ConfigID != id {
			kept = append(kept, l)
		}
	}
	r.logs = kept
	return nil
}

func (r *MemoryRepo) ToggleConfig(ctx context.Context, id string, at time.Time) (JobFetchConfig, error) {
	if err := ctx.Err(); err != nil {
		return JobFetchConfig{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg, ok := r.configs[id]
	if !ok {
		return JobFetchConfig{}, ErrNotFound
	}
	cfg.IsActive = !cfg.IsActive
	cfg.UpdatedAt = at
	r.configs[id] = cfg
	return copyConfig(cfg), nil
}

func (r *MemoryRepo) MarkSynced(ctx context.Context, id string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg, ok := r.configs[id]
	if !ok {
		return ErrNotFound
	}
	synced := at
	cfg.LastSyncedAt = &synced
	cfg.UpdatedAt = at
	r.configs[id] = cfg
	return nil
}

func (r *MemoryRepo) AppendSyncLog(ctx context.Context, log JobSyncLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, log)
	return nil
}

func (r *MemoryRepo) ListSyncLogs(ctx context.Context, configID string, limit int) ([]JobSyncLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit = clampSyncLogLimit(limit)
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]JobSyncLog, 0)
	for _, l := range r.logs {
		if configID != "" && l.ConfigID != configID {
			continue
		}
		out = append(out, l)
	}
	sortLogsNewestFirst(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) ListAllSyncLogs(ctx context.Context) ([]JobSyncLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]JobSyncLog(nil), r.logs...)
	sortLogsNewestFirst(out)
	return out, nil
}

func sortLogsNewestFirst(logs []JobSyncLog) {
	sort.Slice(logs, func(i, j int) bool {
		if !logs[i].CreatedAt.Equal(logs[j].CreatedAt) {
			return logs[i].CreatedAt.After(logs[j].CreatedAt)
		}
		return logs[i].ID < logs[j].ID
	})
}

func copyConfig(cfg JobFetchConfig) JobFetchConfig {
	cfg.SearchConfig = cloneSearchConfig(cfg.SearchConfig)
	if cfg.LastSyncedAt != nil {
		t := *cfg.LastSyncedAt
		cfg.LastSyncedAt = &t
	}
	return cfg
}

var _ Repo = (*MemoryRepo)(nil)
