package jobconfigs

import (
	"context"
	"time"
)

const (
	defaultSyncLogLimit = 50
	maxSyncLogLimit     = 500
)

// Repo defines persistence for job fetch configs and their sync logs.
type Repo interface {
	CreateConfig(ctx context.Context, cfg JobFetchConfig) error
	GetConfig(ctx context.Context, id string) (JobFetchConfig, error)
	ListConfigs(ctx context.Context) ([]JobFetchConfig, error)
	UpdateConfig(ctx context.Context, cfg JobFetchConfig) error
	DeleteConfig(ctx context.Context, id string) error
	ToggleConfig(ctx context.Context, id string, at time.Time) (JobFetchConfig, error)
	MarkSynced(ctx context.Context, id string, at time.Time) error

	AppendSyncLog(ctx context.Context, log JobSyncLog) error
	ListSyncLogs(ctx context.Context, configID string, limit int) ([]JobSyncLog, error)
	ListAllSyncLogs(ctx context.Context) ([]JobSyncLog, error)
}

func clampSyncLogLimit(limit int) int {
	if limit <= 0 {
		return defaultSyncLogLimit
	}
	if limit > maxSyncLogLimit {
		return maxSyncLogLimit
	}
	return limit
}
