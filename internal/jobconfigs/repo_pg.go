package jobconfigs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const configColumns = `id, name, platform, actor_id, search_config, is_active, fetch_frequency_hours, last_synced_at, created_at, updated_at`

const syncLogColumns = `id, config_id, status, jobs_fetched, jobs_created, error_message, started_at, completed_at, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// CreateConfig inserts a new config.
func (r *PGRepo) CreateConfig(ctx context.Context, cfg JobFetchConfig) error {
	const query = `
INSERT INTO job_fetch_configs (
    id,
    name,
    platform,
    actor_id,
    search_config,
    is_active,
    fetch_frequency_hours,
    last_synced_at,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	search, err := json.Marshal(cfg.SearchConfig)
	if err != nil {
		return fmt.Errorf("marshal search config: %w", err)
	}
	_, err = r.DB.ExecContext(
		ctx,
		query,
		cfg.ID,
		cfg.Name,
		cfg.Platform,
		cfg.ActorID,
		search,
		cfg.IsActive,
		cfg.FetchFrequencyHours,
		nullTime(cfg.LastSyncedAt),
		cfg.CreatedAt,
		cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job fetch config: %w", err)
	}
	return nil
}

// GetConfig fetches a config by id.
func (r *PGRepo) GetConfig(ctx context.Context, id string) (JobFetchConfig, error) {
	query := `SELECT ` + configColumns + ` FROM job_fetch_configs WHERE id = $1`
	cfg, err := scanConfig(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobFetchConfig{}, ErrNotFound
		}
		return JobFetchConfig{}, fmt.Errorf("get job fetch config: %w", err)
	}
	return cfg, nil
}

// ListConfigs lists configs newest-first.
func (r *PGRepo) ListConfigs(ctx context.Context) ([]JobFetchConfig, error) {
	query := `SELECT ` + configColumns + ` FROM job_fetch_configs ORDER BY created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list job fetch configs: %w", err)
	}
	defer rows.Close()

	out := []JobFetchConfig{}
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job fetch config: %w", err)
		}
		out = append(out, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list job fetch configs: %w", err)
	}
	return out, nil
}

// UpdateConfig overwrites the mutable columns of an existing config.
func (r *PGRepo) UpdateConfig(ctx context.Context, cfg JobFetchConfig) error {
	const query = `
UPDATE job_fetch_configs
SET name = $2,
    platform = $3,
    actor_id = $4,
    search_config = $5,
    is_active = $6,
    fetch_frequency_hours = $7,
    updated_at = $8
WHERE id = $1`

	search, err := json.Marshal(cfg.SearchConfig)
	if err != nil {
		return fmt.Errorf("marshal search config: %w", err)
	}
	res, err := r.DB.ExecContext(
		ctx,
		query,
		cfg.ID,
		cfg.Name,
		cfg.Platform,
		cfg.ActorID,
		search,
		cfg.IsActive,
		cfg.FetchFrequencyHours,
		cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job fetch config: %w", err)
	}
	return requireAffected(res)
}

// DeleteConfig removes a config; its sync logs cascade.
func (r *PGRepo) DeleteConfig(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM job_fetch_configs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job fetch config: %w", err)
	}
	return requireAffected(res)
}

// ToggleConfig flips is_active in one statement and returns the updated row.
func (r *PGRepo) ToggleConfig(ctx context.Context, id string, at time.Time) (JobFetchConfig, error) {
	query := `
UPDATE job_fetch_configs
SET is_active = NOT is_active,
    updated_at = $2
WHERE id = $1
RETURNING ` + configColumns
	cfg, err := scanConfig(r.DB.QueryRowContext(ctx, query, id, at))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JobFetchConfig{}, ErrNotFound
		}
		return JobFetchConfig{}, fmt.Errorf("toggle job fetch config: %w", err)
	}
	return cfg, nil
}

// MarkSynced stamps last_synced_at.
func (r *PGRepo) MarkSynced(ctx context.Context, id string, at time.Time) error {
	const query = `
UPDATE job_fetch_configs
SET last_synced_at = $2,
    updated_at = $2
WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("mark job fetch config synced: %w", err)
	}
	return requireAffected(res)
}

// AppendSyncLog inserts a sync log row.
func (r *PGRepo) AppendSyncLog(ctx context.Context, log JobSyncLog) error {
	const query = `
INSERT INTO job_sync_logs (
    id,
    config_id,
    status,
    jobs_fetched,
    jobs_created,
    error_message,
    started_at,
    completed_at,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var errMsg sql.NullString
	if log.ErrorMessage != "" {
		errMsg = sql.NullString{String: log.ErrorMessage, Valid: true}
	}
	_, err := r.DB.ExecContext(
		ctx,
		query,
		log.ID,
		log.ConfigID,
		string(log.Status),
		log.JobsFetched,
		log.JobsCreated,
		errMsg,
		log.StartedAt,
		nullTime(log.CompletedAt),
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job sync log: %w", err)
	}
	return nil
}

// ListSyncLogs lists sync logs newest-first, optionally for one config.
func (r *PGRepo) ListSyncLogs(ctx context.Context, configID string, limit int) ([]JobSyncLog, error) {
	limit = clampSyncLogLimit(limit)
	var (
		rows *sql.Rows
		err  error
	)
	if configID != "" {
		query := `SELECT ` + syncLogColumns + ` FROM job_sync_logs WHERE config_id = $1 ORDER BY created_at DESC, id LIMIT $2`
		rows, err = r.DB.QueryContext(ctx, query, configID, limit)
	} else {
		query := `SELECT ` + syncLogColumns + ` FROM job_sync_logs ORDER BY created_at DESC, id LIMIT $1`
		rows, err = r.DB.QueryContext(ctx, query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("list job sync logs: %w", err)
	}
	return collectSyncLogs(rows)
}

// ListAllSyncLogs loads the whole sync log table newest-first.
func (r *PGRepo) ListAllSyncLogs(ctx context.Context) ([]JobSyncLog, error) {
	query := `SELECT ` + syncLogColumns + ` FROM job_sync_logs ORDER BY created_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list job sync logs: %w", err)
	}
	return collectSyncLogs(rows)
}

func collectSyncLogs(rows *sql.Rows) ([]JobSyncLog, error) {
	defer rows.Close()
	out := []JobSyncLog{}
	for rows.Next() {
		var (
			log         JobSyncLog
			status      string
			errMsg      sql.NullString
			completedAt sql.NullTime
		)
		if err := rows.Scan(
			&log.ID,
			&log.ConfigID,
			&status,
			&log.JobsFetched,
			&log.JobsCreated,
			&errMsg,
			&log.StartedAt,
			&completedAt,
			&log.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan job sync log: %w", err)
		}
		log.Status = SyncStatus(status)
		if errMsg.Valid {
			log.ErrorMessage = errMsg.String
		}
		if completedAt.Valid {
			t := completedAt.Time
			log.CompletedAt = &t
		}
		out = append(out, log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list job sync logs: %w", err)
	}
	return out, nil
}

func scanConfig(row rowScanner) (JobFetchConfig, error) {
	var (
		cfg        JobFetchConfig
		search     []byte
		lastSynced sql.NullTime
	)
	if err := row.Scan(
		&cfg.ID,
		&cfg.Name,
		&cfg.Platform,
		&cfg.ActorID,
		&search,
		&cfg.IsActive,
		&cfg.FetchFrequencyHours,
		&lastSynced,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	); err != nil {
		return JobFetchConfig{}, err
	}
	if len(search) > 0 {
		if err := json.Unmarshal(search, &cfg.SearchConfig); err != nil {
			return JobFetchConfig{}, fmt.Errorf("decode search config: %w", err)
		}
	}
	if lastSynced.Valid {
		t := lastSynced.Time
		cfg.LastSyncedAt = &t
	}
	return cfg, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
