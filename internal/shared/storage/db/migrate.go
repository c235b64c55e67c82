package db

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"

	"resume-scoring/internal/shared/telemetry"
)

const (
	migrationsDir = "migrations"
	// versionTable is goose's bookkeeping table for this service.
	versionTable = "resume_scoring_schema_version"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies the job_fetch_configs and job_sync_logs schema.
// A nil database is a no-op so the in-memory dev mode can share the call site.
func RunMigrations(ctx context.Context, database *sql.DB) error {
	if database == nil {
		return nil
	}
	goose.SetBaseFS(migrationFiles)
	goose.SetTableName(versionTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, database, migrationsDir); err != nil {
		return err
	}
	if version, err := goose.GetDBVersionContext(ctx, database); err == nil {
		telemetry.Info("db.migrated", map[string]any{"version": version, "table": versionTable})
	}
	return nil
}
