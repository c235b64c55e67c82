package db

import (
	"context"
	"io/fs"
	"strings"
	"testing"
)

func TestRunMigrationsWithoutDatabaseIsNoop(t *testing.T) {
	if err := RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("expected nil database to be a no-op, got %v", err)
	}
}

func TestEmbeddedMigrationsCoverSyncTables(t *testing.T) {
	files, err := fs.Glob(migrationFiles, migrationsDir+"/*.sql")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 migrations, got %v", files)
	}

	var all strings.Builder
	for _, name := range files {
		body, err := fs.ReadFile(migrationFiles, name)
		if err != nil {
			t.Fatalf("ReadFile %s: %v", name, err)
		}
		if !strings.Contains(string(body), "-- +goose Up") {
			t.Fatalf("%s is missing a goose Up section", name)
		}
		all.Write(body)
	}
	for _, table := range []string{"job_fetch_configs", "job_sync_logs"} {
		if !strings.Contains(all.String(), table) {
			t.Fatalf("expected a migration creating %s", table)
		}
	}
}
