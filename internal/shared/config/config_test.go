package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNormalizeEnv(t *testing.T) {
	cases := map[string]string{
		"prod":        "production",
		"PRODUCTION":  "production",
		" staging ":   "staging",
		"local":       "local",
		"development": "dev",
		"whatever":    "dev",
	}
	for in, want := range cases {
		if got := normalizeEnv(in); got != want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" a , ,b,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected split: %#v", got)
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("SYNC_TIMEOUT", "30s")
	t.Setenv("PLATFORM_API_BASE_URL", "http://platform.local/")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected port override, got %q", cfg.Port)
	}
	if cfg.RateLimitBurst != 20 {
		t.Fatalf("expected default burst on bad input, got %d", cfg.RateLimitBurst)
	}
	if cfg.SyncTimeout != 30*time.Second {
		t.Fatalf("unexpected sync timeout %s", cfg.SyncTimeout)
	}
	if cfg.PlatformAPIBaseURL != "http://platform.local" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.PlatformAPIBaseURL)
	}
	if cfg.SyncScheduleSpec != "@every 1h" {
		t.Fatalf("unexpected schedule %q", cfg.SyncScheduleSpec)
	}
}

func TestLoadEnvFilesDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SCORING_TEST_A=fromfile\nSCORING_TEST_B=\"quoted\"\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("SCORING_TEST_A", "fromenv")
	t.Setenv("SCORING_TEST_B", "")
	os.Unsetenv("SCORING_TEST_B")

	loadEnvFiles(filepath.Join(dir, "missing.env"), path)

	if got := os.Getenv("SCORING_TEST_A"); got != "fromenv" {
		t.Fatalf("expected process env to win, got %q", got)
	}
	if got := os.Getenv("SCORING_TEST_B"); got != "quoted" {
		t.Fatalf("expected value from file, got %q", got)
	}
}
