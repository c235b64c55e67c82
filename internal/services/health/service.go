package health

import (
	"context"
	"time"
)

const defaultTimeout = 2 * time.Second

// Check pings one dependency.
type Check func(ctx context.Context) error

// Service runs named dependency checks.
type Service struct {
	checks  map[string]Check
	timeout time.Duration
}

// NewService constructs a health service with no checks registered.
func NewService() *Service {
	return &Service{checks: map[string]Check{}, timeout: defaultTimeout}
}

// Register adds a named check. Nil checks are ignored.
func (s *Service) Register(name string, check Check) {
	if check == nil {
		return
	}
	s.checks[name] = check
}

// Status reports per-check health; true means the check passed.
func (s *Service) Status(ctx context.Context) map[string]bool {
	out := map[string]bool{"ok": true}
	for name, err := range s.run(ctx) {
		out[name] = err == nil
		if err != nil {
			out["ok"] = false
		}
	}
	return out
}

func (s *Service) run(ctx context.Context) map[string]error {
	results := make(map[string]error, len(s.checks))
	for name, check := range s.checks {
		checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
		results[name] = check(checkCtx)
		cancel()
	}
	return results
}
