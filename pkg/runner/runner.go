// Package runner orchestrates connector runs across configured integrations.
package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/comply-toolkit/integration-runner/pkg/connector"
	"github.com/comply-toolkit/integration-runner/pkg/observability"
)

// Integration pairs a configured integration with its resolved connector
// config. Each run receives its own copy; nothing here is shared between
// concurrent runs.
type Integration struct {
	Name   string
	Type   string
	Config connector.Config
}

// Report aggregates the results of one run across all integrations.
type Report struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Syncs     map[string]*connector.SyncResult
	Tests     map[string]*connector.TestResult
}

// Runner fans work out across integrations. It holds only immutable
// collaborators and is safe for concurrent use.
type Runner struct {
	registry *connector.Registry
	log      observability.Logger
	limit    int
}

// New creates a runner. maxConcurrent bounds the fan-out; values below 1
// mean unbounded.
func New(registry *connector.Registry, log observability.Logger, maxConcurrent int) *Runner {
	if registry == nil {
		registry = connector.DefaultRegistry
	}
	if log == nil {
		log = observability.NewLogger("info")
	}
	return &Runner{registry: registry, log: log, limit: maxConcurrent}
}

// SyncAll runs Sync for every integration concurrently. Individual failures
// land in the per-integration SyncResult; the run itself always completes.
func (r *Runner) SyncAll(ctx context.Context, integrations []Integration) *Report {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Syncs:     make(map[string]*connector.SyncResult, len(integrations)),
	}
	log := r.log.With(observability.String("run_id", report.RunID))

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	if r.limit > 0 {
		g.SetLimit(r.limit)
	}

	for _, integ := range integrations {
		integ := integ
		g.Go(func() error {
			result := r.syncOne(gctx, log, integ)
			mu.Lock()
			report.Syncs[integ.Name] = result
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; failures are carried in the results.
	_ = g.Wait()

	report.Duration = time.Since(report.StartedAt)
	log.Info("sync run finished",
		observability.Int("integrations", len(integrations)),
		observability.String("duration", report.Duration.String()))
	return report
}

func (r *Runner) syncOne(ctx context.Context, log observability.Logger, integ Integration) *connector.SyncResult {
	conn, ok := r.registry.Get(integ.Type)
	if !ok {
		result := connector.NewSyncResult()
		result.AddError("unknown connector type %q", integ.Type)
		return result
	}

	log.Info("syncing integration",
		observability.String("integration", integ.Name),
		observability.String("type", integ.Type))

	result := conn.Sync(ctx, integ.Config)
	if len(result.Errors) > 0 {
		log.Warn("sync completed with errors",
			observability.String("integration", integ.Name),
			observability.Int("errors", len(result.Errors)))
	}
	return result
}

// TestAll runs TestConnection for every integration concurrently.
func (r *Runner) TestAll(ctx context.Context, integrations []Integration) *Report {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Tests:     make(map[string]*connector.TestResult, len(integrations)),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	if r.limit > 0 {
		g.SetLimit(r.limit)
	}

	for _, integ := range integrations {
		integ := integ
		g.Go(func() error {
			result := r.testOne(gctx, integ)
			mu.Lock()
			report.Tests[integ.Name] = result
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	report.Duration = time.Since(report.StartedAt)
	return report
}

func (r *Runner) testOne(ctx context.Context, integ Integration) *connector.TestResult {
	conn, ok := r.registry.Get(integ.Type)
	if !ok {
		return &connector.TestResult{
			Success: false,
			Message: fmt.Sprintf("unknown connector type %q", integ.Type),
		}
	}
	return conn.TestConnection(ctx, integ.Config)
}
