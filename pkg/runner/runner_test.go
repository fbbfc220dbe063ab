// Package runner provides orchestration tests
package runner

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/comply-toolkit/integration-runner/pkg/connector"
)

type recordingConnector struct {
	name     string
	inFlight atomic.Int32
	maxSeen  atomic.Int32
	calls    atomic.Int32
}

func (c *recordingConnector) Name() string { return c.name }

func (c *recordingConnector) TestConnection(ctx context.Context, cfg connector.Config) *connector.TestResult {
	c.calls.Add(1)
	return &connector.TestResult{Success: true, Message: "ok"}
}

func (c *recordingConnector) Sync(ctx context.Context, cfg connector.Config) *connector.SyncResult {
	n := c.inFlight.Add(1)
	defer c.inFlight.Add(-1)
	for {
		seen := c.maxSeen.Load()
		if n <= seen || c.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}
	time.Sleep(20 * time.Millisecond)
	c.calls.Add(1)

	result := connector.NewSyncResult()
	result.Add("items", []map[string]any{{"org": cfg.Organization}})
	return result
}

func newTestRegistry(c connector.Connector) *connector.Registry {
	r := connector.NewRegistry()
	r.Register(c)
	return r
}

func TestRunner_SyncAll(t *testing.T) {
	rec := &recordingConnector{name: "fake"}
	r := New(newTestRegistry(rec), nil, 0)

	integrations := []Integration{
		{Name: "a", Type: "fake", Config: connector.Config{Organization: "org-a"}},
		{Name: "b", Type: "fake", Config: connector.Config{Organization: "org-b"}},
		{Name: "c", Type: "fake", Config: connector.Config{Organization: "org-c"}},
	}

	report := r.SyncAll(context.Background(), integrations)

	if report.RunID == "" {
		t.Error("RunID not set")
	}
	if len(report.Syncs) != 3 {
		t.Fatalf("len(Syncs) = %d, want 3", len(report.Syncs))
	}
	// Each integration got its own config; nothing leaked between runs.
	for _, name := range []string{"a", "b", "c"} {
		result := report.Syncs[name]
		items := result.Collections["items"]
		if len(items) != 1 || items[0]["org"] != "org-"+name {
			t.Errorf("integration %s got wrong collection: %v", name, items)
		}
	}
}

func TestRunner_SyncAllBoundsConcurrency(t *testing.T) {
	rec := &recordingConnector{name: "fake"}
	r := New(newTestRegistry(rec), nil, 2)

	var integrations []Integration
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		integrations = append(integrations, Integration{Name: name, Type: "fake"})
	}

	r.SyncAll(context.Background(), integrations)

	if got := rec.maxSeen.Load(); got > 2 {
		t.Errorf("max concurrent syncs = %d, want <= 2", got)
	}
	if got := rec.calls.Load(); got != 6 {
		t.Errorf("calls = %d, want 6", got)
	}
}

func TestRunner_SyncAllUnknownType(t *testing.T) {
	r := New(newTestRegistry(&recordingConnector{name: "fake"}), nil, 0)

	report := r.SyncAll(context.Background(), []Integration{
		{Name: "ghost", Type: "missing"},
	})

	result := report.Syncs["ghost"]
	if result == nil || len(result.Errors) != 1 {
		t.Fatalf("expected one error for unknown type, got %+v", result)
	}
}

func TestRunner_TestAll(t *testing.T) {
	rec := &recordingConnector{name: "fake"}
	r := New(newTestRegistry(rec), nil, 0)

	report := r.TestAll(context.Background(), []Integration{
		{Name: "a", Type: "fake"},
		{Name: "b", Type: "missing"},
	})

	if !report.Tests["a"].Success {
		t.Error("Tests[a] should succeed")
	}
	if report.Tests["b"].Success {
		t.Error("Tests[b] should fail for unknown type")
	}
}
