// Package connector provides the Snipe-IT asset management integration
package connector

import (
	"context"
	"fmt"
	"net/http"
)

// SnipeIT is the connector for Snipe-IT asset management servers.
// Requires BaseURL and APIToken.
type SnipeIT struct{}

// Name returns the integration type.
func (s *SnipeIT) Name() string {
	return "snipeit"
}

func (s *SnipeIT) headers(cfg Config) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", cfg.APIToken),
		"Accept":        "application/json",
	}
}

// TestConnection checks that the hardware endpoint answers with the
// configured token.
func (s *SnipeIT) TestConnection(ctx context.Context, cfg Config) *TestResult {
	client, err := newClient(cfg, s.headers(cfg))
	if err != nil {
		return &TestResult{Success: false, Message: err.Error()}
	}

	outcome := client.Get(ctx, "/api/v1/hardware?limit=1")
	if !outcome.OK {
		return &TestResult{Success: false, Message: outcome.Message}
	}
	return &TestResult{
		Success: true,
		Message: "connected to Snipe-IT",
		Details: map[string]string{"status": fmt.Sprintf("%d", outcome.StatusCode)},
	}
}

// Sync collects hardware assets and users.
func (s *SnipeIT) Sync(ctx context.Context, cfg Config) *SyncResult {
	result := NewSyncResult()

	client, err := newClient(cfg, s.headers(cfg))
	if err != nil {
		result.AddError("creating client: %v", err)
		return result
	}

	// Snipe-IT wraps list responses in a "rows" field.
	collections := []struct {
		name string
		path string
	}{
		{"assets", "/api/v1/hardware"},
		{"users", "/api/v1/users"},
	}

	for _, c := range collections {
		outcome := client.Get(ctx, c.path)
		if !outcome.OK {
			result.AddError("collecting %s: %s", c.name, outcome.Message)
			continue
		}
		if outcome.StatusCode != http.StatusOK {
			result.AddError("collecting %s: unexpected status %d", c.name, outcome.StatusCode)
			continue
		}
		records, err := decodeRecords(outcome.Body, "rows")
		if err != nil {
			result.AddError("collecting %s: %v", c.name, err)
			continue
		}
		result.Add(c.name, records)
	}

	return result
}

func init() {
	Register(&SnipeIT{})
}
