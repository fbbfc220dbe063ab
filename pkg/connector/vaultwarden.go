// Package connector provides the Vaultwarden password vault integration
package connector

import (
	"context"
	"fmt"
	"net/http"
)

// Vaultwarden is the connector for Vaultwarden / Bitwarden-compatible
// password vault servers. Requires BaseURL and APIToken; Organization
// selects the tenant organization when set.
type Vaultwarden struct{}

// Name returns the integration type.
func (v *Vaultwarden) Name() string {
	return "vaultwarden"
}

func (v *Vaultwarden) headers(cfg Config) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("Bearer %s", cfg.APIToken),
		"Accept":        "application/json",
	}
}

// TestConnection checks that the members endpoint accepts the token.
func (v *Vaultwarden) TestConnection(ctx context.Context, cfg Config) *TestResult {
	client, err := newClient(cfg, v.headers(cfg))
	if err != nil {
		return &TestResult{Success: false, Message: err.Error()}
	}

	outcome := client.Get(ctx, "/public/members")
	if !outcome.OK {
		return &TestResult{Success: false, Message: outcome.Message}
	}
	details := map[string]string{"status": fmt.Sprintf("%d", outcome.StatusCode)}
	if cfg.Organization != "" {
		details["organization"] = cfg.Organization
	}
	return &TestResult{
		Success: true,
		Message: "connected to Vaultwarden",
		Details: details,
	}
}

// Sync collects organization members and collections. The public API wraps
// lists in a "data" field.
func (v *Vaultwarden) Sync(ctx context.Context, cfg Config) *SyncResult {
	result := NewSyncResult()

	client, err := newClient(cfg, v.headers(cfg))
	if err != nil {
		result.AddError("creating client: %v", err)
		return result
	}

	collections := []struct {
		name string
		path string
	}{
		{"members", "/public/members"},
		{"collections", "/public/collections"},
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
		records, err := decodeRecords(outcome.Body, "data")
		if err != nil {
			result.AddError("collecting %s: %v", c.name, err)
			continue
		}
		result.Add(c.name, records)
	}

	return result
}

func init() {
	Register(&Vaultwarden{})
}
