// Package connector provides the Okta identity integration
package connector

import (
	"context"
	"fmt"
	"net/http"
)

// Okta is the connector for Okta identity tenants. Requires BaseURL
// (the tenant URL, e.g. https://example.okta.com) and APIToken.
type Okta struct{}

// Name returns the integration type.
func (o *Okta) Name() string {
	return "okta"
}

func (o *Okta) headers(cfg Config) map[string]string {
	return map[string]string{
		"Authorization": fmt.Sprintf("SSWS %s", cfg.APIToken),
		"Accept":        "application/json",
	}
}

// TestConnection checks that the users endpoint accepts the API token.
func (o *Okta) TestConnection(ctx context.Context, cfg Config) *TestResult {
	client, err := newClient(cfg, o.headers(cfg))
	if err != nil {
		return &TestResult{Success: false, Message: err.Error()}
	}

	outcome := client.Get(ctx, "/api/v1/users?limit=1")
	if !outcome.OK {
		return &TestResult{Success: false, Message: outcome.Message}
	}
	return &TestResult{
		Success: true,
		Message: "connected to Okta",
		Details: map[string]string{"status": fmt.Sprintf("%d", outcome.StatusCode)},
	}
}

// Sync collects users and groups. Okta returns top-level JSON arrays.
func (o *Okta) Sync(ctx context.Context, cfg Config) *SyncResult {
	result := NewSyncResult()

	client, err := newClient(cfg, o.headers(cfg))
	if err != nil {
		result.AddError("creating client: %v", err)
		return result
	}

	collections := []struct {
		name string
		path string
	}{
		{"users", "/api/v1/users"},
		{"groups", "/api/v1/groups"},
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
		records, err := decodeRecords(outcome.Body, "")
		if err != nil {
			result.AddError("collecting %s: %v", c.name, err)
			continue
		}
		result.Add(c.name, records)
	}

	return result
}

func init() {
	Register(&Okta{})
}
