// Package connector provides the Jamf Pro MDM integration
package connector

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
)

// JamfPro is the connector for Jamf Pro mobile device management servers.
// Requires BaseURL, Username and Password (classic API basic auth).
type JamfPro struct{}

// Name returns the integration type.
func (j *JamfPro) Name() string {
	return "jamf"
}

func (j *JamfPro) headers(cfg Config) map[string]string {
	credentials := base64.StdEncoding.EncodeToString(
		[]byte(fmt.Sprintf("%s:%s", cfg.Username, cfg.Password)))
	return map[string]string{
		"Authorization": fmt.Sprintf("Basic %s", credentials),
		"Accept":        "application/json",
	}
}

// TestConnection checks that the computers endpoint accepts the credentials.
func (j *JamfPro) TestConnection(ctx context.Context, cfg Config) *TestResult {
	client, err := newClient(cfg, j.headers(cfg))
	if err != nil {
		return &TestResult{Success: false, Message: err.Error()}
	}

	outcome := client.Get(ctx, "/JSSResource/computers")
	if !outcome.OK {
		return &TestResult{Success: false, Message: outcome.Message}
	}
	return &TestResult{
		Success: true,
		Message: "connected to Jamf Pro",
		Details: map[string]string{"status": fmt.Sprintf("%d", outcome.StatusCode)},
	}
}

// Sync collects managed computers and mobile devices.
func (j *JamfPro) Sync(ctx context.Context, cfg Config) *SyncResult {
	result := NewSyncResult()

	client, err := newClient(cfg, j.headers(cfg))
	if err != nil {
		result.AddError("creating client: %v", err)
		return result
	}

	collections := []struct {
		name string
		path string
		key  string
	}{
		{"computers", "/JSSResource/computers", "computers"},
		{"mobile_devices", "/JSSResource/mobiledevices", "mobile_devices"},
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
		records, err := decodeRecords(outcome.Body, c.key)
		if err != nil {
			result.AddError("collecting %s: %v", c.name, err)
			continue
		}
		result.Add(c.name, records)
	}

	return result
}

func init() {
	Register(&JamfPro{})
}
