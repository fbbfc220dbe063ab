// Package connector defines the contract between the integration runner and
// vendor connector plugins. A connector supplies vendor-specific
// authentication and endpoint paths and issues every network call through
// the gateway, which SSRF-validates the target both statically and at
// resolution time. Connectors never construct network clients themselves.
package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/comply-toolkit/integration-runner/pkg/gateway"
)

// Config is the administrator-supplied configuration for one integration.
// All fields are optional from the runner's point of view; each connector
// documents which ones it requires.
type Config struct {
	BaseURL      string
	APIKey       string
	APIToken     string
	Username     string
	Password     string
	Organization string
	TimeoutMS    int
}

// Timeout returns the configured call timeout, defaulting to the gateway's
// 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return gateway.DefaultTimeout
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// TestResult reports the outcome of a connectivity test.
type TestResult struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// SyncResult carries the collections gathered by one sync run. Collection
// names are vendor-specific ("assets", "users", ...).
type SyncResult struct {
	CollectedAt time.Time                   `json:"collected_at"`
	Errors      []string                    `json:"errors"`
	Collections map[string][]map[string]any `json:"collections"`
}

// NewSyncResult creates an empty result stamped with the current time.
func NewSyncResult() *SyncResult {
	return &SyncResult{
		CollectedAt: time.Now().UTC(),
		Errors:      []string{},
		Collections: make(map[string][]map[string]any),
	}
}

// AddError records a collection error without aborting the run.
func (r *SyncResult) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Add stores a named collection.
func (r *SyncResult) Add(name string, records []map[string]any) {
	r.Collections[name] = records
}

// Connector is a vendor integration plugin. Implementations are stateless;
// every invocation receives its own Config and creates its own
// request-scoped gateway client.
type Connector interface {
	// Name returns the integration type identifier (e.g. "snipeit").
	Name() string

	// TestConnection verifies that the configured endpoint is reachable
	// and the credentials are accepted.
	TestConnection(ctx context.Context, cfg Config) *TestResult

	// Sync collects the connector's inventory collections.
	Sync(ctx context.Context, cfg Config) *SyncResult
}

// newClient builds a request-scoped gateway client from an integration
// config. Shared by all connectors so none of them touch the network layer
// directly. A variable so tests can stub the transport.
var newClient = func(cfg Config, headers map[string]string) (*gateway.Client, error) {
	return gateway.New(cfg.BaseURL,
		gateway.WithHeaders(headers),
		gateway.WithTimeout(cfg.Timeout()))
}

// decodeRecords extracts a list of objects from a JSON response body. When
// key is empty the body is expected to be a top-level array; otherwise an
// object wrapping the array under key.
func decodeRecords(body []byte, key string) ([]map[string]any, error) {
	if key == "" {
		var records []map[string]any
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
		return records, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	raw, ok := wrapper[key]
	if !ok {
		return nil, fmt.Errorf("response has no %q field", key)
	}
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding %q field: %w", key, err)
	}
	return records, nil
}
