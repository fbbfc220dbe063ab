// Package connector provides shared connector test helpers
package connector

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/comply-toolkit/integration-runner/pkg/gateway"
)

// withStubbedNetwork reroutes every gateway client built by connectors to
// the test server for the duration of one test.
func withStubbedNetwork(t *testing.T, srv *httptest.Server) {
	t.Helper()
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parsing server URL: %v", err)
	}
	transport := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(ctx, network, u.Host)
		},
		// The test server speaks plain HTTP; returning the raw conn here
		// skips the TLS handshake for https base URLs.
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(ctx, network, u.Host)
		},
	}

	orig := newClient
	newClient = func(cfg Config, headers map[string]string) (*gateway.Client, error) {
		return gateway.New(cfg.BaseURL,
			gateway.WithHeaders(headers),
			gateway.WithTimeout(cfg.Timeout()),
			gateway.WithTransport(transport))
	}
	t.Cleanup(func() { newClient = orig })
}

func TestConfig_Timeout(t *testing.T) {
	cfg := Config{}
	if got := cfg.Timeout(); got != gateway.DefaultTimeout {
		t.Errorf("Timeout() = %v, want %v", got, gateway.DefaultTimeout)
	}

	cfg = Config{TimeoutMS: 5000}
	if got := cfg.Timeout(); got != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", got)
	}
}

func TestDecodeRecords(t *testing.T) {
	records, err := decodeRecords([]byte(`{"rows": [{"id": 1}, {"id": 2}]}`), "rows")
	if err != nil {
		t.Fatalf("decodeRecords() error = %v", err)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}

	records, err = decodeRecords([]byte(`[{"id": 1}]`), "")
	if err != nil {
		t.Fatalf("decodeRecords() error = %v", err)
	}
	if len(records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(records))
	}

	if _, err := decodeRecords([]byte(`{"other": []}`), "rows"); err == nil {
		t.Error("expected error for missing field")
	}
	if _, err := decodeRecords([]byte(`not json`), "rows"); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

// A connector pointed at an internal address is refused before any request
// is issued; the stub above is NOT installed here on purpose.
func TestConnectors_RejectInternalBaseURL(t *testing.T) {
	cfg := Config{BaseURL: "http://169.254.169.254", APIToken: "tok"}

	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			conn, _ := Get(name)
			result := conn.TestConnection(context.Background(), cfg)
			if result.Success {
				t.Fatalf("TestConnection() succeeded against a metadata address")
			}
			sync := conn.Sync(context.Background(), cfg)
			if len(sync.Errors) == 0 {
				t.Fatalf("Sync() reported no errors against a metadata address")
			}
		})
	}
}
