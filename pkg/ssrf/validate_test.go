package ssrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comply-toolkit/integration-runner/pkg/errors"
)

func TestValidateBaseURL_Allowed(t *testing.T) {
	urls := []string{
		"https://api.example.com/v1",
		"http://assets.example.org",
		"https://example.okta.com:8443/api",
		"https://8.8.8.8/metrics",
		// DNS names are deferred to the resolution-time guard, even ones
		// that would resolve somewhere private.
		"https://intranet.corp.example",
	}
	for _, raw := range urls {
		t.Run(raw, func(t *testing.T) {
			assert.NoError(t, ValidateBaseURL(raw))
		})
	}
}

func TestValidateBaseURL_Blocked(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		errType errors.ErrorType
	}{
		{"localhost", "http://localhost/x", errors.ErrSSRFBlocked},
		{"localhost mixed case", "http://LocalHost:8080/", errors.ErrSSRFBlocked},
		{"gcp metadata hostname", "http://metadata.google.internal/computeMetadata/v1/", errors.ErrSSRFBlocked},
		{"gcp metadata short hostname", "http://metadata.goog/", errors.ErrSSRFBlocked},
		{"metadata ip", "http://169.254.169.254/", errors.ErrSSRFBlocked},
		{"loopback ip", "http://127.0.0.1:8080/", errors.ErrSSRFBlocked},
		{"private ip", "https://10.0.0.5/api", errors.ErrSSRFBlocked},
		{"ipv6 loopback", "http://[::1]/", errors.ErrSSRFBlocked},
		{"ipv6 mapped private", "http://[::ffff:192.168.0.1]/", errors.ErrSSRFBlocked},
		{"ipv6 unique local", "http://[fd00::1]/", errors.ErrSSRFBlocked},
		{"ftp scheme", "ftp://example.com", errors.ErrSSRFBlocked},
		{"file scheme", "file:///etc/passwd", errors.ErrSSRFBlocked},
		{"no scheme", "not a url", errors.ErrSSRFBlocked},
		{"missing hostname", "http://", errors.ErrInvalidURL},
		{"unparseable", "http://[::1", errors.ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaseURL(tt.raw)
			require.Error(t, err, "expected %q to fail validation", tt.raw)
			assert.True(t, errors.IsType(err, tt.errType),
				"expected error type %v, got: %v", tt.errType, err)
		})
	}
}

func TestValidateBaseURL_ReasonNamesRange(t *testing.T) {
	err := ValidateBaseURL("https://10.0.0.5/api")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10.0.0.0/8")
}

// Validation is pure: repeating it on the same allowed URL never blocks and
// has no side effects.
func TestValidateBaseURL_Idempotent(t *testing.T) {
	const raw = "https://api.example.com/v1"
	require.NoError(t, ValidateBaseURL(raw))
	require.NoError(t, ValidateBaseURL(raw))
}
