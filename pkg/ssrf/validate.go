package ssrf

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"

	"github.com/comply-toolkit/integration-runner/pkg/errors"
)

// blockedHostnames are rejected by exact, case-insensitive string match.
// The metadata list is deliberately narrow: the numeric metadata endpoints
// of the major clouds already fall inside 169.254.0.0/16.
var blockedHostnames = map[string]struct{}{
	"localhost":                {},
	"metadata.google.internal": {},
	"metadata.goog":            {},
}

// ValidateBaseURL statically validates an administrator-supplied base URL.
//
// Only http and https schemes pass. Hostnames that are IP literals are
// classified immediately; DNS names are not resolved here — that check
// belongs to the Guard, which runs on every connection attempt. Resolving
// here as well would only add a second, weaker check with a
// time-of-check/time-of-use gap.
func ValidateBaseURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return errors.InvalidURLError(fmt.Sprintf("base URL %q does not parse", raw), err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return errors.SSRFBlockedError(fmt.Sprintf("unsupported protocol %q: only http and https are allowed", parsed.Scheme))
	}

	hostname := parsed.Hostname()
	if hostname == "" {
		return errors.InvalidURLError(fmt.Sprintf("base URL %q has no hostname", raw), nil)
	}

	if _, blocked := blockedHostnames[strings.ToLower(hostname)]; blocked {
		return errors.SSRFBlockedError(fmt.Sprintf("hostname %q is blocked", hostname)).
			WithContext("hostname", hostname)
	}

	if addr, err := netip.ParseAddr(hostname); err == nil {
		if verdict := Classify(addr); verdict.Blocked {
			return errors.SSRFBlockedError(verdict.Reason).
				WithContext("hostname", hostname)
		}
	}

	return nil
}
