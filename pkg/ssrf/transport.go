package ssrf

import (
	"net/http"
	"time"
)

// DefaultGuard backs the shared transports. Constructed once at init and
// read-only afterwards.
var DefaultGuard = NewGuard()

// The two process-wide transports, one per scheme. They own the connection
// pools and are the single intentional exception to "no shared state":
// immutable after construction, carrying no per-call configuration, with
// the guard re-checking DNS on every new connection.
var (
	plainTransport  = newGuardedTransport(DefaultGuard)
	secureTransport = newGuardedTransport(DefaultGuard)
)

func newGuardedTransport(g *Guard) *http.Transport {
	return &http.Transport{
		DialContext:         g.DialContext,
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}
}

// TransportFor returns the shared transport for a validated scheme.
func TransportFor(scheme string) *http.Transport {
	if scheme == "https" {
		return secureTransport
	}
	return plainTransport
}
