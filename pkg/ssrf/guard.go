package ssrf

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/comply-toolkit/integration-runner/pkg/errors"
)

// ResolverFunc resolves a hostname to its addresses. The default is the
// system resolver; tests substitute it to simulate DNS rebinding.
type ResolverFunc func(ctx context.Context, host string) ([]net.IPAddr, error)

// Guard re-validates target addresses at connection time. It is installed
// as the DialContext of the shared transports, so it runs on every new
// connection — including reconnects over a reused logical client — which
// is what defeats DNS rebinding.
//
// A Guard holds no per-call state and is safe for unbounded concurrent use.
type Guard struct {
	resolve ResolverFunc
	dialer  *net.Dialer
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithResolver replaces the system resolver.
func WithResolver(r ResolverFunc) GuardOption {
	return func(g *Guard) {
		g.resolve = r
	}
}

// NewGuard creates a resolution-time guard backed by the system resolver.
func NewGuard(opts ...GuardOption) *Guard {
	g := &Guard{
		resolve: net.DefaultResolver.LookupIPAddr,
		dialer: &net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DialContext resolves and classifies the target before any bytes are sent,
// then dials the validated IP address directly rather than the hostname, so
// the address that was checked is the address that is connected to.
func (g *Guard) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return nil, errors.TransportError(fmt.Sprintf("invalid dial address %q", address), err)
	}

	addr, err := g.vet(ctx, host)
	if err != nil {
		return nil, err
	}

	return g.dialer.DialContext(ctx, network, net.JoinHostPort(addr.String(), port))
}

// vet resolves host (unless it is already an IP literal) and classifies
// every answer. If any resolved address is blocked the whole dial fails;
// skipping to the next answer would let an attacker pair one public record
// with a private one.
func (g *Guard) vet(ctx context.Context, host string) (netip.Addr, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		if verdict := Classify(addr); verdict.Blocked {
			return netip.Addr{}, errors.SSRFBlockedError(
				fmt.Sprintf("connection to %s refused: %s", addr, verdict.Reason)).
				WithContext("address", addr.String())
		}
		return addr.WithZone(""), nil
	}

	resolved, err := g.resolve(ctx, host)
	if err != nil {
		return netip.Addr{}, errors.TransportError(fmt.Sprintf("resolving %q", host), err)
	}
	if len(resolved) == 0 {
		return netip.Addr{}, errors.TransportError(fmt.Sprintf("no addresses for %q", host), nil)
	}

	var first netip.Addr
	for _, ipAddr := range resolved {
		addr, ok := netip.AddrFromSlice(ipAddr.IP)
		if !ok {
			continue
		}
		addr = addr.Unmap()
		if verdict := Classify(addr); verdict.Blocked {
			return netip.Addr{}, errors.SSRFBlockedError(
				fmt.Sprintf("hostname %q resolved to blocked address %s: %s", host, addr, verdict.Reason)).
				WithContext("hostname", host).
				WithContext("address", addr.String())
		}
		if !first.IsValid() {
			first = addr
		}
	}
	if !first.IsValid() {
		return netip.Addr{}, errors.TransportError(fmt.Sprintf("no usable addresses for %q", host), nil)
	}
	return first, nil
}
