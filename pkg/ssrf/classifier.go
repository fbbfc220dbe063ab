// Package ssrf guards outbound requests against Server-Side Request Forgery.
//
// Integration base URLs are supplied by organization administrators and are
// therefore attacker-influenceable. Every target address goes through two
// layers: a static check at client creation (ValidateBaseURL) and a
// resolution-time check on every connection attempt (Guard), so a hostname
// cannot be rebound to an internal address between validation and connect.
package ssrf

import (
	"fmt"
	"net/netip"
)

// Verdict is the result of classifying a single IP address.
type Verdict struct {
	Blocked bool
	Reason  string
}

// Allowed returns an allowing verdict.
func Allowed() Verdict {
	return Verdict{}
}

// Blocked returns a blocking verdict naming the matched range.
func Blocked(reason string) Verdict {
	return Verdict{Blocked: true, Reason: reason}
}

// v4Range pairs a blocked IPv4 prefix with its human-readable reason.
// Order matters: first match wins.
type blockedRange struct {
	prefix netip.Prefix
	reason string
}

var v4Ranges = []blockedRange{
	{netip.MustParsePrefix("127.0.0.0/8"), "loopback IP range 127.0.0.0/8"},
	{netip.MustParsePrefix("169.254.0.0/16"), "link-local IP range 169.254.0.0/16"},
	{netip.MustParsePrefix("10.0.0.0/8"), "private IP range 10.0.0.0/8"},
	{netip.MustParsePrefix("172.16.0.0/12"), "private IP range 172.16.0.0/12"},
	{netip.MustParsePrefix("192.168.0.0/16"), "private IP range 192.168.0.0/16"},
}

var v6Ranges = []blockedRange{
	{netip.MustParsePrefix("fc00::/7"), "IPv6 unique-local fc00::/7"},
	{netip.MustParsePrefix("fe80::/10"), "IPv6 link-local fe80::/10"},
}

// Classify decides whether an IP address falls into a disallowed range.
// It is pure: no I/O, no global state, same input always yields the same
// verdict.
func Classify(addr netip.Addr) Verdict {
	// Prefix.Contains never matches an address carrying a zone.
	addr = addr.WithZone("")

	if addr.Is4() {
		return classify4(addr)
	}

	if addr == netip.IPv6Loopback() {
		return Blocked("IPv6 loopback ::1")
	}
	if addr.IsUnspecified() {
		return Blocked("IPv6 unspecified address ::")
	}
	// ::ffff:0:0/96, the IPv6-mapped IPv4 space.
	if addr.Is4In6() {
		inner := classify4(addr.Unmap())
		if inner.Blocked {
			return Blocked("IPv6-mapped IPv4: " + inner.Reason)
		}
		return Allowed()
	}
	for _, r := range v6Ranges {
		if r.prefix.Contains(addr) {
			return Blocked(r.reason)
		}
	}
	return Allowed()
}

func classify4(addr netip.Addr) Verdict {
	if addr.IsUnspecified() {
		return Blocked("unspecified address 0.0.0.0")
	}
	for _, r := range v4Ranges {
		if r.prefix.Contains(addr) {
			return Blocked(r.reason)
		}
	}
	return Allowed()
}

// ClassifyString parses a textual IP literal and classifies it. Both plain
// IPv6 notation and the embedded IPv4-mapped form (::ffff:a.b.c.d) are
// accepted.
func ClassifyString(literal string) (Verdict, error) {
	addr, err := netip.ParseAddr(literal)
	if err != nil {
		return Verdict{}, fmt.Errorf("not an IP literal: %q", literal)
	}
	return Classify(addr), nil
}
