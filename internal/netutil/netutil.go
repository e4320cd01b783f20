package netutil

import (
	"net/netip"
	"strings"
)

// NormalizeIP takes either a bare IP string or an address that may include a
// port (e.g. "192.0.2.4:1234" or "[2001:db8::1]:443") and returns the
// canonical IP portion without any zone identifiers. The second return value
// indicates whether the input parsed as an IP address.
func NormalizeIP(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if addrPort, err := netip.ParseAddrPort(raw); err == nil {
		return addrPort.Addr().WithZone("").String(), true
	}
	if addr, err := netip.ParseAddr(raw); err == nil {
		return addr.WithZone("").String(), true
	}
	// host:port where the host itself is an address but the port part did
	// not parse, e.g. "[::1]:http".
	if idx := strings.LastIndex(raw, ":"); idx > 0 {
		host := strings.Trim(raw[:idx], "[]")
		if addr, err := netip.ParseAddr(host); err == nil {
			return addr.WithZone("").String(), true
		}
	}
	return raw, false
}

// CanonicalAddr normalizes client-supplied device/sender/reader addresses.
// IP-shaped values are canonicalized, anything else passes through trimmed so
// the stored value stays inspectable.
func CanonicalAddr(raw string) string {
	normalized, _ := NormalizeIP(raw)
	return normalized
}
