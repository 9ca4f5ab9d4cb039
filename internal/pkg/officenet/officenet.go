// Package officenet decides whether a request originates from the office
// network. Check-ins are only accepted from whitelisted IPs/CIDRs.
package officenet

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Checker matches client IPs against a whitelist of single addresses and
// CIDR ranges. An empty whitelist allows everything (development mode).
type Checker struct {
	addrs    []netip.Addr
	prefixes []netip.Prefix
}

// NewChecker parses the whitelist entries. Invalid entries are skipped, so a
// typo in one entry does not lock everyone out.
func NewChecker(whitelist []string) *Checker {
	c := &Checker{}
	for _, entry := range whitelist {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			if prefix, err := netip.ParsePrefix(entry); err == nil {
				c.prefixes = append(c.prefixes, prefix.Masked())
			}
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			c.addrs = append(c.addrs, addr)
		}
	}
	return c
}

// Allowed reports whether ipStr is inside the office network.
func (c *Checker) Allowed(ipStr string) bool {
	if len(c.addrs) == 0 && len(c.prefixes) == 0 {
		return true
	}

	addr, err := netip.ParseAddr(ipStr)
	if err != nil {
		return false
	}
	addr = addr.Unmap()

	for _, allowed := range c.addrs {
		if addr == allowed.Unmap() {
			return true
		}
	}
	for _, prefix := range c.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// ClientIP extracts the originating client IP from a request, honoring the
// X-Forwarded-For and X-Real-IP headers set by reverse proxies.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// First hop in the chain is the original client
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
