// Package middleware provides HTTP middleware for the catalog server:
// request logging, panic recovery, per-IP rate limiting, and the shared
// client IP extraction policy used by every IP-tagged write.
package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP extracts the caller's IP address. The first address in
// X-Forwarded-For wins when a proxy set it; otherwise X-Real-IP, then
// the direct connection address with the port stripped. Rating
// submission, view tracking, and rate limiting all share this one
// policy.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// SplitHostPort also unwraps the brackets of an IPv6 address; a bare
	// address without a port comes back as-is.
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
