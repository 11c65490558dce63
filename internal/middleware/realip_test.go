package middleware

import (
	"net/http/httptest"
	"testing"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		realIP     string
		want       string
	}{
		{
			name:       "direct connection",
			remoteAddr: "203.0.113.7:51234",
			want:       "203.0.113.7",
		},
		{
			name:       "single forwarded address",
			remoteAddr: "10.0.0.1:443",
			forwarded:  "198.51.100.4",
			want:       "198.51.100.4",
		},
		{
			name:       "first forwarded address wins",
			remoteAddr: "10.0.0.1:443",
			forwarded:  "198.51.100.4, 10.0.0.2, 10.0.0.3",
			want:       "198.51.100.4",
		},
		{
			name:       "forwarded with spaces",
			remoteAddr: "10.0.0.1:443",
			forwarded:  " 198.51.100.4 , 10.0.0.2",
			want:       "198.51.100.4",
		},
		{
			name:       "x-real-ip fallback",
			remoteAddr: "10.0.0.1:443",
			realIP:     "198.51.100.9",
			want:       "198.51.100.9",
		},
		{
			name:       "forwarded beats x-real-ip",
			remoteAddr: "10.0.0.1:443",
			forwarded:  "198.51.100.4",
			realIP:     "198.51.100.9",
			want:       "198.51.100.4",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "ipv6 direct connection strips brackets",
			remoteAddr: "[2001:db8::1]:51234",
			want:       "2001:db8::1",
		},
		{
			name:       "ipv6 without port",
			remoteAddr: "2001:db8::1",
			want:       "2001:db8::1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}

			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
