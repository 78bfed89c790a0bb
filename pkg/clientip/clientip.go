package clientip

import (
	"net"
	"net/http"
	"strings"
)

// UnknownKey is returned when no usable client address can be derived.
// Requests without any address information share one rate-limit bucket.
const UnknownKey = "unknown"

// ClientKey returns the rate-limit key for an HTTP request.
// Priority order matches the platform's CDN chain:
//  1. CF-Connecting-IP (CDN-supplied client address)
//  2. X-Forwarded-For (first entry, comma-split and trimmed)
//  3. X-Real-IP (reverse proxy)
//  4. RemoteAddr (direct connection)
//  5. UnknownKey sentinel
func ClientKey(r *http.Request) string {
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		if parsed := parseIP(ip); parsed != "" {
			return parsed
		}
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if parsed := parseIP(first); parsed != "" {
			return parsed
		}
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		if parsed := parseIP(ip); parsed != "" {
			return parsed
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr may already be a bare IP.
		host = r.RemoteAddr
	}
	if parsed := parseIP(host); parsed != "" {
		return parsed
	}

	return UnknownKey
}

// parseIP validates and normalizes an IP address string.
// Returns empty string if the IP is invalid.
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	return ip.String()
}
