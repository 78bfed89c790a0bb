package hostname

import (
	"net"
	"strings"
)

// Classifier answers the two hostname questions the routing layer asks:
// which subdomain a host carries, and whether a host could be a
// tenant-owned custom domain worth a directory lookup.
type Classifier struct {
	mainDomains []string
	devHosts    []string
}

// NewClassifier creates a classifier for the given platform domains
// (e.g. "steeple.app") and development host patterns (e.g. "localhost",
// "lvh.me"). All matching is case-insensitive.
func NewClassifier(mainDomains, devHosts []string) *Classifier {
	return &Classifier{
		mainDomains: lowerAll(mainDomains),
		devHosts:    lowerAll(devHosts),
	}
}

// ExtractSubdomain returns the tenant subdomain of host, or "" when the host
// carries none. The port is ignored. A development host pattern matches bare
// ("localhost" → "") or as a suffix ("grace.localhost" → "grace"). Otherwise
// a host needs at least three labels and its first label is the subdomain.
// "www" is never a subdomain.
func (c *Classifier) ExtractSubdomain(host string) string {
	host = normalize(host)
	if host == "" {
		return ""
	}

	for _, dev := range c.devHosts {
		if host == dev {
			return ""
		}
		if strings.HasSuffix(host, "."+dev) {
			prefix := strings.TrimSuffix(host, "."+dev)
			label, _, _ := strings.Cut(prefix, ".")
			if label == "" || label == "www" {
				return ""
			}
			return label
		}
	}

	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return ""
	}
	if labels[0] == "" || labels[0] == "www" {
		return ""
	}
	return labels[0]
}

// IsPotentialCustomDomain reports whether host might be a tenant's custom
// domain. Development hosts, the platform's own domains, and any of their
// subdomains (including "www") are excluded; everything else is a candidate.
// This gates whether the network-costly directory lookup is attempted at all.
func (c *Classifier) IsPotentialCustomDomain(host string) bool {
	host = normalize(host)
	if host == "" {
		return false
	}

	for _, dev := range c.devHosts {
		if host == dev || strings.HasSuffix(host, "."+dev) {
			return false
		}
	}

	for _, main := range c.mainDomains {
		if host == main || strings.HasSuffix(host, "."+main) {
			return false
		}
	}

	return true
}

// normalize strips an optional port and lowercases the host.
func normalize(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.TrimSpace(host))
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
