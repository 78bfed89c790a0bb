package hostname_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/steeplehq/gateway/pkg/hostname"
)

func newClassifier() *hostname.Classifier {
	return hostname.NewClassifier(
		[]string{"steeple.app"},
		[]string{"localhost", "lvh.me"},
	)
}

func TestExtractSubdomain(t *testing.T) {
	t.Parallel()

	c := newClassifier()

	tests := []struct {
		host string
		want string
	}{
		{"grace.steeple.app", "grace"},
		{"grace.steeple.app:443", "grace"},
		{"GRACE.Steeple.App", "grace"},
		{"www.steeple.app", ""},
		{"WWW.steeple.app", ""},
		{"www.grace.steeple.app", ""},
		{"steeple.app", ""},
		{"app", ""},
		{"", ""},
		// Development hosts: bare pattern yields nothing, prefixed yields the label.
		{"localhost", ""},
		{"localhost:3000", ""},
		{"grace.localhost", "grace"},
		{"grace.localhost:3000", "grace"},
		{"grace.lvh.me", "grace"},
		{"www.localhost", ""},
		// Custom domains have no platform subdomain even with three labels.
		{"www.gracechurch.org", ""},
		{"give.gracechurch.org", "give"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.ExtractSubdomain(tt.host), "host %q", tt.host)
	}
}

func TestIsPotentialCustomDomain(t *testing.T) {
	t.Parallel()

	c := newClassifier()

	tests := []struct {
		host string
		want bool
	}{
		{"gracechurch.org", true},
		{"www.gracechurch.org", true},
		{"give.gracechurch.org", true},
		{"steeple.app", false},
		{"www.steeple.app", false},
		{"grace.steeple.app", false},
		{"grace.steeple.app:443", false},
		{"localhost", false},
		{"localhost:3000", false},
		{"grace.localhost", false},
		{"grace.lvh.me", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.IsPotentialCustomDomain(tt.host), "host %q", tt.host)
	}
}
