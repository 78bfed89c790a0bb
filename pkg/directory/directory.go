package directory

import (
	"context"
	"time"
)

// Directory is the narrow read-only view of the platform's tenant data that
// the routing layer is allowed to consume. The gateway never reaches a data
// store directly; these three lookups are its entire world.
//
// Every method can fail with a transport error. Callers in the routing
// pipeline treat failures as "the check does not apply" (fail open) — the
// contract here is only to distinguish "found", "not found", and "failed".
type Directory interface {
	// ResolveDomain maps a normalized hostname to the slug of the tenant
	// that owns it as an active custom domain. Returns ErrNotFound when no
	// active domain matches.
	ResolveDomain(ctx context.Context, host string) (string, error)

	// FindRedirect returns the destination of the active redirect rule for
	// the exact (tenant, path) pair. Returns ErrNotFound when no rule
	// matches. Matching is exact-path, never prefix.
	FindRedirect(ctx context.Context, slug, path string) (string, error)

	// MaintenanceOn reports whether the tenant's maintenance flag is set.
	MaintenanceOn(ctx context.Context, slug string) (bool, error)
}

// Config describes the directory service endpoint and the staleness bounds
// for each lookup.
type Config struct {
	BaseURL        string        `env:"DIRECTORY_URL,required"`                      // BaseURL is the root of the directory API, e.g. "https://directory.internal".
	Timeout        time.Duration `env:"DIRECTORY_TIMEOUT" envDefault:"2s"`          // Timeout bounds each lookup call.
	DomainTTL      time.Duration `env:"DIRECTORY_DOMAIN_TTL" envDefault:"5m"`       // DomainTTL bounds staleness of domain resolution.
	RedirectTTL    time.Duration `env:"DIRECTORY_REDIRECT_TTL" envDefault:"60s"`    // RedirectTTL bounds staleness of redirect rules.
	MaintenanceTTL time.Duration `env:"DIRECTORY_MAINTENANCE_TTL" envDefault:"30s"` // MaintenanceTTL bounds staleness of the maintenance flag.
}
