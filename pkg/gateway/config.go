package gateway

import "time"

// Config carries the routing policy knobs. Prefix lists match on whole path
// segments, so "/admin" covers "/admin" and "/admin/...", not "/administrate".
type Config struct {
	MainDomains           []string      `env:"GATEWAY_MAIN_DOMAINS" envSeparator:"," envDefault:"steeple.app"`                            // MainDomains are the platform's own domains; they never resolve as custom domains.
	DevHosts              []string      `env:"GATEWAY_DEV_HOSTS" envSeparator:"," envDefault:"localhost,lvh.me"`                          // DevHosts are loopback/development hostname patterns.
	ProtectedPrefixes     []string      `env:"GATEWAY_PROTECTED_PREFIXES" envSeparator:"," envDefault:"/admin,/dashboard"`                // ProtectedPrefixes require a session cookie.
	BypassPrefixes        []string      `env:"GATEWAY_BYPASS_PREFIXES" envSeparator:"," envDefault:"/healthz,/metrics"`                   // BypassPrefixes skip tenant routing entirely.
	ReservedPrefixes      []string      `env:"GATEWAY_RESERVED_PREFIXES" envSeparator:"," envDefault:"/admin,/dashboard,/api,/login,/signup,/logout"` // ReservedPrefixes are excluded from redirect and maintenance checks.
	StaticPrefixes        []string      `env:"GATEWAY_STATIC_PREFIXES" envSeparator:"," envDefault:"/static,/assets"`                     // StaticPrefixes are asset paths excluded from matching.
	SessionCookie         string        `env:"GATEWAY_SESSION_COOKIE" envDefault:"steeple_session"`                                      // SessionCookie is the name of the session cookie the auth gate looks for.
	LoginPath             string        `env:"GATEWAY_LOGIN_PATH" envDefault:"/login"`                                                   // LoginPath receives auth-gate redirects.
	MaintenanceRetryAfter time.Duration `env:"GATEWAY_MAINTENANCE_RETRY_AFTER" envDefault:"300s"`                                        // MaintenanceRetryAfter is advertised on 503 responses.
}
