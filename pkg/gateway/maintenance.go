package gateway

import _ "embed"

// maintenancePage is served as-is on 503 responses. It is self-contained:
// no scripts, no external assets, nothing that depends on the tenant's site
// being reachable.
//
//go:embed maintenance.html
var maintenancePage []byte
