package gateway

// Headers injected by the gateway. Downstream handlers must trust only these
// injected values; the propagation stage strips any copies a client supplied.
const (
	// HeaderTenantSlug carries the resolved tenant slug.
	HeaderTenantSlug = "X-Tenant-Slug"

	// HeaderSiteType is "marketing" or "church".
	HeaderSiteType = "X-Site-Type"

	// HeaderCustomDomain carries the original hostname when resolution went
	// through the custom-domain path.
	HeaderCustomDomain = "X-Custom-Domain"
)
