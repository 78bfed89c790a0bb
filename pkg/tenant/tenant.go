package tenant

// SiteType tells downstream handlers which surface a request belongs to.
type SiteType string

const (
	// SiteTypeMarketing is the platform's own marketing/default site,
	// served when no tenant could be resolved.
	SiteTypeMarketing SiteType = "marketing"

	// SiteTypeChurch is a tenant's public website.
	SiteTypeChurch SiteType = "church"
)

// Resolution is the per-request outcome of tenant resolution. It is created
// once per request and consumed only for that request's lifetime.
type Resolution struct {
	// Slug identifies the resolved tenant; empty means no tenant
	// (marketing routing).
	Slug string

	// CustomDomain is true when the tenant was resolved through a
	// custom-domain directory lookup rather than subdomain extraction.
	CustomDomain bool

	// Host is the normalized request hostname the resolution was made for.
	Host string
}

// SiteType derives the site-type marker from the resolution outcome.
func (r Resolution) SiteType() SiteType {
	if r.Slug == "" {
		return SiteTypeMarketing
	}
	return SiteTypeChurch
}
