// Package tenant resolves which tenant (church) an inbound request belongs
// to, using the hostname alone.
//
// Resolution tries the custom-domain directory first, then platform
// subdomain extraction, and falls back to marketing routing when neither
// matches. The outcome travels in the request context and is the sole source
// of tenant identity for the rest of the pipeline.
package tenant
