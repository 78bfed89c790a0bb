package gateway

import "strings"

// hasPathPrefix reports whether path falls under prefix on a segment
// boundary: "/admin" matches "/admin" and "/admin/users" but not
// "/administrate".
func hasPathPrefix(path, prefix string) bool {
	if prefix == "" || prefix == "/" {
		return prefix == "/"
	}
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if hasPathPrefix(path, p) {
			return true
		}
	}
	return false
}

// isPublicPath reports whether redirect and maintenance checks apply to path.
// Reserved surfaces (admin, API, auth pages), static assets, and anything
// that looks like a file (a segment containing a dot) are excluded.
func (p *Pipeline) isPublicPath(path string) bool {
	if hasAnyPrefix(path, p.cfg.ReservedPrefixes) {
		return false
	}
	if hasAnyPrefix(path, p.cfg.StaticPrefixes) {
		return false
	}
	for _, segment := range strings.Split(path, "/") {
		if strings.Contains(segment, ".") {
			return false
		}
	}
	return true
}
