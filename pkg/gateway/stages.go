package gateway

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/steeplehq/gateway/pkg/directory"
	"github.com/steeplehq/gateway/pkg/requestid"
	"github.com/steeplehq/gateway/pkg/tenant"
)

// rateLimitStage enforces the fixed-window limit before any other work. It
// is the only stage that can reject a request without network I/O. A limiter
// failure allows the request through: throttling is policy, not correctness.
func (p *Pipeline) rateLimitStage(w http.ResponseWriter, r *http.Request) bool {
	key := p.keyFunc(r)
	if key == "" {
		return false
	}

	result, err := p.limiter.Allow(r.Context(), key)
	if err != nil {
		p.log.WarnContext(r.Context(), "rate limit check failed, allowing request",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return false
	}

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

	if result.Allowed {
		return false
	}

	retryAfter := int(result.RetryAfter().Seconds())
	if retryAfter < 1 {
		retryAfter = 1
	}
	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	http.Error(w, "Too Many Requests", http.StatusTooManyRequests)

	if p.metrics != nil {
		p.metrics.RateLimitedTotal.Inc()
	}
	p.countOutcome("rate_limited")
	return true
}

// redirectStage issues a 301 when the tenant has an active rule for the
// exact request path. Rules are evaluated one hop at a time; the gateway
// does not chase or detect chains.
func (p *Pipeline) redirectStage(w http.ResponseWriter, r *http.Request, res tenant.Resolution) bool {
	dest, err := p.directory.FindRedirect(r.Context(), res.Slug, r.URL.Path)
	if err != nil {
		if !errors.Is(err, directory.ErrNotFound) {
			p.log.WarnContext(r.Context(), "redirect lookup failed, skipping",
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)
			p.countLookupFailure("redirect")
		}
		return false
	}

	// A leading slash keeps the tenant's own host; anything else is a
	// cross-origin destination used verbatim.
	location := dest
	if u, err := url.Parse(dest); err == nil && !u.IsAbs() && dest != "" && dest[0] != '/' {
		// Relative without a leading slash: resolve against the request path.
		location = r.URL.ResolveReference(u).String()
	}

	http.Redirect(w, r, location, http.StatusMovedPermanently)
	p.countOutcome("redirected")
	return true
}

// maintenanceStage short-circuits with a static 503 page when the tenant's
// maintenance flag is on. Runs after redirect by contract.
func (p *Pipeline) maintenanceStage(w http.ResponseWriter, r *http.Request, res tenant.Resolution) bool {
	on, err := p.directory.MaintenanceOn(r.Context(), res.Slug)
	if err != nil {
		p.log.WarnContext(r.Context(), "maintenance lookup failed, assuming off",
			slog.Any("error", err),
		)
		p.countLookupFailure("maintenance")
		return false
	}
	if !on {
		return false
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Retry-After", strconv.Itoa(int(p.cfg.MaintenanceRetryAfter.Seconds())))
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write(maintenancePage)

	p.countOutcome("maintenance")
	return true
}

// authGateStage checks for session-cookie presence on protected prefixes.
// Validation of the cookie itself is delegated downstream; this layer has no
// way to verify a signature.
func (p *Pipeline) authGateStage(w http.ResponseWriter, r *http.Request) bool {
	if !hasAnyPrefix(r.URL.Path, p.cfg.ProtectedPrefixes) {
		return false
	}

	if _, err := r.Cookie(p.cfg.SessionCookie); err == nil {
		return false
	}

	login := p.cfg.LoginPath + "?returnTo=" + url.QueryEscape(r.URL.Path)
	http.Redirect(w, r, login, http.StatusFound)
	p.countOutcome("login_redirect")
	return true
}

// propagateStage injects the resolved identity into the forwarded request.
// Client-supplied copies of these headers are stripped first; downstream
// code must only ever see values this gateway wrote.
func (p *Pipeline) propagateStage(r *http.Request, res tenant.Resolution) {
	r.Header.Del(HeaderTenantSlug)
	r.Header.Del(HeaderSiteType)
	r.Header.Del(HeaderCustomDomain)

	if res.Slug != "" {
		r.Header.Set(HeaderTenantSlug, res.Slug)
	}
	r.Header.Set(HeaderSiteType, string(res.SiteType()))
	if res.CustomDomain {
		r.Header.Set(HeaderCustomDomain, res.Host)
	}
	if id := requestid.FromContext(r.Context()); id != "" {
		r.Header.Set(requestid.Header, id)
	}
}

func (p *Pipeline) countLookupFailure(operation string) {
	if p.metrics != nil {
		p.metrics.LookupFailuresTotal.WithLabelValues(operation).Inc()
	}
}
