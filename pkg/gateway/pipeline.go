package gateway

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/steeplehq/gateway/pkg/clientip"
	"github.com/steeplehq/gateway/pkg/directory"
	"github.com/steeplehq/gateway/pkg/metrics"
	"github.com/steeplehq/gateway/pkg/ratelimit"
	"github.com/steeplehq/gateway/pkg/tenant"
)

// KeyFunc extracts the rate-limit key from a request.
type KeyFunc func(*http.Request) string

// Pipeline is the ordered chain of routing stages every request runs
// through. Each stage either lets the request continue or writes a terminal
// response; at most one stage terminates a request, and the order below is a
// contract:
//
//	rate limit → global bypass → tenant resolution → redirect →
//	maintenance → auth gate → header propagation → forward
type Pipeline struct {
	cfg          Config
	limiter      ratelimit.Limiter
	orchestrator *tenant.Orchestrator
	directory    directory.Directory
	keyFunc      KeyFunc
	log          *slog.Logger
	metrics      *metrics.GatewayMetrics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline logger. Nil is ignored.
func WithLogger(log *slog.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// WithMetrics attaches Prometheus instrumentation.
func WithMetrics(m *metrics.GatewayMetrics) Option {
	return func(p *Pipeline) {
		if m != nil {
			p.metrics = m
		}
	}
}

// WithKeyFunc overrides how the rate-limit key is derived.
func WithKeyFunc(fn KeyFunc) Option {
	return func(p *Pipeline) {
		if fn != nil {
			p.keyFunc = fn
		}
	}
}

// New creates the routing pipeline.
func New(cfg Config, limiter ratelimit.Limiter, orchestrator *tenant.Orchestrator, dir directory.Directory, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:          cfg,
		limiter:      limiter,
		orchestrator: orchestrator,
		directory:    dir,
		keyFunc:      clientip.ClientKey,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handler wraps next (the forwarder to the application) with the routing
// pipeline.
func (p *Pipeline) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if done := p.rateLimitStage(w, r); done {
			return
		}

		if hasAnyPrefix(r.URL.Path, p.cfg.BypassPrefixes) {
			// Bypassed routes skip resolution but still must not leak
			// client-supplied identity headers upstream.
			r.Header.Del(HeaderTenantSlug)
			r.Header.Del(HeaderSiteType)
			r.Header.Del(HeaderCustomDomain)
			p.countOutcome("bypassed")
			next.ServeHTTP(w, r)
			return
		}

		res := p.orchestrator.Resolve(r.Context(), r.Host)
		r = r.WithContext(tenant.WithResolution(r.Context(), res))

		if res.Slug == "" {
			p.propagateStage(r, res)
			p.countOutcome("marketing")
			next.ServeHTTP(w, r)
			return
		}

		if p.isPublicPath(r.URL.Path) {
			if done := p.redirectStage(w, r, res); done {
				return
			}
			if done := p.maintenanceStage(w, r, res); done {
				return
			}
		}

		if done := p.authGateStage(w, r); done {
			return
		}

		p.propagateStage(r, res)
		p.countOutcome("forwarded")
		next.ServeHTTP(w, r)
	})
}

func (p *Pipeline) countOutcome(outcome string) {
	if p.metrics != nil {
		p.metrics.RequestsTotal.WithLabelValues(outcome).Inc()
	}
}
