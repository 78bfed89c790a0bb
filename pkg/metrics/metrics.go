package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GatewayMetrics holds the Prometheus metrics for the routing pipeline.
type GatewayMetrics struct {
	RequestsTotal          *prometheus.CounterVec
	RateLimitedTotal       prometheus.Counter
	LookupFailuresTotal    *prometheus.CounterVec
	UnrecognizedHostsTotal prometheus.Counter
}

// New initializes and registers the gateway metrics on the given registerer.
// Pass prometheus.DefaultRegisterer in production wiring.
func New(reg prometheus.Registerer) *GatewayMetrics {
	factory := promauto.With(reg)
	return &GatewayMetrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "routing",
			Name:      "requests_total",
			Help:      "Requests by terminal outcome.",
		}, []string{"outcome"}), // outcome: forwarded, marketing, redirected, maintenance, login_redirect, rate_limited, bypassed
		RateLimitedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "routing",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
		LookupFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "directory",
			Name:      "lookup_failures_total",
			Help:      "Directory lookup failures by operation; each one fails open.",
		}, []string{"operation"}), // operation: domain, redirect, maintenance
		UnrecognizedHostsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gateway",
			Subsystem: "routing",
			Name:      "unrecognized_hostnames_total",
			Help:      "Potential custom domains that resolved to no tenant.",
		}),
	}
}
