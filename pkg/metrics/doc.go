// Package metrics registers the gateway's Prometheus instrumentation.
package metrics
