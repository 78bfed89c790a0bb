package tenant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"strings"

	"github.com/steeplehq/gateway/pkg/directory"
	"github.com/steeplehq/gateway/pkg/hostname"
)

// Orchestrator resolves the tenant a request belongs to from its hostname.
//
// Priority order:
//  1. If the host could be a custom domain, ask the directory. A hit marks
//     the resolution as custom-domain.
//  2. Otherwise, or when the directory has no match, extract the platform
//     subdomain.
//  3. Nothing resolved means marketing routing: an empty Resolution.
//
// A directory failure is logged and treated as "no match" — resolution never
// returns an error to its caller.
type Orchestrator struct {
	classifier *hostname.Classifier
	directory  directory.Directory
	log        *slog.Logger
	onEvent    func(event string)
}

// OrchestratorOption configures an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithEventHook registers a callback for observability events. Events:
// "unrecognized_hostname", "domain_lookup_failed".
func WithEventHook(fn func(event string)) OrchestratorOption {
	return func(o *Orchestrator) {
		if fn != nil {
			o.onEvent = fn
		}
	}
}

// NewOrchestrator creates a tenant resolution orchestrator. A nil logger
// discards logs.
func NewOrchestrator(classifier *hostname.Classifier, dir directory.Directory, log *slog.Logger, opts ...OrchestratorOption) *Orchestrator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	o := &Orchestrator{
		classifier: classifier,
		directory:  dir,
		log:        log,
		onEvent:    func(string) {},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Resolve determines the tenant for host. The returned Resolution always has
// Host set to the normalized hostname.
func (o *Orchestrator) Resolve(ctx context.Context, host string) Resolution {
	normalized := normalizeHost(host)
	res := Resolution{Host: normalized}

	potential := o.classifier.IsPotentialCustomDomain(normalized)
	if potential {
		slug, err := o.directory.ResolveDomain(ctx, normalized)
		switch {
		case err == nil:
			res.Slug = slug
			res.CustomDomain = true
			return res
		case errors.Is(err, directory.ErrNotFound):
			// fall through to subdomain extraction
		default:
			o.log.WarnContext(ctx, "custom domain lookup failed",
				slog.String("host", normalized),
				slog.Any("error", err),
			)
			o.onEvent("domain_lookup_failed")
		}
	}

	res.Slug = o.classifier.ExtractSubdomain(normalized)

	if res.Slug == "" && potential {
		// Not an error: the host simply is not bound to any tenant yet,
		// e.g. DNS pointed at us before domain verification finished.
		o.log.InfoContext(ctx, "unrecognized hostname",
			slog.String("host", normalized),
		)
		o.onEvent("unrecognized_hostname")
	}

	return res
}

// normalizeHost strips the port and lowercases, mirroring the classifier's view.
func normalizeHost(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(strings.TrimSpace(host))
}
