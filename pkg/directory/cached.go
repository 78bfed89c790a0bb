package directory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cached decorates a Directory with per-operation TTL caches so the routing
// pipeline sees bounded-staleness lookups instead of a network call per
// request. Negative results ("no such domain", "no rule") are cached for the
// same TTL as positive ones; transport errors are never cached, so a
// recovering directory is retried on the next request.
type Cached struct {
	next Directory

	domains     *gocache.Cache
	redirects   *gocache.Cache
	maintenance *gocache.Cache

	domainTTL      time.Duration
	redirectTTL    time.Duration
	maintenanceTTL time.Duration
}

// NewCached wraps next with the staleness bounds from cfg.
func NewCached(next Directory, cfg Config) *Cached {
	domainTTL := cfg.DomainTTL
	if domainTTL <= 0 {
		domainTTL = 5 * time.Minute
	}
	redirectTTL := cfg.RedirectTTL
	if redirectTTL <= 0 {
		redirectTTL = time.Minute
	}
	maintenanceTTL := cfg.MaintenanceTTL
	if maintenanceTTL <= 0 {
		maintenanceTTL = 30 * time.Second
	}

	return &Cached{
		next:           next,
		domains:        gocache.New(domainTTL, 2*domainTTL),
		redirects:      gocache.New(redirectTTL, 2*redirectTTL),
		maintenance:    gocache.New(maintenanceTTL, 2*maintenanceTTL),
		domainTTL:      domainTTL,
		redirectTTL:    redirectTTL,
		maintenanceTTL: maintenanceTTL,
	}
}

func (c *Cached) ResolveDomain(ctx context.Context, host string) (string, error) {
	if v, ok := c.domains.Get(host); ok {
		slug := v.(string)
		if slug == "" {
			return "", ErrNotFound
		}
		return slug, nil
	}

	slug, err := c.next.ResolveDomain(ctx, host)
	switch {
	case err == nil:
		c.domains.Set(host, slug, c.domainTTL)
		return slug, nil
	case errors.Is(err, ErrNotFound):
		c.domains.Set(host, "", c.domainTTL)
		return "", ErrNotFound
	default:
		return "", err
	}
}

func (c *Cached) FindRedirect(ctx context.Context, slug, path string) (string, error) {
	key := slug + "\x00" + path
	if v, ok := c.redirects.Get(key); ok {
		dest := v.(string)
		if dest == "" {
			return "", ErrNotFound
		}
		return dest, nil
	}

	dest, err := c.next.FindRedirect(ctx, slug, path)
	switch {
	case err == nil:
		c.redirects.Set(key, dest, c.redirectTTL)
		return dest, nil
	case errors.Is(err, ErrNotFound):
		c.redirects.Set(key, "", c.redirectTTL)
		return "", ErrNotFound
	default:
		return "", err
	}
}

func (c *Cached) MaintenanceOn(ctx context.Context, slug string) (bool, error) {
	if v, ok := c.maintenance.Get(slug); ok {
		return v.(bool), nil
	}

	on, err := c.next.MaintenanceOn(ctx, slug)
	if err != nil {
		return false, err
	}
	c.maintenance.Set(slug, on, c.maintenanceTTL)
	return on, nil
}
