package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPDirectory talks JSON to the platform directory API. It is the transport
// used when the gateway runs apart from the application; an in-process
// implementation of Directory can replace it without touching pipeline code.
type HTTPDirectory struct {
	baseURL string
	client  *http.Client
}

// NewHTTPDirectory creates a client for the directory API at baseURL.
// A zero timeout defaults to 2 seconds.
func NewHTTPDirectory(baseURL string, timeout time.Duration) *HTTPDirectory {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &HTTPDirectory{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (d *HTTPDirectory) ResolveDomain(ctx context.Context, host string) (string, error) {
	var out struct {
		Slug string `json:"slug"`
	}
	endpoint := d.baseURL + "/v1/domains/resolve?host=" + url.QueryEscape(host)
	if err := d.get(ctx, endpoint, &out); err != nil {
		return "", err
	}
	if out.Slug == "" {
		return "", ErrNotFound
	}
	return out.Slug, nil
}

func (d *HTTPDirectory) FindRedirect(ctx context.Context, slug, path string) (string, error) {
	var out struct {
		Destination string `json:"destination"`
	}
	endpoint := fmt.Sprintf("%s/v1/tenants/%s/redirects?path=%s",
		d.baseURL, url.PathEscape(slug), url.QueryEscape(path))
	if err := d.get(ctx, endpoint, &out); err != nil {
		return "", err
	}
	if out.Destination == "" {
		return "", ErrNotFound
	}
	return out.Destination, nil
}

func (d *HTTPDirectory) MaintenanceOn(ctx context.Context, slug string) (bool, error) {
	var out struct {
		On bool `json:"on"`
	}
	endpoint := fmt.Sprintf("%s/v1/tenants/%s/maintenance", d.baseURL, url.PathEscape(slug))
	if err := d.get(ctx, endpoint, &out); err != nil {
		return false, err
	}
	return out.On, nil
}

// get performs a GET and decodes the JSON body. A 404 maps to ErrNotFound;
// any other non-2xx status, transport error, or decode error maps to
// ErrUnavailable.
func (d *HTTPDirectory) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}
