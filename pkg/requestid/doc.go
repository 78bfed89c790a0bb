// Package requestid assigns a correlation id to every request passing through
// the gateway. Ids propagate downstream via the X-Request-ID header and are
// the only way to stitch together gateway and application logs for a request.
package requestid
