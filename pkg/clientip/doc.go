// Package clientip derives a stable per-client key from HTTP request headers.
//
// The gateway runs behind a CDN, so CDN-injected headers are preferred over
// generic proxy headers, which in turn are preferred over the TCP peer
// address. Header values are validated as IP addresses; spoofed garbage falls
// through to the next source. When nothing usable remains, the UnknownKey
// sentinel is returned so such requests still share a rate-limit bucket.
package clientip
