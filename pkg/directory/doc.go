// Package directory defines the gateway's read-only view of tenant data:
// custom-domain resolution, redirect rules, and the maintenance flag.
//
// The routing layer has no data-store access; it consumes these three lookups
// over the directory HTTP API (HTTPDirectory) behind per-operation TTL caches
// (Cached). Each lookup carries a declared staleness bound and a fail-open
// contract: the pipeline substitutes "not found / off" whenever a lookup
// fails, because availability of routing beats strict enforcement.
package directory
