// Package ratelimit implements fixed-window request limiting for the gateway.
//
// A Limiter counts requests per client key within discrete, non-overlapping
// windows. Two Store backends are provided: MemoryStore for single-instance
// deployments (per-process, best-effort) and RedisStore for a shared counter
// across instances. The routing pipeline treats a store failure as allowed —
// throttling is a policy guard, never a reason to drop traffic.
package ratelimit
