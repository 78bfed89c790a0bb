// Package gateway implements the request routing pipeline that sits in
// front of every tenant site.
//
// For each request the pipeline decides, in strict order: is the client
// within its rate limit, is the route globally bypassed, which tenant owns
// the hostname, does a redirect rule fire, is the tenant in maintenance
// mode, does a protected path carry a session cookie — and finally injects
// the resolved identity into headers and forwards the request. Each decision
// can short-circuit with a terminal response (429, 301, 503, 302); at most
// one does.
//
// Every directory lookup the pipeline performs fails open: an unreachable
// directory degrades enforcement (redirects and maintenance gating pause),
// never availability. The only non-2xx responses the pipeline itself
// produces are deliberate policy outcomes, never internal errors.
package gateway
