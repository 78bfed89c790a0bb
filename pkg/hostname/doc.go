// Package hostname classifies inbound request hostnames.
//
// The functions here are pure string logic and run on every request before
// any network work, so they stay allocation-light and never touch DNS.
package hostname
