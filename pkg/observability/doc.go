// Package observability turns engine lifecycle events into Prometheus metrics.
//
// Metrics are exposed as a domain.LifecycleHooks value so they compose with
// logging or tracing hooks through domain.ChainHooks.
package observability
