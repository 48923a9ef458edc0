// Package resilience provides fault-tolerance building blocks for outbound
// API traffic: retry with exponential backoff and jitter, a circuit breaker,
// and a token bucket rate limiter. The httpclient package wires these around
// each request when configured.
package resilience
