// Package monitoring provides Prometheus metrics for the HTTP service.
//
// Collected metrics:
//   - HTTP: request count, latency and response size per route
//   - Tools: executions, latency and failures by error code
//   - Conversions: successful conversions per unit category
//   - Uptime
//
// Each Metrics value owns its registry; Handler exposes it at /metrics.
package monitoring
