// Package main is the entry point for the calcunits HTTP server.
//
// The server exposes the calculator and unit converter as tools under
// /services/execute, plus /convert and /units shortcuts and a Prometheus
// endpoint at /metrics.
//
// Configuration:
//   - Environment variables (PORT, HOST, LOG_LEVEL, RATE_LIMIT_RPS, ...)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	./server -port 8000
//
//	# Development mode (console logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
