// Package middleware provides the HTTP middleware shared by every route:
// request tracing with per-request loggers and Prometheus instrumentation.
package middleware
