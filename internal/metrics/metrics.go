// Package metrics defines and registers all custom Prometheus metrics for the
// board web client. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at init; the router exposes them
// on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "board"

// ── Backend API metrics ───────────────────────────────────────────────────────

// BackendRequestsTotal counts calls to the board backend.
// Labels:
//   - endpoint: logical endpoint name (e.g. "list_posts", "toggle_post_like")
//   - status: "2xx", "4xx", "5xx", or "error" for transport failures
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of requests issued to the board backend.",
	},
	[]string{"endpoint", "status"},
)

// BackendRequestDuration measures backend round-trip time per endpoint.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of board backend requests, from issue to decode.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsClearedTotal counts sessions discarded after a failed identity
// check (expired or revoked tokens detected on resolution).
var SessionsClearedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_cleared_total",
		Help:      "Total number of sessions cleared after a failed identity check.",
	},
)

// ── Page metrics ──────────────────────────────────────────────────────────────

// PageRendersTotal counts fully rendered pages.
// Label:
//   - page: template name (e.g. "home", "post", "admin")
var PageRendersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_renders_total",
		Help:      "Total number of pages rendered, by template.",
	},
	[]string{"page"},
)
