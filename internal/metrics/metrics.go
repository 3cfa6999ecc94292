// Package metrics defines and registers all custom Prometheus metrics for the
// INVOKE hours-system auth module. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// embedding application decides whether and where to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "invoke"

// LoginsTotal counts login attempts through the auth facade.
// Labels:
//   - source: "demo", "backend", or "none" when rejected before any source ran
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_logins_total",
		Help:      "Total number of login attempts, by authentication source and result.",
	},
	[]string{"source", "result"},
)

// LoginDuration measures how long one login attempt takes end-to-end,
// including the simulated demo delay and the remote round trip.
// Label:
//   - source: "demo" or "backend"
var LoginDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "auth_login_duration_seconds",
		Help:      "Duration of login attempts from validation to session write.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"source"},
)

// SessionReadsTotal counts session store loads.
// Label:
//   - result: "hit", "miss", "expired", or "corrupt"
var SessionReadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_session_reads_total",
		Help:      "Total number of session store loads, labelled by outcome.",
	},
	[]string{"result"},
)

// PasswordResetsTotal counts password reset requests accepted by the facade.
var PasswordResetsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_password_resets_total",
		Help:      "Total number of password reset requests accepted.",
	},
)
