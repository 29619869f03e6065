// Package metrics defines and registers all custom Prometheus metrics for
// the tarefas API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default registry at import time via promauto;
// the /metrics endpoint is served by echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tarefas"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "invalid_2fa", "locked_out"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts by assigned role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered users, by role.",
	},
	[]string{"role"},
)

// TokenRejectionsTotal counts bearer tokens refused by the gate.
// Label:
//   - reason: "missing" (no credential supplied) or "invalid" (expired or
//     tampered; the two are deliberately indistinguishable)
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of rejected bearer tokens, by reason.",
	},
	[]string{"reason"},
)

// AccessDeniedTotal counts authorization denials by operation.
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of RBAC denials, by operation.",
	},
	[]string{"operation"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditQueueDepth tracks the number of audit events waiting in each worker
// channel.
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditDroppedTotal counts audit events dropped because a worker channel was
// full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit events dropped due to a full queue.",
	},
)
