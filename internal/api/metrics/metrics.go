// Package metrics defines all custom Prometheus metrics for the maintenance
// reports API. It is the single source of truth for metric names, labels,
// and help strings. Registration happens implicitly via promauto against the
// default registry; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "maintenance"

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

// AccessDeniedTotal counts authorization denials after authentication.
// Label:
//   - action: the gated operation ("update", "delete", "roster")
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of role or ownership denials, by action.",
	},
	[]string{"action"},
)

// ReportsCreatedTotal counts newly created reports.
// Label:
//   - role: role of the creating actor
var ReportsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_created_total",
		Help:      "Total number of reports created, by actor role.",
	},
	[]string{"role"},
)

// ReportsDeletedTotal counts deleted reports.
var ReportsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_deleted_total",
		Help:      "Total number of reports deleted.",
	},
)

// TechniciansProvisionedTotal counts successful technician onboardings.
var TechniciansProvisionedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "technicians_provisioned_total",
		Help:      "Total number of technicians provisioned.",
	},
)

// SessionCacheTotal counts session cache lookups.
// Label:
//   - result: "hit" or "miss"
var SessionCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_cache_total",
		Help:      "Total number of session cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
