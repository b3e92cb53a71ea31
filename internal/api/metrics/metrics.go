// Package metrics defines and registers the custom Prometheus metrics for the
// CRM API. It is the single source of truth for metric names, labels, and
// help strings. HTTP-level request metrics come from the echoprometheus
// middleware; only domain-specific counters live here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// LoginsTotal counts login attempts by outcome.
// Labels:
//   - result: "success", "invalid_credentials", "inactive", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token verifications on protected
// requests.
// Labels:
//   - result: "ok", "expired", "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)
