// Package metrics defines the custom Prometheus metrics for the storefront
// API. It is the single source of truth for metric names, labels, and help
// strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// LoginsTotal counts login attempts that reached credential verification.
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

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "duplicate" or "invalid"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// RateLimitedTotal counts requests denied by the authentication rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of requests denied by the rate limiter.",
	},
)

// ProductOpsTotal counts successful catalog mutations.
// Label:
//   - op: "create", "update" or "delete"
var ProductOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_ops_total",
		Help:      "Total number of successful product mutations, by operation.",
	},
	[]string{"op"},
)

// MessagesSentTotal counts support-chat messages persisted.
var MessagesSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of support-chat messages sent.",
	},
)
