// Package metrics defines and registers all custom Prometheus metrics for the
// business directory API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// init; expose them by mounting promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bizdir"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure covers unknown email and bad password alike)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully registered accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// ── Business metrics ──────────────────────────────────────────────────────────

// BusinessesCreatedTotal counts newly created business listings.
var BusinessesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "businesses_created_total",
		Help:      "Total number of businesses created.",
	},
)

// ── Review metrics ────────────────────────────────────────────────────────────

// ReviewsCreatedTotal counts created reviews.
// Label:
//   - rating: the review's star rating ("1" … "5")
var ReviewsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_created_total",
		Help:      "Total number of reviews created, by star rating.",
	},
	[]string{"rating"},
)

// ReviewsDeletedTotal counts deleted reviews.
// Label:
//   - cause: "request" (author/admin delete) or "cascade" (business delete)
var ReviewsDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_deleted_total",
		Help:      "Total number of reviews deleted, by cause.",
	},
	[]string{"cause"},
)

// ── Rating aggregator metrics ─────────────────────────────────────────────────

// RatingRecomputesTotal counts rating recomputations.
// Label:
//   - outcome: "ok" (non-empty review set), "empty" (summary reset to zero),
//     or "error"
var RatingRecomputesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rating_recomputes_total",
		Help:      "Total number of business rating recomputations, by outcome.",
	},
	[]string{"outcome"},
)

// RatingRecomputeDuration measures how long one recomputation takes, lock
// wait included.
var RatingRecomputeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rating_recompute_duration_seconds",
		Help:      "Duration of a rating recomputation from lock acquisition to summary write.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
