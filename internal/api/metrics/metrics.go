// Package metrics defines and registers all custom Prometheus metrics for the
// inventory API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import time
// via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// AuthAttemptsTotal counts login attempts.
// Label:
//   - outcome: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// StockAdjustmentsTotal counts stock adjustment requests.
// Labels:
//   - operation: "add" or "subtract"
//   - outcome: "success", "insufficient_stock", "not_found", or "error"
var StockAdjustmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_adjustments_total",
		Help:      "Total number of stock adjustments, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// StockAdjustmentDuration measures how long a single adjustment takes
// end-to-end, including retries on revision conflicts.
var StockAdjustmentDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stock_adjustment_duration_seconds",
		Help:      "Duration of stock adjustment requests.",
		Buckets:   prometheus.DefBuckets,
	},
)

// LowStockAlertsTotal counts adjustments that left a product at or below its
// low-stock threshold.
var LowStockAlertsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "low_stock_alerts_total",
		Help:      "Total number of adjustments that triggered a low-stock condition.",
	},
)
