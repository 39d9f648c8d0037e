// Package metrics defines and registers all custom Prometheus metrics for
// the inventory API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// StockMutationsTotal counts stock updates that completed successfully.
// Labels:
//   - action: the transaction direction ("Stock In" or "Stock Out")
//   - status: the derived stock status after the mutation
var StockMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_mutations_total",
		Help:      "Total number of stock updates successfully applied.",
	},
	[]string{"action", "status"},
)

// StockMutationErrorsTotal counts stock updates that failed.
// Label:
//   - reason: short description of the failure ("not_found", "conflict", "storage")
var StockMutationErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_mutation_errors_total",
		Help:      "Total number of stock updates that failed.",
	},
	[]string{"reason"},
)

// ReportRequestsTotal counts generated reports by type.
var ReportRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_requests_total",
		Help:      "Total number of reports generated.",
	},
	[]string{"report"},
)
