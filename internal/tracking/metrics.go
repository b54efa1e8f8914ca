package tracking

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recomputes counts the recomputations of category balances,
// partitioned by result.
var Recomputes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "fundsplit",
		Name:      "category_balance_recomputes_total",
		Help:      "How many times the category balances of a month were recomputed, partitioned by result.",
	},
	[]string{"result"},
)

func observe(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	Recomputes.WithLabelValues(result).Inc()
}
