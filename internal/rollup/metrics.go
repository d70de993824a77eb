package rollup

import (
	"github.com/prometheus/client_golang/prometheus"
)

var recomputes = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rollup_recomputes_total",
		Help: "How many composites were recomputed, partitioned by kind.",
	},
	[]string{"kind"},
)

var cascadeDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name: "rollup_cascade_duration_seconds",
		Help: "The duration of committed mutations including their cascade in seconds.",
	},
)

// Collectors returns the Prometheus collectors of the engine.
// They are not registered with any registry.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{recomputes, cascadeDuration}
}
