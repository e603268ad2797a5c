package recommend

import "github.com/zeromicro/go-zero/core/metric"

var (
	requestDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_fonts",
		Subsystem: "recommend",
		Name:      "duration_seconds",
		Help:      "Recommendation request duration in seconds",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30},
	})

	requestFailures = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_fonts",
		Subsystem: "recommend",
		Name:      "failures_total",
		Help:      "Failed recommendation requests",
	})
)
