package delivery

import "github.com/zeromicro/go-zero/core/metric"

var (
	eventsForwarded = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_fonts",
		Subsystem: "forwarder",
		Name:      "events_forwarded_total",
		Help:      "Total analytics events accepted by the collector",
		Labels:    []string{"type"},
	})

	forwardFailed = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_fonts",
		Subsystem: "forwarder",
		Name:      "events_failed_total",
		Help:      "Total analytics forwarding failures",
		Labels:    []string{"reason"},
	})

	forwardDuration = metric.NewHistogramVec(&metric.HistogramVecOpts{
		Namespace: "plat_fonts",
		Subsystem: "forwarder",
		Name:      "duration_seconds",
		Help:      "Collector request duration in seconds",
		Labels:    []string{"type"},
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
	})
)
