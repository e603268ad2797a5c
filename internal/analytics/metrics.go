package analytics

import "github.com/zeromicro/go-zero/core/metric"

var (
	eventsTracked = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_fonts",
		Subsystem: "analytics",
		Name:      "events_total",
		Help:      "Analytics events accepted by the recorder",
		Labels:    []string{"type"},
	})

	eventsDropped = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "plat_fonts",
		Subsystem: "analytics",
		Name:      "events_dropped_total",
		Help:      "Analytics events dropped without being recorded",
		Labels:    []string{"reason"},
	})
)
