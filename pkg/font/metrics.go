package font

import "github.com/zeromicro/go-zero/core/metric"

var fontsLoaded = metric.NewCounterVec(&metric.CounterVecOpts{
	Namespace: "plat_fonts",
	Subsystem: "loader",
	Name:      "stylesheets_total",
	Help:      "Font stylesheets requested across all workspaces",
})
