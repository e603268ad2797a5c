package session

import "github.com/zeromicro/go-zero/core/metric"

var workspacesCreated = metric.NewCounterVec(&metric.CounterVecOpts{
	Namespace: "plat_fonts",
	Subsystem: "session",
	Name:      "workspaces_created_total",
	Help:      "Workspaces created for new browser sessions",
})
