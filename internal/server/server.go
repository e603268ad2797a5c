package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/joeblew999/plat-fonts/internal/analytics"
	"github.com/joeblew999/plat-fonts/internal/config"
	"github.com/joeblew999/plat-fonts/internal/errorx"
	"github.com/joeblew999/plat-fonts/internal/handler"
	"github.com/joeblew999/plat-fonts/internal/model"
	"github.com/joeblew999/plat-fonts/internal/recommend"
	"github.com/joeblew999/plat-fonts/internal/session"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/ui"
	"github.com/joeblew999/plat-fonts/pkg/db"
	"github.com/joeblew999/plat-fonts/pkg/delivery"
	"github.com/joeblew999/plat-fonts/pkg/queue"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/prometheus"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// QueueName is the goqite queue holding events waiting to be forwarded.
const QueueName = "analytics"

// Server wraps the MCP server, the web UI, the JSON API and the analytics
// forwarder.
type Server struct {
	config config.Config
	group  *service.ServiceGroup
}

type durations struct {
	session   time.Duration
	recommend time.Duration
}

// New creates a new server instance.
func New(c config.Config) (*Server, error) {
	errorx.RegisterErrorHandler()

	// required for metric.CounterVec/HistogramVec to record
	prometheus.Enable()

	mcpServer := mcp.NewMcpServer(c.McpConf)

	var database *db.DB
	var d durations
	err := mr.Finish(
		func() error {
			if !c.Analytics.Enabled {
				return nil
			}
			var e error
			database, e = db.Open(c.Database.Path)
			return e
		},
		func() error {
			var e error
			d, e = parseDurations(c)
			return e
		},
	)
	if err != nil {
		if database != nil {
			database.Close()
		}
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	rec := recommend.New(recommend.Config{
		Endpoint: c.Recommend.Endpoint,
		Timeout:  d.recommend,
	})

	group := service.NewServiceGroup()
	sink := analytics.Nop
	var events model.AnalyticsEventsModel
	if database != nil {
		recorder, engine, err := newAnalytics(c, database)
		if err != nil {
			database.Close()
			return nil, err
		}
		sink = recorder
		events = model.NewAnalyticsEventsModel(database.SqlConn())
		if engine != nil {
			group.Add(newForwarderService(engine, max(c.Analytics.Workers, 1)))
		}

		proc.AddShutdownListener(func() {
			logx.Info("Flushing analytics events")
			recorder.Close()
			logx.Info("Closing database")
			database.Close()
		})
	}

	store, err := session.NewStore(d.session, session.Deps{
		FontsBaseURL: c.Fonts.BaseURL,
		Panels:       c.Panels.Count,
		Sink:         sink,
		Recommender:  rec,
	})
	if err != nil {
		return nil, err
	}

	RegisterMCPTools(mcpServer, c.Fonts.BaseURL, rec)

	uiServer, err := rest.NewServer(c.UI.RestConf, rest.WithCors("*"))
	if err != nil {
		return nil, fmt.Errorf("failed to create UI server: %w", err)
	}

	uiHandlers := ui.NewHandlers(store, c.Fonts.BaseURL)
	uiServer.AddRoutes(uiHandlers.Routes())
	uiServer.AddRoutes(uiHandlers.SSERoutes(), rest.WithSSE())

	apiServer, err := rest.NewServer(c.API.RestConf, rest.WithCors("*"))
	if err != nil {
		return nil, fmt.Errorf("failed to create API server: %w", err)
	}

	apiCtx := svc.NewServiceContext(c, rec, events)
	handler.RegisterHandlers(apiServer, apiCtx)

	apiServer.AddRoute(rest.Route{
		Method:  http.MethodGet,
		Path:    "/metrics",
		Handler: promhttp.Handler().ServeHTTP,
	})

	group.Add(uiServer)
	group.Add(apiServer)
	group.Add(mcpServer)

	logx.Infow("plat-fonts server configured",
		logx.Field("mcp", fmt.Sprintf("http://%s:%d/sse", c.Host, c.Port)),
		logx.Field("ui", fmt.Sprintf("http://%s:%d", c.UI.Host, c.UI.Port)),
		logx.Field("api", fmt.Sprintf("http://%s:%d/api/v1", c.API.Host, c.API.Port)),
		logx.Field("recommendations", c.Recommend.Endpoint != ""),
		logx.Field("analytics", c.Analytics.Enabled),
		logx.Field("database", c.Database.Path),
	)
	logx.Infof("To add to Claude: claude mcp add plat-fonts -- npx -y mcp-remote http://localhost:%d/sse", c.Port)

	return &Server{config: c, group: group}, nil
}

// newAnalytics wires the recorder to the events table and, when a collector
// URL is configured, to the forwarding queue.
func newAnalytics(c config.Config, database *db.DB) (*analytics.Recorder, *delivery.Engine, error) {
	store, err := queue.NewEventRecorder(database.SqlConn())
	if err != nil {
		return nil, nil, fmt.Errorf("create event recorder: %w", err)
	}

	cfg := analytics.RecorderConfig{
		SiteID:  c.Analytics.SiteID,
		Enabled: true,
		Buffer:  c.Analytics.Buffer,
	}
	if c.Analytics.URL == "" {
		return analytics.NewRecorder(cfg, store, nil), nil, nil
	}

	q, err := queue.NewQueue(database.DB, QueueName, queue.DefaultMaxReceive)
	if err != nil {
		return nil, nil, fmt.Errorf("create analytics queue: %w", err)
	}

	engine := delivery.NewEngine(q, delivery.Config{
		URL:       c.Analytics.URL,
		RateLimit: c.Analytics.RateLimit,
	})
	return analytics.NewRecorder(cfg, store, q), engine, nil
}

func parseDurations(c config.Config) (durations, error) {
	var d durations
	var err error
	if d.session, err = time.ParseDuration(c.Session.Expiry); err != nil {
		return d, fmt.Errorf("session expiry: %w", err)
	}
	if d.recommend, err = time.ParseDuration(c.Recommend.Timeout); err != nil {
		return d, fmt.Errorf("recommend timeout: %w", err)
	}
	return d, nil
}

// Start starts all services. Blocks until shutdown signal.
func (s *Server) Start() {
	s.group.Start()
}

// Stop stops all services.
func (s *Server) Stop() {
	s.group.Stop()
}
