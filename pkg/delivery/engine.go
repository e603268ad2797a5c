// Package delivery forwards queued analytics events to the remote collector.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/joeblew999/plat-fonts/pkg/queue"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/rescue"
	"github.com/zeromicro/go-zero/core/syncx"
	"github.com/zeromicro/go-zero/core/threading"
	"github.com/zeromicro/go-zero/rest/httpc"
	"golang.org/x/time/rate"
	"maragu.dev/goqite"
)

// EventPath is appended to the collector URL.
const EventPath = "/api/event"

const (
	minIdle = 100 * time.Millisecond
	maxIdle = 5 * time.Second
)

// ErrRejected marks a collector response that will never succeed on retry.
var ErrRejected = errors.New("collector rejected event")

// Config holds forwarding configuration.
type Config struct {
	URL       string
	RateLimit int // events per minute
	Timeout   time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		RateLimit: 600,
		Timeout:   10 * time.Second,
	}
}

// Payload is the body posted to the collector.
type Payload struct {
	ID         string         `json:"id"`
	SiteID     string         `json:"site_id"`
	Event      string         `json:"event"`
	Properties map[string]any `json:"properties"`
	Timestamp  string         `json:"timestamp"`
}

// PayloadOf converts a queued job to its wire form.
func PayloadOf(job queue.EventJob) Payload {
	return Payload{
		ID:         job.ID,
		SiteID:     job.SiteID,
		Event:      job.Type,
		Properties: job.Payload,
		Timestamp:  job.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Engine drains the event queue into the collector. Failed events stay on
// the queue and are redelivered by goqite until its receive limit.
type Engine struct {
	config      Config
	queue       *queue.Queue
	client      httpc.Service
	endpoint    string
	rateLimiter *rate.Limiter
	running     *syncx.AtomicBool

	ctx    context.Context
	cancel context.CancelFunc
	group  *threading.RoutineGroup
}

// NewEngine creates a new forwarding engine.
func NewEngine(q *queue.Queue, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = def.RateLimit
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimit)), 1)
	endpoint := strings.TrimRight(cfg.URL, "/") + EventPath
	client := httpc.NewServiceWithClient("analytics:"+endpoint, &http.Client{Timeout: cfg.Timeout})

	ctx, cancel := context.WithCancel(context.Background())

	return &Engine{
		config:      cfg,
		queue:       q,
		client:      client,
		endpoint:    endpoint,
		rateLimiter: limiter,
		running:     syncx.NewAtomicBool(),
		ctx:         ctx,
		cancel:      cancel,
		group:       threading.NewRoutineGroup(),
	}
}

// Endpoint returns the collector URL events are posted to.
func (e *Engine) Endpoint() string {
	return e.endpoint
}

// Start starts the engine with the specified number of workers.
func (e *Engine) Start(workers int) {
	if !e.running.CompareAndSwap(false, true) {
		return
	}

	logx.Infow("Analytics forwarder started", logx.Field("workers", workers), logx.Field("endpoint", e.endpoint))
	for i := 0; i < workers; i++ {
		workerID := i
		e.group.RunSafe(func() { e.worker(workerID) })
	}
}

// Stop gracefully stops the engine.
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}

	logx.Info("Analytics forwarder stopping, waiting for workers")
	e.cancel()
	e.group.Wait()
	logx.Info("Analytics forwarder stopped")
}

func (e *Engine) worker(id int) {
	idle := minIdle

	for {
		select {
		case <-e.ctx.Done():
			return
		default:
		}

		job, msg, err := e.queue.Receive(e.ctx)
		switch {
		case err != nil && msg != nil:
			// undecodable body, redelivery will not help
			logx.Errorf("worker %d: drop message %s: %v", id, msg.ID, err)
			forwardFailed.Inc("decode")
			e.delete(msg)
			continue
		case err != nil || job == nil:
			if !e.sleep(idle) {
				return
			}
			idle = min(idle*2, maxIdle)
			continue
		}

		idle = minIdle
		e.process(job, msg)
	}
}

func (e *Engine) sleep(d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-e.ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (e *Engine) process(job *queue.EventJob, msg *goqite.Message) {
	ctx := logx.ContextWithFields(e.ctx,
		logx.Field("event_id", job.ID),
		logx.Field("event", job.Type),
	)

	defer rescue.RecoverCtx(ctx, func() {
		forwardFailed.Inc("panic")
	})

	if err := e.rateLimiter.Wait(ctx); err != nil {
		return
	}

	start := time.Now()
	err := e.Forward(ctx, *job)
	forwardDuration.ObserveFloat(time.Since(start).Seconds(), job.Type)

	switch {
	case err == nil:
		eventsForwarded.Inc(job.Type)
		e.delete(msg)
	case errors.Is(err, ErrRejected):
		forwardFailed.Inc("rejected")
		logx.WithContext(ctx).Errorf("Event rejected by collector: %v", err)
		e.delete(msg)
	default:
		forwardFailed.Inc("transient")
		logx.WithContext(ctx).Infof("Event forwarding failed, will retry: %v", err)
	}
}

func (e *Engine) delete(msg *goqite.Message) {
	if err := e.queue.Delete(e.ctx, msg); err != nil {
		logx.Errorf("delete message %s: %v", msg.ID, err)
	}
}

// Forward posts one event to the collector. A 4xx answer other than 429
// wraps ErrRejected.
func (e *Engine) Forward(ctx context.Context, job queue.EventJob) error {
	resp, err := e.client.Do(ctx, http.MethodPost, e.endpoint, PayloadOf(job))
	if err != nil {
		return fmt.Errorf("post event: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= 500:
		return fmt.Errorf("collector status %d", resp.StatusCode)
	default:
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
}
