package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/joeblew999/plat-fonts/pkg/queue"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/rescue"
	"github.com/zeromicro/go-zero/core/threading"
)

const defaultBuffer = 1024

// Store persists events locally.
type Store interface {
	RecordEvent(queue.EventJob)
	Flush()
}

// Forwarder hands events to the remote collector pipeline.
type Forwarder interface {
	Enqueue(ctx context.Context, job queue.EventJob) (string, error)
}

// RecorderConfig configures a Recorder.
type RecorderConfig struct {
	SiteID  string
	Enabled bool
	Buffer  int
}

// Recorder is the production Sink. Track only does a non-blocking channel
// send; a background goroutine writes events to the store and forward queue.
// Events are dropped when the buffer is full.
type Recorder struct {
	config    RecorderConfig
	store     Store
	forwarder Forwarder

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewRecorder creates and starts a recorder. store and forwarder may be nil.
func NewRecorder(cfg RecorderConfig, store Store, forwarder Forwarder) *Recorder {
	if cfg.Buffer <= 0 {
		cfg.Buffer = defaultBuffer
	}

	r := &Recorder{
		config:    cfg,
		store:     store,
		forwarder: forwarder,
		events:    make(chan Event, cfg.Buffer),
		done:      make(chan struct{}),
	}
	threading.GoSafe(r.drain)
	return r
}

// Track queues e for recording. It never blocks.
func (r *Recorder) Track(e Event) {
	if !r.config.Enabled {
		return
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}

	defer func() {
		// sending on a closed channel after Close
		if recover() != nil {
			eventsDropped.Inc("closed")
		}
	}()

	select {
	case r.events <- e:
		eventsTracked.Inc(string(e.Type))
	default:
		eventsDropped.Inc("full")
	}
}

// Close stops accepting events, writes what is buffered and flushes the store.
func (r *Recorder) Close() {
	r.closeOnce.Do(func() {
		close(r.events)
		<-r.done
		if r.store != nil {
			r.store.Flush()
		}
	})
}

func (r *Recorder) drain() {
	defer close(r.done)
	for e := range r.events {
		r.record(e)
	}
}

func (r *Recorder) record(e Event) {
	defer rescue.Recover()

	job := r.job(e)
	if r.store != nil {
		r.store.RecordEvent(job)
	}
	if r.forwarder != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := r.forwarder.Enqueue(ctx, job); err != nil {
			logx.Errorf("analytics: enqueue %s: %v", e.Type, err)
		}
	}
}

func (r *Recorder) job(e Event) queue.EventJob {
	payload := make(map[string]any, len(e.Payload)+1)
	for k, v := range e.Payload {
		payload[k] = v
	}
	payload["tool"] = Tool

	return queue.EventJob{
		ID:        uuid.New().String(),
		SiteID:    r.config.SiteID,
		Type:      string(e.Type),
		Payload:   payload,
		CreatedAt: e.At,
	}
}
