// Package queue provides the analytics forwarding queue using goqite.
package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"maragu.dev/goqite"
)

// DefaultMaxReceive is how many times an event is handed to a worker before
// goqite stops redelivering it.
const DefaultMaxReceive = 5

// EventJob is one analytics event waiting to be forwarded to the collector.
type EventJob struct {
	ID        string         `json:"id"`
	SiteID    string         `json:"site_id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Queue stores analytics events for forwarding.
type Queue struct {
	queue *goqite.Queue
	name  string
}

// NewQueue creates a queue backed by db.
func NewQueue(db *sql.DB, name string, maxReceive int) (*Queue, error) {
	if err := goqite.Setup(context.Background(), db); err != nil {
		return nil, fmt.Errorf("setup goqite: %w", err)
	}
	if maxReceive <= 0 {
		maxReceive = DefaultMaxReceive
	}

	q := goqite.New(goqite.NewOpts{
		DB:         db,
		Name:       name,
		MaxReceive: maxReceive,
	})

	return &Queue{queue: q, name: name}, nil
}

// Name returns the goqite queue name.
func (q *Queue) Name() string {
	return q.name
}

// Enqueue adds an event to the queue, assigning an ID and timestamp if unset.
func (q *Queue) Enqueue(ctx context.Context, job EventJob) (string, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	body, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}

	if err := q.queue.Send(ctx, goqite.Message{Body: body}); err != nil {
		return "", fmt.Errorf("send to queue: %w", err)
	}

	return job.ID, nil
}

// Receive gets the next event from the queue. It returns nil, nil, nil when
// the queue is empty.
func (q *Queue) Receive(ctx context.Context) (*EventJob, *goqite.Message, error) {
	msg, err := q.queue.Receive(ctx)
	if err != nil {
		return nil, nil, err
	}
	if msg == nil {
		return nil, nil, nil
	}

	var job EventJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		return nil, msg, fmt.Errorf("unmarshal event: %w", err)
	}

	return &job, msg, nil
}

// Extend extends the visibility timeout of a message being processed.
func (q *Queue) Extend(ctx context.Context, msg *goqite.Message, d time.Duration) error {
	return q.queue.Extend(ctx, msg.ID, d)
}

// Delete removes a forwarded message from the queue.
func (q *Queue) Delete(ctx context.Context, msg *goqite.Message) error {
	return q.queue.Delete(ctx, msg.ID)
}
