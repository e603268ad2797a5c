package queue

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// EventRecorder batches analytics_events writes using go-zero's BulkInserter.
type EventRecorder struct {
	inserter *sqlx.BulkInserter
}

// NewEventRecorder creates a recorder that batches inserts.
func NewEventRecorder(conn sqlx.SqlConn) (*EventRecorder, error) {
	inserter, err := sqlx.NewBulkInserter(conn,
		"insert into `analytics_events` (`id`, `site_id`, `event_type`, `payload`, `created_at`) values (?, ?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}

	inserter.SetResultHandler(func(_ sql.Result, err error) {
		if err != nil {
			logx.Errorf("BulkInserter analytics_events error: %v", err)
		}
	})

	return &EventRecorder{inserter: inserter}, nil
}

// RecordEvent batches an event insert. Errors are logged.
func (r *EventRecorder) RecordEvent(job EventJob) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	payload, err := json.Marshal(job.Payload)
	if err != nil {
		logx.Errorf("Failed to marshal event payload: %v", err)
		payload = []byte("{}")
	}

	if err := r.inserter.Insert(
		job.ID,
		job.SiteID,
		job.Type,
		string(payload),
		job.CreatedAt.UTC().Format(time.RFC3339),
	); err != nil {
		logx.Errorf("Failed to record event: %v", err)
	}
}

// Flush forces all pending events to be written.
func (r *EventRecorder) Flush() {
	r.inserter.Flush()
}
