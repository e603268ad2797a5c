package queue

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/joeblew999/plat-fonts/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openQueue(t *testing.T) (*db.DB, *Queue) {
	t.Helper()

	d, err := db.Open(filepath.Join(t.TempDir(), "analytics.db"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	q, err := NewQueue(d.DB, "analytics", 3)
	require.NoError(t, err)
	return d, q
}

func TestQueueRoundTrip(t *testing.T) {
	_, q := openQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, EventJob{
		SiteID:  "font-previewer",
		Type:    "font_selected",
		Payload: map[string]any{"font_name": "Lato"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	job, msg, err := q.Receive(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)
	require.NotNil(t, msg)

	assert.Equal(t, id, job.ID)
	assert.Equal(t, "font_selected", job.Type)
	assert.Equal(t, "Lato", job.Payload["font_name"])
	assert.False(t, job.CreatedAt.IsZero())

	require.NoError(t, q.Delete(ctx, msg))

	job, msg, err = q.Receive(ctx)
	require.NoError(t, err)
	assert.Nil(t, job)
	assert.Nil(t, msg)
}

func TestEventRecorder(t *testing.T) {
	d, _ := openQueue(t)

	rec, err := NewEventRecorder(d.SqlConn())
	require.NoError(t, err)

	rec.RecordEvent(EventJob{SiteID: "font-previewer", Type: "feature_used", Payload: map[string]any{"feature": "size"}})
	rec.RecordEvent(EventJob{SiteID: "font-previewer", Type: "feature_used"})
	rec.Flush()

	require.Eventually(t, func() bool {
		var count int
		if err := d.QueryRow(`SELECT COUNT(*) FROM analytics_events WHERE event_type = 'feature_used'`).Scan(&count); err != nil {
			return false
		}
		return count == 2
	}, 2*time.Second, 20*time.Millisecond)
}
