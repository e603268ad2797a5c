// Package analytics emits best-effort usage events. Nothing in here may
// block or fail a caller.
package analytics

import "time"

// EventType names an analytics event.
type EventType string

const (
	FontSelected       EventType = "font_selected"
	FontsCompared      EventType = "fonts_compared"
	FeatureUsed        EventType = "feature_used"
	PreviewTextChanged EventType = "preview_text_changed"
)

// Tool is attached to every event payload.
const Tool = "font-previewer"

// Event is one analytics event with a free-form payload.
type Event struct {
	Type    EventType
	Payload map[string]any
	At      time.Time
}

// NewEvent builds an event stamped with the current time.
func NewEvent(typ EventType, payload map[string]any) Event {
	return Event{Type: typ, Payload: payload, At: time.Now()}
}

// Sink receives events. Implementations must return quickly and never panic.
type Sink interface {
	Track(Event)
}

// Func adapts a function to a Sink.
type Func func(Event)

// Track calls f.
func (f Func) Track(e Event) {
	f(e)
}

type nop struct{}

func (nop) Track(Event) {}

// Nop is a Sink that discards every event.
var Nop Sink = nop{}

// FontSelectedEvent builds a font_selected event.
func FontSelectedEvent(fontName, panelID string) Event {
	return NewEvent(FontSelected, map[string]any{
		"font_name": fontName,
		"panel_id":  panelID,
	})
}

// FontsComparedEvent builds a fonts_compared event.
func FontsComparedEvent(fonts []string) Event {
	return NewEvent(FontsCompared, map[string]any{
		"fonts":      fonts,
		"font_count": len(fonts),
	})
}

// FeatureUsedEvent builds a feature_used event.
func FeatureUsedEvent(feature string, value any) Event {
	return NewEvent(FeatureUsed, map[string]any{
		"feature": feature,
		"value":   value,
	})
}

// PreviewTextChangedEvent builds a preview_text_changed event.
func PreviewTextChangedEvent(textLength int) Event {
	return NewEvent(PreviewTextChanged, map[string]any{
		"text_length": textLength,
	})
}
