// Package preview binds the shared live-preview pane to one panel.
package preview

import (
	"sync"
	"unicode/utf8"

	"github.com/joeblew999/plat-fonts/internal/analytics"
	"github.com/joeblew999/plat-fonts/internal/panel"
)

// Binder holds the panel currently styling the live preview, if any, and the
// preview text. The text belongs to the binder, not to any panel. A binding
// is only replaced by Bind or refreshed by OnPanelChanged; it never clears.
type Binder struct {
	mu     sync.RWMutex
	active *panel.FontConfig
	text   string
	sink   analytics.Sink
}

// NewBinder returns an unbound binder seeded with text.
func NewBinder(text string, sink analytics.Sink) *Binder {
	if sink == nil {
		sink = analytics.Nop
	}
	return &Binder{text: text, sink: sink}
}

// Bind makes cfg the preview source. cfg is not checked against the panel
// collection.
func (b *Binder) Bind(cfg panel.FontConfig) {
	b.mu.Lock()
	b.active = &cfg
	b.mu.Unlock()

	b.sink.Track(analytics.FeatureUsedEvent("live_preview", cfg.Name))
}

// OnPanelChanged refreshes the binding when cfg is the bound panel.
func (b *Binder) OnPanelChanged(cfg panel.FontConfig) {
	b.mu.Lock()
	if b.active != nil && b.active.ID == cfg.ID {
		b.active = &cfg
	}
	b.mu.Unlock()
}

// Active returns the bound config and whether one is bound.
func (b *Binder) Active() (panel.FontConfig, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.active == nil {
		return panel.FontConfig{}, false
	}
	return *b.active, true
}

// IsBound reports whether id is the bound panel.
func (b *Binder) IsBound(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.active != nil && b.active.ID == id
}

// SetText replaces the preview text.
func (b *Binder) SetText(text string) {
	b.mu.Lock()
	changed := b.text != text
	b.text = text
	b.mu.Unlock()

	if changed {
		b.sink.Track(analytics.PreviewTextChangedEvent(utf8.RuneCountInString(text)))
	}
}

// Text returns the preview text.
func (b *Binder) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Style returns the styling for the preview text; the zero Style when unbound.
func (b *Binder) Style() Style {
	cfg, ok := b.Active()
	if !ok {
		return Style{}
	}
	return StyleOf(cfg)
}

// Title returns the heading shown above the preview.
func (b *Binder) Title() string {
	if cfg, ok := b.Active(); ok {
		return "Previewing with " + cfg.Name
	}
	return "Live Text Editor"
}

// Description returns the hint shown under the heading.
func (b *Binder) Description() string {
	if cfg, ok := b.Active(); ok {
		return "Enter your text below to see it rendered in " + cfg.Name + " with current settings."
	}
	return "Type your custom text here. Apply a font style from one of the panels above."
}
