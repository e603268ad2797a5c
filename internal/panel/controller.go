package panel

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/joeblew999/plat-fonts/internal/analytics"
	"github.com/joeblew999/plat-fonts/internal/recommend"
	"github.com/zeromicro/go-zero/core/logx"
)

// ErrPanelNotFound is returned for an index outside the panel collection.
var ErrPanelNotFound = errors.New("panel not found")

// FontLoader requests the stylesheet for a font family.
type FontLoader interface {
	Ensure(name string) (string, bool)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLoader sets the font loader triggered by name changes.
func WithLoader(l FontLoader) Option {
	return func(c *Controller) {
		c.loader = l
	}
}

// WithSink sets the analytics sink.
func WithSink(s analytics.Sink) Option {
	return func(c *Controller) {
		c.sink = s
	}
}

// WithRecommender sets the recommendation backend.
func WithRecommender(r recommend.Recommender) Option {
	return func(c *Controller) {
		c.recommender = r
	}
}

// Controller owns a fixed, ordered collection of panels. It merges partial
// edits, re-derives FontFamilyQuery, loads fonts and tells observers about
// every change.
//
// Numeric fields are not range checked here; the UI clamps them before they
// reach Update.
type Controller struct {
	mu        sync.Mutex
	configs   []FontConfig
	inflight  []int
	observers []func(FontConfig)

	loader      FontLoader
	sink        analytics.Sink
	recommender recommend.Recommender
}

// NewController creates a controller over a copy of configs and loads the
// font of every panel.
func NewController(configs []FontConfig, opts ...Option) *Controller {
	c := &Controller{
		configs:     append([]FontConfig(nil), configs...),
		inflight:    make([]int, len(configs)),
		sink:        analytics.Nop,
		recommender: recommend.Unavailable,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.loader != nil {
		for _, cfg := range c.configs {
			c.loader.Ensure(cfg.Name)
		}
	}
	return c
}

// OnChange registers fn to run after every change to a panel, in change
// order. fn runs with the controller locked and must not call back into it.
func (c *Controller) OnChange(fn func(FontConfig)) {
	c.mu.Lock()
	c.observers = append(c.observers, fn)
	c.mu.Unlock()
}

// Len returns the number of panels.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.configs)
}

// Get returns the panel at index.
func (c *Controller) Get(index int) (FontConfig, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkIndex(index); err != nil {
		return FontConfig{}, err
	}
	return c.configs[index], nil
}

// All returns a copy of every panel.
func (c *Controller) All() []FontConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Names returns the font name of every panel.
func (c *Controller) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, len(c.configs))
	for i, cfg := range c.configs {
		names[i] = cfg.Name
	}
	return names
}

// Compare records that the current set of fonts is being compared.
func (c *Controller) Compare() {
	c.sink.Track(analytics.FontsComparedEvent(c.Names()))
}

// Update merges p into the panel at index and returns every panel.
// A changed name loads the new font and re-derives FontFamilyQuery. The font
// load and the analytics event happen once per call.
func (c *Controller) Update(index int, p Partial) ([]FontConfig, error) {
	c.mu.Lock()
	if err := c.checkIndex(index); err != nil {
		c.mu.Unlock()
		return nil, err
	}

	nameChanged := p.apply(&c.configs[index])
	updated := c.configs[index]
	c.notify(updated)
	all := c.snapshot()
	c.mu.Unlock()

	if nameChanged {
		if c.loader != nil {
			c.loader.Ensure(updated.Name)
		}
		c.sink.Track(analytics.FontSelectedEvent(updated.Name, updated.ID))
	} else if !p.Empty() {
		c.sink.Track(analytics.FeatureUsedEvent(p.feature(), p.values()))
	}

	return all, nil
}

// Recommend fetches a recommendation for the panel at index. The panel is
// marked loading for the duration of the call; the controller is not locked
// while waiting. On failure the recommendation becomes recommend.Placeholder
// and the error is returned. Concurrent calls for the same panel all run;
// whichever resolves last wins.
func (c *Controller) Recommend(ctx context.Context, index int) (FontConfig, error) {
	c.mu.Lock()
	if err := c.checkIndex(index); err != nil {
		c.mu.Unlock()
		return FontConfig{}, err
	}
	c.inflight[index]++
	c.configs[index].IsLoadingRecommendation = true
	name := c.configs[index].Name
	c.notify(c.configs[index])
	c.mu.Unlock()

	resp, err := c.fetch(ctx, name)

	c.mu.Lock()
	cfg := &c.configs[index]
	if err != nil {
		cfg.AIRecommendation = recommend.Placeholder
	} else {
		cfg.AIRecommendation = resp.Recommendation
	}
	c.inflight[index]--
	cfg.IsLoadingRecommendation = c.inflight[index] > 0
	c.notify(*cfg)
	result := *cfg
	c.mu.Unlock()

	c.sink.Track(analytics.FeatureUsedEvent("ai_recommendation", name))
	if err != nil {
		logx.WithContext(ctx).Infow("recommendation failed",
			logx.Field("panel", result.ID), logx.Field("font", name), logx.Field("error", err.Error()))
	}
	return result, err
}

// fetch calls the recommender, turning a panic or an empty response into an
// error so the loading flag is always cleared.
func (c *Controller) fetch(ctx context.Context, name string) (resp *recommend.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			resp, err = nil, fmt.Errorf("recommender panic: %v", p)
		}
	}()

	resp, err = c.recommender.Recommend(ctx, name)
	if err == nil && (resp == nil || resp.Recommendation == "") {
		err = recommend.ErrEmptyRecommendation
	}
	return resp, err
}

func (c *Controller) checkIndex(index int) error {
	if index < 0 || index >= len(c.configs) {
		return fmt.Errorf("%w: index %d of %d", ErrPanelNotFound, index, len(c.configs))
	}
	return nil
}

func (c *Controller) snapshot() []FontConfig {
	return append([]FontConfig(nil), c.configs...)
}

func (c *Controller) notify(cfg FontConfig) {
	for _, fn := range c.observers {
		fn(cfg)
	}
}

// values returns the overridden fields keyed by their JSON name.
func (p Partial) values() map[string]any {
	v := make(map[string]any)
	if p.Name != nil {
		v["name"] = *p.Name
	}
	if p.Size != nil {
		v["size"] = *p.Size
	}
	if p.Weight != nil {
		v["weight"] = *p.Weight
	}
	if p.LetterSpacing != nil {
		v["letterSpacing"] = *p.LetterSpacing
	}
	if p.Color != nil {
		v["color"] = *p.Color
	}
	return v
}

// feature names the overridden fields, e.g. "size" or "color,weight".
func (p Partial) feature() string {
	keys := make([]string, 0, 5)
	for k := range p.values() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}
