// Package session keeps one font-comparison workspace per browser.
package session

import (
	"github.com/joeblew999/plat-fonts/internal/analytics"
	"github.com/joeblew999/plat-fonts/internal/panel"
	"github.com/joeblew999/plat-fonts/internal/preview"
	"github.com/joeblew999/plat-fonts/internal/recommend"
	"github.com/joeblew999/plat-fonts/pkg/font"
	"github.com/zeromicro/go-zero/core/logx"
)

// Deps are shared by every workspace.
type Deps struct {
	FontsBaseURL string
	Panels       int
	Sink         analytics.Sink
	Recommender  recommend.Recommender
}

// Workspace is everything one browser sees: its loaded fonts, its panels and
// the live preview bound to them.
type Workspace struct {
	ID      string
	Fonts   *font.Loader
	Panels  *panel.Controller
	Preview *preview.Binder
}

// NewWorkspace builds a workspace with default panels. The binder observes
// the controller so a bound preview follows its panel.
func NewWorkspace(id string, d Deps) *Workspace {
	if d.Panels <= 0 {
		d.Panels = len(panel.DefaultFonts)
	}
	if d.Sink == nil {
		d.Sink = analytics.Nop
	}
	if d.Recommender == nil {
		d.Recommender = recommend.Unavailable
	}

	loader := font.NewLoader(
		font.WithBaseURL(d.FontsBaseURL),
		font.WithOnLoad(func(url string) {
			logx.Debugw("workspace font loaded", logx.Field("session", id), logx.Field("url", url))
		}),
	)
	panels := panel.NewController(panel.Defaults(d.Panels),
		panel.WithLoader(loader),
		panel.WithSink(d.Sink),
		panel.WithRecommender(d.Recommender),
	)
	binder := preview.NewBinder(panel.DefaultSampleText, d.Sink)
	panels.OnChange(binder.OnPanelChanged)

	return &Workspace{
		ID:      id,
		Fonts:   loader,
		Panels:  panels,
		Preview: binder,
	}
}
