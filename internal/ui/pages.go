// Package ui provides the Datastar-based font comparison page.
package ui

import (
	"strconv"
	"strings"

	"github.com/joeblew999/plat-fonts/internal/panel"
	"github.com/joeblew999/plat-fonts/internal/preview"
	"github.com/joeblew999/plat-fonts/pkg/font"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	data "maragu.dev/gomponents-datastar"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"

// Element ids patched by the SSE handlers.
const (
	fontLinksID   = "font-links"
	livePreviewID = "live-preview"
)

// PageView is everything needed to render the comparison page.
type PageView struct {
	FontsBaseURL string
	Panels       []panel.FontConfig
	FontURLs     []string
	Preview      *preview.Binder
}

// Layout wraps content in the base HTML layout. The UI font is preloaded
// here so panels never request it again.
func Layout(title, fontsBaseURL string, content ...g.Node) g.Node {
	return h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(title)),
			h.Link(h.Rel("preconnect"), h.Href(fontsBaseURL)),
			h.Link(h.Rel("stylesheet"), h.Href(font.StylesheetURL(fontsBaseURL, font.PreloadedFont))),
			h.Script(h.Type("module"), h.Src(datastarScript)),
			h.StyleEl(h.Type("text/css"), g.Raw(styles)),
		),
		h.Body(
			h.Nav(h.Class("navbar"),
				h.Div(h.Class("nav-brand"), g.Text("plat-fonts")),
				h.Div(h.Class("nav-links"),
					h.A(h.Href("/"), g.Text("Compare")),
					h.A(h.Href("/api/v1/fonts"), g.Text("API")),
				),
			),
			h.Main(h.Class("container"), g.Group(content)),
			h.Footer(h.Class("footer"),
				g.Text("plat-fonts - Google Fonts comparison"),
			),
		),
	)
}

// ComparePage renders the panels grid and the live preview.
func ComparePage(v PageView) g.Node {
	signals := map[string]any{
		"liveText": v.Preview.Text(),
		"error":    "",
	}
	cards := make([]g.Node, 0, len(v.Panels))
	for i, cfg := range v.Panels {
		signals[signalKey(i)] = panelSignalsOf(cfg)
		cards = append(cards, PanelCard(i, cfg, v.Preview.IsBound(cfg.ID)))
	}

	return Layout("Font Previewer - plat-fonts", v.FontsBaseURL,
		data.Signals(signals),

		h.H1(g.Text("Font Previewer")),
		h.P(h.Class("hint"), g.Text("Compare Google Fonts side by side. Pick a panel to drive the live preview.")),

		Toast(),
		FontLinks(v.FontURLs),
		PopularFonts(),

		h.Div(h.Class("panels-grid"), g.Group(cards)),

		h.Div(h.Class("section"),
			LivePreview(v.Preview),
			h.Div(h.Class("form-group"),
				h.Label(h.For("live-text"), g.Text("Your text")),
				h.Textarea(h.ID("live-text"), h.Rows("4"),
					data.Bind("liveText"),
					data.On("change", "@post('/api/preview/text')"),
				),
			),
		),
	)
}

// Toast shows the last error until dismissed.
func Toast() g.Node {
	return h.Div(h.Class("toast"),
		data.Show("$error"),
		h.Span(data.Text("$error")),
		h.Button(h.Class("toast-close"), h.Type("button"),
			data.On("click", "$error = ''"),
			g.Text("×"),
		),
	)
}

// FontLinks renders one stylesheet link per loaded family. The element is
// replaced wholesale whenever the set grows.
func FontLinks(urls []string) g.Node {
	links := make([]g.Node, 0, len(urls))
	for _, u := range urls {
		links = append(links, h.Link(h.Rel("stylesheet"), h.Href(u)))
	}
	return h.Div(h.ID(fontLinksID), h.Class("font-links"), g.Group(links))
}

// PanelCard renders one comparison panel with its controls.
func PanelCard(index int, cfg panel.FontConfig, bound bool) g.Node {
	key := signalKey(index)
	post := func(action string) string {
		return "@post('/api/panels/" + strconv.Itoa(index) + "/" + action + "')"
	}
	set := func(field string) string {
		return post("field/" + field)
	}

	weights := make([]g.Node, 0, len(font.Weights))
	for _, w := range font.Weights {
		weights = append(weights, h.Option(h.Value(strconv.Itoa(w)),
			g.If(w == cfg.Weight, h.Selected()),
			g.Text(font.WeightLabel(w)),
		))
	}

	class := "panel-card"
	if bound {
		class += " bound"
	}

	return h.Div(h.ID(cfg.ID), h.Class(class),
		h.Div(h.Class("panel-header"),
			h.H3(g.Text(cfg.Name)),
			h.Button(h.Type("button"), h.Class("secondary"),
				g.If(bound, h.Disabled()),
				data.On("click", post("preview")),
				g.If(bound, g.Text("Previewing")),
				g.If(!bound, g.Text("Use in preview")),
			),
		),

		h.P(h.Class("sample"), h.StyleAttr(preview.StyleOf(cfg).CSS()),
			g.Text(panel.DefaultSampleText),
		),

		h.Div(h.Class("controls"),
			h.Div(h.Class("form-group"),
				h.Label(g.Text("Font")),
				h.Input(h.Type("text"), g.Attr("list", "popular-fonts"),
					data.Bind(key+"."+FieldName),
					data.On("change", set(FieldName)),
				),
			),
			h.Div(h.Class("form-group"),
				h.Label(g.Text("Size "), h.Span(data.Text("$"+key+"."+FieldSize+" + 'px'"))),
				h.Input(h.Type("range"), h.Min(strconv.Itoa(font.MinSize)), h.Max(strconv.Itoa(font.MaxSize)),
					data.Bind(key+"."+FieldSize),
					data.On("change", set(FieldSize)),
				),
			),
			h.Div(h.Class("form-group"),
				h.Label(g.Text("Weight")),
				h.Select(
					data.Bind(key+"."+FieldWeight),
					data.On("change", set(FieldWeight)),
					g.Group(weights),
				),
			),
			h.Div(h.Class("form-group"),
				h.Label(g.Text("Letter spacing "), h.Span(data.Text("$"+key+"."+FieldLetterSpacing+" + 'px'"))),
				h.Input(h.Type("range"), h.Step("0.1"),
					h.Min(formatFloat(font.MinLetterSpacing)), h.Max(formatFloat(font.MaxLetterSpacing)),
					data.Bind(key+"."+FieldLetterSpacing),
					data.On("change", set(FieldLetterSpacing)),
				),
			),
			h.Div(h.Class("form-group"),
				h.Label(g.Text("Color")),
				h.Input(h.Type("color"),
					data.Bind(key+"."+FieldColor),
					data.On("change", set(FieldColor)),
				),
			),
		),

		h.Div(h.Class("recommendation"),
			h.Button(h.Type("button"),
				g.If(cfg.IsLoadingRecommendation, h.Disabled()),
				data.On("click", post("recommend")),
				g.If(cfg.IsLoadingRecommendation, g.Group([]g.Node{h.Span(h.Class("loading-spinner")), g.Text(" Thinking...")})),
				g.If(!cfg.IsLoadingRecommendation, g.Text("Get AI recommendation")),
			),
			g.If(cfg.AIRecommendation != "", h.Div(h.Class("result"), Paragraphs(cfg.AIRecommendation))),
		),
	)
}

// PopularFonts is the datalist backing every font input.
func PopularFonts() g.Node {
	options := make([]g.Node, 0, len(font.PopularFonts))
	for _, name := range font.PopularFonts {
		options = append(options, h.Option(h.Value(name)))
	}
	return h.DataList(h.ID("popular-fonts"), g.Group(options))
}

// LivePreview renders the user's text in the bound panel's style.
func LivePreview(b *preview.Binder) g.Node {
	text := b.Text()
	return h.Div(h.ID(livePreviewID),
		h.H2(g.Text(b.Title())),
		h.P(h.Class("hint"), g.Text(b.Description())),
		h.Div(h.Class("live-text"), h.StyleAttr(b.Style().CSS()),
			g.If(text == "", h.Span(h.Class("hint"), g.Text("Start typing to see your text here."))),
			g.If(text != "", Paragraphs(text)),
		),
	)
}

// Paragraphs splits text on blank lines.
func Paragraphs(text string) g.Node {
	var nodes []g.Node
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			nodes = append(nodes, h.P(g.Text(p)))
		}
	}
	return g.Group(nodes)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

const styles = `
:root {
	--primary: #6366f1;
	--primary-dark: #4f46e5;
	--danger: #ef4444;
	--bg: #f8fafc;
	--card-bg: #ffffff;
	--text: #1e293b;
	--text-muted: #64748b;
	--border: #e2e8f0;
}

* { box-sizing: border-box; margin: 0; padding: 0; }

body {
	font-family: 'Inter', -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
	background: var(--bg);
	color: var(--text);
	line-height: 1.6;
}

.navbar {
	background: var(--primary);
	color: white;
	padding: 1rem 2rem;
	display: flex;
	justify-content: space-between;
	align-items: center;
}

.nav-brand { font-size: 1.5rem; font-weight: 700; }
.nav-links a { color: white; text-decoration: none; margin-left: 2rem; opacity: 0.9; }

.container { max-width: 1400px; margin: 0 auto; padding: 2rem; }
.footer { text-align: center; padding: 2rem; color: var(--text-muted); border-top: 1px solid var(--border); }

h1 { margin-bottom: 0.5rem; }
h2 { margin-bottom: 0.5rem; font-size: 1.25rem; }
h3 { font-size: 1.1rem; }
.hint { color: var(--text-muted); margin-bottom: 1.5rem; }

.panels-grid {
	display: grid;
	grid-template-columns: repeat(auto-fit, minmax(320px, 1fr));
	gap: 1.5rem;
	margin-bottom: 2rem;
}

.panel-card, .section {
	background: var(--card-bg);
	border: 1px solid var(--border);
	border-radius: 12px;
	padding: 1.5rem;
}

.panel-card.bound { border-color: var(--primary); box-shadow: 0 0 0 3px rgba(99, 102, 241, 0.15); }
.panel-header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 1rem; }
.sample { min-height: 8rem; margin-bottom: 1rem; overflow-wrap: anywhere; }

.controls { display: grid; grid-template-columns: 1fr 1fr; gap: 0 1rem; }
.form-group { margin-bottom: 1rem; }
.form-group label { display: block; margin-bottom: 0.25rem; font-size: 0.875rem; font-weight: 500; }
.form-group input, .form-group select, .form-group textarea {
	width: 100%;
	padding: 0.5rem;
	border: 1px solid var(--border);
	border-radius: 8px;
	font: inherit;
}
.form-group input[type=color] { height: 2.5rem; padding: 0.25rem; }

button {
	background: var(--primary);
	color: white;
	border: none;
	padding: 0.5rem 1rem;
	border-radius: 8px;
	cursor: pointer;
	font: inherit;
	font-weight: 500;
}
button:hover { background: var(--primary-dark); }
button:disabled { background: var(--text-muted); cursor: not-allowed; }
button.secondary { background: transparent; color: var(--primary); border: 1px solid var(--primary); }

.result { margin-top: 1rem; padding: 1rem; border-radius: 8px; background: var(--bg); font-size: 0.9rem; }
.result p + p { margin-top: 0.5rem; }

.live-text { min-height: 6rem; margin-bottom: 1rem; padding: 1rem; border: 1px dashed var(--border); border-radius: 8px; }
.live-text p + p { margin-top: 1em; }

.toast {
	position: fixed;
	right: 1.5rem;
	bottom: 1.5rem;
	background: var(--danger);
	color: white;
	padding: 0.75rem 1rem;
	border-radius: 8px;
	display: flex;
	gap: 1rem;
	align-items: center;
}
.toast-close { background: transparent; padding: 0; font-size: 1.25rem; }

.loading-spinner {
	display: inline-block;
	width: 14px;
	height: 14px;
	border: 2px solid rgba(255,255,255,0.4);
	border-top-color: white;
	border-radius: 50%;
	animation: spin 1s linear infinite;
}
@keyframes spin { to { transform: rotate(360deg); } }

@media (max-width: 768px) {
	.controls { grid-template-columns: 1fr; }
}
`
