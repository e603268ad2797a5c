package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/joeblew999/plat-fonts/internal/analytics"
	"github.com/joeblew999/plat-fonts/internal/recommend"
	"github.com/joeblew999/plat-fonts/internal/session"
	"github.com/joeblew999/plat-fonts/pkg/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/rest/pathvar"
)

type fixture struct {
	handlers *Handlers
	store    *session.Store
	sink     *analytics.Memory
}

func newFixture(t *testing.T, rec recommend.Recommender) *fixture {
	t.Helper()
	sink := &analytics.Memory{}
	store, err := session.NewStore(time.Minute, session.Deps{
		FontsBaseURL: font.GoogleFontsBase,
		Panels:       2,
		Sink:         sink,
		Recommender:  rec,
	})
	require.NoError(t, err)
	return &fixture{handlers: NewHandlers(store, font.GoogleFontsBase), store: store, sink: sink}
}

// serve runs handler with the given path vars and body, reusing the session
// cookie from a previous response when one is given.
func (f *fixture) serve(handler http.HandlerFunc, vars map[string]string, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		r.AddCookie(cookie)
	}
	if vars != nil {
		r = pathvar.WithVars(r, vars)
	}
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func (f *fixture) workspace(t *testing.T, w *httptest.ResponseRecorder) (*session.Workspace, *http.Cookie) {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			ws, ok := f.store.Get(c.Value)
			require.True(t, ok)
			return ws, c
		}
	}
	t.Fatal("no session cookie")
	return nil, nil
}

func TestComparePage(t *testing.T) {
	f := newFixture(t, nil)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	f.handlers.handleCompare(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Font Previewer")
	assert.Contains(t, body, `id="panel-1"`)
	assert.Contains(t, body, `id="panel-2"`)
	assert.Contains(t, body, "family=Inter")
	assert.Contains(t, body, "family=Roboto")
	assert.Contains(t, body, "family=Open+Sans")
	assert.Contains(t, body, `id="live-preview"`)
	assert.Contains(t, body, "Live Text Editor")
	assert.Equal(t, 1, f.sink.Count(analytics.FontsCompared))

	ws, _ := f.workspace(t, w)
	assert.Equal(t, 2, ws.Panels.Len())
}

func TestHandleFieldClampsSize(t *testing.T) {
	f := newFixture(t, nil)

	w := f.serve(f.handlers.handleField, map[string]string{"index": "0", "field": "size"},
		`{"p0":{"name":"Roboto","size":"300","weight":400,"letterSpacing":0,"color":"#333333"}}`, nil)

	ws, _ := f.workspace(t, w)
	cfg, err := ws.Panels.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Size)
	assert.Contains(t, w.Body.String(), "panel-1")
	assert.Contains(t, w.Body.String(), "font-size: 128px")
}

func TestHandleFieldName(t *testing.T) {
	f := newFixture(t, nil)

	w := f.serve(f.handlers.handleField, map[string]string{"index": "1", "field": "name"},
		`{"p1":{"name":"Playfair Display"}}`, nil)

	ws, _ := f.workspace(t, w)
	cfg, err := ws.Panels.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Playfair Display", cfg.Name)
	assert.Equal(t, "'Playfair Display'", cfg.FontFamilyQuery)

	body := w.Body.String()
	assert.Contains(t, body, "font-links")
	assert.Contains(t, body, "family=Playfair+Display")
	assert.Equal(t, 1, f.sink.Count(analytics.FontSelected))
}

func TestHandleFieldErrors(t *testing.T) {
	f := newFixture(t, nil)

	tests := []struct {
		name string
		vars map[string]string
		body string
		want string
	}{
		{"bad index", map[string]string{"index": "x", "field": "size"}, `{}`, "panel index must be a number"},
		{"out of range", map[string]string{"index": "5", "field": "size"}, `{}`, "panel not found"},
		{"unknown field", map[string]string{"index": "0", "field": "id"}, `{"p0":{}}`, "unknown field"},
		{"bad color", map[string]string{"index": "0", "field": "color"}, `{"p0":{"color":"blue"}}`, "#rrggbb"},
		{"missing signals", map[string]string{"index": "0", "field": "size"}, `{}`, "panel signals missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.serve(f.handlers.handleField, tt.vars, tt.body, nil)
			assert.Contains(t, w.Body.String(), "error")
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestHandleBindAndText(t *testing.T) {
	f := newFixture(t, nil)

	w := f.serve(f.handlers.handleBind, map[string]string{"index": "1"}, `{}`, nil)
	ws, cookie := f.workspace(t, w)
	assert.True(t, ws.Preview.IsBound("panel-2"))
	assert.Contains(t, w.Body.String(), "Previewing with Open Sans")

	w = f.serve(f.handlers.handleText, nil, `{"liveText":"Hello fonts"}`, cookie)
	assert.Equal(t, "Hello fonts", ws.Preview.Text())
	assert.Contains(t, w.Body.String(), "Hello fonts")
	assert.Equal(t, 1, f.sink.Count(analytics.PreviewTextChanged))

	// A bound panel's update also refreshes the preview.
	w = f.serve(f.handlers.handleField, map[string]string{"index": "1", "field": "weight"},
		`{"p1":{"weight":"700"}}`, cookie)
	assert.Contains(t, w.Body.String(), "live-preview")
	assert.Contains(t, w.Body.String(), "font-weight: 700")
}

func TestHandleRecommend(t *testing.T) {
	f := newFixture(t, recommend.Func(func(_ context.Context, name string) (*recommend.Response, error) {
		return &recommend.Response{Recommendation: name + " works well for headlines."}, nil
	}))

	w := f.serve(f.handlers.handleRecommend, map[string]string{"index": "0"}, `{}`, nil)
	body := w.Body.String()
	assert.Contains(t, body, "Thinking")
	assert.Contains(t, body, "Roboto works well for headlines.")

	ws, _ := f.workspace(t, w)
	cfg, err := ws.Panels.Get(0)
	require.NoError(t, err)
	assert.False(t, cfg.IsLoadingRecommendation)
}

func TestHandleRecommendUnavailable(t *testing.T) {
	f := newFixture(t, nil)

	w := f.serve(f.handlers.handleRecommend, map[string]string{"index": "0"}, `{}`, nil)
	body := w.Body.String()
	assert.Contains(t, body, "Could not load a recommendation for Roboto")

	ws, _ := f.workspace(t, w)
	cfg, err := ws.Panels.Get(0)
	require.NoError(t, err)
	assert.Equal(t, recommend.Placeholder, cfg.AIRecommendation)
}
