package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/joeblew999/plat-fonts/internal/analytics"
	"github.com/joeblew999/plat-fonts/internal/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkspace(t *testing.T) {
	ws := NewWorkspace("abc", Deps{})

	assert.Equal(t, "abc", ws.ID)
	assert.Equal(t, 4, ws.Panels.Len())
	assert.Equal(t, 4, ws.Fonts.Len(), "initial panel fonts are loaded")
	assert.Equal(t, panel.DefaultSampleText, ws.Preview.Text())

	t.Run("BinderObservesPanels", func(t *testing.T) {
		p, err := ws.Panels.Get(0)
		require.NoError(t, err)
		ws.Preview.Bind(p)

		_, err = ws.Panels.Update(0, panel.Partial{Color: panel.Ptr("#abcdef")})
		require.NoError(t, err)
		assert.Equal(t, "#abcdef", ws.Preview.Style().Color)
	})

	t.Run("NameChangeLoadsFont", func(t *testing.T) {
		_, err := ws.Panels.Update(1, panel.Partial{Name: panel.Ptr("Merriweather")})
		require.NoError(t, err)
		assert.Equal(t, 5, ws.Fonts.Len())
	})
}

func TestNewWorkspacePanelCount(t *testing.T) {
	sink := &analytics.Memory{}
	ws := NewWorkspace("x", Deps{Panels: 6, Sink: sink, FontsBaseURL: "http://fonts.test"})
	assert.Equal(t, 6, ws.Panels.Len())
	for _, url := range ws.Fonts.Loaded() {
		assert.Contains(t, url, "http://fonts.test/css2")
	}
}

func TestStore(t *testing.T) {
	s, err := NewStore(time.Minute, Deps{})
	require.NoError(t, err)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	a, err := s.Take("one")
	require.NoError(t, err)
	b, err := s.Take("one")
	require.NoError(t, err)
	assert.Same(t, a, b)

	got, ok := s.Get("one")
	require.True(t, ok)
	assert.Same(t, a, got)

	s.Remove("one")
	_, ok = s.Get("one")
	assert.False(t, ok)
}

func TestStoreFromRequest(t *testing.T) {
	s, err := NewStore(time.Minute, Deps{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	first, err := s.FromRequest(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, first.ID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	again, err := s.FromRequest(httptest.NewRecorder(), req)
	require.NoError(t, err)
	assert.Same(t, first, again)

	t.Run("InvalidCookieStartsNewSession", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-uuid"})
		ws, err := s.FromRequest(httptest.NewRecorder(), req)
		require.NoError(t, err)
		assert.NotEqual(t, "not-a-uuid", ws.ID)
		assert.NotSame(t, first, ws)
	})
}
