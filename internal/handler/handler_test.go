package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joeblew999/plat-fonts/internal/config"
	"github.com/joeblew999/plat-fonts/internal/errorx"
	"github.com/joeblew999/plat-fonts/internal/handler/font"
	"github.com/joeblew999/plat-fonts/internal/handler/recommend"
	"github.com/joeblew999/plat-fonts/internal/handler/stats"
	"github.com/joeblew999/plat-fonts/internal/model"
	rec "github.com/joeblew999/plat-fonts/internal/recommend"
	"github.com/joeblew999/plat-fonts/internal/svc"
	"github.com/joeblew999/plat-fonts/internal/types"
	"github.com/joeblew999/plat-fonts/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	errorx.RegisterErrorHandler()
}

func testConfig() config.Config {
	var c config.Config
	c.Fonts.BaseURL = "https://fonts.googleapis.com"
	c.Analytics.SiteID = "font-previewer"
	return c
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestListFonts(t *testing.T) {
	svcCtx := svc.NewServiceContext(testConfig(), nil, nil)

	w := httptest.NewRecorder()
	font.ListFontsHandler(svcCtx)(w, httptest.NewRequest(http.MethodGet, "/api/v1/fonts", nil))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[types.ListFontsResponse](t, w)
	assert.Equal(t, 15, resp.Count)
	assert.Contains(t, resp.Fonts, "Playfair Display")
	assert.Len(t, resp.Weights, 9)
	assert.Equal(t, "Bold (700)", resp.Weights[6].Label)
	assert.Equal(t, "Inter", resp.Preloaded)
	assert.Equal(t, []string{"Roboto", "Open Sans", "Lato", "Montserrat"}, resp.Defaults)
}

func TestStylesheet(t *testing.T) {
	svcCtx := svc.NewServiceContext(testConfig(), nil, nil)
	h := font.StylesheetHandler(svcCtx)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/api/v1/fonts/stylesheet?name=Open+Sans", nil))
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[types.StylesheetResponse](t, w)
	assert.Equal(t, "Open Sans", resp.Name)
	assert.Equal(t, "'Open Sans'", resp.Family)
	assert.Equal(t, "https://fonts.googleapis.com/css2?family=Open+Sans:wght@100;200;300;400;500;600;700;800;900&display=swap", resp.Url)
	assert.False(t, resp.Preloaded)

	w = httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/api/v1/fonts/stylesheet?name=Inter", nil))
	assert.True(t, decode[types.StylesheetResponse](t, w).Preloaded)

	w = httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/api/v1/fonts/stylesheet", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommend(t *testing.T) {
	ok := rec.Func(func(_ context.Context, name string) (*rec.Response, error) {
		return &rec.Response{Recommendation: name + " pairs well with a serif."}, nil
	})
	failing := rec.Func(func(context.Context, string) (*rec.Response, error) {
		return nil, errors.New("upstream down")
	})

	tests := []struct {
		name string
		r    rec.Recommender
		body string
		code int
	}{
		{"success", ok, `{"fontName":"Lato"}`, http.StatusOK},
		{"blank name", ok, `{"fontName":"  "}`, http.StatusBadRequest},
		{"missing name", ok, `{}`, http.StatusBadRequest},
		{"malformed", ok, `{"fontName":`, http.StatusBadRequest},
		{"unavailable", nil, `{"fontName":"Lato"}`, http.StatusServiceUnavailable},
		{"upstream failure", failing, `{"fontName":"Lato"}`, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcCtx := svc.NewServiceContext(testConfig(), tt.r, nil)
			r := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			recommend.RecommendHandler(svcCtx)(w, r)

			assert.Equal(t, tt.code, w.Code, w.Body.String())
			if tt.code == http.StatusOK {
				resp := decode[types.RecommendResponse](t, w)
				assert.Equal(t, "Lato", resp.FontName)
				assert.Equal(t, "Lato pairs well with a serif.", resp.Recommendation)
			}
		})
	}
}

func TestGetStats(t *testing.T) {
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	events := model.NewAnalyticsEventsModel(database.SqlConn())
	for i, typ := range []string{"font_selected", "font_selected", "feature_used"} {
		_, err := events.Insert(context.Background(), &model.AnalyticsEvents{
			Id:        string(rune('a' + i)),
			SiteId:    "font-previewer",
			EventType: typ,
			CreatedAt: "2026-01-01T00:00:0" + string(rune('0'+i)) + "Z",
		})
		require.NoError(t, err)
	}

	svcCtx := svc.NewServiceContext(testConfig(), nil, events)
	w := httptest.NewRecorder()
	stats.GetStatsHandler(svcCtx)(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats?limit=2", nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[types.StatsResponse](t, w)
	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, int64(2), resp.Stats["font_selected"])
	assert.Equal(t, int64(1), resp.Stats["feature_used"])
	assert.Len(t, resp.Recent, 2)
	assert.Equal(t, "c", resp.Recent[0].Id)
}

func TestGetStatsDisabled(t *testing.T) {
	svcCtx := svc.NewServiceContext(testConfig(), nil, nil)
	w := httptest.NewRecorder()
	stats.GetStatsHandler(svcCtx)(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
