package ui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/joeblew999/plat-fonts/internal/panel"
	"github.com/joeblew999/plat-fonts/internal/session"
	"github.com/starfederation/datastar-go/datastar"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/pathvar"
	g "maragu.dev/gomponents"
)

var errBadIndex = errors.New("panel index must be a number")

// Handlers provides HTTP handlers for the UI.
type Handlers struct {
	store        *session.Store
	fontsBaseURL string
}

// NewHandlers creates new UI handlers.
func NewHandlers(store *session.Store, fontsBaseURL string) *Handlers {
	return &Handlers{
		store:        store,
		fontsBaseURL: fontsBaseURL,
	}
}

// Routes returns the standard UI routes for registration with rest.Server.
func (h *Handlers) Routes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/", Handler: h.handleCompare},
	}
}

// SSERoutes returns the SSE-based API routes (require rest.WithSSE option).
func (h *Handlers) SSERoutes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodPost, Path: "/api/panels/:index/field/:field", Handler: h.handleField},
		{Method: http.MethodPost, Path: "/api/panels/:index/preview", Handler: h.handleBind},
		{Method: http.MethodPost, Path: "/api/panels/:index/recommend", Handler: h.handleRecommend},
		{Method: http.MethodPost, Path: "/api/preview/text", Handler: h.handleText},
	}
}

func (h *Handlers) handleCompare(w http.ResponseWriter, r *http.Request) {
	ws, err := h.store.FromRequest(w, r)
	if err != nil {
		logx.WithContext(r.Context()).Errorf("load workspace: %v", err)
		http.Error(w, "workspace unavailable", http.StatusInternalServerError)
		return
	}
	ws.Panels.Compare()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	page := ComparePage(PageView{
		FontsBaseURL: h.fontsBaseURL,
		Panels:       ws.Panels.All(),
		FontURLs:     ws.Fonts.Loaded(),
		Preview:      ws.Preview,
	})
	if err := page.Render(w); err != nil {
		logx.Errorf("render compare page: %v", err)
	}
}

func (h *Handlers) handleField(w http.ResponseWriter, r *http.Request) {
	ws, index, err := h.workspace(w, r)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	var signals pageSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.sendDatastarError(w, r, fmt.Errorf("read signals: %w", err))
		return
	}
	ps, err := signals.panel(index)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}
	field := pathvar.Vars(r)["field"]
	partial, err := partialFor(field, ps)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	before := ws.Fonts.Len()
	all, err := ws.Panels.Update(index, partial)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}
	cfg := all[index]

	sse := datastar.NewSSE(w, r)
	h.patch(sse, PanelCard(index, cfg, ws.Preview.IsBound(cfg.ID)))
	if ws.Fonts.Len() != before {
		h.patch(sse, FontLinks(ws.Fonts.Loaded()))
	}
	if ws.Preview.IsBound(cfg.ID) {
		h.patch(sse, LivePreview(ws.Preview))
	}
	// Echo the stored values so clamped inputs snap back.
	if err := sse.MarshalAndPatchSignals(map[string]any{
		signalKey(index): panelSignalsOf(cfg),
		"error":          "",
	}); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) handleBind(w http.ResponseWriter, r *http.Request) {
	ws, index, err := h.workspace(w, r)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	cfg, err := ws.Panels.Get(index)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}
	ws.Preview.Bind(cfg)

	sse := datastar.NewSSE(w, r)
	for i, c := range ws.Panels.All() {
		h.patch(sse, PanelCard(i, c, ws.Preview.IsBound(c.ID)))
	}
	h.patch(sse, LivePreview(ws.Preview))
}

func (h *Handlers) handleRecommend(w http.ResponseWriter, r *http.Request) {
	ws, index, err := h.workspace(w, r)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	cfg, err := ws.Panels.Get(index)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	sse := datastar.NewSSE(w, r)
	loading := cfg
	loading.IsLoadingRecommendation = true
	h.patch(sse, PanelCard(index, loading, ws.Preview.IsBound(cfg.ID)))

	// The panel state outlives this request, so a closed tab must not
	// cancel the call.
	ctx := context.WithoutCancel(r.Context())
	result, err := ws.Panels.Recommend(ctx, index)
	h.patch(sse, PanelCard(index, result, ws.Preview.IsBound(result.ID)))
	if err != nil {
		msg := "Could not load a recommendation for " + cfg.Name
		if perr := sse.MarshalAndPatchSignals(map[string]any{"error": msg}); perr != nil {
			logx.Errorf("datastar patch signals: %v", perr)
		}
	}
}

func (h *Handlers) handleText(w http.ResponseWriter, r *http.Request) {
	ws, err := h.store.FromRequest(w, r)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	var signals pageSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.sendDatastarError(w, r, fmt.Errorf("read signals: %w", err))
		return
	}
	text, err := signals.liveText()
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}
	ws.Preview.SetText(text)

	sse := datastar.NewSSE(w, r)
	h.patch(sse, LivePreview(ws.Preview))
}

// workspace resolves the session workspace and the :index path variable.
func (h *Handlers) workspace(w http.ResponseWriter, r *http.Request) (*session.Workspace, int, error) {
	ws, err := h.store.FromRequest(w, r)
	if err != nil {
		return nil, 0, err
	}

	index, err := strconv.Atoi(pathvar.Vars(r)["index"])
	if err != nil {
		return nil, 0, errBadIndex
	}
	if index < 0 || index >= ws.Panels.Len() {
		return nil, 0, fmt.Errorf("%w: %d", panel.ErrPanelNotFound, index)
	}
	return ws, index, nil
}

func (h *Handlers) patch(sse *datastar.ServerSentEventGenerator, node g.Node) {
	var b strings.Builder
	if err := node.Render(&b); err != nil {
		logx.Errorf("render fragment: %v", err)
		return
	}
	if err := sse.PatchElements(b.String()); err != nil {
		logx.Errorf("datastar patch elements: %v", err)
	}
}

func (h *Handlers) sendDatastarSignals(w http.ResponseWriter, r *http.Request, signals map[string]any) {
	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) sendDatastarError(w http.ResponseWriter, r *http.Request, err error) {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	h.sendDatastarSignals(w, r, map[string]any{
		"error": msg,
	})
}
