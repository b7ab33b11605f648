package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MUA122/IOT-Project/internal/dashboard"
	"github.com/MUA122/IOT-Project/internal/theme"
)

// PageHandler renders the dashboard page
type PageHandler struct {
	source   DatasetSource
	renderer PageRenderer
	theme    theme.Theme
	opts     dashboard.Options
	recorder Recorder
	logger   zerolog.Logger
	now      func() time.Time
}

// NewPageHandler creates a page handler. rec may be nil.
func NewPageHandler(source DatasetSource, renderer PageRenderer, th theme.Theme, opts dashboard.Options, rec Recorder, logger zerolog.Logger) *PageHandler {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &PageHandler{
		source:   source,
		renderer: renderer,
		theme:    th,
		opts:     opts,
		recorder: rec,
		logger:   logger,
		now:      time.Now,
	}
}

// ServeHTTP serves the page on "/" and "/index.html" only
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	data := h.source.Snapshot(h.now())
	page := dashboard.NewPage(data, h.theme, h.opts)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := h.renderer.Render(w, page)
	h.recorder.ObserveRender(time.Since(start).Seconds(), err)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to render dashboard")
		http.Error(w, "Failed to render dashboard", http.StatusInternalServerError)
		return
	}

	h.recorder.SetReadings(data.Readings())
}
