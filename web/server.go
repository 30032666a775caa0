// Package web serves a browser preview of the chart. Frames are streamed as
// SVG over server-sent events and gestures come back as datastar signals.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"glidechart/chart"
	"glidechart/hal"
	"glidechart/render"

	ds "github.com/starfederation/datastar-go/datastar"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// DefaultFPS is the SSE frame rate used when none is configured.
const DefaultFPS = 30

// maxFrameStep bounds dt after the stream was idle.
const maxFrameStep = 250 * time.Millisecond

type Server struct {
	log  hal.Logger
	fps  int
	tmpl *template.Template
	now  func() time.Time
	mux  *http.ServeMux

	mu    sync.Mutex
	chart *chart.Controller
	last  time.Time
}

type gestureSig struct {
	Gesture struct {
		Phase string  `json:"phase"`
		X     float64 `json:"x"`
	} `json:"gesture"`
}

type datasetSig struct {
	Dataset string `json:"dataset"`
}

// chartView is the data behind the "chart" template.
type chartView struct {
	Keys    []string
	Active  string
	SVG     template.HTML
	Highest string
	Lowest  string
	Average string
}

// NewServer serves c. fps <= 0 selects DefaultFPS.
func NewServer(c *chart.Controller, log hal.Logger, fps int) (*Server, error) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s := &Server{
		log:   log,
		fps:   fps,
		tmpl:  tmpl,
		now:   time.Now,
		chart: c,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.IndexHandler)
	mux.HandleFunc("GET /frames", s.FramesHandler)
	mux.HandleFunc("POST /gesture", s.GestureHandler)
	mux.HandleFunc("POST /dataset", s.DatasetHandler)
	s.mux = mux
	return s, nil
}

func (s *Server) Handler() http.Handler { return s.mux }

// Start serves on addr until the listener fails.
func (s *Server) Start(addr string) error {
	s.logf("web: listening on %s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// IndexHandler renders the page with the current frame inlined.
func (s *Server) IndexHandler(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	view := s.viewLocked()
	width := s.chart.Config().Width
	s.mu.Unlock()

	var buf strings.Builder
	err := s.tmpl.ExecuteTemplate(&buf, "index", map[string]any{
		"Width": width,
		"Chart": view,
	})
	if err != nil {
		s.logf("web: execute index template: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(buf.String()))
}

// FramesHandler streams the chart at the configured frame rate. Frames that
// did not change are not sent again, and a chart at rest is not rendered.
func (s *Server) FramesHandler(w http.ResponseWriter, r *http.Request) {
	sse := ds.NewSSE(w, r)

	ctx := r.Context()
	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()

	var sent string
	for {
		html, ok, err := s.nextFrame(sent != "")
		if err != nil {
			s.logf("web: render frame: %v", err)
			return
		}
		if ok && html != sent {
			if err := sse.PatchElements(html); err != nil {
				if ctx.Err() == nil {
					s.logf("web: patch frame: %v", err)
				}
				return
			}
			sent = html
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// GestureHandler feeds one pointer sample into the chart.
func (s *Server) GestureHandler(w http.ResponseWriter, r *http.Request) {
	var sig gestureSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		s.logf("web: read gesture signals: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	switch sig.Gesture.Phase {
	case "begin":
		s.chart.OnGestureBegin(sig.Gesture.X)
	case "move":
		s.chart.OnGestureUpdate(sig.Gesture.X)
	case "end":
		s.chart.OnGestureEnd()
	default:
		s.mu.Unlock()
		s.logf("web: unknown gesture phase %q", sig.Gesture.Phase)
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	s.mu.Unlock()

	s.patchNow(w, r)
}

// DatasetHandler morphs the chart to another dataset.
func (s *Server) DatasetHandler(w http.ResponseWriter, r *http.Request) {
	var sig datasetSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		s.logf("web: read dataset signals: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	err := s.chart.SelectDataset(sig.Dataset)
	s.mu.Unlock()
	if errors.Is(err, chart.ErrUnknownDataset) {
		s.logf("web: %v", err)
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		s.logf("web: select dataset: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	s.logf("web: dataset %s", sig.Dataset)

	s.patchNow(w, r)
}

func (s *Server) patchNow(w http.ResponseWriter, r *http.Request) {
	html, err := s.renderFrame()
	if err != nil {
		s.logf("web: render frame: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	sse := ds.NewSSE(w, r)
	if err := sse.PatchElements(html); err != nil {
		s.logf("web: patch frame: %v", err)
	}
}

// nextFrame renders the next frame. When the client already has a frame and
// the chart is at rest it only advances the clock and reports false.
func (s *Server) nextFrame(haveFrame bool) (string, bool, error) {
	s.mu.Lock()
	if haveFrame && !s.chart.Animating() {
		s.last = s.now()
		s.mu.Unlock()
		return "", false, nil
	}
	s.mu.Unlock()
	html, err := s.renderFrame()
	if err != nil {
		return "", false, err
	}
	return html, true, nil
}

// renderFrame advances the chart by the wall time since the previous frame
// and renders the "chart" element.
func (s *Server) renderFrame() (string, error) {
	s.mu.Lock()
	now := s.now()
	var dt time.Duration
	if !s.last.IsZero() {
		dt = min(now.Sub(s.last), maxFrameStep)
	}
	s.last = now
	s.chart.Tick(dt)
	view := s.viewLocked()
	s.mu.Unlock()

	var buf strings.Builder
	if err := s.tmpl.ExecuteTemplate(&buf, "chart", view); err != nil {
		return "", fmt.Errorf("execute chart template: %w", err)
	}
	return buf.String(), nil
}

func (s *Server) viewLocked() chartView {
	f := s.chart.Frame()
	return chartView{
		Keys:    f.Keys,
		Active:  f.Dataset,
		SVG:     template.HTML(render.SVG(f)),
		Highest: chart.FormatValue(f.Stats.Highest),
		Lowest:  chart.FormatValue(f.Stats.Lowest),
		Average: chart.FormatValue(f.Stats.Average),
	}
}

func (s *Server) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
