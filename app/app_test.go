package app

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"glidechart/chart"
	"glidechart/hal"
)

type fakeLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *fakeLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, s)
}

func (l *fakeLogger) WriteLineBytes(b []byte) { l.WriteLineString(string(b)) }

func (l *fakeLogger) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type fakeHAL struct {
	log   *fakeLogger
	fb    hal.Framebuffer
	keys  chan hal.KeyEvent
	ptr   chan hal.PointerEvent
	ticks chan uint64
	seq   uint64
}

func newFakeHAL() *fakeHAL {
	return &fakeHAL{
		log:   &fakeLogger{},
		fb:    hal.New(hal.DefaultWidth, hal.DefaultHeight).Display().Framebuffer(),
		keys:  make(chan hal.KeyEvent, 16),
		ptr:   make(chan hal.PointerEvent, 16),
		ticks: make(chan uint64, 1024),
	}
}

func (h *fakeHAL) Logger() hal.Logger   { return h.log }
func (h *fakeHAL) Display() hal.Display { return h }
func (h *fakeHAL) Input() hal.Input     { return h }
func (h *fakeHAL) Time() hal.Time       { return h }

func (h *fakeHAL) Framebuffer() hal.Framebuffer { return h.fb }
func (h *fakeHAL) Keyboard() hal.Keyboard       { return fakeKeyboard(h.keys) }
func (h *fakeHAL) Pointer() hal.Pointer         { return fakePointer(h.ptr) }
func (h *fakeHAL) Ticks() <-chan uint64         { return h.ticks }

// advance publishes ms milliseconds of ticks.
func (h *fakeHAL) advance(ms int) {
	for i := 0; i < ms; i++ {
		h.seq++
		h.ticks <- h.seq
	}
}

type fakeKeyboard chan hal.KeyEvent

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k }

type fakePointer chan hal.PointerEvent

func (p fakePointer) Events() <-chan hal.PointerEvent { return p }

func newSystemT(t *testing.T, h *fakeHAL, cfg Config) *system {
	t.Helper()
	if cfg.Chart.Width == 0 {
		cfg.Chart = chart.DefaultConfig()
	}
	s, err := newSystem(h, cfg)
	if err != nil {
		t.Fatalf("newSystem: %v", err)
	}
	return s
}

func runFrames(t *testing.T, h *fakeHAL, s *system, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		h.advance(16)
		if err := s.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
}

func TestStartupLogsDatasets(t *testing.T) {
	h := newFakeHAL()
	newSystemT(t, h, Config{})
	if !h.log.contains("datasets 2025,2026") {
		t.Fatalf("startup log missing: %v", h.log.lines)
	}
}

func TestInitialDataset(t *testing.T) {
	h := newFakeHAL()
	s := newSystemT(t, h, Config{Dataset: "2026"})
	if s.chart.Active() != "2026" {
		t.Fatalf("active=%q", s.chart.Active())
	}
	if s.chart.Animating() {
		t.Fatal("initial dataset must be shown without a morph")
	}
	if _, err := newSystem(h, Config{Chart: chart.DefaultConfig(), Dataset: "1999"}); !errors.Is(err, chart.ErrUnknownDataset) {
		t.Fatalf("err=%v, want ErrUnknownDataset", err)
	}
}

func TestConstructionErrorReturnedByStep(t *testing.T) {
	h := newFakeHAL()
	step := NewWithConfig(h, Config{Chart: chart.Config{}})
	if err := step(); !errors.Is(err, chart.ErrInvalidConfig) {
		t.Fatalf("err=%v, want ErrInvalidConfig", err)
	}
}

func TestKeysCycleDatasets(t *testing.T) {
	h := newFakeHAL()
	s := newSystemT(t, h, Config{})

	h.keys <- hal.KeyEvent{Code: hal.KeyRight, Press: true}
	h.keys <- hal.KeyEvent{Code: hal.KeyRight, Press: false}
	runFrames(t, h, s, 1)
	if s.chart.Active() != "2026" {
		t.Fatalf("after right: %q", s.chart.Active())
	}

	h.keys <- hal.KeyEvent{Code: hal.KeyRight, Press: true}
	runFrames(t, h, s, 1)
	if s.chart.Active() != "2025" {
		t.Fatalf("cycle should wrap: %q", s.chart.Active())
	}

	h.keys <- hal.KeyEvent{Code: hal.KeyEnter, Press: true}
	runFrames(t, h, s, 1)
	if s.chart.Active() != "2026" {
		t.Fatalf("enter should advance: %q", s.chart.Active())
	}
	h.keys <- hal.KeyEvent{Code: hal.KeyLeft, Press: true}
	runFrames(t, h, s, 1)
	if s.chart.Active() != "2025" {
		t.Fatalf("after left: %q", s.chart.Active())
	}

	h.keys <- hal.KeyEvent{Press: true, Rune: '2'}
	runFrames(t, h, s, 1)
	if s.chart.Active() != "2026" {
		t.Fatalf("digit select: %q", s.chart.Active())
	}

	h.keys <- hal.KeyEvent{Press: true, Rune: '9'}
	runFrames(t, h, s, 1)
	if !h.log.contains("no dataset #9") {
		t.Fatalf("missing rejection log: %v", h.log.lines)
	}
}

func TestPointerDrivesGesture(t *testing.T) {
	h := newFakeHAL()
	s := newSystemT(t, h, Config{})
	top := float64(s.r.Origin().Y)

	h.ptr <- hal.PointerEvent{Phase: hal.PointerBegin, X: 10, Y: top + 100}
	runFrames(t, h, s, 1)
	if !s.chart.Frame().Gesture.Active || s.chart.Frame().Gesture.NearestIndex != 0 {
		t.Fatalf("gesture after begin: %+v", s.chart.Frame().Gesture)
	}

	h.ptr <- hal.PointerEvent{Phase: hal.PointerMove, X: 349, Y: top + 100}
	runFrames(t, h, s, 30)
	f := s.chart.Frame()
	if f.Gesture.NearestIndex != 11 || f.Tooltip.Label != "Dec" {
		t.Fatalf("after move: idx=%d label=%q", f.Gesture.NearestIndex, f.Tooltip.Label)
	}

	h.ptr <- hal.PointerEvent{Phase: hal.PointerEnd, X: 349, Y: top + 100}
	runFrames(t, h, s, 60)
	f = s.chart.Frame()
	if f.Gesture.Active || f.Tooltip.Visible {
		t.Fatalf("after end: active=%v visible=%v", f.Gesture.Active, f.Tooltip.Visible)
	}
	if !h.log.contains("gesture: begin") || !h.log.contains("gesture: end") {
		t.Fatalf("gesture logs missing: %v", h.log.lines)
	}
}

func TestPointerOutsideChartIgnored(t *testing.T) {
	h := newFakeHAL()
	s := newSystemT(t, h, Config{})

	h.ptr <- hal.PointerEvent{Phase: hal.PointerBegin, X: 20, Y: 50}
	h.ptr <- hal.PointerEvent{Phase: hal.PointerMove, X: 200, Y: 50}
	runFrames(t, h, s, 1)
	if s.chart.Frame().Gesture.Active {
		t.Fatalf("gesture started outside the canvas")
	}
}

func TestPointerOnToggleSelectsDataset(t *testing.T) {
	h := newFakeHAL()
	s := newSystemT(t, h, Config{})

	f := s.chart.Frame()
	var hit [2]int
	found := false
	for y := 0; y < 40 && !found; y++ {
		for x := 0; x < hal.DefaultWidth; x++ {
			if key, ok := s.r.ToggleAt(f, x, y); ok && key == "2026" {
				hit = [2]int{x, y}
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("no toggle for 2026")
	}
	h.ptr <- hal.PointerEvent{Phase: hal.PointerBegin, X: float64(hit[0]), Y: float64(hit[1])}
	h.ptr <- hal.PointerEvent{Phase: hal.PointerEnd, X: float64(hit[0]), Y: float64(hit[1])}
	runFrames(t, h, s, 1)
	if s.chart.Active() != "2026" {
		t.Fatalf("active=%q", s.chart.Active())
	}
	if s.chart.Frame().Gesture.Active {
		t.Fatalf("toggle press must not start a gesture")
	}
}

func TestDrainTicksCapsLongStalls(t *testing.T) {
	h := newFakeHAL()
	s := newSystemT(t, h, Config{})

	h.advance(1)
	if dt := s.drainTicks(); dt != 0 {
		t.Fatalf("first drain dt=%v, want 0", dt)
	}
	h.advance(16)
	if dt := s.drainTicks(); dt != 16*hal.TickDuration {
		t.Fatalf("dt=%v", dt)
	}
	h.advance(1000)
	if dt := s.drainTicks(); dt != maxFrameStep {
		t.Fatalf("stall dt=%v, want %v", dt, maxFrameStep)
	}
}

func TestGuardRecoversPanic(t *testing.T) {
	h := newFakeHAL()
	step := guard(h, func() error { panic("boom") })
	err := step()
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err=%v", err)
	}
	if !h.log.contains("glidechart panic: boom") {
		t.Fatalf("panic not logged: %v", h.log.lines)
	}
}
