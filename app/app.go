package app

import (
	"fmt"
	"strings"
	"time"

	"glidechart/chart"
	"glidechart/hal"
	"glidechart/internal/buildinfo"
	"glidechart/render"
)

// maxFrameStep bounds dt after a stall so animations do not jump.
const maxFrameStep = 250 * time.Millisecond

// Config selects what the app shows.
type Config struct {
	Chart chart.Config
	// Datasets defaults to chart.DemoDatasets.
	Datasets []chart.Dataset
	// Dataset is the key shown first. Empty means the first dataset.
	Dataset string
}

type system struct {
	h     hal.HAL
	log   hal.Logger
	chart *chart.Controller
	r     *render.Renderer

	lastSeq  uint64
	dragging bool
}

// New starts the chart with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{Chart: chart.DefaultConfig()})
}

// NewWithConfig builds the chart and returns the step func the host calls
// once per frame. Construction errors are returned by the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		logf(h.Logger(), "glidechart: %v", err)
		return func() error { return err }
	}
	return guard(h, s.step)
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	sets := cfg.Datasets
	if len(sets) == 0 {
		sets = chart.DemoDatasets()
	}
	c, err := chart.New(cfg.Chart, sets)
	if err != nil {
		return nil, fmt.Errorf("new chart: %w", err)
	}
	if cfg.Dataset != "" {
		if err := c.Show(cfg.Dataset); err != nil {
			return nil, err
		}
	}

	s := &system{h: h, log: h.Logger(), chart: c}
	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil {
			s.r = render.New(fb)
		}
	}
	logf(s.log, "glidechart %s: datasets %s, showing %s",
		buildinfo.Short(), strings.Join(c.Keys(), ","), c.Active())
	return s, nil
}

func (s *system) step() error {
	dt := s.drainTicks()
	s.drainKeys()
	s.drainPointer()

	f := s.chart.Tick(dt)
	if s.r == nil {
		return nil
	}
	if err := s.r.Draw(f); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	return nil
}

// drainTicks returns the time covered by ticks published since the last step.
func (s *system) drainTicks() time.Duration {
	t := s.h.Time()
	if t == nil || t.Ticks() == nil {
		return 0
	}
	seq := s.lastSeq
	for {
		select {
		case v := <-t.Ticks():
			if v > seq {
				seq = v
			}
			continue
		default:
		}
		break
	}
	if s.lastSeq == 0 {
		s.lastSeq = seq
		return 0
	}
	dt := time.Duration(seq-s.lastSeq) * hal.TickDuration
	s.lastSeq = seq
	if dt > maxFrameStep {
		dt = maxFrameStep
	}
	return dt
}

func (s *system) drainKeys() {
	in := s.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	ch := in.Keyboard().Events()
	for {
		select {
		case ev := <-ch:
			s.handleKey(ev)
			continue
		default:
		}
		return
	}
}

func (s *system) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyLeft, hal.KeyUp:
		s.cycle(-1)
	case hal.KeyRight, hal.KeyDown, hal.KeyTab, hal.KeyEnter:
		s.cycle(1)
	case hal.KeyEscape:
		if s.dragging {
			s.endGesture()
		}
	case hal.KeyUnknown:
		if ev.Rune >= '1' && ev.Rune <= '9' {
			keys := s.chart.Keys()
			i := int(ev.Rune - '1')
			if i >= len(keys) {
				logf(s.log, "dataset: no dataset #%c", ev.Rune)
				return
			}
			s.selectDataset(keys[i])
		}
	}
}

func (s *system) cycle(dir int) {
	keys := s.chart.Keys()
	cur := 0
	for i, k := range keys {
		if k == s.chart.Active() {
			cur = i
		}
	}
	next := (cur + dir + len(keys)) % len(keys)
	s.selectDataset(keys[next])
}

func (s *system) selectDataset(key string) {
	if key == s.chart.Active() {
		return
	}
	if err := s.chart.SelectDataset(key); err != nil {
		logf(s.log, "dataset: %v", err)
		return
	}
	logf(s.log, "dataset: %s", key)
}

func (s *system) drainPointer() {
	in := s.h.Input()
	if in == nil || in.Pointer() == nil {
		return
	}
	ch := in.Pointer().Events()
	for {
		select {
		case ev := <-ch:
			s.handlePointer(ev)
			continue
		default:
		}
		return
	}
}

func (s *system) handlePointer(ev hal.PointerEvent) {
	f := s.chart.Frame()
	x, inChart := ev.X, true
	if s.r != nil {
		x, _, inChart = s.r.ChartPoint(f, ev.X, ev.Y)
	}

	switch ev.Phase {
	case hal.PointerBegin:
		if s.r != nil {
			if key, ok := s.r.ToggleAt(f, int(ev.X), int(ev.Y)); ok {
				s.selectDataset(key)
				return
			}
		}
		if !inChart {
			return
		}
		s.dragging = true
		s.chart.OnGestureBegin(x)
		logf(s.log, "gesture: begin x=%.1f", x)
	case hal.PointerMove:
		if s.dragging {
			s.chart.OnGestureUpdate(x)
		}
	case hal.PointerEnd:
		if s.dragging {
			s.endGesture()
		}
	}
}

func (s *system) endGesture() {
	s.dragging = false
	s.chart.OnGestureEnd()
	logf(s.log, "gesture: end at %s", s.chart.Frame().Tooltip.Label)
}

func logf(l hal.Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
