//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRGB565RoundTripPrimaries(t *testing.T) {
	cases := []struct{ r, g, b uint8 }{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{0, 255, 0},
		{0, 0, 255},
	}
	for _, c := range cases {
		r, g, b := RGB888(RGB565(c.r, c.g, c.b))
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("round trip %v: got %d,%d,%d", c, r, g, b)
		}
	}
}

func TestFramebufferClearAndSnapshot(t *testing.T) {
	fb := newHostFramebuffer(4, 3)
	if fb.StrideBytes() != 8 || len(fb.Buffer()) != 24 {
		t.Fatalf("stride=%d len=%d", fb.StrideBytes(), len(fb.Buffer()))
	}
	fb.ClearRGB(255, 0, 0)

	img := Snapshot(fb)
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("bounds=%v", img.Bounds())
	}
	for _, p := range [][2]int{{0, 0}, {3, 0}, {1, 1}, {3, 2}} {
		c := img.RGBAAt(p[0], p[1])
		if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
			t.Fatalf("pixel %v=%v", p, c)
		}
	}

	if err := fb.Present(); err != nil {
		t.Fatalf("Present: %v", err)
	}
	if fb.presented() != 1 {
		t.Fatalf("presented=%d", fb.presented())
	}
}

func TestLoggerWritesLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.WriteLineString("a")
	l.WriteLineBytes([]byte("b"))
	if got := buf.String(); got != "a\nb\n" {
		t.Fatalf("log=%q", got)
	}
}

func TestHostTimePublishesElapsedMilliseconds(t *testing.T) {
	ht := newHostTime()
	now := time.Unix(0, 0)
	ht.now = func() time.Time { return now }

	ht.step(1)
	now = now.Add(5*time.Millisecond + 500*time.Microsecond)
	ht.step(1)
	now = now.Add(500 * time.Microsecond)
	ht.step(1)

	var last uint64
	n := 0
	for {
		select {
		case seq := <-ht.Ticks():
			last = seq
			n++
			continue
		default:
		}
		break
	}
	if n != 7 || last != 7 {
		t.Fatalf("ticks=%d last=%d, want 7", n, last)
	}
}

func TestPointerPhaseString(t *testing.T) {
	if PointerBegin.String() != "begin" || PointerMove.String() != "move" || PointerEnd.String() != "end" {
		t.Fatalf("unexpected phase names")
	}
	if PointerPhase(0).String() != "unknown" {
		t.Fatalf("zero phase should be unknown")
	}
}

func TestRunHeadlessInjectsScriptAndSnapshots(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	var phases []string
	newApp := func(h HAL) func() error {
		fb := h.Display().Framebuffer()
		ptr := h.Input().Pointer()
		return func() error {
			for {
				select {
				case ev := <-ptr.Events():
					phases = append(phases, ev.Phase.String())
					continue
				default:
				}
				break
			}
			fb.ClearRGB(0, 0, 255)
			return nil
		}
	}

	cfg := HeadlessConfig{
		Width:  8,
		Height: 8,
		Hz:     1000,
		Ticks:  4,
		Script: []ScriptedPointer{
			{Tick: 0, Event: PointerEvent{Phase: PointerBegin, X: 1}},
			{Tick: 1, Event: PointerEvent{Phase: PointerMove, X: 2}},
			{Tick: 2, Event: PointerEvent{Phase: PointerEnd, X: 2}},
		},
		Snapshot: path,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := RunHeadless(ctx, newApp, cfg); err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}

	if got := strings.Join(phases, ","); got != "begin,move,end" {
		t.Fatalf("phases=%q", got)
	}
	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if st.Size() == 0 {
		t.Fatalf("empty snapshot")
	}
}
