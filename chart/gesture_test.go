package chart

import (
	"math"
	"testing"
	"time"
)

func demoPoints() []Point {
	m := demoMapper()
	ys := m.Ys(nil, DemoDatasets()[0])
	pts := make([]Point, len(ys))
	for i, y := range ys {
		pts[i] = Point{X: m.X(i), Y: y}
	}
	return pts
}

func TestNearestIndexAtSamplePositions(t *testing.T) {
	pts := demoPoints()
	for k, p := range pts {
		if got := NearestIndex(pts, p.X); got != k {
			t.Fatalf("NearestIndex(X(%d)) = %d", k, got)
		}
	}
}

func TestNearestIndexTieGoesLow(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {20, 0}}
	if got := NearestIndex(pts, 5); got != 0 {
		t.Fatalf("tie at 5 resolved to %d", got)
	}
	if got := NearestIndex(pts, 15); got != 1 {
		t.Fatalf("tie at 15 resolved to %d", got)
	}
	if got := NearestIndex(nil, 3); got != 0 {
		t.Fatalf("empty = %d", got)
	}
}

func TestTrackerLifecycle(t *testing.T) {
	pts := demoPoints()
	tr := NewTracker(350)

	if tr.Update(100, pts) {
		t.Fatal("update while idle must be ignored")
	}
	if st := tr.State(); st.Active || st.PointerX != PointerIdle {
		t.Fatalf("idle state = %+v", st)
	}

	tr.Begin(0, pts)
	st := tr.State()
	if !st.Active || st.NearestIndex != 0 {
		t.Fatalf("begin state = %+v", st)
	}
	if st.SmoothedX != pts[0].X || st.SmoothedY != pts[0].Y {
		t.Fatalf("begin should snap, got (%v,%v)", st.SmoothedX, st.SmoothedY)
	}

	if !tr.Update(350, pts) {
		t.Fatal("moving to the right edge should change the index")
	}
	if got := tr.State().NearestIndex; got != 11 {
		t.Fatalf("index at right edge = %d", got)
	}

	tr.Step(16*time.Millisecond, pts)
	if x := tr.State().SmoothedX; x <= 0 || x >= 350 {
		t.Fatalf("crosshair should be trailing, x = %v", x)
	}
	for i := 0; i < 20; i++ {
		tr.Step(16*time.Millisecond, pts)
	}
	if x := tr.State().SmoothedX; x != pts[11].X {
		t.Fatalf("crosshair did not arrive, x = %v", x)
	}

	tr.End()
	st = tr.State()
	if st.Active || st.PointerX != PointerIdle {
		t.Fatalf("end state = %+v", st)
	}
	for i := 0; i < 20; i++ {
		tr.Step(16*time.Millisecond, pts)
	}
	if g := tr.State().GlowOpacity; g != 0 {
		t.Fatalf("glow = %v after end", g)
	}
}

func TestTrackerClampsPointer(t *testing.T) {
	pts := demoPoints()
	tr := NewTracker(350)
	for _, tc := range []struct {
		x    float64
		want int
	}{
		{math.NaN(), 0},
		{-50, 0},
		{math.Inf(-1), 0},
		{1e9, 11},
		{math.Inf(1), 11},
	} {
		tr.Begin(tc.x, pts)
		st := tr.State()
		if st.NearestIndex != tc.want {
			t.Fatalf("x=%v index = %d, want %d", tc.x, st.NearestIndex, tc.want)
		}
		if st.PointerX < 0 || st.PointerX > 350 {
			t.Fatalf("x=%v pointer not clamped: %v", tc.x, st.PointerX)
		}
		tr.End()
	}
}
