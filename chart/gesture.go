package chart

import (
	"math"
	"time"

	"glidechart/chart/anim"
)

const (
	// PointerIdle is the pointer position reported while no gesture is active.
	PointerIdle = -1.0

	FollowDuration = 200 * time.Millisecond
	GlowDuration   = 200 * time.Millisecond
)

// GestureState is a snapshot of the tracker for one frame.
type GestureState struct {
	Active       bool
	PointerX     float64
	NearestIndex int
	SmoothedX    float64
	SmoothedY    float64
	GlowOpacity  float64
}

// Tracker follows a single pointer across the chart and snaps it to the
// nearest sample. It has two states, idle and tracking; Begin, Update and End
// are the only transitions.
type Tracker struct {
	width    float64
	active   bool
	pointerX float64
	index    int

	x    anim.Tween
	y    anim.Tween
	glow anim.Tween
}

func NewTracker(width float64) *Tracker {
	return &Tracker{width: width, pointerX: PointerIdle}
}

// Begin enters the tracking state. The crosshair lands on the nearest point
// immediately; only the glow fades in.
func (t *Tracker) Begin(x float64, pts []Point) {
	t.active = true
	t.pointerX = t.clampX(x)
	t.index = NearestIndex(pts, t.pointerX)
	if t.index < len(pts) {
		t.x.Set(pts[t.index].X)
		t.y.Set(pts[t.index].Y)
	}
	t.glow.To(1, GlowDuration, anim.InOutQuad)
}

// Update moves the pointer and reports whether the nearest index changed.
// It is ignored while idle.
func (t *Tracker) Update(x float64, pts []Point) bool {
	if !t.active {
		return false
	}
	t.pointerX = t.clampX(x)
	prev := t.index
	t.index = NearestIndex(pts, t.pointerX)
	return t.index != prev
}

// End leaves the tracking state. Cancellation ends a gesture the same way.
func (t *Tracker) End() {
	if !t.active {
		return
	}
	t.active = false
	t.pointerX = PointerIdle
	t.glow.To(0, GlowDuration, anim.InOutQuad)
}

// Step lets the crosshair trail towards the snapped point. The snapped Y is
// read from pts every frame, so the crosshair rides along a dataset morph.
func (t *Tracker) Step(dt time.Duration, pts []Point) {
	if t.active && t.pointerX >= 0 && t.index < len(pts) {
		p := pts[t.index]
		t.x.To(p.X, FollowDuration, anim.OutCubic)
		t.y.To(p.Y, FollowDuration, anim.OutCubic)
	}
	t.x.Step(dt)
	t.y.Step(dt)
	t.glow.Step(dt)
}

// Settled reports whether the tracker is idle and every fade has finished.
func (t *Tracker) Settled() bool {
	return !t.active && t.x.Done() && t.y.Done() && t.glow.Done()
}

func (t *Tracker) State() GestureState {
	return GestureState{
		Active:       t.active,
		PointerX:     t.pointerX,
		NearestIndex: t.index,
		SmoothedX:    t.x.Value(),
		SmoothedY:    t.y.Value(),
		GlowOpacity:  t.glow.Value(),
	}
}

func (t *Tracker) clampX(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > t.width {
		return t.width
	}
	return x
}

// NearestIndex returns the index of the point horizontally closest to x.
// Ties resolve to the lower index. An empty slice yields 0.
func NearestIndex(pts []Point, x float64) int {
	if len(pts) == 0 {
		return 0
	}
	best := 0
	bestD := math.Abs(x - pts[0].X)
	for i := 1; i < len(pts); i++ {
		if d := math.Abs(x - pts[i].X); d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}
