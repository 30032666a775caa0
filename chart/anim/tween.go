package anim

import "time"

// Tween interpolates a scalar from its live value to a target over a fixed
// duration. The zero value is a settled tween at 0.
type Tween struct {
	from    float64
	to      float64
	cur     float64
	elapsed time.Duration
	dur     time.Duration
	ease    Easing
	running bool
}

// Set jumps to v and cancels any running animation.
func (t *Tween) Set(v float64) {
	*t = Tween{from: v, to: v, cur: v}
}

// To starts animating towards target from the current value.
//
// Calling To again with the same target and duration while the tween is still
// running keeps the running animation; anything else restarts the curve from
// wherever the value is right now.
func (t *Tween) To(target float64, dur time.Duration, ease Easing) {
	if t.running && t.to == target && t.dur == dur {
		return
	}
	if !t.running && t.cur == target {
		t.to = target
		return
	}
	if ease == nil {
		ease = InOutQuad
	}
	t.from = t.cur
	t.to = target
	t.dur = dur
	t.ease = ease
	t.elapsed = 0
	t.running = true
	if dur <= 0 {
		t.cur = target
		t.running = false
	}
}

// Step advances the tween by dt.
func (t *Tween) Step(dt time.Duration) {
	if !t.running {
		return
	}
	if dt > 0 {
		t.elapsed += dt
	}
	if t.elapsed >= t.dur {
		t.cur = t.to
		t.running = false
		return
	}
	p := float64(t.elapsed) / float64(t.dur)
	t.cur = t.from + (t.to-t.from)*t.ease(p)
}

func (t *Tween) Value() float64  { return t.cur }
func (t *Tween) Target() float64 { return t.to }
func (t *Tween) Done() bool      { return !t.running }
