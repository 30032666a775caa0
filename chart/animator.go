package chart

import (
	"time"

	"glidechart/chart/anim"
)

// MorphDuration is how long a dataset switch takes to reshape the curve.
const MorphDuration = 400 * time.Millisecond

// Animator holds one tweened Y per sample index. Slots are allocated once;
// every index eases on its own so the curve reshapes rather than translates.
type Animator struct {
	slots []anim.Tween
}

func NewAnimator(count int) *Animator {
	return &Animator{slots: make([]anim.Tween, count)}
}

func (a *Animator) Len() int { return len(a.slots) }

// Init places every slot on ys without animating.
func (a *Animator) Init(ys []float64) {
	for i := range a.slots {
		if i < len(ys) {
			a.slots[i].Set(ys[i])
		}
	}
}

// Retarget eases every slot from its live value to ys.
func (a *Animator) Retarget(ys []float64) {
	for i := range a.slots {
		if i < len(ys) {
			a.slots[i].To(ys[i], MorphDuration, anim.OutCubic)
		}
	}
}

func (a *Animator) Step(dt time.Duration) {
	for i := range a.slots {
		a.slots[i].Step(dt)
	}
}

// Y returns the live value of slot i.
func (a *Animator) Y(i int) float64 { return a.slots[i].Value() }

// Target returns the value slot i is heading to.
func (a *Animator) Target(i int) float64 { return a.slots[i].Target() }

func (a *Animator) Settled() bool {
	for i := range a.slots {
		if !a.slots[i].Done() {
			return false
		}
	}
	return true
}

// Points pairs the fixed xs with the live Ys into dst.
func (a *Animator) Points(dst []Point, xs []float64) []Point {
	dst = dst[:0]
	for i := range a.slots {
		x := 0.0
		if i < len(xs) {
			x = xs[i]
		}
		dst = append(dst, Point{X: x, Y: a.slots[i].Value()})
	}
	return dst
}
