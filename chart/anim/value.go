package anim

import "time"

// Value is a scalar driven either by a tween or by a spring.
//
// Switching from one driver to the other starts the new driver at the live
// value, so an interrupted animation never jumps.
type Value struct {
	tween     Tween
	spring    Spring
	springing bool
}

func NewValue(v float64, spring SpringConfig) Value {
	val := Value{spring: NewSpring(spring)}
	val.Set(v)
	return val
}

// Set jumps to v and stops both drivers.
func (v *Value) Set(x float64) {
	v.tween.Set(x)
	v.spring.Set(x)
	v.springing = false
}

// Animate tweens towards target.
func (v *Value) Animate(target float64, dur time.Duration, ease Easing) {
	if v.springing {
		v.tween.Set(v.spring.Value())
		v.springing = false
	}
	v.tween.To(target, dur, ease)
}

// Spring lets the spring chase target.
func (v *Value) Spring(target float64) {
	if !v.springing {
		v.spring.Set(v.tween.Value())
		v.springing = true
	}
	v.spring.To(target)
}

func (v *Value) Step(dt time.Duration) {
	if v.springing {
		v.spring.Step(dt)
		return
	}
	v.tween.Step(dt)
}

func (v *Value) Value() float64 {
	if v.springing {
		return v.spring.Value()
	}
	return v.tween.Value()
}

func (v *Value) Target() float64 {
	if v.springing {
		return v.spring.Target()
	}
	return v.tween.Target()
}

func (v *Value) Settled() bool {
	if v.springing {
		return v.spring.Settled()
	}
	return v.tween.Done()
}
