// Package anim provides the scalar animation primitives used by the chart.
//
// Everything here is driven by explicit time steps: callers advance values with
// Step(dt) once per frame. There is no clock, no goroutine and no allocation in
// the step path.
//
// Two drivers exist:
//
//	Tween  - fixed duration, named easing curve, restarts from the live value.
//	Spring - damped harmonic oscillator (harmonica), chases a moving target.
//
// Value combines both so a single scalar can spring in and tween out.
package anim
