package anim

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	for name, ease := range map[string]Easing{
		"linear":    Linear,
		"outCubic":  OutCubic,
		"inCubic":   InCubic,
		"inOutQuad": InOutQuad,
	} {
		if got := ease(0); got != 0 {
			t.Fatalf("%s(0) = %v", name, got)
		}
		if got := ease(1); got != 1 {
			t.Fatalf("%s(1) = %v", name, got)
		}
		if got := ease(-3); got != 0 {
			t.Fatalf("%s(-3) = %v", name, got)
		}
		if got := ease(math.NaN()); got != 0 {
			t.Fatalf("%s(NaN) = %v", name, got)
		}
	}
}

func TestOutCubicFasterThanInCubic(t *testing.T) {
	if OutCubic(0.25) <= InCubic(0.25) {
		t.Fatalf("out-cubic should lead in-cubic early on")
	}
	if got := OutCubic(0.5); math.Abs(got-0.875) > 1e-12 {
		t.Fatalf("OutCubic(0.5) = %v", got)
	}
	if got := InOutQuad(0.5); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("InOutQuad(0.5) = %v", got)
	}
}
