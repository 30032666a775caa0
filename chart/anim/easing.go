package anim

// Easing maps normalized progress in [0,1] to eased progress.
type Easing func(t float64) float64

func Linear(t float64) float64 { return clamp01(t) }

// OutCubic decelerates towards the end.
func OutCubic(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// InCubic accelerates from rest.
func InCubic(t float64) float64 {
	t = clamp01(t)
	return t * t * t
}

// InOutQuad is the default timing curve for untyped tweens.
func InOutQuad(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

func clamp01(t float64) float64 {
	if t != t || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
