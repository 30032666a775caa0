package chart

import "math"

// Mapper converts sample indices and values to chart-local pixels.
//
// The value range is global across every selectable dataset so one value
// always lands on the same pixel row whichever dataset is active.
type Mapper struct {
	Width   float64
	Height  float64
	Padding float64
	Count   int
	Min     float64
	Max     float64
}

// NewMapper builds a mapper whose value range spans all datasets.
func NewMapper(width, height, padding float64, sets []Dataset) Mapper {
	m := Mapper{Width: width, Height: height, Padding: padding}
	if len(sets) == 0 {
		return m
	}
	m.Count = len(sets[0].Samples)
	m.Min = math.Inf(1)
	m.Max = math.Inf(-1)
	for _, d := range sets {
		for _, s := range d.Samples {
			m.Min = math.Min(m.Min, s.Value)
			m.Max = math.Max(m.Max, s.Value)
		}
	}
	if math.IsInf(m.Min, 1) {
		m.Min, m.Max = 0, 0
	}
	return m
}

// X returns the horizontal position of sample i.
func (m Mapper) X(i int) float64 {
	if m.Count < 2 {
		return 0
	}
	return float64(i) * (m.Width / float64(m.Count-1))
}

// Y returns the vertical position of value v. Larger values sit higher.
func (m Mapper) Y(v float64) float64 {
	ratio := 0.0
	if span := m.Max - m.Min; span != 0 {
		ratio = (v - m.Min) / span
	}
	return m.Padding + (m.Height-2*m.Padding)*(1-ratio)
}

// Xs fills dst with the X position of every sample and returns it.
func (m Mapper) Xs(dst []float64) []float64 {
	dst = dst[:0]
	for i := 0; i < m.Count; i++ {
		dst = append(dst, m.X(i))
	}
	return dst
}

// Ys maps every value of d into dst.
func (m Mapper) Ys(dst []float64, d Dataset) []float64 {
	dst = dst[:0]
	for _, s := range d.Samples {
		dst = append(dst, m.Y(s.Value))
	}
	return dst
}
