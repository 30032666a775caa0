package chart

import (
	"image/color"
	"strconv"
)

// Stop is one colour stop of a linear gradient. Offset runs from 0 to 1.
type Stop struct {
	Offset float64
	Color  color.RGBA
}

var (
	// LineGradient runs left to right along the curve stroke.
	LineGradient = []Stop{
		{0, color.RGBA{R: 0xFB, G: 0xBF, B: 0x72, A: 0xFF}},
		{1.0 / 3, color.RGBA{R: 0xF9, G: 0xA8, B: 0x55, A: 0xFF}},
		{2.0 / 3, color.RGBA{R: 0x6E, G: 0xE7, B: 0xB7, A: 0xFF}},
		{1, color.RGBA{R: 0x34, G: 0xD3, B: 0x99, A: 0xFF}},
	}
	// FillGradient runs top to bottom under the curve. Colours are not
	// premultiplied; A carries the fill alpha.
	FillGradient = []Stop{
		{0, color.RGBA{R: 251, G: 191, B: 114, A: 51}},
		{1.0 / 3, color.RGBA{R: 249, G: 168, B: 85, A: 20}},
		{2.0 / 3, color.RGBA{R: 110, G: 231, B: 183, A: 10}},
		{1, color.RGBA{}},
	}

	colorCrosshair = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 26}
	colorGlow      = color.RGBA{R: 251, G: 191, B: 114, A: 204}
	colorHalo      = color.RGBA{R: 251, G: 191, B: 114, A: 77}
	colorRing      = color.RGBA{R: 0xFF, G: 0xF8, B: 0xE7, A: 0xFF}
	colorCenter    = color.RGBA{R: 0xFB, G: 0xBF, B: 0x72, A: 0xFF}
)

// Indicator ring radii at full scale.
const (
	glowRadius   = 30
	haloRadius   = 12
	ringRadius   = 8
	centerRadius = 5

	glowOpacity = 0.4
)

// Segment is a straight line with its own opacity. Color.A is the alpha at
// full opacity.
type Segment struct {
	A, B    Point
	Opacity float64
	Color   color.RGBA
}

// Ring is one filled circle of the indicator dot.
type Ring struct {
	Radius  float64
	Opacity float64
	Color   color.RGBA
	// Radial marks the glow ring, which fades out towards its edge.
	Radial bool
}

// Indicator is the dot that sits on the curve under the crosshair. Rings are
// ordered back to front: glow, halo, ring, center.
type Indicator struct {
	Center Point
	Rings  [4]Ring
}

// AxisLabel is a period label under the chart.
type AxisLabel struct {
	X    float64
	Text string
}

// Frame is everything a renderer needs to draw the chart once. It is owned by
// the Controller and only valid until the next Tick.
type Frame struct {
	Width   float64
	Height  float64
	Dataset string
	// Keys lists every selectable dataset in construction order.
	Keys []string

	Curve *Path
	Area  *Path

	Crosshair Segment
	Indicator Indicator

	Gesture     GestureState
	Tooltip     TooltipState
	TooltipText string

	AxisLabels []AxisLabel
	Stats      Stats
}

// FormatValue renders a value the way the tooltip and stats cards show it.
func FormatValue(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', -1, 64) + "k"
}
