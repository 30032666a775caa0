package render

import (
	"image"
	"image/color"
	"math"

	"glidechart/chart"
	"glidechart/hal"
)

// ChartTop is the framebuffer row where the chart canvas starts.
const ChartTop = 56

// footerHeight holds the period labels and the stats cards.
const footerHeight = 84

// FramebufferSize is the page size needed to draw a chart of cfg's geometry.
func FramebufferSize(cfg chart.Config) (width, height int) {
	return int(math.Ceil(cfg.Width)), ChartTop + int(math.Ceil(cfg.Height)) + footerHeight
}

const (
	flattenSteps = 12
	strokeWidth  = 3
	tooltipRound = 20
)

var (
	colorBackground = color.RGBA{R: 0x0B, G: 0x0B, B: 0x0F, A: 0xFF}
	colorSecondary  = color.RGBA{R: 0x1C, G: 0x1C, B: 0x22, A: 0xFF}
	colorText       = color.RGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xFF}

	tooltipTop    = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 38}
	tooltipBottom = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 13}
	tooltipBorder = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 51}
	tooltipBase   = color.RGBA{R: 0x1A, G: 0x1A, B: 0x20, A: 0xD0}
)

// Renderer rasterizes chart frames into a RGB565 framebuffer. The page is a
// header with the dataset toggle, the chart canvas, its period labels, and a
// row of stats cards.
type Renderer struct {
	fb     hal.Framebuffer
	d      *fbDisplay
	origin image.Point
	edges  []edge
}

func New(fb hal.Framebuffer) *Renderer {
	return &Renderer{fb: fb, d: newFBDisplay(fb), origin: image.Pt(0, ChartTop)}
}

// Origin is the framebuffer position of chart coordinate (0, 0).
func (r *Renderer) Origin() image.Point { return r.origin }

// ChartPoint converts a framebuffer position into chart coordinates and
// reports whether it falls on the chart canvas of f.
func (r *Renderer) ChartPoint(f *chart.Frame, x, y float64) (float64, float64, bool) {
	cx := x - float64(r.origin.X)
	cy := y - float64(r.origin.Y)
	in := f != nil && cx >= 0 && cx <= f.Width && cy >= 0 && cy <= f.Height
	return cx, cy, in
}

// ToggleAt returns the dataset key whose header pill contains x, y.
func (r *Renderer) ToggleAt(f *chart.Frame, x, y int) (string, bool) {
	if f == nil {
		return "", false
	}
	for i, rect := range r.toggleRects(f) {
		if image.Pt(x, y).In(rect) {
			return f.Keys[i], true
		}
	}
	return "", false
}

// Draw paints f over the whole framebuffer and presents it.
func (r *Renderer) Draw(f *chart.Frame) error {
	if r.fb == nil || f == nil {
		return nil
	}
	r.fb.ClearRGB(colorBackground.R, colorBackground.G, colorBackground.B)

	r.drawHeader(f)
	r.drawArea(f)
	r.drawCurve(f)
	r.drawCrosshair(f)
	r.drawIndicator(f)
	r.drawTooltip(f)
	r.drawAxisLabels(f)
	r.drawStats(f)
	return r.d.Display()
}

func (r *Renderer) drawHeader(f *chart.Frame) {
	boldFace.write(r.d, 12, 8, "Analytics", colorText)
	smallFace.write(r.d, 12, 30, "Monthly performance", withAlpha(colorText, 0.5))

	rects := r.toggleRects(f)
	for i, rect := range rects {
		key := f.Keys[i]
		if key == f.Dataset {
			fillRoundRect(r.d, float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()),
				float64(rect.Dy())/2, colorSecondary, colorSecondary, colorSecondary, 1)
			smallFace.centered(r.d, (rect.Min.X+rect.Max.X)/2, rect.Min.Y+4, key, colorText)
			continue
		}
		smallFace.centered(r.d, (rect.Min.X+rect.Max.X)/2, rect.Min.Y+4, key, withAlpha(colorText, 0.5))
	}
}

// toggleRects lays the dataset pills out right-aligned in the header.
func (r *Renderer) toggleRects(f *chart.Frame) []image.Rectangle {
	rects := make([]image.Rectangle, len(f.Keys))
	x := r.fb.Width() - 12
	for i := len(f.Keys) - 1; i >= 0; i-- {
		w := smallFace.width(f.Keys[i]) + 16
		rects[i] = image.Rect(x-w, 10, x, 30)
		x -= w + 4
	}
	return rects
}

func (r *Renderer) drawArea(f *chart.Frame) {
	if f.Area == nil || f.Area.Empty() {
		return
	}
	r.edges = r.edges[:0]
	f.Area.Flatten(flattenSteps, func(a, b chart.Point) {
		r.edges = append(r.edges, edge{a: a, b: b})
	})
	h := f.Height
	fillPolygon(r.d, r.edges, r.origin.X, r.origin.Y, func(y float64) color.RGBA {
		return gradientAt(chart.FillGradient, y/h)
	})
}

func (r *Renderer) drawCurve(f *chart.Frame) {
	if f.Curve == nil || f.Curve.Empty() {
		return
	}
	w := f.Width
	half := strokeWidth / 2
	f.Curve.Flatten(flattenSteps, func(a, b chart.Point) {
		x0, y0, x1, y1, ok := clipLineToRect(a.X, a.Y, b.X, b.Y, 0, 0, f.Width, f.Height)
		if !ok {
			return
		}
		drawLine(roundInt(x0), roundInt(y0), roundInt(x1), roundInt(y1), func(x, y int) {
			c := gradientAt(chart.LineGradient, float64(x)/w)
			for dy := -half; dy <= half; dy++ {
				for dx := -half; dx <= half; dx++ {
					r.d.blend(r.origin.X+x+dx, r.origin.Y+y+dy, c, 1)
				}
			}
		})
	})
}

func (r *Renderer) drawCrosshair(f *chart.Frame) {
	s := f.Crosshair
	if s.Opacity <= 0 {
		return
	}
	drawLine(roundInt(s.A.X), roundInt(s.A.Y), roundInt(s.B.X), roundInt(s.B.Y), func(x, y int) {
		r.d.blend(r.origin.X+x, r.origin.Y+y, s.Color, s.Opacity)
	})
}

func (r *Renderer) drawIndicator(f *chart.Frame) {
	cx := f.Indicator.Center.X + float64(r.origin.X)
	cy := f.Indicator.Center.Y + float64(r.origin.Y)
	for _, ring := range f.Indicator.Rings {
		fillCircle(r.d, cx, cy, ring.Radius, ring.Color, ring.Opacity, ring.Radial)
	}
}

func (r *Renderer) drawTooltip(f *chart.Frame) {
	t := f.Tooltip
	if !t.Visible || t.Opacity <= 0 || t.Scale <= 0 {
		return
	}
	w := t.Width * t.Scale
	h := t.Height * t.Scale
	x := float64(r.origin.X) + t.Left + (t.Width-w)/2
	y := float64(r.origin.Y) + t.Top + (t.Height-h)/2

	fillRoundRect(r.d, x, y, w, h, tooltipRound*t.Scale, tooltipBase, tooltipBase, tooltipBase, t.Opacity)
	fillRoundRect(r.d, x, y, w, h, tooltipRound*t.Scale, tooltipTop, tooltipBottom, tooltipBorder, t.Opacity)

	// Text is drawn at full size once the box is big enough to hold it.
	if t.Scale < 0.6 {
		return
	}
	cx := roundInt(x + w/2)
	cy := roundInt(y + h/2)
	ink := withAlpha(colorText, t.Opacity)
	boldFace.centered(r.d, cx, cy-16, f.TooltipText, ink)
	smallFace.centered(r.d, cx, cy+4, t.Label, ink)
}

func (r *Renderer) drawAxisLabels(f *chart.Frame) {
	y := r.origin.Y + roundInt(f.Height) + 8
	ink := withAlpha(colorText, 0.3)
	maxX := roundInt(f.Width)
	for _, l := range f.AxisLabels {
		w := smallFace.width(l.Text)
		x := clampInt(roundInt(l.X)-w/2, 0, maxX-w)
		smallFace.write(r.d, r.origin.X+x, y, l.Text, ink)
	}
}

func (r *Renderer) drawStats(f *chart.Frame) {
	top := r.origin.Y + roundInt(f.Height) + 24
	h := r.fb.Height() - top - 4
	if h < 24 {
		return
	}
	cards := [...]struct {
		label string
		value float64
	}{
		{"Highest", f.Stats.Highest},
		{"Lowest", f.Stats.Lowest},
		{"Average", f.Stats.Average},
	}
	const gap = 4
	margin := 12
	w := (r.fb.Width() - 2*margin - gap*(len(cards)-1)) / len(cards)
	for i, c := range cards {
		x := margin + i*(w+gap)
		fillRoundRect(r.d, float64(x), float64(top), float64(w), float64(h), 10,
			colorSecondary, colorSecondary, colorSecondary, 1)
		smallFace.write(r.d, x+8, top+4, c.label, withAlpha(colorText, 0.5))
		boldFace.write(r.d, x+8, top+h-20, chart.FormatValue(c.value), colorText)
	}
}

func roundInt(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}
