package render

import (
	"image/color"
	"math"
	"sort"

	"glidechart/chart"
)

// gradientAt interpolates stops at t in [0, 1], alpha included.
func gradientAt(stops []chart.Stop, t float64) color.RGBA {
	if len(stops) == 0 {
		return color.RGBA{}
	}
	if t <= stops[0].Offset || len(stops) == 1 {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1], stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		u := (t - a.Offset) / span
		return color.RGBA{
			R: lerp8(a.Color.R, b.Color.R, u),
			G: lerp8(a.Color.G, b.Color.G, u),
			B: lerp8(a.Color.B, b.Color.B, u),
			A: lerp8(a.Color.A, b.Color.A, u),
		}
	}
	return stops[len(stops)-1].Color
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// drawLine plots a Bresenham line and calls plot for every pixel.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipLineToRect clips a segment with Liang-Barsky.
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}
	return x0 + u1*dx, y0 + u1*dy, x0 + u2*dx, y0 + u2*dy, true
}

type edge struct {
	a, b chart.Point
}

// fillPolygon fills the even-odd interior of edges row by row. shade returns
// the colour for a row; x and y are in the same space as the edges.
func fillPolygon(d *fbDisplay, edges []edge, ox, oy int, shade func(y float64) color.RGBA) {
	if len(edges) == 0 {
		return
	}
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		ymin = math.Min(ymin, math.Min(e.a.Y, e.b.Y))
		ymax = math.Max(ymax, math.Max(e.a.Y, e.b.Y))
	}

	var xs []float64
	for row := int(math.Floor(ymin)); row <= int(math.Ceil(ymax)); row++ {
		y := float64(row) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			a, b := e.a, e.b
			if a.Y == b.Y {
				continue
			}
			if (y < a.Y) == (y < b.Y) {
				continue
			}
			t := (y - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		c := shade(y)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Ceil(xs[i+1] - 0.5))
			d.span(oy+row, ox+x0, ox+x1, c, 1)
		}
	}
}

// fillCircle blends a disc. When radial is set alpha falls off linearly to
// zero at the rim.
func fillCircle(d *fbDisplay, cx, cy, r float64, c color.RGBA, opacity float64, radial bool) {
	if r <= 0 || opacity <= 0 {
		return
	}
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5 - cx
			dist := math.Hypot(px, py)
			if dist > r {
				continue
			}
			a := opacity
			if radial {
				a *= 1 - dist/r
			}
			d.blend(x, y, c, a)
		}
	}
}

// fillRoundRect draws a rounded box whose fill runs from top to bottom
// colours, with a one pixel border.
func fillRoundRect(d *fbDisplay, x, y, w, h, radius float64, top, bottom, border color.RGBA, opacity float64) {
	if w <= 0 || h <= 0 || opacity <= 0 {
		return
	}
	radius = math.Min(radius, math.Min(w, h)/2)
	cx := x + w/2
	cy := y + h/2
	hx := w/2 - radius
	hy := h/2 - radius

	for py := int(math.Floor(y)); py < int(math.Ceil(y+h)); py++ {
		fy := float64(py) + 0.5
		t := (fy - y) / h
		fill := color.RGBA{
			R: lerp8(top.R, bottom.R, t),
			G: lerp8(top.G, bottom.G, t),
			B: lerp8(top.B, bottom.B, t),
			A: lerp8(top.A, bottom.A, t),
		}
		for px := int(math.Floor(x)); px < int(math.Ceil(x+w)); px++ {
			fx := float64(px) + 0.5
			qx := math.Abs(fx-cx) - hx
			qy := math.Abs(fy-cy) - hy
			dist := math.Hypot(math.Max(qx, 0), math.Max(qy, 0)) + math.Min(math.Max(qx, qy), 0) - radius
			switch {
			case dist > 0:
			case dist > -1:
				d.blend(px, py, border, opacity)
			default:
				d.blend(px, py, fill, opacity)
			}
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
