package chart

// DefaultTension places each control point 30% of the way along its segment.
const DefaultTension = 0.3

// BuildCurve writes a smooth curve through pts into p.
//
// Every segment is a cubic whose control points sit at tension*dx from each
// end at that end's height, so the tangent is horizontal at every sample.
// Fewer than two points leave p empty.
func BuildCurve(p *Path, pts []Point, tension float64) {
	p.Reset()
	if len(pts) < 2 {
		return
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for i := 0; i < len(pts)-1; i++ {
		p0 := pts[i]
		p1 := pts[i+1]
		dx := (p1.X - p0.X) * tension
		p.CubicTo(p0.X+dx, p0.Y, p1.X-dx, p1.Y, p1.X, p1.Y)
	}
}

// BuildArea writes the curve closed down to the bottom edge of a width x height
// chart, for the gradient fill under the line.
func BuildArea(p *Path, pts []Point, tension, width, height float64) {
	BuildCurve(p, pts, tension)
	if p.Empty() {
		return
	}
	p.LineTo(width, height)
	p.LineTo(0, height)
	p.Close()
}
