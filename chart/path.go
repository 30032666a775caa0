package chart

import (
	"strconv"
	"strings"
)

// Point is a chart-local pixel position.
type Point struct {
	X, Y float64
}

// Verb identifies a path command.
type Verb uint8

const (
	MoveTo Verb = iota + 1
	LineTo
	CubicTo
	Close
)

// Cmd is one path command. CubicTo uses all three points, MoveTo and LineTo
// only P[0], Close none.
type Cmd struct {
	Verb Verb
	P    [3]Point
}

// Path is a reusable command buffer. Reset keeps the backing array so a path
// rebuilt every frame stops allocating once it reached its final size.
type Path struct {
	cmds []Cmd
}

func (p *Path) Reset() { p.cmds = p.cmds[:0] }

func (p *Path) MoveTo(x, y float64) {
	p.cmds = append(p.cmds, Cmd{Verb: MoveTo, P: [3]Point{{x, y}}})
}

func (p *Path) LineTo(x, y float64) {
	p.cmds = append(p.cmds, Cmd{Verb: LineTo, P: [3]Point{{x, y}}})
}

func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.cmds = append(p.cmds, Cmd{Verb: CubicTo, P: [3]Point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

func (p *Path) Close() {
	p.cmds = append(p.cmds, Cmd{Verb: Close})
}

func (p *Path) Len() int { return len(p.cmds) }

func (p *Path) Empty() bool { return len(p.cmds) == 0 }

// Commands exposes the command buffer. It is only valid until the next Reset.
func (p *Path) Commands() []Cmd { return p.cmds }

// SVG renders the path as SVG path data.
func (p *Path) SVG() string {
	var b strings.Builder
	for i, c := range p.cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Verb {
		case MoveTo:
			b.WriteString("M")
			writePoint(&b, c.P[0])
		case LineTo:
			b.WriteString("L")
			writePoint(&b, c.P[0])
		case CubicTo:
			b.WriteString("C")
			writePoint(&b, c.P[0])
			b.WriteByte(' ')
			writePoint(&b, c.P[1])
			b.WriteByte(' ')
			writePoint(&b, c.P[2])
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, pt Point) {
	b.WriteString(strconv.FormatFloat(pt.X, 'f', 2, 64))
	b.WriteByte(',')
	b.WriteString(strconv.FormatFloat(pt.Y, 'f', 2, 64))
}

// Flatten walks the path as straight segments, subdividing every cubic into
// steps pieces. fn receives each segment; closing a subpath emits the segment
// back to its start.
func (p *Path) Flatten(steps int, fn func(a, b Point)) {
	if steps < 1 {
		steps = 1
	}
	var start, cur Point
	for _, c := range p.cmds {
		switch c.Verb {
		case MoveTo:
			start = c.P[0]
			cur = start
		case LineTo:
			fn(cur, c.P[0])
			cur = c.P[0]
		case CubicTo:
			p0 := cur
			for i := 1; i <= steps; i++ {
				next := cubicAt(p0, c.P[0], c.P[1], c.P[2], float64(i)/float64(steps))
				fn(cur, next)
				cur = next
			}
		case Close:
			if cur != start {
				fn(cur, start)
			}
			cur = start
		}
	}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
