package render

import (
	"bytes"
	"fmt"
	"html"
	"image/color"
	"io"
	"strconv"
	"strings"

	"glidechart/chart"
)

// LabelBand is the height below the canvas reserved for the period labels in
// SVG output.
const LabelBand = 24

// WriteSVG writes f as a standalone SVG document: the canvas, the indicator,
// the tooltip, and the period labels underneath.
func WriteSVG(w io.Writer, f *chart.Frame) error {
	if f == nil {
		return nil
	}
	var b bytes.Buffer
	writeSVG(&b, f)
	_, err := w.Write(b.Bytes())
	return err
}

// SVG returns f as an SVG element.
func SVG(f *chart.Frame) string {
	if f == nil {
		return ""
	}
	var b bytes.Buffer
	writeSVG(&b, f)
	return b.String()
}

func writeSVG(b *bytes.Buffer, f *chart.Frame) {
	w, h := f.Width, f.Height
	total := h + LabelBand
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(w), num(total), num(w), num(total))

	b.WriteString(`<defs>`)
	fmt.Fprintf(b, `<linearGradient id="gc-fill" gradientUnits="userSpaceOnUse" x1="0" y1="0" x2="0" y2="%s">`, num(h))
	writeStops(b, chart.FillGradient)
	b.WriteString(`</linearGradient>`)
	fmt.Fprintf(b, `<linearGradient id="gc-line" gradientUnits="userSpaceOnUse" x1="0" y1="0" x2="%s" y2="0">`, num(w))
	writeStops(b, chart.LineGradient)
	b.WriteString(`</linearGradient>`)
	glow := f.Indicator.Rings[0].Color
	b.WriteString(`<radialGradient id="gc-glow">`)
	writeStops(b, []chart.Stop{{Offset: 0, Color: glow}, {Offset: 1, Color: color.RGBA{R: glow.R, G: glow.G, B: glow.B}}})
	b.WriteString(`</radialGradient>`)
	b.WriteString(`</defs>`)

	fmt.Fprintf(b, `<rect width="%s" height="%s" fill="%s"/>`, num(w), num(total), rgb(colorBackground))

	if f.Area != nil && !f.Area.Empty() {
		fmt.Fprintf(b, `<path d="%s" fill="url(#gc-fill)"/>`, f.Area.SVG())
	}
	if f.Curve != nil && !f.Curve.Empty() {
		fmt.Fprintf(b, `<path d="%s" fill="none" stroke="url(#gc-line)" stroke-width="%d" stroke-linecap="round" stroke-linejoin="round"/>`,
			f.Curve.SVG(), strokeWidth)
	}

	if s := f.Crosshair; s.Opacity > 0 {
		fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-opacity="%s" stroke-width="1" opacity="%s"/>`,
			num(s.A.X), num(s.A.Y), num(s.B.X), num(s.B.Y), rgb(s.Color), alpha(s.Color), num(s.Opacity))
	}

	c := f.Indicator.Center
	for _, ring := range f.Indicator.Rings {
		if ring.Radius <= 0 || ring.Opacity <= 0 {
			continue
		}
		if ring.Radial {
			fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="url(#gc-glow)" opacity="%s"/>`,
				num(c.X), num(c.Y), num(ring.Radius), num(ring.Opacity))
			continue
		}
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s" opacity="%s"/>`,
			num(c.X), num(c.Y), num(ring.Radius), rgb(ring.Color), alpha(ring.Color), num(ring.Opacity))
	}

	writeTooltip(b, f)

	for _, l := range f.AxisLabels {
		fmt.Fprintf(b, `<text x="%s" y="%s" fill="%s" fill-opacity="0.3" font-family="sans-serif" font-size="11" text-anchor="middle">%s</text>`,
			num(l.X), num(h+16), rgb(colorText), html.EscapeString(l.Text))
	}
	b.WriteString(`</svg>`)
}

func writeTooltip(b *bytes.Buffer, f *chart.Frame) {
	t := f.Tooltip
	if !t.Visible || t.Opacity <= 0 || t.Scale <= 0 {
		return
	}
	cx := t.Left + t.Width/2
	cy := t.Top + t.Height/2
	fmt.Fprintf(b, `<g opacity="%s" transform="translate(%s %s) scale(%s) translate(%s %s)">`,
		num(t.Opacity), num(cx), num(cy), num(t.Scale), num(-cx), num(-cy))
	fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" rx="%d" fill="%s" fill-opacity="%s" stroke="%s" stroke-opacity="%s"/>`,
		num(t.Left), num(t.Top), num(t.Width), num(t.Height), tooltipRound,
		rgb(tooltipBase), alpha(tooltipBase), rgb(tooltipBorder), alpha(tooltipBorder))
	fmt.Fprintf(b, `<text x="%s" y="%s" fill="%s" font-family="sans-serif" font-size="20" font-weight="bold" text-anchor="middle">%s</text>`,
		num(cx), num(cy+2), rgb(colorText), html.EscapeString(f.TooltipText))
	fmt.Fprintf(b, `<text x="%s" y="%s" fill="%s" font-family="sans-serif" font-size="14" text-anchor="middle">%s</text>`,
		num(cx), num(cy+22), rgb(colorText), html.EscapeString(t.Label))
	b.WriteString(`</g>`)
}

func writeStops(b *bytes.Buffer, stops []chart.Stop) {
	for _, s := range stops {
		fmt.Fprintf(b, `<stop offset="%s" stop-color="%s" stop-opacity="%s"/>`, num(s.Offset), rgb(s.Color), alpha(s.Color))
	}
}

// num formats v with at most two decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func alpha(c color.RGBA) string {
	return strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
}
