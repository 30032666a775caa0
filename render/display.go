package render

import (
	"image/color"

	"glidechart/hal"

	"tinygo.org/x/drivers"
)

// fbDisplay adapts a RGB565 framebuffer to drivers.Displayer. Colours with
// A < 0xFF are blended over the existing pixel.
type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.blend(int(x), int(y), c, 1)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	for py := y0; py < y1; py++ {
		d.span(py, x0, x1, c, 1)
	}
	return nil
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// span blends c over [x0, x1) on row y.
func (d *fbDisplay) span(y, x0, x1 int, c color.RGBA, opacity float64) {
	for x := x0; x < x1; x++ {
		d.blend(x, y, c, opacity)
	}
}

// blend mixes c over the pixel at x, y with alpha c.A/255 * opacity.
func (d *fbDisplay) blend(x, y int, c color.RGBA, opacity float64) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if x < 0 || x >= d.fb.Width() || y < 0 || y >= d.fb.Height() {
		return
	}
	off := y*d.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}

	a := float64(c.A) / 255 * opacity
	if a <= 0 {
		return
	}
	r, g, b := c.R, c.G, c.B
	if a < 1 {
		br, bg, bb := hal.RGB888(uint16(buf[off]) | uint16(buf[off+1])<<8)
		r = mix(br, r, a)
		g = mix(bg, g, a)
		b = mix(bb, b, a)
	}
	pixel := hal.RGB565(r, g, b)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// at returns the colour stored at x, y.
func (d *fbDisplay) at(x, y int) color.RGBA {
	if d.fb == nil || x < 0 || x >= d.fb.Width() || y < 0 || y >= d.fb.Height() {
		return color.RGBA{}
	}
	buf := d.fb.Buffer()
	off := y*d.fb.StrideBytes() + x*2
	if off+1 >= len(buf) {
		return color.RGBA{}
	}
	r, g, b := hal.RGB888(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func mix(dst, src uint8, a float64) uint8 {
	v := float64(dst) + (float64(src)-float64(dst))*a
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
