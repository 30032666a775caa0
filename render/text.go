package render

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
	"tinygo.org/x/tinyfont/proggy"
)

// face is a tinyfont font plus the metrics needed to place a line of text.
type face struct {
	font   tinyfont.Fonter
	ascent int16
}

var (
	smallFace = face{font: &proggy.TinySZ8pt7b, ascent: 9}
	boldFace  = face{font: &freesans.Bold9pt7b, ascent: 13}
)

func (f face) width(s string) int {
	_, outbox := tinyfont.LineWidth(f.font, s)
	return int(outbox)
}

// write draws s with its top-left corner at x, y. c.A is the text alpha.
func (f face) write(d *fbDisplay, x, y int, s string, c color.RGBA) {
	if c.A == 0 || s == "" {
		return
	}
	tinyfont.WriteLine(d, f.font, int16(x), int16(y)+f.ascent, s, c)
}

// centered draws s horizontally centred on cx.
func (f face) centered(d *fbDisplay, cx, y int, s string, c color.RGBA) {
	f.write(d, cx-f.width(s)/2, y, s, c)
}

func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		c.A = 0
		return c
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}
