package hal

import "image"

// RGB565 packs an 8-bit colour into a 16bpp pixel.
func RGB565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

// RGB888 expands a 16bpp pixel back to 8 bits per channel.
func RGB888(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// ExpandRGB565 converts a little-endian RGB565 buffer into dst's pixels.
// dst must be at least as large as the framebuffer.
func ExpandRGB565(src []byte, width, height, stride int, dst *image.RGBA) {
	if dst == nil {
		return
	}
	for y := 0; y < height; y++ {
		row := y * stride
		out := dst.PixOffset(dst.Rect.Min.X, dst.Rect.Min.Y+y)
		for x := 0; x < width; x++ {
			i := row + x*2
			j := out + x*4
			if i+1 >= len(src) || j+3 >= len(dst.Pix) {
				return
			}
			r, g, b := RGB888(uint16(src[i]) | uint16(src[i+1])<<8)
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
}

// Snapshot copies a framebuffer into a new RGBA image.
func Snapshot(fb Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if fb.Format() != PixelFormatRGB565 {
		return img
	}
	ExpandRGB565(fb.Buffer(), fb.Width(), fb.Height(), fb.StrideBytes(), img)
	return img
}
