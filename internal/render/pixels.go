package render

import "image/color"

// PackedToRGBA converts a framebuffer of 0xRRGGBB pixels into opaque RGBA
// bytes. dst is reused when it is large enough.
func PackedToRGBA(fb []uint32, dst []byte) []byte {
	n := len(fb) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	for i, px := range fb {
		o := i * 4
		dst[o] = byte(px >> 16)
		dst[o+1] = byte(px >> 8)
		dst[o+2] = byte(px)
		dst[o+3] = 0xFF
	}
	return dst
}

// Color converts a packed 0xRRGGBB value into an opaque color.
func Color(packed uint32) color.RGBA {
	return color.RGBA{R: byte(packed >> 16), G: byte(packed >> 8), B: byte(packed), A: 0xFF}
}
