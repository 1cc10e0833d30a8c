// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	switch {
	case a <= 0:
		c.A = 0
	case a >= 1:
		c.A = 255
	default:
		c.A = uint8(a*255 + 0.5)
	}
	return c
}

// Blend composites src over an opaque dst.
func Blend(dst, src color.NRGBA) color.NRGBA {
	if src.A == 255 {
		return src
	}
	a := float64(src.A) / 255
	mix := func(d, s uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return color.NRGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: 255,
	}
}
