// pkg/render/color.go
package render

import "image/color"

// DarkenColor затемняет цвет: factor=0 оставляет его как есть, factor=1 даёт чёрный.
// Альфа не меняется.
func DarkenColor(c color.RGBA, factor float64) color.RGBA {
	dark := LerpColor(c, color.RGBA{A: c.A}, factor)
	dark.A = c.A
	return dark
}

// LerpColor смешивает два цвета; t=0 даёт from, t=1 даёт to.
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
