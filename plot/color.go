package plot

import (
	"image/color"
	"math"
	"math/cmplx"
)

// GridColor is the color of grid lines.
var GridColor = color.RGBA{R: 30, G: 30, B: 30, A: 255}

// Color maps a complex value to a color. The argument of z selects the hue,
// and the magnitude scales brightness from black at zero toward full
// brightness as |z| grows. Values with NaN magnitude or phase are black.
func Color(z complex128) color.RGBA {
	mag, arg := cmplx.Abs(z), cmplx.Phase(z)
	if math.IsNaN(mag) || math.IsNaN(arg) {
		return color.RGBA{A: 255}
	}
	m := 1 - 5/(mag+5)
	var c [3]uint8
	for k := range c {
		c[k] = uint8(m * (127.5*math.Sin(arg+float64(k)*math.Pi/2) + 127.5))
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
