package shimmer

import "math"

// gamma is the exponent used to approximate the sRGB transfer curve.
const gamma = 2.2

// BlendARGB interpolates between two colors in linear light.
//
// The red, green, and blue channels are converted from sRGB to linear space,
// interpolated there, and converted back; alpha is interpolated directly.
// The fraction is clamped to [0, 1].
func BlendARGB(fraction float64, start, end ARGB) ARGB {
	fraction = clamp01(fraction)

	startA, startR, startG, startB := start.channels()
	endA, endR, endG, endB := end.channels()

	startR = math.Pow(startR, gamma)
	startG = math.Pow(startG, gamma)
	startB = math.Pow(startB, gamma)

	endR = math.Pow(endR, gamma)
	endG = math.Pow(endG, gamma)
	endB = math.Pow(endB, gamma)

	a := startA + fraction*(endA-startA)
	r := startR + fraction*(endR-startR)
	g := startG + fraction*(endG-startG)
	b := startB + fraction*(endB-startB)

	a = a * 255
	r = math.Pow(r, 1/gamma) * 255
	g = math.Pow(g, 1/gamma) * 255
	b = math.Pow(b, 1/gamma) * 255

	return ARGB(math.Round(a))<<24 |
		ARGB(math.Round(r))<<16 |
		ARGB(math.Round(g))<<8 |
		ARGB(math.Round(b))
}
