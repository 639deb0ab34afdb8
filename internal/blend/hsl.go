// This file implements the non-separable blend modes (Hue, Saturation, Color,
// Luminosity) per the W3C Compositing and Blending Level 1 specification.
//
// These modes operate on the entire RGB triplet rather than on individual
// channels.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - Section 8: Non-separable blend modes

package blend

import "image/color"

// Lum returns the luminance of a color using BT.601 coefficients.
// Formula: Lum(r, g, b) = 0.30*r + 0.59*g + 0.11*b
//
// Parameters are normalized values in [0, 1].
func Lum(r, g, b float64) float64 {
	return 0.30*r + 0.59*g + 0.11*b
}

// Sat returns the saturation (max - min) of a color.
func Sat(r, g, b float64) float64 {
	return max(r, g, b) - min(r, g, b)
}

// ClipColor clips color components to [0,1] while preserving luminance.
//
// If any component is outside [0,1], the color is scaled towards the luminance
// to bring it back into range while maintaining the relative relationships.
func ClipColor(r, g, b float64) (float64, float64, float64) {
	l := Lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)

	if n < 0 && l > n {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}

	if x > 1 && x > l {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}

	return r, g, b
}

// SetLum shifts a color to luminance l, then clips it back into range.
func SetLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - Lum(r, g, b)
	return ClipColor(r+d, g+d, b+d)
}

// SetSat rescales a color to saturation s keeping the order of its
// components. A gray input has no hue to keep and becomes black.
func SetSat(r, g, b, s float64) (float64, float64, float64) {
	minPtr, midPtr, maxPtr := sortRGB(&r, &g, &b)

	if *maxPtr > *minPtr {
		*midPtr = ((*midPtr - *minPtr) * s) / (*maxPtr - *minPtr)
		*maxPtr = s
	} else {
		*midPtr = 0
		*maxPtr = 0
	}
	*minPtr = 0

	return r, g, b
}

// sortRGB returns pointers to r, g, b sorted by value (minPtr, midPtr, maxPtr).
func sortRGB(r, g, b *float64) (minPtr, midPtr, maxPtr *float64) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

// Hue keeps the hue of the source with the saturation and luminosity of
// the backdrop.
func Hue(backdrop, src color.NRGBA, opacity int) color.NRGBA {
	br, bg, bb := unit(backdrop)
	s := Sat(br, bg, bb)
	l := Lum(br, bg, bb)

	r, g, b := unit(src)
	r, g, b = SetSat(r, g, b, s)
	r, g, b = SetLum(r, g, b, l)
	return Normal(backdrop, fromUnit(r, g, b, src.A), opacity)
}

// Saturation keeps the saturation of the source with the hue and
// luminosity of the backdrop.
func Saturation(backdrop, src color.NRGBA, opacity int) color.NRGBA {
	sr, sg, sb := unit(src)
	s := Sat(sr, sg, sb)

	r, g, b := unit(backdrop)
	l := Lum(r, g, b)
	r, g, b = SetSat(r, g, b, s)
	r, g, b = SetLum(r, g, b, l)
	return Normal(backdrop, fromUnit(r, g, b, src.A), opacity)
}

// Color keeps the hue and saturation of the source with the luminosity of
// the backdrop.
func Color(backdrop, src color.NRGBA, opacity int) color.NRGBA {
	br, bg, bb := unit(backdrop)
	l := Lum(br, bg, bb)

	r, g, b := unit(src)
	r, g, b = SetLum(r, g, b, l)
	return Normal(backdrop, fromUnit(r, g, b, src.A), opacity)
}

// Luminosity keeps the luminosity of the source with the hue and
// saturation of the backdrop.
func Luminosity(backdrop, src color.NRGBA, opacity int) color.NRGBA {
	sr, sg, sb := unit(src)
	l := Lum(sr, sg, sb)

	r, g, b := unit(backdrop)
	r, g, b = SetLum(r, g, b, l)
	return Normal(backdrop, fromUnit(r, g, b, src.A), opacity)
}

func unit(c color.NRGBA) (float64, float64, float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// fromUnit truncates normalized channels back to bytes.
func fromUnit(r, g, b float64, a uint8) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(int(255 * r))),
		G: uint8(clamp255(int(255 * g))),
		B: uint8(clamp255(int(255 * b))),
		A: a,
	}
}
