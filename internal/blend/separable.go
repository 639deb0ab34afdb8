package blend

import (
	"image/color"
	"math"
)

// channelFunc blends one backdrop channel b with one source channel s.
// Both are straight (unmultiplied) values in [0, 255].
type channelFunc func(b, s int) int

// separable lifts a per-channel blend into a Func: the blended RGB replaces
// the source RGB, keeping the source alpha, and the result is composited
// with Normal.
func separable(f channelFunc) Func {
	return func(backdrop, src color.NRGBA, opacity int) color.NRGBA {
		blended := color.NRGBA{
			R: uint8(f(int(backdrop.R), int(src.R))),
			G: uint8(f(int(backdrop.G), int(src.G))),
			B: uint8(f(int(backdrop.B), int(src.B))),
			A: src.A,
		}
		return Normal(backdrop, blended, opacity)
	}
}

func multiply(b, s int) int {
	return MulUn8(b, s)
}

func screen(b, s int) int {
	return b + s - MulUn8(b, s)
}

// overlay is hard light with the layers swapped.
func overlay(b, s int) int {
	return hardLight(s, b)
}

func darken(b, s int) int {
	return min(b, s)
}

func lighten(b, s int) int {
	return max(b, s)
}

func hardLight(b, s int) int {
	if s < 128 {
		return multiply(b, s<<1)
	}
	return screen(b, (s<<1)-255)
}

// colorDodge computes b / (1 - s).
func colorDodge(b, s int) int {
	if b == 0 {
		return 0
	}
	s = 255 - s
	if b >= s {
		return 255
	}
	return DivUn8(b, s)
}

// colorBurn computes 1 - (1 - b) / s.
func colorBurn(b, s int) int {
	if b == 255 {
		return 255
	}
	b = 255 - b
	if b >= s {
		return 0
	}
	return 255 - DivUn8(b, s)
}

// softLight follows the W3C soft-light formula in floating point.
func softLight(b, s int) int {
	fb := float64(b) / 255
	fs := float64(s) / 255

	var d float64
	if fb <= 0.25 {
		d = ((16*fb-12)*fb + 4) * fb
	} else {
		d = math.Sqrt(fb)
	}

	var r float64
	if fs <= 0.5 {
		r = fb - (1-2*fs)*fb*(1-fb)
	} else {
		r = fb + (2*fs-1)*(d-fb)
	}
	return int(r*255 + 0.5)
}

func difference(b, s int) int {
	return absInt(b - s)
}

func exclusion(b, s int) int {
	return b + s - 2*MulUn8(b, s)
}

func addition(b, s int) int {
	return min(b+s, 255)
}

func subtract(b, s int) int {
	return max(b-s, 0)
}

// divide computes b / s.
func divide(b, s int) int {
	if b == 0 {
		return 0
	}
	if b >= s {
		return 255
	}
	return DivUn8(b, s)
}
