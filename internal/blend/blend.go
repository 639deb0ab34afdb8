package blend

import (
	"image/color"

	"github.com/gogpu/sprite"
)

// Func composites src over backdrop with an extra opacity (0-255) applied
// to the source alpha, and returns the new backdrop color.
type Func func(backdrop, src color.NRGBA, opacity int) color.NRGBA

// legacy holds the plain blenders, indexed by sprite.BlendMode.
var legacy = [...]Func{
	sprite.BlendNormal:     Normal,
	sprite.BlendMultiply:   separable(multiply),
	sprite.BlendScreen:     separable(screen),
	sprite.BlendOverlay:    separable(overlay),
	sprite.BlendDarken:     separable(darken),
	sprite.BlendLighten:    separable(lighten),
	sprite.BlendColorDodge: separable(colorDodge),
	sprite.BlendColorBurn:  separable(colorBurn),
	sprite.BlendHardLight:  separable(hardLight),
	sprite.BlendSoftLight:  separable(softLight),
	sprite.BlendDifference: separable(difference),
	sprite.BlendExclusion:  separable(exclusion),
	sprite.BlendHue:        Hue,
	sprite.BlendSaturation: Saturation,
	sprite.BlendColor:      Color,
	sprite.BlendLuminosity: Luminosity,
	sprite.BlendAddition:   separable(addition),
	sprite.BlendSubtract:   separable(subtract),
	sprite.BlendDivide:     separable(divide),
}

// backdropAware holds the new-blend variants of legacy.
var backdropAware [len(legacy)]Func

func init() {
	backdropAware[sprite.BlendNormal] = Normal
	for mode := sprite.BlendNormal + 1; int(mode) < len(legacy); mode++ {
		backdropAware[mode] = withBackdropAlpha(legacy[mode])
	}
}

// Get returns the blend function for mode. With newBlend the result of a
// non-normal mode fades into plain normal compositing as the backdrop gets
// transparent, so blending onto an empty canvas matches normal. Unknown
// modes fall back to Normal.
func Get(mode sprite.BlendMode, newBlend bool) Func {
	if int(mode) >= len(legacy) {
		return Normal
	}
	if newBlend {
		return backdropAware[mode]
	}
	return legacy[mode]
}

// Normal is source-over compositing of straight alpha colors.
func Normal(backdrop, src color.NRGBA, opacity int) color.NRGBA {
	if backdrop.A == 0 {
		src.A = uint8(MulUn8(int(src.A), opacity))
		return src
	}
	if src.A == 0 {
		return backdrop
	}

	ba := int(backdrop.A)
	sa := MulUn8(int(src.A), opacity)
	ra := sa + ba - MulUn8(ba, sa)
	if ra == 0 {
		return color.NRGBA{}
	}
	return color.NRGBA{
		R: uint8(int(backdrop.R) + (int(src.R)-int(backdrop.R))*sa/ra),
		G: uint8(int(backdrop.G) + (int(src.G)-int(backdrop.G))*sa/ra),
		B: uint8(int(backdrop.B) + (int(src.B)-int(backdrop.B))*sa/ra),
		A: uint8(ra),
	}
}

// Merge interpolates linearly from backdrop to src by opacity, alpha
// included. Transparent ends take the color of the other end.
func Merge(backdrop, src color.NRGBA, opacity int) color.NRGBA {
	var r, g, b int
	switch {
	case backdrop.A == 0:
		r, g, b = int(src.R), int(src.G), int(src.B)
	case src.A == 0:
		r, g, b = int(backdrop.R), int(backdrop.G), int(backdrop.B)
	default:
		r = int(backdrop.R) + MulUn8(int(src.R)-int(backdrop.R), opacity)
		g = int(backdrop.G) + MulUn8(int(src.G)-int(backdrop.G), opacity)
		b = int(backdrop.B) + MulUn8(int(src.B)-int(backdrop.B), opacity)
	}
	a := int(backdrop.A) + MulUn8(int(src.A)-int(backdrop.A), opacity)
	if a == 0 {
		r, g, b = 0, 0, 0
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// withBackdropAlpha wraps a blender so that its effect is weighted by the
// backdrop alpha: over a transparent backdrop it degrades to Normal, over an
// opaque one it equals f.
func withBackdropAlpha(f Func) Func {
	return func(backdrop, src color.NRGBA, opacity int) color.NRGBA {
		if backdrop.A == 0 {
			return Normal(backdrop, src, opacity)
		}
		ba := int(backdrop.A)
		normal := Normal(backdrop, src, opacity)
		blended := f(backdrop, src, opacity)
		m := Merge(normal, blended, ba)
		srcTotal := MulUn8(int(src.A), opacity)
		composite := MulUn8(ba, srcTotal)
		return Merge(m, blended, composite)
	}
}
