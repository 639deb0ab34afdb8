// Package blend provides per-pixel blend functions for straight (non
// premultiplied) alpha RGBA8 colors.
//
// All arithmetic stays in 8-bit fixed point. MulUn8 and DivUn8 replace the
// divisions by 255 with shifts and rounding so that every blend mode gives
// bit-exact results across platforms.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// MulUn8 multiplies a by b and divides by 255, rounding to nearest.
//
// Formula: t = a*b + 0x80; ((t >> 8) + t) >> 8
//
// Operands may be negative (a channel difference times an opacity); the
// shifts are arithmetic so the result rounds consistently toward the
// nearest integer on both sides of zero.
func MulUn8(a, b int) int {
	t := a*b + 0x80
	return ((t >> 8) + t) >> 8
}

// DivUn8 computes a*255/b rounding to nearest. b must be positive.
func DivUn8(a, b int) int {
	return (a*0xff + b/2) / b
}

// clamp255 clamps x to the byte range [0, 255].
func clamp255(x int) int {
	switch {
	case x < 0:
		return 0
	case x > 255:
		return 255
	}
	return x
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
