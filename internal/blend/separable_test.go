package blend

import (
	"image/color"
	"testing"

	"github.com/gogpu/sprite"
)

func TestChannelBlenders(t *testing.T) {
	tests := []struct {
		name string
		f    channelFunc
		b, s int
		want int
	}{
		{"multiply", multiply, 200, 100, 78},
		{"multiply by white", multiply, 77, 255, 77},
		{"screen", screen, 200, 100, 222},
		{"screen by black", screen, 77, 0, 77},
		{"overlay", overlay, 200, 100, 188},
		{"hard light", hardLight, 100, 200, 188},
		{"hard light dark", hardLight, 100, 64, 50},
		{"darken", darken, 30, 90, 30},
		{"lighten", lighten, 30, 90, 90},
		{"color dodge black", colorDodge, 0, 255, 0},
		{"color dodge saturates", colorDodge, 100, 200, 255},
		{"color dodge", colorDodge, 30, 200, 139},
		{"color burn white", colorBurn, 255, 0, 255},
		{"color burn saturates", colorBurn, 50, 100, 0},
		{"color burn", colorBurn, 100, 200, 57},
		{"soft light black", softLight, 0, 255, 0},
		{"soft light white", softLight, 255, 0, 255},
		{"soft light neutral", softLight, 128, 128, 128},
		{"difference", difference, 50, 200, 150},
		{"exclusion white", exclusion, 255, 255, 0},
		{"exclusion black", exclusion, 0, 99, 99},
		{"addition clamps", addition, 200, 100, 255},
		{"addition", addition, 20, 30, 50},
		{"subtract clamps", subtract, 100, 200, 0},
		{"subtract", subtract, 200, 100, 100},
		{"divide black", divide, 0, 10, 0},
		{"divide saturates", divide, 200, 100, 255},
		{"divide", divide, 100, 200, 128},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f(tt.b, tt.s); got != tt.want {
				t.Errorf("%s(%d, %d) = %d, want %d", tt.name, tt.b, tt.s, got, tt.want)
			}
		})
	}
}

// TestChannelBlendersStayInRange runs every separable blender over the full
// byte range.
func TestChannelBlendersStayInRange(t *testing.T) {
	funcs := map[string]channelFunc{
		"multiply": multiply, "screen": screen, "overlay": overlay,
		"darken": darken, "lighten": lighten, "color_dodge": colorDodge,
		"color_burn": colorBurn, "hard_light": hardLight, "soft_light": softLight,
		"difference": difference, "exclusion": exclusion, "addition": addition,
		"subtract": subtract, "divide": divide,
	}
	for name, f := range funcs {
		for b := 0; b <= 255; b++ {
			for s := 0; s <= 255; s++ {
				if got := f(b, s); got < 0 || got > 255 {
					t.Fatalf("%s(%d, %d) = %d, out of range", name, b, s, got)
				}
			}
		}
	}
}

func TestSeparableKeepsSourceAlpha(t *testing.T) {
	backdrop := color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	src := color.NRGBA{R: 100, G: 100, B: 100, A: 0}

	got := Get(sprite.BlendMultiply, false)(backdrop, src, 255)
	if got != backdrop {
		t.Errorf("multiply with transparent source = %v, want backdrop %v", got, backdrop)
	}

	src.A = 255
	got = Get(sprite.BlendMultiply, false)(backdrop, src, 255)
	want := color.NRGBA{R: 78, G: 78, B: 78, A: 255}
	if got != want {
		t.Errorf("multiply = %v, want %v", got, want)
	}
}
