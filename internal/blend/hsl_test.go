package blend

import (
	"image/color"
	"math"
	"testing"
)

func floatEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func byteNear(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -1 && d <= 1
}

// TestLum tests the luminance calculation.
func TestLum(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    float64
	}{
		{name: "black", want: 0},
		{name: "white", r: 1, g: 1, b: 1, want: 1},
		{name: "red", r: 1, want: 0.30},
		{name: "green", g: 1, want: 0.59},
		{name: "blue", b: 1, want: 0.11},
		{name: "yellow", r: 1, g: 1, want: 0.89},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lum(tt.r, tt.g, tt.b); !floatEqual(got, tt.want, 1e-9) {
				t.Errorf("Lum(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

// TestSat tests the saturation calculation.
func TestSat(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
		want    float64
	}{
		{name: "gray", r: 0.5, g: 0.5, b: 0.5, want: 0},
		{name: "red", r: 1, want: 1},
		{name: "half saturated red", r: 0.75, g: 0.25, b: 0.25, want: 0.5},
		{name: "mixed color", r: 0.8, g: 0.3, b: 0.5, want: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sat(tt.r, tt.g, tt.b); !floatEqual(got, tt.want, 1e-9) {
				t.Errorf("Sat(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

// TestClipColor tests color clipping while preserving luminance.
func TestClipColor(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float64
	}{
		{"already in range", 0.5, 0.3, 0.2},
		{"negative component", -0.2, 0.5, 0.7},
		{"component exceeds 1", 1.2, 0.5, 0.3},
		{"black", 0, 0, 0},
		{"white", 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := ClipColor(tt.r, tt.g, tt.b)
			for _, v := range []float64{r, g, b} {
				if v < -1e-9 || v > 1+1e-9 {
					t.Errorf("ClipColor(%v, %v, %v) = (%v, %v, %v), out of range", tt.r, tt.g, tt.b, r, g, b)
				}
			}
			if want := Lum(tt.r, tt.g, tt.b); !floatEqual(Lum(r, g, b), want, 1e-9) {
				t.Errorf("ClipColor changed luminance: %v, want %v", Lum(r, g, b), want)
			}
		})
	}
}

// TestSetSat tests saturation rescaling.
func TestSetSat(t *testing.T) {
	r, g, b := SetSat(0.8, 0.3, 0.5, 0.25)
	if !floatEqual(r, 0.25, 1e-9) || !floatEqual(g, 0, 1e-9) || !floatEqual(b, 0.1, 1e-9) {
		t.Errorf("SetSat() = (%v, %v, %v), want (0.25, 0, 0.1)", r, g, b)
	}

	r, g, b = SetSat(0.4, 0.4, 0.4, 0.7)
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("SetSat(gray) = (%v, %v, %v), want black", r, g, b)
	}
}

// TestSetLum tests setting luminance.
func TestSetLum(t *testing.T) {
	r, g, b := SetLum(1, 0, 0, 0.5)
	if !floatEqual(Lum(r, g, b), 0.5, 1e-9) {
		t.Errorf("Lum(SetLum(red, 0.5)) = %v, want 0.5", Lum(r, g, b))
	}
	if !(r > g && r > b) {
		t.Errorf("SetLum(red) = (%v, %v, %v), red no longer dominant", r, g, b)
	}
}

func TestNonSeparableModes(t *testing.T) {
	gray := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	red := color.NRGBA{R: 255, A: 255}

	t.Run("hue over gray is gray", func(t *testing.T) {
		got := Hue(gray, red, 255)
		if !byteNear(got.R, 128) || !byteNear(got.G, 128) || !byteNear(got.B, 128) {
			t.Errorf("Hue(gray, red) = %v, want about %v", got, gray)
		}
	})

	t.Run("saturation of gray source", func(t *testing.T) {
		got := Saturation(red, gray, 255)
		if got.R != got.G || got.G != got.B {
			t.Errorf("Saturation(red, gray) = %v, want a gray", got)
		}
	})

	t.Run("color keeps backdrop luminance", func(t *testing.T) {
		got := Color(gray, red, 255)
		l := Lum(float64(got.R)/255, float64(got.G)/255, float64(got.B)/255)
		if !floatEqual(l, 128.0/255, 2.0/255) {
			t.Errorf("Lum(Color(gray, red)) = %v, want about %v", l, 128.0/255)
		}
		if got.R <= got.G {
			t.Errorf("Color(gray, red) = %v, want a reddish color", got)
		}
	})

	t.Run("luminosity of white over black", func(t *testing.T) {
		got := Luminosity(color.NRGBA{A: 255}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 255)
		if !byteNear(got.R, 255) || !byteNear(got.G, 255) || !byteNear(got.B, 255) {
			t.Errorf("Luminosity(black, white) = %v, want about white", got)
		}
	})

	t.Run("opacity applies", func(t *testing.T) {
		got := Hue(gray, red, 0)
		if got != gray {
			t.Errorf("Hue with zero opacity = %v, want backdrop %v", got, gray)
		}
	})
}
