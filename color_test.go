package sprite

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", color.NRGBA{R: 255, A: 255}},
		{"0f08", color.NRGBA{G: 255, A: 136}},
		{"#0000ff", color.NRGBA{B: 255, A: 255}},
		{"#00FF0080", color.NRGBA{G: 255, A: 128}},
		{"#00000000", color.NRGBA{}},
		{"#7f0080ff", color.NRGBA{R: 127, B: 128, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#gg0000", "red", "#1234567890"} {
		if _, err := ParseHexColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHexColor(%q) error = %v, want %v", in, err, ErrInvalidColor)
		}
	}
}

func TestFormatHexColor(t *testing.T) {
	c := color.NRGBA{R: 1, G: 0xab, B: 0xff, A: 0x80}
	s := FormatHexColor(c)
	if s != "#01abff80" {
		t.Errorf("FormatHexColor() = %q, want %q", s, "#01abff80")
	}
	if back, err := ParseHexColor(s); err != nil || back != c {
		t.Errorf("ParseHexColor(FormatHexColor(c)) = %v, %v", back, err)
	}
}
