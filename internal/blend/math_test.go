package blend

import "testing"

// TestMulUn8Exact checks MulUn8 against rounded a*b/255 over the whole
// byte range.
func TestMulUn8Exact(t *testing.T) {
	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			want := (a*b + 127) / 255
			if got := MulUn8(a, b); got != want {
				t.Fatalf("MulUn8(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

// TestMulUn8Negative verifies rounding is symmetric around zero.
func TestMulUn8Negative(t *testing.T) {
	tests := []struct {
		a, b int
		want int
	}{
		{-255, 128, -128},
		{-255, 255, -255},
		{-100, 255, -100},
		{-1, 255, -1},
		{-1, 1, 0},
		{-128, 0, 0},
	}
	for _, tt := range tests {
		if got := MulUn8(tt.a, tt.b); got != tt.want {
			t.Errorf("MulUn8(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDivUn8(t *testing.T) {
	tests := []struct {
		a, b int
		want int
	}{
		{0, 1, 0},
		{255, 255, 255},
		{128, 255, 128},
		{100, 200, 128},
		{30, 55, 139},
		{1, 2, 128},
	}
	for _, tt := range tests {
		if got := DivUn8(tt.a, tt.b); got != tt.want {
			t.Errorf("DivUn8(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClamp255(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 0}, {0, 0}, {128, 128}, {255, 255}, {300, 255},
	}
	for _, tt := range tests {
		if got := clamp255(tt.in); got != tt.want {
			t.Errorf("clamp255(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
