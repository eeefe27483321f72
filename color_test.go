package gamepaint

import "testing"

func TestHexColors(t *testing.T) {
	tests := []struct {
		hex  string
		want Color
	}{
		{"#FF0000", RGB(255, 0, 0)},
		{"00FF00", RGB(0, 255, 0)},
		{"#F00", RGB(255, 0, 0)},
		{"#FF000080", RGBA(255, 0, 0, 128)},
		{"#F008", RGBA(255, 0, 0, 136)},
		{"bogus", Color{A: 255}},
	}
	for _, tt := range tests {
		if got := Hex(tt.hex); got != tt.want {
			t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := RGB(10, 20, 30)
	b := RGB(200, 100, 0)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	// Out-of-range t clamps.
	if got := a.Lerp(b, -2); got != a {
		t.Errorf("Lerp(-2) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 5); got != b {
		t.Errorf("Lerp(5) = %v, want %v", got, b)
	}
}

func TestLerpTruncates(t *testing.T) {
	got := Black.Lerp(White, 0.5)
	if got.R != 127 || got.G != 127 || got.B != 127 {
		t.Errorf("Lerp(0.5) = %v, want channels 127", got)
	}
}

func TestFromInts(t *testing.T) {
	c, ok := FromInts([]int{10, 20, 30})
	if !ok || c != RGB(10, 20, 30) {
		t.Errorf("FromInts 3-elem = %v, %v", c, ok)
	}
	c, ok = FromInts([]int{10, 20, 30, 40})
	if !ok || c != RGBA(10, 20, 30, 40) {
		t.Errorf("FromInts 4-elem = %v, %v", c, ok)
	}
	c, ok = FromInts([]int{-5, 300, 128, 255})
	if !ok || c != RGBA(0, 255, 128, 255) {
		t.Errorf("FromInts clamp = %v, %v", c, ok)
	}
	if _, ok = FromInts([]int{1, 2}); ok {
		t.Error("FromInts accepted a 2-element slice")
	}
	if _, ok = FromInts(nil); ok {
		t.Error("FromInts accepted nil")
	}
}

func TestWithAlpha(t *testing.T) {
	if c := RGB(1, 2, 3).WithAlpha(99); c != RGBA(1, 2, 3, 99) {
		t.Errorf("WithAlpha = %v", c)
	}
}
