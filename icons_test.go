package gamepaint

import "testing"

func TestStarDefaults(t *testing.T) {
	c := NewCanvas(64, 64, Transparent)
	c.Star(DefaultStarOptions())

	if got := c.PixelAt(32, 32); got != RGBA(255, 215, 0, 255) {
		t.Errorf("star center = %v, want gold", got)
	}
	if got := c.PixelAt(2, 2); got != Transparent {
		t.Errorf("canvas corner = %v, want transparent", got)
	}
	// The top spike reaches toward the outer radius.
	if got := c.PixelAt(32, 8); got == Transparent {
		t.Error("top spike missing")
	}
}

func TestCoinLayers(t *testing.T) {
	c := NewCanvas(64, 64, Transparent)
	opts := DefaultCoinOptions()
	opts.Symbol = "" // keep the face clean for probing
	c.Coin(opts)

	if got := c.PixelAt(32, 32); got != opts.Gold {
		t.Errorf("coin face = %v, want %v", got, opts.Gold)
	}
	// The rim shows between the face (r*0.85 = 23) and the edge (28).
	if got := c.PixelAt(32, 32-26); got != RGBA(218, 165, 32, 255) {
		t.Errorf("coin rim = %v, want dark gold", got)
	}
}

func TestGemKinds(t *testing.T) {
	for kind, colors := range gemPalettes {
		c := NewCanvas(64, 64, Transparent)
		c.Gem(GemOptions{Kind: kind})
		// The lower-right facet carries the dark tone.
		if got := c.PixelAt(38, 40); got != colors[2] {
			t.Errorf("%s dark facet = %v, want %v", kind, got, colors[2])
		}
	}
	// Unknown kinds render as diamond.
	c := NewCanvas(64, 64, Transparent)
	c.Gem(GemOptions{Kind: "opal"})
	if got := c.PixelAt(38, 40); got != gemPalettes[GemDiamond][2] {
		t.Errorf("unknown gem = %v", got)
	}
}

func TestHeartFill(t *testing.T) {
	c := NewCanvas(64, 64, Transparent)
	c.Heart(DefaultHeartOptions())
	if got := c.PixelAt(32, 32); got != RGBA(255, 50, 80, 255) {
		t.Errorf("heart center = %v", got)
	}
	if got := c.PixelAt(2, 60); got != Transparent {
		t.Errorf("below heart = %v, want transparent", got)
	}
}

func TestShieldOutlineAndDecoration(t *testing.T) {
	c := NewCanvas(64, 80, Transparent)
	c.Shield(ShieldOptions{})
	if got := c.PixelAt(32, 20); got != RGBA(192, 192, 192, 255) {
		t.Errorf("center decoration line = %v, want silver", got)
	}
	if got := c.PixelAt(20, 30); got != RGBA(70, 130, 180, 255) {
		t.Errorf("shield body = %v, want steel blue", got)
	}
	if got := c.PixelAt(1, 78); got != Transparent {
		t.Errorf("below shield taper = %v, want transparent", got)
	}
}

func TestArrowDirections(t *testing.T) {
	// A solid right arrow has its tip on the right, so the left edge
	// is painted top to bottom and the right edge only at midheight.
	c := NewCanvas(40, 40, Transparent)
	c.Arrow(ArrowOptions{Direction: ArrowRight})
	orange := RGBA(255, 165, 0, 255)
	if got := c.PixelAt(8, 20); got != orange {
		t.Errorf("right arrow base = %v", got)
	}
	if got := c.PixelAt(32, 7); got != Transparent {
		t.Errorf("right arrow above tip = %v, want transparent", got)
	}

	up := NewCanvas(40, 40, Transparent)
	up.Arrow(ArrowOptions{Direction: ArrowUp})
	if got := up.PixelAt(20, 10); got != orange {
		t.Errorf("up arrow tip column = %v", got)
	}
}

func TestArrowStyles(t *testing.T) {
	outline := NewCanvas(40, 40, Transparent)
	outline.Arrow(ArrowOptions{Direction: ArrowRight, Style: ArrowOutline})
	// Outline interior is hollow.
	if got := outline.PixelAt(14, 20); got != Transparent {
		t.Errorf("outline arrow interior = %v, want transparent", got)
	}

	chevron := NewCanvas(40, 40, Transparent)
	chevron.Arrow(ArrowOptions{Direction: ArrowRight, Style: ArrowChevron})
	// The chevron stroke passes through its vertex at (3w/4, h/2).
	if got := chevron.PixelAt(30, 20); got == Transparent {
		t.Error("chevron vertex missing")
	}
	if got := chevron.PixelAt(5, 20); got != Transparent {
		t.Errorf("chevron left middle = %v, want transparent", got)
	}
}

func TestNewIcon(t *testing.T) {
	c := NewIcon(64, "heart")
	if c.Width() != 64 || c.Height() != 64 {
		t.Errorf("canvas = %dx%d, want 64x64", c.Width(), c.Height())
	}
	if got := c.PixelAt(32, 32); got != RGBA(255, 50, 80, 255) {
		t.Errorf("heart center = %v", got)
	}
	// Unknown kinds render a star.
	c = NewIcon(64, "banana")
	if got := c.PixelAt(32, 32); got != RGBA(255, 215, 0, 255) {
		t.Errorf("fallback center = %v, want gold", got)
	}
}
