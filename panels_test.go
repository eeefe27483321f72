package gamepaint

import "testing"

func TestItemSlotRarityColors(t *testing.T) {
	for rarity, colors := range slotPalettes {
		c := NewCanvas(64, 64, Transparent)
		c.ItemSlot(ItemSlotOptions{Rarity: rarity})
		if got := c.PixelAt(32, 32); got != colors[0] {
			t.Errorf("%s center = %v, want %v", rarity, got, colors[0])
		}
		if got := c.PixelAt(32, 0); got != colors[1] {
			t.Errorf("%s border = %v, want %v", rarity, got, colors[1])
		}
	}
}

func TestItemSlotUnknownRarityIsCommon(t *testing.T) {
	c := NewCanvas(64, 64, Transparent)
	c.ItemSlot(ItemSlotOptions{Rarity: "mythic"})
	if got := c.PixelAt(32, 32); got != slotPalettes[RarityCommon][0] {
		t.Errorf("unknown rarity center = %v", got)
	}
}

func TestItemSlotShineOnlyForHighRarity(t *testing.T) {
	plain := NewCanvas(64, 64, Transparent)
	plain.ItemSlot(ItemSlotOptions{Rarity: RarityCommon, Shine: true})
	shiny := NewCanvas(64, 64, Transparent)
	shiny.ItemSlot(ItemSlotOptions{Rarity: RarityEpic, Shine: true})

	base := NewCanvas(64, 64, Transparent)
	base.ItemSlot(ItemSlotOptions{Rarity: RarityEpic})

	same := true
	for i := range shiny.Pix() {
		if shiny.Pix()[i] != base.Pix()[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("epic slot with shine matches slot without")
	}

	noShine := NewCanvas(64, 64, Transparent)
	noShine.ItemSlot(ItemSlotOptions{Rarity: RarityCommon})
	for i := range plain.Pix() {
		if plain.Pix()[i] != noShine.Pix()[i] {
			t.Fatal("common slot drew shine streaks")
		}
	}
}

func TestDialogBoxStyles(t *testing.T) {
	for style, colors := range dialogPalettes {
		c := NewCanvas(300, 100, Transparent)
		opts := DefaultDialogBoxOptions()
		opts.Style = style
		opts.Pointer = false
		c.DialogBox(opts)
		if got := c.PixelAt(150, 50); got != colors[0] {
			t.Errorf("%s center = %v, want %v", style, got, colors[0])
		}
	}
}

func TestDialogBoxPixelStyleSquareCorners(t *testing.T) {
	c := NewCanvas(100, 60, Transparent)
	opts := DefaultDialogBoxOptions()
	opts.Style = DialogPixel
	opts.Pointer = false
	c.DialogBox(opts)
	if got := c.PixelAt(0, 0); got == Transparent {
		t.Error("pixel dialog corner should be painted")
	}

	modern := NewCanvas(100, 60, Transparent)
	opts.Style = DialogModern
	modern.DialogBox(opts)
	if got := modern.PixelAt(0, 0); got != Transparent {
		t.Error("modern dialog corner should be rounded off")
	}
}

func TestDialogBoxPointer(t *testing.T) {
	c := NewCanvas(200, 100, Transparent)
	opts := DefaultDialogBoxOptions()
	opts.H = 80
	c.DialogBox(opts)
	// Pointer tip extends below the box at a quarter of its width.
	if got := c.PixelAt(57, 85); got == Transparent {
		t.Error("pointer region empty")
	}
}

func TestMinimapFrameShapes(t *testing.T) {
	for _, shape := range []MinimapShape{MinimapCircle, MinimapSquare, MinimapHexagon} {
		c := NewCanvas(120, 120, Transparent)
		c.MinimapFrame(MinimapFrameOptions{Shape: shape})

		// Player dot in the center.
		if got := c.PixelAt(60, 60); got != White {
			t.Errorf("%s: player dot = %v, want white", shape, got)
		}
		// Heading wedge above the dot.
		if got := c.PixelAt(60, 55); got != RGBA(255, 200, 50, 255) {
			t.Errorf("%s: heading wedge = %v", shape, got)
		}
		// Map background off-center.
		if got := c.PixelAt(60, 30); got != RGBA(80, 120, 80, 255) {
			t.Errorf("%s: map area = %v", shape, got)
		}
	}

	// The circle shape leaves the canvas corners empty.
	c := NewCanvas(120, 120, Transparent)
	c.MinimapFrame(MinimapFrameOptions{Shape: MinimapCircle})
	if got := c.PixelAt(2, 2); got != Transparent {
		t.Errorf("circle minimap corner = %v, want transparent", got)
	}
}

func TestTooltipLayout(t *testing.T) {
	c := NewCanvas(180, 80, Transparent)
	c.Tooltip(TooltipOptions{Title: "Sword", Rarity: RarityLegendary})

	if got := c.PixelAt(90, 70); got != RGBA(20, 20, 25, 240) {
		t.Errorf("panel background = %v", got)
	}
	// Separator rule under the title.
	if got := c.PixelAt(90, 28); got != RGBA(60, 60, 70, 255) {
		t.Errorf("separator = %v", got)
	}
	// Title pixels in the legendary gold.
	gold := 0
	for y := 5; y < 25; y++ {
		for x := 10; x < 100; x++ {
			if c.PixelAt(x, y) == tooltipTitleColors[RarityLegendary] {
				gold++
			}
		}
	}
	if gold == 0 {
		t.Error("no title pixels in rarity color")
	}
}
