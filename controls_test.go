package gamepaint

import "testing"

func TestCloseControlBackdrop(t *testing.T) {
	c := NewControlIcon(48, ControlClose)

	// White X stroke through the center.
	if got := c.PixelAt(24, 24); got != White {
		t.Errorf("X stroke = %v, want white", got)
	}
	// Red plate between the strokes.
	if got := c.PixelAt(24, 13); got != RGBA(220, 60, 60, 255) {
		t.Errorf("backdrop = %v, want red", got)
	}
	// Outside the circular plate.
	if got := c.PixelAt(1, 1); got != Transparent {
		t.Errorf("corner = %v, want transparent", got)
	}
}

func TestSettingsGearHole(t *testing.T) {
	c := NewControlIcon(48, ControlSettings)

	// The bare gear punches its hub hole back to transparent.
	if got := c.PixelAt(24, 24); got != Transparent {
		t.Errorf("gear hub = %v, want transparent", got)
	}
	if got := c.PixelAt(24, 16); got != RGBA(100, 100, 100, 255) {
		t.Errorf("gear body = %v, want gray", got)
	}
}

func TestSettingsGearOnBackdrop(t *testing.T) {
	bg := RGBA(40, 40, 40, 255)
	c := NewCanvas(48, 48, Transparent)
	opts := DefaultControlOptions(ControlSettings)
	opts.Background = &bg
	opts.Backdrop = BackdropCircle
	c.ControlIcon(opts)

	// With a plate underneath the hub is painted, not punched.
	if got := c.PixelAt(24, 24); got != bg {
		t.Errorf("gear hub over plate = %v, want %v", got, bg)
	}
}

func TestPlayControl(t *testing.T) {
	c := NewControlIcon(48, ControlPlay)
	if got := c.PixelAt(20, 24); got != White {
		t.Errorf("play triangle = %v, want white", got)
	}
	if got := c.PixelAt(24, 6); got != RGBA(50, 180, 50, 255) {
		t.Errorf("backdrop = %v, want green", got)
	}
}

func TestPauseControlBars(t *testing.T) {
	c := NewControlIcon(48, ControlPause)
	// Gap between the bars shows the backdrop.
	if got := c.PixelAt(24, 24); got != RGBA(255, 180, 50, 255) {
		t.Errorf("bar gap = %v, want amber backdrop", got)
	}
}

func TestHomeControlDoor(t *testing.T) {
	c := NewControlIcon(48, ControlHome)

	// Door cut back to transparent out of the body.
	if got := c.PixelAt(24, 32); got != Transparent {
		t.Errorf("door = %v, want transparent", got)
	}
	gray := RGBA(80, 80, 80, 255)
	if got := c.PixelAt(17, 30); got != gray {
		t.Errorf("body = %v, want gray", got)
	}
	if got := c.PixelAt(24, 12); got != gray {
		t.Errorf("roof = %v, want gray", got)
	}
}

func TestUnknownControlDrawsClose(t *testing.T) {
	c := NewCanvas(48, 48, Transparent)
	opts := DefaultControlOptions(ControlKind("bogus"))
	c.ControlIcon(opts)
	// Falls back to a bare X in the navigation gray.
	if got := c.PixelAt(24, 24); got != RGBA(80, 80, 80, 255) {
		t.Errorf("fallback stroke = %v", got)
	}
}

func TestControlSizeOverride(t *testing.T) {
	c := NewCanvas(100, 100, Transparent)
	opts := DefaultControlOptions(ControlClose)
	opts.Size = 40
	c.ControlIcon(opts)

	// Plate radius is 20, so the canvas edge stays clear.
	if got := c.PixelAt(50, 10); got != Transparent {
		t.Errorf("beyond sized plate = %v, want transparent", got)
	}
	if got := c.PixelAt(50, 35); got != RGBA(220, 60, 60, 255) {
		t.Errorf("plate = %v, want red", got)
	}
}
