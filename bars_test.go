package gamepaint

import "testing"

func TestProgressBarFillWidth(t *testing.T) {
	c := NewCanvas(104, 20, Transparent)
	opts := DefaultProgressBarOptions()
	opts.Progress = 50
	opts.Glow = false
	c.ProgressBar(opts)

	// fill spans (w-4)*progress/100 = 50 pixels starting at x=2.
	if got := c.PixelAt(10, 10); got != opts.Fill {
		t.Errorf("inside fill = %v, want %v", got, opts.Fill)
	}
	if got := c.PixelAt(70, 10); got != opts.Background {
		t.Errorf("past fill = %v, want background", got)
	}
}

func TestProgressBarClamps(t *testing.T) {
	c := NewCanvas(100, 20, Transparent)
	opts := DefaultProgressBarOptions()
	opts.Progress = 150
	opts.Glow = false
	c.ProgressBar(opts)
	if got := c.PixelAt(90, 10); got != opts.Fill {
		t.Errorf("overfull bar at x=90 = %v, want fill", got)
	}

	c2 := NewCanvas(100, 20, Transparent)
	opts.Progress = -10
	c2.ProgressBar(opts)
	if got := c2.PixelAt(50, 10); got != opts.Background {
		t.Errorf("empty bar center = %v, want background", got)
	}
}

func TestProgressBarZeroDrawsNoFill(t *testing.T) {
	c := NewCanvas(100, 20, Transparent)
	opts := DefaultProgressBarOptions()
	opts.Progress = 0
	c.ProgressBar(opts)
	if got := c.PixelAt(10, 10); got != opts.Background {
		t.Errorf("zero-progress bar = %v, want background only", got)
	}
}

func TestHealthBarColorThresholds(t *testing.T) {
	tests := []struct {
		percent float64
		want    Color
	}{
		{90, RGBA(50, 205, 50, 255)},  // green
		{45, RGBA(255, 165, 0, 255)},  // orange
		{15, RGBA(255, 50, 50, 255)},  // red
		{61, RGBA(50, 205, 50, 255)},  // just above green threshold
		{30, RGBA(255, 50, 50, 255)},  // boundary is red
		{31, RGBA(255, 165, 0, 255)},  // just above orange threshold
	}
	for _, tt := range tests {
		c := NewCanvas(100, 12, Transparent)
		opts := DefaultHealthBarOptions()
		opts.Percent = tt.percent
		opts.Divided = false
		c.HealthBar(opts)
		if got := c.PixelAt(5, 6); got != tt.want {
			t.Errorf("percent %.0f: fill = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestHealthBarFrameAndBackground(t *testing.T) {
	c := NewCanvas(100, 12, Transparent)
	opts := DefaultHealthBarOptions()
	opts.Percent = 10
	opts.Divided = false
	c.HealthBar(opts)

	if got := c.PixelAt(0, 0); got != RGBA(80, 80, 80, 255) {
		t.Errorf("frame = %v", got)
	}
	// Past the 10% fill the dark background shows.
	if got := c.PixelAt(60, 6); got != RGBA(30, 30, 30, 255) {
		t.Errorf("empty region = %v", got)
	}
}

func TestNewBar(t *testing.T) {
	health := NewBar(100, 12, "health", 90)
	if got := health.PixelAt(5, 6); got != RGBA(50, 205, 50, 255) {
		t.Errorf("health bar fill = %v, want green", got)
	}
	progress := NewBar(104, 20, "progress", 50)
	if got := progress.PixelAt(10, 10); got != RGBA(50, 205, 50, 255) {
		t.Errorf("progress bar fill = %v", got)
	}
}
