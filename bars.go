package gamepaint

// ProgressBarOptions configures Canvas.ProgressBar. Zero W/H mean the
// full canvas.
type ProgressBarOptions struct {
	X, Y        float64
	W, H        float64
	Progress    float64 // 0..100, clamped
	Background  Color
	Fill        Color
	Border      *Color
	BorderWidth int
	Glow        bool
}

// DefaultProgressBarOptions returns the stock progress bar: dark gray
// track, green fill with a glow halo, and a 2 pixel gray border.
func DefaultProgressBarOptions() ProgressBarOptions {
	border := RGBA(100, 100, 100, 255)
	return ProgressBarOptions{
		Progress:    50,
		Background:  RGBA(60, 60, 60, 255),
		Fill:        RGBA(50, 205, 50, 255),
		Border:      &border,
		BorderWidth: 2,
		Glow:        true,
	}
}

// ProgressBar draws a pill-shaped progress bar. The corner radius is
// half the bar height. Progress is clamped to [0, 100]; the filled
// portion spans (w-4)*progress/100 pixels, inset two pixels from the
// track.
func (c *Canvas) ProgressBar(opts ProgressBarOptions) {
	w, h := opts.W, opts.H
	if w <= 0 {
		w = float64(c.width)
	}
	if h <= 0 {
		h = float64(c.height)
	}
	x, y := opts.X, opts.Y
	radius := h / 2

	p := opts.Progress
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}

	c.RoundedRect(x, y, w, h, radius, &opts.Background, nil, 0)

	fillW := float64(int((w - 4) * p / 100))
	if fillW > 0 {
		if opts.Glow {
			glow := opts.Fill.WithAlpha(100)
			c.RoundedRect(x+1, y+1, fillW+3, h-2, radius-1, &glow, nil, 0)
		}
		innerRadius := radius - 2
		if innerRadius < 1 {
			innerRadius = 1
		}
		c.RoundedRect(x+2, y+2, fillW+1, h-4, innerRadius, &opts.Fill, nil, 0)
	}

	if opts.Border != nil && opts.BorderWidth > 0 {
		c.RoundedRect(x, y, w, h, radius, nil, opts.Border, opts.BorderWidth)
	}
}

// HealthBarOptions configures Canvas.HealthBar. Zero W/H mean the full
// canvas.
type HealthBarOptions struct {
	X, Y     float64
	W, H     float64
	Percent  float64 // 0..100
	Segments int
	Divided  bool // draw segment divider lines
}

// DefaultHealthBarOptions returns a 75% health bar divided into ten
// segments.
func DefaultHealthBarOptions() HealthBarOptions {
	return HealthBarOptions{
		Percent:  75,
		Segments: 10,
		Divided:  true,
	}
}

// HealthBar draws a segmented hit-point bar. The fill color follows the
// remaining health: green above 60%, orange above 30%, red below.
func (c *Canvas) HealthBar(opts HealthBarOptions) {
	w, h := opts.W, opts.H
	if w <= 0 {
		w = float64(c.width)
	}
	if h <= 0 {
		h = float64(c.height)
	}
	x, y := opts.X, opts.Y

	var fill Color
	switch {
	case opts.Percent > 60:
		fill = RGBA(50, 205, 50, 255)
	case opts.Percent > 30:
		fill = RGBA(255, 165, 0, 255)
	default:
		fill = RGBA(255, 50, 50, 255)
	}

	bg := RGBA(30, 30, 30, 255)
	c.Rect(x, y, w, h, &bg, nil, 0)

	p := opts.Percent
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	hpW := float64(int((w - 4) * p / 100))
	if hpW > 0 {
		c.Rect(x+2, y+2, hpW+1, h-4, &fill, nil, 0)
	}

	if opts.Divided && opts.Segments > 1 {
		divider := RGBA(0, 0, 0, 150)
		segW := float64(int(w) / opts.Segments)
		for i := 1; i < opts.Segments; i++ {
			sx := x + float64(i)*segW
			c.Line(sx, y, sx, y+h-1, divider, 1)
		}
	}

	frame := RGBA(80, 80, 80, 255)
	c.Rect(x, y, w, h, nil, &frame, 2)
}

// NewBar renders a bar at the given value onto a fresh transparent
// canvas. kind "health" selects the segmented hit-point bar; anything
// else gets the progress bar.
func NewBar(width, height int, kind string, value float64) *Canvas {
	c := NewCanvas(width, height, Transparent)
	if kind == "health" {
		opts := DefaultHealthBarOptions()
		opts.Percent = value
		c.HealthBar(opts)
	} else {
		opts := DefaultProgressBarOptions()
		opts.Progress = value
		c.ProgressBar(opts)
	}
	return c
}
