package gamepaint

import "math"

// ControlKind selects which control icon to draw.
type ControlKind string

// Control icon kinds.
const (
	ControlClose    ControlKind = "close"
	ControlSettings ControlKind = "settings"
	ControlPlay     ControlKind = "play"
	ControlPause    ControlKind = "pause"
	ControlMenu     ControlKind = "menu"
	ControlHome     ControlKind = "home"
	ControlRefresh  ControlKind = "refresh"
	ControlBack     ControlKind = "back"
	ControlPlus     ControlKind = "plus"
	ControlMinus    ControlKind = "minus"
	ControlCheck    ControlKind = "check"
)

// BackdropStyle selects the background plate behind a control icon.
type BackdropStyle string

// Backdrop styles.
const (
	BackdropCircle BackdropStyle = "circle"
	BackdropSquare BackdropStyle = "square"
	BackdropNone   BackdropStyle = "none"
)

// ControlOptions configures Canvas.ControlIcon. Zero center means the
// canvas center; zero Size means the canvas size minus a 4 pixel
// margin. Background nil means no backdrop plate.
type ControlOptions struct {
	Kind       ControlKind
	CX, CY     float64
	Size       float64
	Background *Color
	Icon       Color
	Backdrop   BackdropStyle
}

// DefaultControlOptions returns the stock configuration for a control
// icon kind. Action icons (close, play, pause, plus, minus, check) sit
// on a colored circle with a white glyph; navigation icons (settings,
// menu, home, refresh, back) are bare gray glyphs.
func DefaultControlOptions(kind ControlKind) ControlOptions {
	opts := ControlOptions{Kind: kind, Icon: White, Backdrop: BackdropCircle}
	bg := func(col Color) *Color { return &col }
	switch kind {
	case ControlClose, ControlMinus:
		opts.Background = bg(RGBA(220, 60, 60, 255))
	case ControlPlay, ControlPlus, ControlCheck:
		opts.Background = bg(RGBA(50, 180, 50, 255))
	case ControlPause:
		opts.Background = bg(RGBA(255, 180, 50, 255))
	case ControlSettings:
		opts.Icon = RGBA(100, 100, 100, 255)
		opts.Backdrop = BackdropNone
	default: // menu, home, refresh, back
		opts.Icon = RGBA(80, 80, 80, 255)
		opts.Backdrop = BackdropNone
	}
	return opts
}

// ControlIcon draws one of the standard UI control icons. Unknown kinds
// draw the close icon.
func (c *Canvas) ControlIcon(opts ControlOptions) {
	cx, cy := c.iconCenter(opts.CX, opts.CY)
	s := opts.Size
	if s == 0 {
		s = float64(min(c.width, c.height) - 4)
	}
	r := float64(int(s) / 2)

	if opts.Background != nil && opts.Backdrop != BackdropNone {
		switch opts.Backdrop {
		case BackdropSquare:
			c.RoundedRect(cx-r, cy-r, 2*r, 2*r, 4, opts.Background, nil, 0)
		default:
			c.Circle(cx, cy, r, opts.Background, nil, 0)
		}
	}

	switch opts.Kind {
	case ControlSettings:
		c.drawGear(cx, cy, r, opts.Icon, opts.Background)
	case ControlPlay:
		off := float64(int(r * 0.45))
		c.Polygon([]Point{
			Pt(cx-off+2, cy-off),
			Pt(cx+off+2, cy),
			Pt(cx-off+2, cy+off),
		}, &opts.Icon, nil, 0)
	case ControlPause:
		barW := math.Max(3, float64(int(r*0.25)))
		barH := float64(int(r * 0.9))
		gap := math.Max(2, float64(int(r*0.2)))
		c.Rect(cx-gap-barW, cy-barH, barW+1, 2*barH+1, &opts.Icon, nil, 0)
		c.Rect(cx+gap, cy-barH, barW+1, 2*barH+1, &opts.Icon, nil, 0)
	case ControlMenu:
		barW := float64(int(r * 1.2))
		barH := math.Max(2, float64(int(r*0.15)))
		gap := float64(int(r * 0.4))
		for i := -1; i <= 1; i++ {
			y := cy + float64(i)*gap
			c.RoundedRect(cx-barW/2, y-barH/2, barW+1, barH+1, barH/2, &opts.Icon, nil, 0)
		}
	case ControlHome:
		c.drawHome(cx, cy, r, opts.Icon, opts.Background)
	case ControlRefresh:
		c.drawRefresh(cx, cy, r, opts.Icon)
	case ControlBack:
		lw := max(2, int(r*0.2))
		off := float64(int(r * 0.6))
		c.Line(cx-off, cy, cx+off, cy, opts.Icon, lw)
		c.Line(cx-off, cy, cx-off/2, cy-off/2, opts.Icon, lw)
		c.Line(cx-off, cy, cx-off/2, cy+off/2, opts.Icon, lw)
	case ControlPlus:
		off := float64(int(r * 0.55))
		lw := max(2, int(s)/8)
		c.Line(cx-off, cy, cx+off, cy, opts.Icon, lw)
		c.Line(cx, cy-off, cx, cy+off, opts.Icon, lw)
	case ControlMinus:
		off := float64(int(r * 0.55))
		lw := max(2, int(s)/8)
		c.Line(cx-off, cy, cx+off, cy, opts.Icon, lw)
	case ControlCheck:
		lw := max(2, int(s)/10)
		off := float64(int(r * 0.5))
		mid := Pt(cx-off/3, cy+off*0.7)
		c.Line(cx-off, cy, mid.X, mid.Y, opts.Icon, lw)
		c.Line(mid.X, mid.Y, cx+off, cy-off*0.6, opts.Icon, lw)
	default: // close
		off := float64(int(r * 0.5))
		lw := max(2, int(s)/10)
		c.Line(cx-off, cy-off, cx+off, cy+off, opts.Icon, lw)
		c.Line(cx+off, cy-off, cx-off, cy+off, opts.Icon, lw)
	}
}

// drawGear renders the settings gear: an 8-tooth star polygon with a
// center hole. With no backdrop the hole is punched transparent,
// otherwise it is painted in the backdrop color.
func (c *Canvas) drawGear(cx, cy, r float64, icon Color, bg *Color) {
	outer := float64(int(r * 0.85))
	inner := float64(int(r * 0.5))
	center := float64(int(r * 0.3))

	pts := starPoints(8, cx, cy, outer, inner)
	c.Polygon(pts, &icon, nil, 0)

	if bg == nil {
		c.eraseEllipse(cx-center, cy-center, 2*center, 2*center)
	} else {
		c.Circle(cx, cy, center, bg, nil, 0)
	}
}

// drawHome renders the home icon: a triangular roof over a square body
// with a door cut out of the bottom edge.
func (c *Canvas) drawHome(cx, cy, r float64, icon Color, bg *Color) {
	c.Polygon([]Point{
		Pt(cx, cy-r*0.7),
		Pt(cx-r*0.7, cy),
		Pt(cx+r*0.7, cy),
	}, &icon, nil, 0)

	bodyW := float64(int(r * 0.9))
	bodyH := float64(int(r * 0.65))
	c.Rect(cx-bodyW/2, cy, bodyW+1, bodyH+1, &icon, nil, 0)

	doorW := float64(int(r * 0.35))
	doorH := float64(int(r * 0.5))
	if bg == nil {
		c.eraseRect(cx-doorW/2, cy+bodyH-doorH, doorW+1, doorH+1)
	} else {
		c.Rect(cx-doorW/2, cy+bodyH-doorH, doorW+1, doorH+1, bg, nil, 0)
	}
}

// drawRefresh renders the refresh icon: a 270 degree arc with an
// arrowhead near its start.
func (c *Canvas) drawRefresh(cx, cy, r float64, icon Color) {
	arcR := float64(int(r * 0.65))
	lw := max(2, int(r*0.2))
	c.Arc(cx-arcR, cy-arcR, 2*arcR, 2*arcR, 30, 300, icon, lw)

	arrow := float64(int(r * 0.3))
	ax := cx + arcR*math.Cos(30*math.Pi/180)
	ay := cy - arcR*math.Sin(30*math.Pi/180)
	c.Polygon([]Point{
		Pt(ax, ay),
		Pt(ax+arrow, ay+arrow/2),
		Pt(ax+arrow/2, ay+arrow),
	}, &icon, nil, 0)
}

// eraseEllipse punches an elliptical hole, replacing pixels with
// transparent instead of compositing.
func (c *Canvas) eraseEllipse(x, y, w, h float64) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for yi := max(y0, 0); yi < min(y1, c.height); yi++ {
		for xi := max(x0, 0); xi < min(x1, c.width); xi++ {
			if insideEllipse(float64(xi)+0.5, float64(yi)+0.5, x, y, w, h) {
				c.SetPixel(xi, yi, Transparent)
			}
		}
	}
}

// eraseRect punches a rectangular hole, replacing pixels with
// transparent instead of compositing.
func (c *Canvas) eraseRect(x, y, w, h float64) {
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := x0+int(math.Round(w)), y0+int(math.Round(h))
	for yi := max(y0, 0); yi < min(y1, c.height); yi++ {
		for xi := max(x0, 0); xi < min(x1, c.width); xi++ {
			c.SetPixel(xi, yi, Transparent)
		}
	}
}

// NewControlIcon renders a standalone control icon onto a fresh square
// transparent canvas using the stock configuration for the kind.
func NewControlIcon(size int, kind ControlKind) *Canvas {
	c := NewCanvas(size, size, Transparent)
	c.ControlIcon(DefaultControlOptions(kind))
	return c
}
