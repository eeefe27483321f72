package gamepaint

// ButtonStyle selects the rendering style of a button.
type ButtonStyle string

// Button styles.
const (
	ButtonFlat     ButtonStyle = "flat"
	ButtonGradient ButtonStyle = "gradient"
	ButtonGlossy   ButtonStyle = "glossy"
	ButtonOutline  ButtonStyle = "outline"
	ButtonPixel    ButtonStyle = "pixel"
)

// ButtonOptions configures Canvas.Button. Use DefaultButtonOptions for
// the standard blue gradient button and override fields as needed.
// Zero W/H mean the full canvas.
type ButtonOptions struct {
	X, Y      float64
	W, H      float64
	Text      string
	Style     ButtonStyle
	Primary   Color
	Secondary Color
	TextColor Color
	Radius    float64
	FontPath  string
}

// DefaultButtonOptions returns the stock button configuration: a blue
// vertical-gradient button with white text and an 8 pixel corner
// radius.
func DefaultButtonOptions() ButtonOptions {
	return ButtonOptions{
		Style:     ButtonGradient,
		Primary:   RGBA(65, 105, 225, 255),
		Secondary: RGBA(30, 60, 180, 255),
		TextColor: White,
		Radius:    8,
	}
}

// buttonPalettes are the named color presets accepted by NewButton.
var buttonPalettes = map[string][2]Color{
	"blue":   {RGBA(65, 105, 225, 255), RGBA(30, 60, 180, 255)},
	"green":  {RGBA(50, 205, 50, 255), RGBA(30, 150, 30, 255)},
	"red":    {RGBA(220, 60, 60, 255), RGBA(180, 30, 30, 255)},
	"orange": {RGBA(255, 165, 0, 255), RGBA(220, 120, 0, 255)},
	"purple": {RGBA(138, 43, 226, 255), RGBA(100, 30, 180, 255)},
}

// Button draws a game button. The five styles share the same footprint:
//
//	flat      solid rounded rectangle
//	gradient  vertical gradient from Primary to Secondary
//	glossy    Secondary base with a translucent Primary highlight on the
//	          upper half
//	outline   3 pixel Primary outline, transparent interior
//	pixel     square corners, Primary fill with an inset Secondary frame
//
// Text, when set, is centered in the button.
func (c *Canvas) Button(opts ButtonOptions) {
	w, h := opts.W, opts.H
	if w <= 0 {
		w = float64(c.width)
	}
	if h <= 0 {
		h = float64(c.height)
	}
	x, y := opts.X, opts.Y

	switch opts.Style {
	case ButtonFlat:
		c.RoundedRect(x, y, w, h, opts.Radius, &opts.Primary, nil, 0)
	case ButtonGlossy:
		c.RoundedRect(x, y, w, h, opts.Radius, &opts.Secondary, nil, 0)
		highlight := opts.Primary.WithAlpha(180)
		c.RoundedRect(x+2, y+2, w-4, h/2-2, opts.Radius-2, &highlight, nil, 0)
	case ButtonOutline:
		c.RoundedRect(x, y, w, h, opts.Radius, nil, &opts.Primary, 3)
	case ButtonPixel:
		c.Rect(x, y, w, h, &opts.Primary, nil, 0)
		c.Rect(x+2, y+2, w-4, h-4, nil, &opts.Secondary, 2)
	default: // gradient
		c.RoundedRectGradient(x, y, w, h, opts.Radius, GradientVertical, opts.Primary, opts.Secondary)
	}

	if opts.Text != "" {
		size := h / 2
		if size > 24 {
			size = 24
		}
		c.TextCentered(x+w/2, y+h/2, opts.Text, opts.TextColor, size, opts.FontPath)
	}
}

// NewButton renders a standalone button onto a fresh transparent
// canvas. palette is one of "blue", "green", "red", "orange" or
// "purple"; unknown names fall back to blue.
func NewButton(width, height int, text string, style ButtonStyle, palette string) *Canvas {
	colors, ok := buttonPalettes[palette]
	if !ok {
		colors = buttonPalettes["blue"]
	}
	c := NewCanvas(width, height, Transparent)
	opts := DefaultButtonOptions()
	opts.Text = text
	opts.Style = style
	opts.Primary = colors[0]
	opts.Secondary = colors[1]
	c.Button(opts)
	return c
}
