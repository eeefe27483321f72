package gamepaint

import "math"

// StarOptions configures Canvas.Star. Zero center means the canvas
// center; zero Size means the largest star that fits with a 4 pixel
// margin.
type StarOptions struct {
	CX, CY      float64
	Size        float64 // outer radius
	Points      int
	InnerRatio  float64 // inner radius as a fraction of Size
	Fill        Color
	Border      *Color
	BorderWidth int
}

// DefaultStarOptions returns a five-pointed gold star with a darker
// gold border.
func DefaultStarOptions() StarOptions {
	border := RGBA(218, 165, 32, 255)
	return StarOptions{
		Points:      5,
		InnerRatio:  0.4,
		Fill:        RGBA(255, 215, 0, 255),
		Border:      &border,
		BorderWidth: 2,
	}
}

func (c *Canvas) iconCenter(cx, cy float64) (float64, float64) {
	if cx == 0 {
		cx = float64(c.width / 2)
	}
	if cy == 0 {
		cy = float64(c.height / 2)
	}
	return cx, cy
}

func (c *Canvas) iconRadius(size float64) float64 {
	if size == 0 {
		size = float64(min(c.width, c.height)/2 - 4)
	}
	return size
}

// Star draws a star polygon alternating between the outer radius and
// InnerRatio times it.
func (c *Canvas) Star(opts StarOptions) {
	cx, cy := c.iconCenter(opts.CX, opts.CY)
	outer := c.iconRadius(opts.Size)
	ratio := opts.InnerRatio
	if ratio <= 0 {
		ratio = 0.4
	}
	points := opts.Points
	if points < 2 {
		points = 5
	}
	inner := float64(int(outer * ratio))
	pts := starPoints(points, cx, cy, outer, inner)
	c.Polygon(pts, &opts.Fill, opts.Border, opts.BorderWidth)
}

// CoinOptions configures Canvas.Coin. Zero center means the canvas
// center; zero Radius means the largest coin that fits with a 4 pixel
// margin. An empty Symbol omits the embossed glyph.
type CoinOptions struct {
	CX, CY   float64
	Radius   float64
	Gold     Color
	Symbol   string
	FontPath string
}

// DefaultCoinOptions returns a gold coin embossed with "$".
func DefaultCoinOptions() CoinOptions {
	return CoinOptions{Gold: RGBA(255, 215, 0, 255), Symbol: "$"}
}

// Coin draws a coin: a dark gold rim, a gold face, a light arc
// highlight along the upper-left edge and an optional centered symbol.
func (c *Canvas) Coin(opts CoinOptions) {
	cx, cy := c.iconCenter(opts.CX, opts.CY)
	r := c.iconRadius(opts.Radius)

	darkGold := RGBA(218, 165, 32, 255)
	lightGold := RGBA(255, 239, 180, 255)

	c.Circle(cx, cy, r, &darkGold, nil, 0)
	innerR := float64(int(r * 0.85))
	c.Circle(cx, cy, innerR, &opts.Gold, nil, 0)

	hr := float64(int(r * 0.7))
	c.Arc(cx-hr, cy-hr, 2*hr, 2*hr, 200, 340, lightGold, 2)

	if opts.Symbol != "" {
		c.TextCentered(cx, cy, opts.Symbol, darkGold, float64(int(r*1.2)), opts.FontPath)
	}
}

// GemKind selects the color scheme of a gem.
type GemKind string

// Gem kinds.
const (
	GemDiamond  GemKind = "diamond"
	GemRuby     GemKind = "ruby"
	GemEmerald  GemKind = "emerald"
	GemSapphire GemKind = "sapphire"
)

// gemPalettes holds light, mid and dark facet colors per gem kind.
var gemPalettes = map[GemKind][3]Color{
	GemDiamond:  {RGBA(200, 230, 255, 255), RGBA(150, 200, 255, 255), RGBA(100, 180, 255, 255)},
	GemRuby:     {RGBA(255, 100, 100, 255), RGBA(200, 50, 50, 255), RGBA(150, 30, 30, 255)},
	GemEmerald:  {RGBA(100, 255, 150, 255), RGBA(50, 200, 100, 255), RGBA(30, 150, 80, 255)},
	GemSapphire: {RGBA(100, 150, 255, 255), RGBA(50, 100, 200, 255), RGBA(30, 80, 180, 255)},
}

// GemOptions configures Canvas.Gem. Zero center means the canvas
// center; zero Size means the largest gem that fits with a 4 pixel
// margin.
type GemOptions struct {
	CX, CY float64
	Size   float64
	Kind   GemKind
}

// Gem draws a faceted rhombus gem: four triangular facets shaded light
// to dark plus a small white highlight. Unknown kinds render as
// diamond.
func (c *Canvas) Gem(opts GemOptions) {
	cx, cy := c.iconCenter(opts.CX, opts.CY)
	s := c.iconRadius(opts.Size)

	colors, ok := gemPalettes[opts.Kind]
	if !ok {
		colors = gemPalettes[GemDiamond]
	}
	light, mid, dark := colors[0], colors[1], colors[2]

	top := Pt(cx, cy-s)
	bottom := Pt(cx, cy+s*0.6)
	left := Pt(cx-s*0.7, cy-s*0.2)
	right := Pt(cx+s*0.7, cy-s*0.2)
	center := Pt(cx, cy)

	c.Polygon([]Point{top, left, center}, &light, nil, 0)
	c.Polygon([]Point{top, right, center}, &mid, nil, 0)
	c.Polygon([]Point{left, bottom, center}, &mid, nil, 0)
	c.Polygon([]Point{right, bottom, center}, &dark, nil, 0)

	highlight := RGBA(255, 255, 255, 150)
	c.Polygon([]Point{
		Pt(cx-s*0.15, cy-s*0.5),
		Pt(cx+s*0.1, cy-s*0.6),
		Pt(cx-s*0.1, cy-s*0.3),
	}, &highlight, nil, 0)
}

// HeartOptions configures Canvas.Heart. Zero center means the canvas
// center; zero Size means the largest heart that fits with a 4 pixel
// margin.
type HeartOptions struct {
	CX, CY float64
	Size   float64
	Fill   Color
	Border *Color
}

// DefaultHeartOptions returns a red heart with a darker red border.
func DefaultHeartOptions() HeartOptions {
	border := RGBA(200, 30, 60, 255)
	return HeartOptions{Fill: RGBA(255, 50, 80, 255), Border: &border}
}

// Heart draws a heart from the classic parametric curve with a soft
// white highlight on the upper-left lobe.
func (c *Canvas) Heart(opts HeartOptions) {
	cx, cy := c.iconCenter(opts.CX, opts.CY)
	s := c.iconRadius(opts.Size)

	pts := heartPoints(cx, cy, s)
	c.Polygon(pts, &opts.Fill, opts.Border, 2)

	highlight := RGBA(255, 255, 255, 100)
	c.Ellipse(cx-s*0.4, cy-s*0.5, s*0.3, s*0.3, &highlight, nil, 0)
}

// ShieldOptions configures Canvas.Shield. Zero W/H mean the full
// canvas; zero colors mean the steel-blue defaults.
type ShieldOptions struct {
	X, Y   float64
	W, H   float64
	Fill   Color
	Border Color
}

// Shield draws a heater shield: a six-point outline with a silver
// border and a cross of decoration lines.
func (c *Canvas) Shield(opts ShieldOptions) {
	w, h := opts.W, opts.H
	if w <= 0 {
		w = float64(c.width)
	}
	if h <= 0 {
		h = float64(c.height)
	}
	x, y := opts.X, opts.Y
	cx := x + w/2

	fill := opts.Fill
	if fill == (Color{}) {
		fill = RGBA(70, 130, 180, 255)
	}
	border := opts.Border
	if border == (Color{}) {
		border = RGBA(192, 192, 192, 255)
	}

	pts := []Point{
		Pt(cx, y+4),
		Pt(x+w-4, y+h*0.15),
		Pt(x+w-4, y+h*0.5),
		Pt(cx, y+h-4),
		Pt(x+4, y+h*0.5),
		Pt(x+4, y+h*0.15),
	}
	c.Polygon(pts, &fill, &border, 3)

	c.Line(cx, y+h*0.15, cx, y+h*0.75, border, 2)
	c.Line(x+w*0.2, y+h*0.35, x+w*0.8, y+h*0.35, border, 2)
}

// ArrowDirection selects which way an arrow points.
type ArrowDirection string

// Arrow directions.
const (
	ArrowUp    ArrowDirection = "up"
	ArrowDown  ArrowDirection = "down"
	ArrowLeft  ArrowDirection = "left"
	ArrowRight ArrowDirection = "right"
)

// ArrowStyle selects the rendering of an arrow.
type ArrowStyle string

// Arrow styles.
const (
	ArrowSolid   ArrowStyle = "solid"
	ArrowOutline ArrowStyle = "outline"
	ArrowChevron ArrowStyle = "chevron"
)

// ArrowOptions configures Canvas.Arrow. Zero W/H mean the full canvas;
// a zero Fill means orange.
type ArrowOptions struct {
	X, Y      float64
	W, H      float64
	Direction ArrowDirection
	Style     ArrowStyle
	Fill      Color
}

// Arrow draws a directional arrow. Solid and outline styles are
// triangles; chevron is a thick V stroke.
func (c *Canvas) Arrow(opts ArrowOptions) {
	w, h := opts.W, opts.H
	if w <= 0 {
		w = float64(c.width)
	}
	if h <= 0 {
		h = float64(c.height)
	}
	x, y := opts.X, opts.Y

	fill := opts.Fill
	if fill == (Color{}) {
		fill = RGBA(255, 165, 0, 255)
	}

	if opts.Style == ArrowChevron {
		thickness := int(math.Min(w, h)) / 4
		var pts []Point
		switch opts.Direction {
		case ArrowLeft:
			pts = []Point{Pt(x+w*3/4, y+h/6), Pt(x+w/4, y+h/2), Pt(x+w*3/4, y+h*5/6)}
		case ArrowUp:
			pts = []Point{Pt(x+w/6, y+h*3/4), Pt(x+w/2, y+h/4), Pt(x+w*5/6, y+h*3/4)}
		case ArrowDown:
			pts = []Point{Pt(x+w/6, y+h/4), Pt(x+w/2, y+h*3/4), Pt(x+w*5/6, y+h/4)}
		default: // right
			pts = []Point{Pt(x+w/4, y+h/6), Pt(x+w*3/4, y+h/2), Pt(x+w/4, y+h*5/6)}
		}
		c.Polyline(pts, fill, thickness, false)
		return
	}

	margin := math.Min(w, h) / 6
	var pts []Point
	switch opts.Direction {
	case ArrowLeft:
		pts = []Point{Pt(x+w-margin, y+margin), Pt(x+margin, y+h/2), Pt(x+w-margin, y+h-margin)}
	case ArrowUp:
		pts = []Point{Pt(x+margin, y+h-margin), Pt(x+w/2, y+margin), Pt(x+w-margin, y+h-margin)}
	case ArrowDown:
		pts = []Point{Pt(x+margin, y+margin), Pt(x+w/2, y+h-margin), Pt(x+w-margin, y+margin)}
	default: // right
		pts = []Point{Pt(x+margin, y+margin), Pt(x+w-margin, y+h/2), Pt(x+margin, y+h-margin)}
	}
	if opts.Style == ArrowOutline {
		c.Polygon(pts, nil, &fill, 3)
	} else {
		c.Polygon(pts, &fill, nil, 0)
	}
}

// NewIcon renders a decorative icon in its stock configuration onto a
// fresh square transparent canvas. Unknown kinds render a star.
func NewIcon(size int, kind string) *Canvas {
	c := NewCanvas(size, size, Transparent)
	switch kind {
	case "coin":
		c.Coin(DefaultCoinOptions())
	case "gem":
		c.Gem(GemOptions{})
	case "heart":
		c.Heart(DefaultHeartOptions())
	case "shield":
		c.Shield(ShieldOptions{})
	case "arrow":
		c.Arrow(ArrowOptions{})
	default:
		c.Star(DefaultStarOptions())
	}
	return c
}
