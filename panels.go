package gamepaint

// Rarity grades an item slot or tooltip.
type Rarity string

// Item rarities, lowest to highest.
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// slotPalettes maps a rarity to its slot background and border colors.
var slotPalettes = map[Rarity][2]Color{
	RarityCommon:    {RGBA(80, 80, 80, 255), RGBA(120, 120, 120, 255)},
	RarityUncommon:  {RGBA(30, 100, 30, 255), RGBA(50, 180, 50, 255)},
	RarityRare:      {RGBA(30, 60, 150, 255), RGBA(50, 100, 220, 255)},
	RarityEpic:      {RGBA(100, 50, 150, 255), RGBA(160, 80, 220, 255)},
	RarityLegendary: {RGBA(180, 120, 30, 255), RGBA(255, 200, 50, 255)},
}

// tooltipTitleColors maps a rarity to its tooltip title color.
var tooltipTitleColors = map[Rarity]Color{
	RarityCommon:    RGBA(180, 180, 180, 255),
	RarityUncommon:  RGBA(30, 255, 30, 255),
	RarityRare:      RGBA(50, 150, 255, 255),
	RarityEpic:      RGBA(180, 80, 255, 255),
	RarityLegendary: RGBA(255, 200, 50, 255),
}

// ItemSlotOptions configures Canvas.ItemSlot. Zero W/H mean the full
// canvas.
type ItemSlotOptions struct {
	X, Y   float64
	W, H   float64
	Rarity Rarity
	Shine  bool // diagonal shine streaks, epic and legendary only
}

// ItemSlot draws an inventory slot tinted by item rarity: a rounded
// background, an inset dark frame and a rarity-colored border. Unknown
// rarities render as common.
func (c *Canvas) ItemSlot(opts ItemSlotOptions) {
	w, h := opts.W, opts.H
	if w <= 0 {
		w = float64(c.width)
	}
	if h <= 0 {
		h = float64(c.height)
	}
	x, y := opts.X, opts.Y

	colors, ok := slotPalettes[opts.Rarity]
	if !ok {
		colors = slotPalettes[RarityCommon]
	}
	bg, border := colors[0], colors[1]

	inset := RGBA(40, 40, 40, 255)
	c.RoundedRect(x, y, w, h, 4, &bg, nil, 0)
	c.RoundedRect(x+2, y+2, w-4, h-4, 3, nil, &inset, 1)
	c.RoundedRect(x, y, w, h, 4, nil, &border, 2)

	if opts.Shine && (opts.Rarity == RarityEpic || opts.Rarity == RarityLegendary) {
		for i := 0; i < 3; i++ {
			sx := x + w/4 + float64(i)*w/4
			shine := RGBA(255, 255, 255, uint8(100-i*30))
			c.Line(sx, y, sx+w/8, y+h/3, shine, 2)
		}
	}
}

// DialogStyle selects the visual theme of a dialog box.
type DialogStyle string

// Dialog styles.
const (
	DialogModern  DialogStyle = "modern"
	DialogFantasy DialogStyle = "fantasy"
	DialogScifi   DialogStyle = "scifi"
	DialogPixel   DialogStyle = "pixel"
)

var dialogPalettes = map[DialogStyle][2]Color{
	DialogModern:  {RGBA(30, 30, 30, 230), RGBA(100, 100, 100, 255)},
	DialogFantasy: {RGBA(60, 40, 30, 230), RGBA(180, 140, 100, 255)},
	DialogScifi:   {RGBA(20, 30, 50, 230), RGBA(0, 200, 255, 255)},
	DialogPixel:   {RGBA(40, 40, 60, 255), RGBA(150, 150, 180, 255)},
}

// DialogBoxOptions configures Canvas.DialogBox. Zero W/H mean the full
// canvas.
type DialogBoxOptions struct {
	X, Y    float64
	W, H    float64
	Style   DialogStyle
	Pointer bool // speech pointer below the bottom edge
}

// DefaultDialogBoxOptions returns a modern-style dialog with the speech
// pointer enabled.
func DefaultDialogBoxOptions() DialogBoxOptions {
	return DialogBoxOptions{Style: DialogModern, Pointer: true}
}

// DialogBox draws a dialog panel. The pixel style uses square corners
// and a 3 pixel border; the other styles round the corners at radius 12
// with a 2 pixel border. The optional speech pointer extends below the
// box at a quarter of its width, so a canvas taller than the box is
// needed for it to be visible.
func (c *Canvas) DialogBox(opts DialogBoxOptions) {
	w, h := opts.W, opts.H
	if w <= 0 {
		w = float64(c.width)
	}
	if h <= 0 {
		h = float64(c.height)
	}
	x, y := opts.X, opts.Y

	colors, ok := dialogPalettes[opts.Style]
	if !ok {
		colors = dialogPalettes[DialogModern]
	}
	bg, border := colors[0], colors[1]

	if opts.Style == DialogPixel {
		c.Rect(x, y, w, h, &bg, nil, 0)
		c.Rect(x, y, w, h, nil, &border, 3)
	} else {
		c.RoundedRect(x, y, w, h, 12, &bg, nil, 0)
		c.RoundedRect(x, y, w, h, 12, nil, &border, 2)
	}

	if opts.Pointer {
		px := x + w/4
		tip := []Point{
			Pt(px, y+h-1),
			Pt(px+15, y+h-1),
			Pt(px+7, y+h+12),
		}
		c.Polygon(tip, &bg, &border, 1)
	}
}

// MinimapShape selects the outline of a minimap frame.
type MinimapShape string

// Minimap shapes.
const (
	MinimapCircle  MinimapShape = "circle"
	MinimapSquare  MinimapShape = "square"
	MinimapHexagon MinimapShape = "hexagon"
)

// MinimapFrameOptions configures Canvas.MinimapFrame. Zero W/H mean the
// full canvas; a zero Border means the default parchment tone.
type MinimapFrameOptions struct {
	X, Y   float64
	W, H   float64
	Shape  MinimapShape
	Border Color
}

// MinimapFrame draws a minimap widget: a map-green area in the chosen
// shape with a 3 pixel frame, a white player dot in the center and a
// gold heading wedge above it.
func (c *Canvas) MinimapFrame(opts MinimapFrameOptions) {
	w, h := opts.W, opts.H
	if w <= 0 {
		w = float64(c.width)
	}
	if h <= 0 {
		h = float64(c.height)
	}
	x, y := opts.X, opts.Y
	cx, cy := x+w/2, y+h/2
	r := float64(int(min(w, h))/2 - 4)

	border := opts.Border
	if border == (Color{}) {
		border = RGBA(200, 180, 150, 255)
	}
	mapBG := RGBA(80, 120, 80, 255)

	switch opts.Shape {
	case MinimapSquare:
		c.RoundedRect(x+4, y+4, w-8, h-8, 4, &mapBG, nil, 0)
		c.RoundedRect(x+4, y+4, w-8, h-8, 4, nil, &border, 3)
	case MinimapHexagon:
		c.RegularPolygon(6, cx, cy, r, 30, &mapBG, &border, 3)
	default: // circle
		c.Circle(cx, cy, r, &mapBG, nil, 0)
		c.ellipseRing(cx-r, cy-r, 2*r, 2*r, 3, border)
	}

	player := White
	c.Circle(cx, cy, 3, &player, nil, 0)
	heading := RGBA(255, 200, 50, 255)
	c.Polygon([]Point{Pt(cx, cy-8), Pt(cx-4, cy-2), Pt(cx+4, cy-2)}, &heading, nil, 0)
}

// TooltipOptions configures Canvas.Tooltip. Zero W/H mean the full
// canvas.
type TooltipOptions struct {
	X, Y     float64
	W, H     float64
	Title    string
	Rarity   Rarity
	FontPath string
}

// Tooltip draws an item tooltip: a dark translucent panel, the title in
// the rarity color, a separator rule and two sample stat lines.
func (c *Canvas) Tooltip(opts TooltipOptions) {
	w, h := opts.W, opts.H
	if w <= 0 {
		w = float64(c.width)
	}
	if h <= 0 {
		h = float64(c.height)
	}
	x, y := opts.X, opts.Y

	bg := RGBA(20, 20, 25, 240)
	frame := RGBA(60, 60, 70, 255)
	c.RoundedRect(x, y, w, h, 4, &bg, nil, 0)
	c.RoundedRect(x, y, w, h, 4, nil, &frame, 1)

	title := opts.Title
	if title == "" {
		title = "Item"
	}
	titleColor, ok := tooltipTitleColors[opts.Rarity]
	if !ok {
		titleColor = tooltipTitleColors[RarityCommon]
	}
	c.Text(x+10, y+8, title, titleColor, 14, opts.FontPath)

	c.Line(x+8, y+28, x+w-8, y+28, frame, 1)

	c.Text(x+10, y+35, "+10 Attack", RGBA(150, 255, 150, 255), 11, opts.FontPath)
	c.Text(x+10, y+52, "+5 Crit Rate", RGBA(255, 200, 100, 255), 11, opts.FontPath)
}
