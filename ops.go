package gamepaint

import "fmt"

// This file is the tool boundary: operations arrive as loosely typed
// requests (integer color slices, string enums, zero values for
// omitted fields) and are normalized into drawing calls here.
// Validation and defaulting happen at this layer only; the Canvas
// methods themselves are best-effort and never reject input.

// Result is the outcome of applying an operation: a human-readable
// summary plus the canvas that was created or drawn on.
type Result struct {
	Summary string
	Canvas  *Canvas
}

// PNG returns the result canvas encoded as PNG.
func (r Result) PNG() ([]byte, error) {
	return r.Canvas.Bytes("png")
}

// Base64 returns the result canvas encoded as a base64 PNG string.
func (r Result) Base64() (string, error) {
	return r.Canvas.Base64("png")
}

// Op is a single drawing operation applied against a registry.
type Op interface {
	Apply(reg *Registry) (Result, error)
}

// RenderTarget names where a rendering operation's output goes. When ID
// is set the canvas is stored in the registry under it; when Path is
// set the canvas is also saved to that file.
type RenderTarget struct {
	ID   string
	Path string
}

func finishRender(reg *Registry, rt RenderTarget, c *Canvas, summary string) (Result, error) {
	if rt.ID != "" {
		reg.Put(rt.ID, c)
	}
	if rt.Path != "" {
		abs, err := c.Save(rt.Path)
		if err != nil {
			return Result{}, err
		}
		summary = fmt.Sprintf("%s, saved to %s", summary, abs)
	}
	return Result{Summary: summary, Canvas: c}, nil
}

// colorOr converts an integer channel slice to a Color, falling back to
// def when the slice is absent or malformed.
func colorOr(vals []int, def Color) Color {
	if c, ok := FromInts(vals); ok {
		return c
	}
	return def
}

// optColor converts an integer channel slice to an optional Color; nil
// or malformed slices yield nil.
func optColor(vals []int) *Color {
	if c, ok := FromInts(vals); ok {
		return &c
	}
	return nil
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// CreateCanvasOp creates a blank canvas in the registry, replacing any
// canvas already stored under the id.
type CreateCanvasOp struct {
	ID         string
	Width      int
	Height     int
	Background []int
}

func (op CreateCanvasOp) Apply(reg *Registry) (Result, error) {
	w := orInt(op.Width, 400)
	h := orInt(op.Height, 300)
	bg := colorOr(op.Background, Transparent)
	c := reg.Create(op.ID, w, h, bg)
	return Result{
		Summary: fmt.Sprintf("canvas %q created %dx%d", op.ID, w, h),
		Canvas:  c,
	}, nil
}

// ButtonOp renders a button onto a fresh canvas.
type ButtonOp struct {
	RenderTarget
	Width     int
	Height    int
	Text      string
	Style     string
	Palette   string // named color preset, overridden by Primary/Secondary
	Primary   []int
	Secondary []int
	Radius    int
	TextColor []int
}

func (op ButtonOp) Apply(reg *Registry) (Result, error) {
	w := orInt(op.Width, 120)
	h := orInt(op.Height, 40)

	opts := DefaultButtonOptions()
	if op.Style != "" {
		opts.Style = ButtonStyle(op.Style)
	}
	if colors, ok := buttonPalettes[op.Palette]; ok {
		opts.Primary, opts.Secondary = colors[0], colors[1]
	}
	opts.Primary = colorOr(op.Primary, opts.Primary)
	opts.Secondary = colorOr(op.Secondary, opts.Secondary)
	opts.TextColor = colorOr(op.TextColor, opts.TextColor)
	if op.Radius > 0 {
		opts.Radius = float64(op.Radius)
	}
	opts.Text = op.Text

	c := NewCanvas(w, h, Transparent)
	c.Button(opts)
	return finishRender(reg, op.RenderTarget, c,
		fmt.Sprintf("button %q style=%s %dx%d", op.Text, opts.Style, w, h))
}

// IconOp renders a decorative icon (star, coin, gem, heart, shield or
// arrow) onto a fresh square canvas.
type IconOp struct {
	RenderTarget
	Size      int
	Kind      string
	Fill      []int
	Gem       string // gem kind, Kind "gem" only
	Direction string // arrow direction, Kind "arrow" only
	Style     string // arrow style, Kind "arrow" only
}

func (op IconOp) Apply(reg *Registry) (Result, error) {
	size := orInt(op.Size, 64)
	c := NewCanvas(size, size, Transparent)

	switch op.Kind {
	case "coin":
		opts := DefaultCoinOptions()
		opts.Gold = colorOr(op.Fill, opts.Gold)
		c.Coin(opts)
	case "gem":
		c.Gem(GemOptions{Kind: GemKind(op.Gem)})
	case "heart":
		opts := DefaultHeartOptions()
		opts.Fill = colorOr(op.Fill, opts.Fill)
		c.Heart(opts)
	case "shield":
		c.Shield(ShieldOptions{Fill: colorOr(op.Fill, Color{})})
	case "arrow":
		c.Arrow(ArrowOptions{
			Direction: ArrowDirection(op.Direction),
			Style:     ArrowStyle(op.Style),
			Fill:      colorOr(op.Fill, Color{}),
		})
	default: // star
		opts := DefaultStarOptions()
		opts.Fill = colorOr(op.Fill, opts.Fill)
		c.Star(opts)
	}
	return finishRender(reg, op.RenderTarget, c,
		fmt.Sprintf("icon %s %dx%d", op.Kind, size, size))
}

// BarOp renders a progress or health bar onto a fresh canvas.
type BarOp struct {
	RenderTarget
	Width    int
	Height   int
	Kind     string // "progress" or "health"
	Progress float64
	HideGlow bool
	Fill     []int
}

func (op BarOp) Apply(reg *Registry) (Result, error) {
	w := orInt(op.Width, 200)
	h := orInt(op.Height, 24)
	c := NewCanvas(w, h, Transparent)

	if op.Kind == "health" {
		opts := DefaultHealthBarOptions()
		opts.Percent = op.Progress
		c.HealthBar(opts)
	} else {
		opts := DefaultProgressBarOptions()
		opts.Progress = op.Progress
		opts.Glow = !op.HideGlow
		opts.Fill = colorOr(op.Fill, opts.Fill)
		c.ProgressBar(opts)
	}
	return finishRender(reg, op.RenderTarget, c,
		fmt.Sprintf("%s bar %.0f%% %dx%d", op.Kind, op.Progress, w, h))
}

// SlotOp renders an item slot onto a fresh canvas.
type SlotOp struct {
	RenderTarget
	Width  int
	Height int
	Rarity string
	Shine  bool
}

func (op SlotOp) Apply(reg *Registry) (Result, error) {
	w := orInt(op.Width, 64)
	h := orInt(op.Height, 64)
	c := NewCanvas(w, h, Transparent)
	c.ItemSlot(ItemSlotOptions{Rarity: Rarity(op.Rarity), Shine: op.Shine})
	return finishRender(reg, op.RenderTarget, c,
		fmt.Sprintf("item slot rarity=%s %dx%d", op.Rarity, w, h))
}

// DialogOp renders a dialog box onto a fresh canvas.
type DialogOp struct {
	RenderTarget
	Width       int
	Height      int
	Style       string
	HidePointer bool
}

func (op DialogOp) Apply(reg *Registry) (Result, error) {
	w := orInt(op.Width, 300)
	h := orInt(op.Height, 100)
	c := NewCanvas(w, h, Transparent)
	opts := DefaultDialogBoxOptions()
	if op.Style != "" {
		opts.Style = DialogStyle(op.Style)
	}
	opts.Pointer = !op.HidePointer
	// Leave room for the pointer below the box.
	if opts.Pointer {
		opts.H = float64(h) - 13
	}
	c.DialogBox(opts)
	return finishRender(reg, op.RenderTarget, c,
		fmt.Sprintf("dialog box style=%s %dx%d", opts.Style, w, h))
}

// MinimapOp renders a minimap frame onto a fresh canvas.
type MinimapOp struct {
	RenderTarget
	Width  int
	Height int
	Shape  string
}

func (op MinimapOp) Apply(reg *Registry) (Result, error) {
	w := orInt(op.Width, 120)
	h := orInt(op.Height, 120)
	c := NewCanvas(w, h, Transparent)
	c.MinimapFrame(MinimapFrameOptions{Shape: MinimapShape(op.Shape)})
	return finishRender(reg, op.RenderTarget, c,
		fmt.Sprintf("minimap shape=%s %dx%d", op.Shape, w, h))
}

// TooltipOp renders an item tooltip onto a fresh canvas.
type TooltipOp struct {
	RenderTarget
	Width  int
	Height int
	Title  string
	Rarity string
}

func (op TooltipOp) Apply(reg *Registry) (Result, error) {
	w := orInt(op.Width, 180)
	h := orInt(op.Height, 80)
	c := NewCanvas(w, h, Transparent)
	rarity := Rarity(op.Rarity)
	if op.Rarity == "" {
		rarity = RarityRare
	}
	c.Tooltip(TooltipOptions{Title: op.Title, Rarity: rarity})
	return finishRender(reg, op.RenderTarget, c,
		fmt.Sprintf("tooltip %q rarity=%s %dx%d", op.Title, rarity, w, h))
}

// ControlOp renders a control icon onto a fresh square canvas.
type ControlOp struct {
	RenderTarget
	Size       int
	Kind       string
	Backdrop   string
	Background []int
	IconColor  []int
}

func (op ControlOp) Apply(reg *Registry) (Result, error) {
	size := orInt(op.Size, 48)
	c := NewCanvas(size, size, Transparent)

	opts := DefaultControlOptions(ControlKind(op.Kind))
	if op.Backdrop != "" {
		opts.Backdrop = BackdropStyle(op.Backdrop)
	}
	if bg := optColor(op.Background); bg != nil {
		opts.Background = bg
	}
	opts.Icon = colorOr(op.IconColor, opts.Icon)
	c.ControlIcon(opts)
	return finishRender(reg, op.RenderTarget, c,
		fmt.Sprintf("control icon %s %dx%d", op.Kind, size, size))
}

// PenLineOp draws a line segment on a stored canvas.
type PenLineOp struct {
	CanvasID       string
	X1, Y1, X2, Y2 int
	Color          []int
	Width          int
}

func (op PenLineOp) Apply(reg *Registry) (Result, error) {
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("line (%d,%d)-(%d,%d)", op.X1, op.Y1, op.X2, op.Y2),
		func(c *Canvas) {
			c.Line(float64(op.X1), float64(op.Y1), float64(op.X2), float64(op.Y2),
				colorOr(op.Color, Black), orInt(op.Width, 2))
		})
}

// PenPolylineOp draws connected line segments on a stored canvas.
type PenPolylineOp struct {
	CanvasID string
	Points   [][2]int
	Color    []int
	Width    int
	Closed   bool
}

func (op PenPolylineOp) Apply(reg *Registry) (Result, error) {
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("polyline %d points", len(op.Points)),
		func(c *Canvas) {
			c.Polyline(PointsFromInts(op.Points), colorOr(op.Color, Black),
				orInt(op.Width, 2), op.Closed)
		})
}

// PenRectOp draws a rectangle on a stored canvas.
type PenRectOp struct {
	CanvasID    string
	X, Y, W, H  int
	Fill        []int
	Border      []int
	BorderWidth int
}

func (op PenRectOp) Apply(reg *Registry) (Result, error) {
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("rect (%d,%d) %dx%d", op.X, op.Y, op.W, op.H),
		func(c *Canvas) {
			c.Rect(float64(op.X), float64(op.Y), float64(op.W), float64(op.H),
				optColor(op.Fill), optColor(op.Border), orInt(op.BorderWidth, 2))
		})
}

// PenEllipseOp draws an ellipse on a stored canvas.
type PenEllipseOp struct {
	CanvasID    string
	X, Y, W, H  int
	Fill        []int
	Border      []int
	BorderWidth int
}

func (op PenEllipseOp) Apply(reg *Registry) (Result, error) {
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("ellipse (%d,%d) %dx%d", op.X, op.Y, op.W, op.H),
		func(c *Canvas) {
			c.Ellipse(float64(op.X), float64(op.Y), float64(op.W), float64(op.H),
				optColor(op.Fill), optColor(op.Border), orInt(op.BorderWidth, 2))
		})
}

// PenPolygonOp draws an arbitrary polygon on a stored canvas.
type PenPolygonOp struct {
	CanvasID    string
	Points      [][2]int
	Fill        []int
	Border      []int
	BorderWidth int
}

func (op PenPolygonOp) Apply(reg *Registry) (Result, error) {
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("polygon %d points", len(op.Points)),
		func(c *Canvas) {
			c.Polygon(PointsFromInts(op.Points),
				optColor(op.Fill), optColor(op.Border), orInt(op.BorderWidth, 2))
		})
}

// PenRegularPolygonOp draws a regular polygon on a stored canvas.
type PenRegularPolygonOp struct {
	CanvasID    string
	Sides       int
	CX, CY      int
	Radius      int
	Rotation    float64
	Fill        []int
	Border      []int
	BorderWidth int
}

func (op PenRegularPolygonOp) Apply(reg *Registry) (Result, error) {
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("regular polygon sides=%d r=%d", op.Sides, op.Radius),
		func(c *Canvas) {
			c.RegularPolygon(op.Sides, float64(op.CX), float64(op.CY),
				float64(op.Radius), op.Rotation,
				optColor(op.Fill), optColor(op.Border), orInt(op.BorderWidth, 2))
		})
}

// PenArcOp draws an elliptical arc on a stored canvas.
type PenArcOp struct {
	CanvasID   string
	X, Y, W, H int
	Start, End float64
	Color      []int
	Width      int
}

func (op PenArcOp) Apply(reg *Registry) (Result, error) {
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("arc (%d,%d) %dx%d %.0f..%.0f", op.X, op.Y, op.W, op.H, op.Start, op.End),
		func(c *Canvas) {
			end := op.End
			if op.Start == 0 && end == 0 {
				end = 180
			}
			c.Arc(float64(op.X), float64(op.Y), float64(op.W), float64(op.H),
				op.Start, end, colorOr(op.Color, Black), orInt(op.Width, 2))
		})
}

// PenBezierOp draws a Bezier curve on a stored canvas.
type PenBezierOp struct {
	CanvasID string
	Points   [][2]int
	Color    []int
	Width    int
	Steps    int
}

func (op PenBezierOp) Apply(reg *Registry) (Result, error) {
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("bezier %d control points", len(op.Points)),
		func(c *Canvas) {
			c.Bezier(PointsFromInts(op.Points), colorOr(op.Color, Black),
				orInt(op.Width, 2), orInt(op.Steps, 50))
		})
}

// PenPointOp draws a dot on a stored canvas.
type PenPointOp struct {
	CanvasID string
	X, Y     int
	Color    []int
	Size     int
}

func (op PenPointOp) Apply(reg *Registry) (Result, error) {
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("point (%d,%d)", op.X, op.Y),
		func(c *Canvas) {
			c.Dot(float64(op.X), float64(op.Y), colorOr(op.Color, Black), orInt(op.Size, 3))
		})
}

// PenTextOp draws a string on a stored canvas.
type PenTextOp struct {
	CanvasID string
	X, Y     int
	Text     string
	Color    []int
	Size     int
	FontPath string
}

func (op PenTextOp) Apply(reg *Registry) (Result, error) {
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("text %q at (%d,%d)", op.Text, op.X, op.Y),
		func(c *Canvas) {
			c.Text(float64(op.X), float64(op.Y), op.Text, colorOr(op.Color, Black),
				float64(orInt(op.Size, 16)), op.FontPath)
		})
}

// PenFillOp flood-fills a region of a stored canvas.
type PenFillOp struct {
	CanvasID string
	X, Y     int
	Color    []int
}

func (op PenFillOp) Apply(reg *Registry) (Result, error) {
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("flood fill from (%d,%d)", op.X, op.Y),
		func(c *Canvas) {
			c.FloodFill(op.X, op.Y, colorOr(op.Color, RGB(255, 0, 0)))
		})
}

// PenPresetOp draws a preset scene element (car, house or tree) on a
// stored canvas.
type PenPresetOp struct {
	CanvasID string
	Preset   string
	X, Y     int
	Scale    float64
	Primary  []int
}

func (op PenPresetOp) Apply(reg *Registry) (Result, error) {
	scale := op.Scale
	if scale <= 0 {
		scale = 1
	}
	return penOp(reg, op.CanvasID,
		fmt.Sprintf("preset %s at (%d,%d) scale %.1f", op.Preset, op.X, op.Y, scale),
		func(c *Canvas) {
			x, y := float64(op.X), float64(op.Y)
			switch op.Preset {
			case "house":
				DrawHouse(c, x, y, scale,
					colorOr(op.Primary, RGBA(255, 230, 180, 255)),
					RGBA(180, 80, 50, 255))
			case "tree":
				DrawTree(c, x, y, scale,
					RGBA(139, 90, 43, 255),
					colorOr(op.Primary, RGBA(50, 180, 50, 255)))
			default: // car
				DrawCar(c, x, y, scale,
					colorOr(op.Primary, RGBA(220, 50, 50, 255)),
					RGBA(150, 200, 255, 255))
			}
		})
}

// SaveCanvasOp saves a stored canvas to a file.
type SaveCanvasOp struct {
	CanvasID string
	Path     string
}

func (op SaveCanvasOp) Apply(reg *Registry) (Result, error) {
	var saved string
	var out *Canvas
	err := reg.With(op.CanvasID, func(c *Canvas) error {
		var err error
		saved, err = c.Save(op.Path)
		out = c
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Summary: fmt.Sprintf("canvas %q saved to %s", op.CanvasID, saved),
		Canvas:  out,
	}, nil
}

// penOp runs a drawing function against a stored canvas under its
// per-canvas lock and logs the operation at debug level.
func penOp(reg *Registry, id, summary string, fn func(*Canvas)) (Result, error) {
	var out *Canvas
	err := reg.With(id, func(c *Canvas) error {
		fn(c)
		out = c
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	Logger().Debug("pen operation", "canvas", id, "op", summary)
	return Result{Summary: summary, Canvas: out}, nil
}
