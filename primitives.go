package gamepaint

import "math"

// GradientDirection selects how a gradient fill is interpolated across
// a shape.
type GradientDirection string

// Gradient directions.
const (
	GradientNone       GradientDirection = ""
	GradientHorizontal GradientDirection = "horizontal"
	GradientVertical   GradientDirection = "vertical"
	GradientDiagonal   GradientDirection = "diagonal"
	GradientRadial     GradientDirection = "radial"
)

// maxFloodPixels bounds the number of pixels a flood fill may visit,
// guaranteeing termination on pathological inputs.
const maxFloodPixels = 100000

// Rect draws an axis-aligned rectangle. fill and border are optional;
// a nil color draws nothing for that part. The border is stroked inward
// from the rectangle edge.
func (c *Canvas) Rect(x, y, w, h float64, fill, border *Color, borderWidth int) {
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := x0+int(math.Round(w)), y0+int(math.Round(h))
	if x1 <= x0 || y1 <= y0 {
		return
	}
	if fill != nil {
		c.fillRows(x0, y0, x1, y1, *fill)
	}
	if border != nil && borderWidth > 0 {
		bw := borderWidth
		if bw*2 > x1-x0 {
			bw = (x1 - x0 + 1) / 2
		}
		if bw*2 > y1-y0 {
			bw = (y1 - y0 + 1) / 2
		}
		c.fillRows(x0, y0, x1, y0+bw, *border)       // top
		c.fillRows(x0, y1-bw, x1, y1, *border)       // bottom
		c.fillRows(x0, y0+bw, x0+bw, y1-bw, *border) // left
		c.fillRows(x1-bw, y0+bw, x1, y1-bw, *border) // right
	}
}

// fillRows blends a color over the half-open pixel rectangle
// [x0,x1)×[y0,y1), clipped to the canvas.
func (c *Canvas) fillRows(x0, y0, x1, y1 int, col Color) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > c.width {
		x1 = c.width
	}
	if y1 > c.height {
		y1 = c.height
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.blendPixel(x, y, col)
		}
	}
}

// insideRoundedRect reports whether the continuous point (px, py) lies
// inside the rounded rectangle with origin (x, y), size (w, h) and
// corner radius r.
func insideRoundedRect(px, py, x, y, w, h, r float64) bool {
	if px < x || px >= x+w || py < y || py >= y+h {
		return false
	}
	if r <= 0 {
		return true
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	// Corner circle centers.
	var cx, cy float64
	switch {
	case px < x+r && py < y+r:
		cx, cy = x+r, y+r
	case px >= x+w-r && py < y+r:
		cx, cy = x+w-r, y+r
	case px < x+r && py >= y+h-r:
		cx, cy = x+r, y+h-r
	case px >= x+w-r && py >= y+h-r:
		cx, cy = x+w-r, y+h-r
	default:
		return true
	}
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}

// RoundedRect draws a rectangle with rounded corners. fill and border
// are optional. The border is a stroke of the given width drawn inward
// from the outline.
func (c *Canvas) RoundedRect(x, y, w, h, radius float64, fill, border *Color, borderWidth int) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := int(math.Ceil(x + w))
	y1 := int(math.Ceil(y + h))
	bw := float64(borderWidth)
	for yi := max(y0, 0); yi < min(y1, c.height); yi++ {
		for xi := max(x0, 0); xi < min(x1, c.width); xi++ {
			px, py := float64(xi)+0.5, float64(yi)+0.5
			if !insideRoundedRect(px, py, x, y, w, h, radius) {
				continue
			}
			onBorder := border != nil && borderWidth > 0 &&
				!insideRoundedRect(px, py, x+bw, y+bw, w-2*bw, h-2*bw, radius-bw)
			switch {
			case onBorder:
				c.blendPixel(xi, yi, *border)
			case fill != nil:
				c.blendPixel(xi, yi, *fill)
			}
		}
	}
}

// RoundedRectGradient draws a rounded rectangle filled with a linear
// (or radial) gradient from one color to another. The gradient is
// computed over the shape's bounding box and masked to the rounded
// outline before compositing, so pixels outside the outline are
// untouched.
func (c *Canvas) RoundedRectGradient(x, y, w, h, radius float64, dir GradientDirection, from, to Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if dir == GradientNone {
		c.RoundedRect(x, y, w, h, radius, &from, nil, 0)
		return
	}
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := int(math.Ceil(x + w))
	y1 := int(math.Ceil(y + h))
	cx, cy := x+w/2, y+h/2
	maxDist := math.Hypot(w/2, h/2)
	for yi := max(y0, 0); yi < min(y1, c.height); yi++ {
		for xi := max(x0, 0); xi < min(x1, c.width); xi++ {
			px, py := float64(xi)+0.5, float64(yi)+0.5
			if !insideRoundedRect(px, py, x, y, w, h, radius) {
				continue
			}
			var t float64
			switch dir {
			case GradientVertical:
				t = (float64(yi) - y) / math.Max(h-1, 1)
			case GradientHorizontal:
				t = (float64(xi) - x) / math.Max(w-1, 1)
			case GradientDiagonal:
				t = (float64(xi) - x + float64(yi) - y) / math.Max(w+h-2, 1)
			case GradientRadial:
				if maxDist > 0 {
					t = math.Hypot(px-cx, py-cy) / maxDist
				}
			}
			c.blendPixel(xi, yi, from.Lerp(to, t))
		}
	}
}

// Ellipse draws an ellipse inscribed in the bounding box (x, y, w, h).
// When both fill and border are present, the border is drawn as a larger
// concentric ellipse underneath the fill, approximating a stroke; when
// only a border is given, a ring of the given width is drawn inside the
// bounding box.
func (c *Canvas) Ellipse(x, y, w, h float64, fill, border *Color, borderWidth int) {
	if w <= 0 || h <= 0 {
		return
	}
	bw := float64(borderWidth)
	if border != nil && borderWidth > 0 {
		if fill != nil {
			c.fillEllipse(x-bw, y-bw, w+2*bw, h+2*bw, *border)
		} else {
			c.ellipseRing(x, y, w, h, bw, *border)
		}
	}
	if fill != nil {
		c.fillEllipse(x, y, w, h, *fill)
	}
}

// Circle draws a circle of the given radius centered at (cx, cy).
// The border, if any, is a concentric circle of radius r+borderWidth
// drawn underneath the fill.
func (c *Canvas) Circle(cx, cy, r float64, fill, border *Color, borderWidth int) {
	c.Ellipse(cx-r, cy-r, 2*r, 2*r, fill, border, borderWidth)
}

func insideEllipse(px, py, x, y, w, h float64) bool {
	rx, ry := w/2, h/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx := (px - (x + rx)) / rx
	dy := (py - (y + ry)) / ry
	return dx*dx+dy*dy <= 1
}

func (c *Canvas) fillEllipse(x, y, w, h float64, col Color) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for yi := max(y0, 0); yi < min(y1, c.height); yi++ {
		for xi := max(x0, 0); xi < min(x1, c.width); xi++ {
			if insideEllipse(float64(xi)+0.5, float64(yi)+0.5, x, y, w, h) {
				c.blendPixel(xi, yi, col)
			}
		}
	}
}

func (c *Canvas) ellipseRing(x, y, w, h, bw float64, col Color) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for yi := max(y0, 0); yi < min(y1, c.height); yi++ {
		for xi := max(x0, 0); xi < min(x1, c.width); xi++ {
			px, py := float64(xi)+0.5, float64(yi)+0.5
			if insideEllipse(px, py, x, y, w, h) &&
				!insideEllipse(px, py, x+bw, y+bw, w-2*bw, h-2*bw) {
				c.blendPixel(xi, yi, col)
			}
		}
	}
}

// Polygon draws a filled and/or outlined simple polygon. The fill uses
// the even-odd rule; rendering of self-intersecting polygons follows
// that rule as well. Fewer than three points draws nothing.
func (c *Canvas) Polygon(pts []Point, fill, border *Color, borderWidth int) {
	if len(pts) < 3 {
		return
	}
	if fill != nil {
		c.fillPolygon(pts, *fill)
	}
	if border != nil && borderWidth > 0 {
		c.Polyline(pts, *border, borderWidth, true)
	}
}

// RegularPolygon draws a regular polygon with n sides inscribed in a
// circle of the given radius. rotation is in degrees; at rotation 0 one
// vertex points straight up. Fewer than three sides draws nothing.
func (c *Canvas) RegularPolygon(n int, cx, cy, radius, rotation float64, fill, border *Color, borderWidth int) {
	pts := regularPolygonPoints(n, cx, cy, radius, rotation)
	c.Polygon(pts, fill, border, borderWidth)
}

// fillPolygon scan-fills a polygon using the even-odd rule, sampling at
// pixel centers.
func (c *Canvas) fillPolygon(pts []Point, col Color) {
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := max(int(math.Floor(minY)), 0)
	y1 := min(int(math.Ceil(maxY)), c.height-1)

	var xs []float64
	for yi := y0; yi <= y1; yi++ {
		yc := float64(yi) + 0.5
		xs = xs[:0]
		for i := range pts {
			p1 := pts[i]
			p2 := pts[(i+1)%len(pts)]
			if (p1.Y <= yc && p2.Y > yc) || (p2.Y <= yc && p1.Y > yc) {
				xs = append(xs, p1.X+(yc-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xa := max(int(math.Ceil(xs[i]-0.5)), 0)
			xb := min(int(math.Floor(xs[i+1]-0.5)), c.width-1)
			for xi := xa; xi <= xb; xi++ {
				c.blendPixel(xi, yi, col)
			}
		}
	}
}

// sortFloats sorts a small slice in place. Insertion sort keeps the
// scanline inner loop allocation-free.
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

// Line draws a straight line segment with round caps.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col Color, width int) {
	c.Polyline([]Point{Pt(x1, y1), Pt(x2, y2)}, col, width, false)
}

// Polyline strokes a sequence of connected line segments with round
// joins and caps. When closed, the first point is appended to the end
// before stroking. Fewer than two points, or a non-positive width,
// draws nothing.
func (c *Canvas) Polyline(pts []Point, col Color, width int, closed bool) {
	if len(pts) < 2 || width < 1 {
		return
	}
	if closed {
		pts = append(append([]Point(nil), pts...), pts[0])
	}

	// Accumulate coverage first so overlapping stamps composite once.
	mask := make([]bool, c.width*c.height)
	r := float64(width) / 2
	for i := 0; i+1 < len(pts); i++ {
		c.stampSegment(mask, pts[i], pts[i+1], r)
	}
	c.blendMask(mask, col)
}

// stampSegment marks every pixel within distance r of the segment by
// stamping discs at sub-pixel intervals along it.
func (c *Canvas) stampSegment(mask []bool, a, b Point, r float64) {
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	steps := int(math.Ceil(length * 2))
	if steps < 1 {
		steps = 1
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		c.stampDisc(mask, a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t, r)
	}
}

func (c *Canvas) stampDisc(mask []bool, cx, cy, r float64) {
	if r <= 0.5 {
		xi, yi := int(math.Floor(cx)), int(math.Floor(cy))
		if xi >= 0 && xi < c.width && yi >= 0 && yi < c.height {
			mask[yi*c.width+xi] = true
		}
		return
	}
	x0, y0 := int(math.Floor(cx-r)), int(math.Floor(cy-r))
	x1, y1 := int(math.Ceil(cx+r)), int(math.Ceil(cy+r))
	for yi := max(y0, 0); yi <= min(y1, c.height-1); yi++ {
		for xi := max(x0, 0); xi <= min(x1, c.width-1); xi++ {
			dx := float64(xi) + 0.5 - cx
			dy := float64(yi) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				mask[yi*c.width+xi] = true
			}
		}
	}
}

func (c *Canvas) blendMask(mask []bool, col Color) {
	for i, on := range mask {
		if on {
			c.blendPixel(i%c.width, i/c.width, col)
		}
	}
}

// Arc draws an elliptical arc inscribed in the bounding box (x, y, w, h)
// from startDeg to endDeg. Angles are in degrees with 0 at the +x axis,
// increasing clockwise in screen coordinates. If endDeg is less than
// startDeg the arc wraps through 360.
func (c *Canvas) Arc(x, y, w, h, startDeg, endDeg float64, col Color, width int) {
	if w <= 0 || h <= 0 || width < 1 {
		return
	}
	for endDeg < startDeg {
		endDeg += 360
	}
	sweep := endDeg - startDeg
	steps := int(math.Ceil(sweep))
	if steps < 8 {
		steps = 8
	}
	rx, ry := w/2, h/2
	cx, cy := x+rx, y+ry
	pts := make([]Point, 0, steps+1)
	for s := 0; s <= steps; s++ {
		a := (startDeg + sweep*float64(s)/float64(steps)) * math.Pi / 180
		pts = append(pts, Pt(cx+rx*math.Cos(a), cy+ry*math.Sin(a)))
	}
	c.Polyline(pts, col, width, false)
}

// Bezier draws a Bezier curve through the given control points
// (2 = linear, 3 = quadratic, 4 = cubic), sampled at steps+1 evenly
// spaced parameter values and stroked as a polyline. Fewer than two
// control points draws nothing; a non-positive steps value degenerates
// to a single chord.
func (c *Canvas) Bezier(ctrl []Point, col Color, width, steps int) {
	if len(ctrl) < 2 {
		return
	}
	if steps < 1 {
		steps = 1
	}
	pts := make([]Point, 0, steps+1)
	for s := 0; s <= steps; s++ {
		pts = append(pts, bezierPoint(ctrl, float64(s)/float64(steps)))
	}
	c.Polyline(pts, col, width, false)
}

// Dot draws a filled circle of diameter size centered at (x, y).
// This is the "point" pen primitive; it is a disc, not a 1-pixel set.
func (c *Canvas) Dot(x, y float64, col Color, size int) {
	if size < 1 {
		return
	}
	r := float64(size) / 2
	if size == 1 {
		c.blendPixel(int(math.Floor(x)), int(math.Floor(y)), col)
		return
	}
	c.fillEllipse(x-r, y-r, 2*r, 2*r, col)
}

// FloodFill performs a 4-connected breadth-first seed fill starting at
// (x, y), replacing all contiguous pixels that exactly match the seed
// pixel's color with the new color. The fill aborts, leaving a partial
// result, once maxFloodPixels pixels have been filled; this bounds the
// operation on pathological inputs and is by contract not an error.
// Out-of-bounds seeds and seeds already matching the target color are
// no-ops.
func (c *Canvas) FloodFill(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	original := c.PixelAt(x, y)
	if original == col {
		return
	}

	type cell struct{ x, y int }
	queue := []cell{{x, y}}
	filled := 0
	for len(queue) > 0 && filled < maxFloodPixels {
		p := queue[0]
		queue = queue[1:]
		if p.x < 0 || p.x >= c.width || p.y < 0 || p.y >= c.height {
			continue
		}
		if c.PixelAt(p.x, p.y) != original {
			continue
		}
		c.SetPixel(p.x, p.y, col)
		filled++
		queue = append(queue,
			cell{p.x + 1, p.y},
			cell{p.x - 1, p.y},
			cell{p.x, p.y + 1},
			cell{p.x, p.y - 1},
		)
	}
}
