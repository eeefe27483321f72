package gamepaint

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func fix(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// Text draws a string with its top-left corner at (x, y). The requested
// font is resolved through LookupFace; when it is unavailable a fallback
// face is used so the call always renders something.
func (c *Canvas) Text(x, y float64, s string, col Color, size float64, fontPath string) {
	if s == "" {
		return
	}
	res := LookupFace(fontPath, size)
	m := res.Face.Metrics()
	d := &font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(col.NRGBA()),
		Face: res.Face,
		Dot:  fixed.Point26_6{X: fix(x), Y: fix(y) + m.Ascent},
	}
	d.DrawString(s)
}

// TextCentered draws a string centered horizontally and vertically on
// (cx, cy).
func (c *Canvas) TextCentered(cx, cy float64, s string, col Color, size float64, fontPath string) {
	if s == "" {
		return
	}
	res := LookupFace(fontPath, size)
	m := res.Face.Metrics()
	w := font.MeasureString(res.Face, s)
	d := &font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(col.NRGBA()),
		Face: res.Face,
		Dot: fixed.Point26_6{
			X: fix(cx) - w/2,
			Y: fix(cy) + (m.Ascent-m.Descent)/2,
		},
	}
	d.DrawString(s)
}

// MeasureText returns the advance width and line height, in pixels, of
// a string rendered at the given size with the given font.
func MeasureText(s string, size float64, fontPath string) (int, int) {
	res := LookupFace(fontPath, size)
	m := res.Face.Metrics()
	w := font.MeasureString(res.Face, s)
	return w.Ceil(), (m.Ascent + m.Descent).Ceil()
}
