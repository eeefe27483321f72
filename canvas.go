package gamepaint

import (
	"image"
	"image/color"
)

// Canvas is a fixed-size RGBA pixel buffer with drawing operations.
// The origin is the top-left corner with y increasing downward.
// Dimensions are fixed at creation; drawing operations clip silently at
// the edges and never resize the buffer.
//
// Canvas implements image.Image and draw.Image over non-premultiplied
// RGBA pixels.
//
// Canvas is not safe for concurrent use. When shared through a Registry,
// mutation should go through Registry.With, which serializes access per
// canvas id.
type Canvas struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel, row-major
}

// NewCanvas creates a canvas filled with the given background color.
// Non-positive dimensions are clamped to 1 rather than rejected, in
// keeping with the best-effort drawing contract.
func NewCanvas(width, height int, bg Color) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
	if bg != (Color{}) {
		c.Clear(bg)
	}
	return c
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Pix returns the raw pixel data (non-premultiplied RGBA, 4 bytes per
// pixel, row-major).
func (c *Canvas) Pix() []uint8 {
	return c.pix
}

// SetPixel writes a pixel value directly, replacing whatever is there.
// Out-of-bounds coordinates are ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := (y*c.width + x) * 4
	c.pix[i+0] = col.R
	c.pix[i+1] = col.G
	c.pix[i+2] = col.B
	c.pix[i+3] = col.A
}

// PixelAt returns the color of a single pixel.
// Out-of-bounds coordinates return transparent black.
func (c *Canvas) PixelAt(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Transparent
	}
	i := (y*c.width + x) * 4
	return Color{R: c.pix[i+0], G: c.pix[i+1], B: c.pix[i+2], A: c.pix[i+3]}
}

// blendPixel composites col over the existing pixel (source-over,
// non-premultiplied). Out-of-bounds coordinates are ignored.
func (c *Canvas) blendPixel(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	if col.A == 0 {
		return
	}
	i := (y*c.width + x) * 4
	if col.A == 255 || c.pix[i+3] == 0 {
		c.pix[i+0] = col.R
		c.pix[i+1] = col.G
		c.pix[i+2] = col.B
		c.pix[i+3] = col.A
		return
	}

	sa := uint32(col.A)
	da := uint32(c.pix[i+3])
	// Coverage of the destination that remains visible.
	ra := da * (255 - sa) / 255
	oa := sa + ra
	blend := func(s, d uint8) uint8 {
		return uint8((uint32(s)*sa + uint32(d)*ra) / oa)
	}
	c.pix[i+0] = blend(col.R, c.pix[i+0])
	c.pix[i+1] = blend(col.G, c.pix[i+1])
	c.pix[i+2] = blend(col.B, c.pix[i+2])
	c.pix[i+3] = uint8(oa)
}

// Clear fills the entire canvas with a color, replacing all pixels.
func (c *Canvas) Clear(col Color) {
	for i := 0; i < len(c.pix); i += 4 {
		c.pix[i+0] = col.R
		c.pix[i+1] = col.G
		c.pix[i+2] = col.B
		c.pix[i+3] = col.A
	}
}

// Image returns a snapshot of the canvas as an image.NRGBA.
// The returned image holds a copy of the pixel data, so later drawing
// does not affect it.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.pix)
	return img
}

// NewCanvasFromImage creates a canvas initialized from an existing image.
func NewCanvasFromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := NewCanvas(bounds.Dx(), bounds.Dy(), Transparent)
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return c
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.PixelAt(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Set implements the draw.Image interface, replacing the pixel value.
// This is what allows font rendering and the standard image/draw
// machinery to target a Canvas directly.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, FromColor(col))
}
