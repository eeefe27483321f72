// Package gamepaint generates placeholder 2D raster images for game UI
// prototyping: buttons, icons, progress bars, dialog boxes, tooltips and
// similar elements, plus a small free-form "pen" drawing API with
// server-side canvas state.
//
// # Overview
//
// The package is built around two cooperating parts:
//
//   - Canvas: a fixed-size RGBA pixel buffer with immediate-mode drawing
//     primitives (rectangles, ellipses, polygons, lines, arcs, Bezier
//     curves, text, flood fill) and a library of composite game-UI shapes
//     built purely from those primitives.
//   - Registry: a concurrency-safe mapping from string identifiers to live
//     Canvas instances, enabling a stateful draw-incrementally-save-once
//     workflow for callers that cannot hold object references across
//     separate calls.
//
// # Quick Start
//
//	c := gamepaint.NewCanvas(120, 40, gamepaint.Transparent)
//	opts := gamepaint.DefaultButtonOptions()
//	opts.Text = "Start"
//	c.Button(opts)
//	c.Save("output/button.png")
//
// # Design
//
// All drawing is best effort: primitives clip silently at the canvas
// edges and tolerate degenerate geometry by drawing nothing rather than
// failing. The only propagated failures are I/O errors on save and
// Registry lookups of unknown canvas ids.
//
// By default the package produces no log output. Call SetLogger to
// enable logging.
package gamepaint
