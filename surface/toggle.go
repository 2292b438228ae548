// Package surface implements render.Surface on top of gonum vg canvases and
// gogpu gg contexts, plus a Recorder for tests.
package surface

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// glyphKey identifies a glyph drawn in XOR mode.
type glyphKey struct {
	x, y, r vg.Length
	shape   string
}

// toggles emulates XOR painting of glyphs on surfaces that only paint:
// the first draw of a glyph paints it, drawing the same glyph again
// paints it in the background color.
type toggles map[glyphKey]bool

func (t toggles) flip(sty draw.GlyphStyle, pt vg.Point, bg color.Color) draw.GlyphStyle {
	k := glyphKey{pt.X, pt.Y, sty.Radius, fmt.Sprintf("%T", sty.Shape)}
	if t[k] {
		delete(t, k)
		sty.Color = bg
		return sty
	}
	t[k] = true
	return sty
}

func (t toggles) reset() {
	for k := range t {
		delete(t, k)
	}
}

// state is the part of a surface saved by Push.
type state struct {
	clip  vg.Rectangle
	alpha float64
	xor   bool
	bg    color.Color
}
