package surface

import (
	"image"
	"image/color"

	"github.com/vdobler/fastplot/render"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Canvas is a render.Surface drawing onto a gonum draw.Canvas. Clipping
// is done geometrically: lines and polygons are cut at the clip rectangle,
// glyphs and text outside of it are dropped. Opacity scales the alpha of
// every color drawn.
type Canvas struct {
	canvas draw.Canvas
	state
	stack   []state
	toggles toggles
}

var _ render.Surface = (*Canvas)(nil)

// NewCanvas returns a surface drawing onto c, clipped to c.Rectangle.
func NewCanvas(c draw.Canvas) *Canvas {
	return &Canvas{
		canvas:  c,
		state:   state{clip: c.Rectangle, alpha: 1},
		toggles: make(toggles),
	}
}

// Canvas returns the underlying canvas.
func (c *Canvas) Canvas() draw.Canvas { return c.canvas }

func (c *Canvas) clipped() *draw.Canvas {
	return &draw.Canvas{Canvas: c.canvas.Canvas, Rectangle: c.clip}
}

func (c *Canvas) color(col color.Color) color.Color {
	return render.WithAlpha(col, c.alpha)
}

func (c *Canvas) StrokeLines(sty draw.LineStyle, lines ...[]vg.Point) {
	cc := c.clipped()
	sty.Color = c.color(sty.Color)
	if clipped := cc.ClipLinesXY(lines...); len(clipped) > 0 {
		cc.StrokeLines(sty, clipped...)
	}
}

func (c *Canvas) DrawGlyph(sty draw.GlyphStyle, pt vg.Point) {
	if c.xor {
		sty = c.toggles.flip(sty, pt, c.bg)
	}
	sty.Color = c.color(sty.Color)
	c.clipped().DrawGlyph(sty, pt)
}

func (c *Canvas) FillPolygon(col color.Color, pts []vg.Point) {
	cc := c.clipped()
	if poly := cc.ClipPolygonXY(pts); len(poly) > 2 {
		cc.FillPolygon(c.color(col), poly)
	}
}

func (c *Canvas) DrawImage(rect vg.Rectangle, img image.Image) {
	if !overlaps(rect, c.clip) {
		return
	}
	c.canvas.DrawImage(rect, img)
}

func (c *Canvas) FillText(sty draw.TextStyle, pt vg.Point, txt string) {
	cc := c.clipped()
	if !cc.Contains(pt) {
		return
	}
	sty.Color = c.color(sty.Color)
	cc.FillText(sty, pt, txt)
}

func (c *Canvas) SetXOR(background color.Color) {
	c.xor, c.bg = true, background
}

func (c *Canvas) SetPaintMode() { c.xor = false }

func (c *Canvas) ResetXOR() { c.toggles.reset() }

func (c *Canvas) SetAlpha(alpha float64) { c.alpha = alpha }

// Clip intersects the current clip rectangle with r.
func (c *Canvas) Clip(r vg.Rectangle) { c.clip = intersect(c.clip, r) }

func (c *Canvas) Push() { c.stack = append(c.stack, c.state) }

func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// ----------------------------------------------------------------------------
// Rectangles

func overlaps(a, b vg.Rectangle) bool {
	a, b = render.CanonicRectangle(a), render.CanonicRectangle(b)
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}

func intersect(a, b vg.Rectangle) vg.Rectangle {
	a, b = render.CanonicRectangle(a), render.CanonicRectangle(b)
	r := vg.Rectangle{
		Min: vg.Point{X: maxLen(a.Min.X, b.Min.X), Y: maxLen(a.Min.Y, b.Min.Y)},
		Max: vg.Point{X: minLen(a.Max.X, b.Max.X), Y: minLen(a.Max.Y, b.Max.Y)},
	}
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

func minLen(a, b vg.Length) vg.Length {
	if a < b {
		return a
	}
	return b
}

func maxLen(a, b vg.Length) vg.Length {
	if a > b {
		return a
	}
	return b
}
