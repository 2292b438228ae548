package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/vdobler/fastplot/render"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// GG is a render.Surface drawing onto a gogpu gg context. One vg unit is
// one pixel; the y axis is flipped so that the origin is the lower left
// corner like on vg canvases. Opacity below 1 is implemented with gg
// layers which are composited on Pop or Finish.
type GG struct {
	ctx *gg.Context
	h   float64
	state
	layers  int // layers pushed since the last Push
	stack   []ggFrame
	toggles toggles
}

type ggFrame struct {
	state
	layers int
}

var _ render.Surface = (*GG)(nil)

// NewGG returns a surface drawing onto ctx.
func NewGG(ctx *gg.Context) *GG {
	w, h := float64(ctx.Width()), float64(ctx.Height())
	return &GG{
		ctx: ctx,
		h:   h,
		state: state{
			clip:  vg.Rectangle{Max: vg.Point{X: vg.Length(w), Y: vg.Length(h)}},
			alpha: 1,
		},
		toggles: make(toggles),
	}
}

// Context returns the underlying context.
func (g *GG) Context() *gg.Context { return g.ctx }

// Size returns the size of the context as a vg rectangle.
func (g *GG) Size() vg.Rectangle {
	return vg.Rectangle{Max: vg.Point{X: vg.Length(g.ctx.Width()), Y: vg.Length(g.ctx.Height())}}
}

func (g *GG) y(y vg.Length) float64 { return g.h - float64(y) }

func (g *GG) StrokeLines(sty draw.LineStyle, lines ...[]vg.Point) {
	if sty.Color == nil || sty.Width <= 0 {
		return
	}
	g.ctx.SetColor(sty.Color)
	g.ctx.SetLineWidth(float64(sty.Width))
	if len(sty.Dashes) > 0 {
		dashes := make([]float64, len(sty.Dashes))
		for i, d := range sty.Dashes {
			dashes[i] = float64(d)
		}
		g.ctx.SetDash(dashes...)
	} else {
		g.ctx.ClearDash()
	}
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		g.ctx.MoveTo(float64(line[0].X), g.y(line[0].Y))
		for _, pt := range line[1:] {
			g.ctx.LineTo(float64(pt.X), g.y(pt.Y))
		}
		_ = g.ctx.Stroke()
	}
}

// DrawGlyph draws the gonum glyph shapes natively. Unknown shapes are
// drawn as rings.
func (g *GG) DrawGlyph(sty draw.GlyphStyle, pt vg.Point) {
	if !contains(g.clip, pt) {
		return
	}
	if g.xor {
		sty = g.toggles.flip(sty, pt, g.bg)
	}
	if sty.Color == nil {
		return
	}
	x, y, r := float64(pt.X), g.y(pt.Y), float64(sty.Radius)
	g.ctx.SetColor(sty.Color)
	g.ctx.ClearDash()
	g.ctx.SetLineWidth(1)

	switch sty.Shape.(type) {
	case draw.CircleGlyph:
		g.ctx.DrawCircle(x, y, r)
		_ = g.ctx.Fill()
	case draw.SquareGlyph:
		g.ctx.DrawRectangle(x-r, y-r, 2*r, 2*r)
		_ = g.ctx.Stroke()
	case draw.BoxGlyph:
		g.ctx.DrawRectangle(x-r, y-r, 2*r, 2*r)
		_ = g.ctx.Fill()
	case draw.TriangleGlyph, draw.PyramidGlyph:
		h := r * math.Sqrt(3) / 2
		g.ctx.MoveTo(x, y-r)
		g.ctx.LineTo(x+h, y+r/2)
		g.ctx.LineTo(x-h, y+r/2)
		g.ctx.ClosePath()
		if _, ok := sty.Shape.(draw.PyramidGlyph); ok {
			_ = g.ctx.Fill()
		} else {
			_ = g.ctx.Stroke()
		}
	case draw.PlusGlyph:
		g.ctx.MoveTo(x-r, y)
		g.ctx.LineTo(x+r, y)
		g.ctx.MoveTo(x, y-r)
		g.ctx.LineTo(x, y+r)
		_ = g.ctx.Stroke()
	case draw.CrossGlyph:
		d := r / math.Sqrt2
		g.ctx.MoveTo(x-d, y-d)
		g.ctx.LineTo(x+d, y+d)
		g.ctx.MoveTo(x-d, y+d)
		g.ctx.LineTo(x+d, y-d)
		_ = g.ctx.Stroke()
	default:
		g.ctx.DrawCircle(x, y, r)
		_ = g.ctx.Stroke()
	}
}

func (g *GG) FillPolygon(col color.Color, pts []vg.Point) {
	if col == nil || len(pts) < 3 {
		return
	}
	g.ctx.SetColor(col)
	g.ctx.MoveTo(float64(pts[0].X), g.y(pts[0].Y))
	for _, pt := range pts[1:] {
		g.ctx.LineTo(float64(pt.X), g.y(pt.Y))
	}
	g.ctx.ClosePath()
	_ = g.ctx.Fill()
}

func (g *GG) DrawImage(rect vg.Rectangle, img image.Image) {
	rect = render.CanonicRectangle(rect)
	if !overlaps(rect, g.clip) {
		return
	}
	g.ctx.DrawImageEx(gg.ImageBufFromImage(img), gg.DrawImageOptions{
		X:         float64(rect.Min.X),
		Y:         g.y(rect.Max.Y),
		DstWidth:  float64(rect.Max.X - rect.Min.X),
		DstHeight: float64(rect.Max.Y - rect.Min.Y),
		Opacity:   1,
		BlendMode: gg.BlendNormal,
	})
}

// FillText uses the font face set on the context; without one nothing is
// drawn. The vg font of sty is ignored, its alignment is honored.
func (g *GG) FillText(sty draw.TextStyle, pt vg.Point, txt string) {
	if g.ctx.Font() == nil || sty.Color == nil || !contains(g.clip, pt) {
		return
	}
	g.ctx.SetColor(sty.Color)
	ax := -float64(sty.XAlign)
	ay := 1 + float64(sty.YAlign)
	g.ctx.DrawStringAnchored(txt, float64(pt.X), g.y(pt.Y), ax, ay)
}

func (g *GG) SetXOR(background color.Color) {
	g.xor, g.bg = true, background
}

func (g *GG) SetPaintMode() { g.xor = false }

func (g *GG) ResetXOR() { g.toggles.reset() }

func (g *GG) SetAlpha(alpha float64) {
	if alpha < 1 {
		g.ctx.PushLayer(gg.BlendNormal, alpha)
		g.layers++
	}
	g.alpha = alpha
}

func (g *GG) Clip(r vg.Rectangle) {
	g.clip = intersect(g.clip, r)
	r = render.CanonicRectangle(r)
	g.ctx.ClipRect(float64(r.Min.X), g.y(r.Max.Y), float64(r.Max.X-r.Min.X), float64(r.Max.Y-r.Min.Y))
}

func (g *GG) Push() {
	g.stack = append(g.stack, ggFrame{state: g.state, layers: g.layers})
	g.layers = 0
	g.ctx.Push()
}

func (g *GG) Pop() {
	if len(g.stack) == 0 {
		return
	}
	g.popLayers()
	g.ctx.Pop()
	f := g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]
	g.state, g.layers = f.state, f.layers
}

// Finish composites all open layers. Call it before reading the image.
func (g *GG) Finish() {
	for len(g.stack) > 0 {
		g.Pop()
	}
	g.popLayers()
}

func (g *GG) popLayers() {
	for ; g.layers > 0; g.layers-- {
		g.ctx.PopLayer()
	}
}

func contains(r vg.Rectangle, pt vg.Point) bool {
	r = render.CanonicRectangle(r)
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}
