package surface

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	full = vg.Rectangle{Max: vg.Point{X: 100, Y: 100}}
)

func square(r vg.Rectangle) []vg.Point {
	return []vg.Point{r.Min, {X: r.Max.X, Y: r.Min.Y}, r.Max, {X: r.Min.X, Y: r.Max.Y}}
}

// rgb returns the 8 bit color components of col.
func rgb(col color.Color) (r, g, b uint32) {
	r, g, b, _ = col.RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestToggles(t *testing.T) {
	tg := make(toggles)
	sty := draw.GlyphStyle{Color: red, Radius: 3, Shape: draw.CircleGlyph{}}
	pt := vg.Point{X: 10, Y: 10}

	assert.Equal(t, red, tg.flip(sty, pt, color.White).Color)
	assert.Equal(t, color.White, tg.flip(sty, pt, color.White).Color)
	assert.Equal(t, red, tg.flip(sty, pt, color.White).Color)

	other := sty
	other.Shape = draw.SquareGlyph{}
	assert.Equal(t, red, tg.flip(other, pt, color.White).Color, "different shape")
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	sty := draw.LineStyle{Color: red, Width: 1}
	rec.StrokeLines(sty, []vg.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}, []vg.Point{{X: 5, Y: 5}})
	rec.SetXOR(color.White)
	rec.DrawGlyph(draw.GlyphStyle{Color: red}, vg.Point{X: 3, Y: 4})
	rec.SetPaintMode()
	rec.DrawGlyph(draw.GlyphStyle{Color: red}, vg.Point{X: 6, Y: 7})

	assert.Equal(t, [][2]vg.Point{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: 1, Y: 1}, {X: 2, Y: 0}},
	}, rec.Segments())
	assert.Equal(t, []vg.Point{{X: 3, Y: 4}, {X: 6, Y: 7}}, rec.Glyphs())

	glyphs := rec.Filter(OpGlyph)
	require.Len(t, glyphs, 2)
	assert.True(t, glyphs[0].XOR)
	assert.False(t, glyphs[1].XOR)

	rec.ResetXOR()
	assert.Equal(t, OpResetXOR, rec.Ops[len(rec.Ops)-1].Kind)

	rec.Reset()
	assert.Empty(t, rec.Ops)
	rec.DrawGlyph(draw.GlyphStyle{Color: red}, vg.Point{})
	assert.False(t, rec.Ops[0].XOR)
}

func newImageCanvas() (*vgimg.Canvas, *Canvas) {
	img := vgimg.NewWith(vgimg.UseWH(100, 100), vgimg.UseDPI(72))
	return img, NewCanvas(draw.New(img))
}

func TestCanvasClip(t *testing.T) {
	img, c := newImageCanvas()
	c.Push()
	c.Clip(vg.Rectangle{Max: vg.Point{X: 50, Y: 50}})
	c.FillPolygon(red, square(full))
	c.DrawGlyph(draw.GlyphStyle{Color: red, Radius: 4, Shape: draw.BoxGlyph{}}, vg.Point{X: 80, Y: 80})
	c.Pop()

	pix := img.Image()
	r, g, _ := rgb(pix.At(25, 75)) // vg (25, 25)
	assert.Equal(t, uint32(255), r)
	assert.Equal(t, uint32(0), g)
	r, g, _ = rgb(pix.At(80, 20)) // vg (80, 80), clipped glyph
	assert.Equal(t, uint32(255), r)
	assert.Equal(t, uint32(255), g)

	// Pop restored the full clip rectangle.
	c.DrawGlyph(draw.GlyphStyle{Color: red, Radius: 4, Shape: draw.BoxGlyph{}}, vg.Point{X: 80, Y: 80})
	r, g, _ = rgb(pix.At(80, 20))
	assert.Equal(t, uint32(255), r)
	assert.Equal(t, uint32(0), g)
}

func TestCanvasXOR(t *testing.T) {
	img, c := newImageCanvas()
	sty := draw.GlyphStyle{Color: red, Radius: 5, Shape: draw.BoxGlyph{}}
	pt := vg.Point{X: 50, Y: 50}

	c.SetXOR(color.White)
	c.DrawGlyph(sty, pt)
	_, g, _ := rgb(img.Image().At(50, 50))
	assert.Equal(t, uint32(0), g, "first draw paints")

	c.DrawGlyph(sty, pt)
	_, g, _ = rgb(img.Image().At(50, 50))
	assert.Equal(t, uint32(255), g, "second draw erases")
	c.SetPaintMode()
}

func TestCanvasResetXOR(t *testing.T) {
	img, c := newImageCanvas()
	sty := draw.GlyphStyle{Color: red, Radius: 5, Shape: draw.BoxGlyph{}}
	pt := vg.Point{X: 50, Y: 50}

	for i := 0; i < 2; i++ {
		c.ResetXOR()
		c.FillPolygon(color.White, square(full))
		c.SetXOR(color.White)
		c.DrawGlyph(sty, pt)
		c.SetPaintMode()
		_, g, _ := rgb(img.Image().At(50, 50))
		assert.Equal(t, uint32(0), g, "draw %d", i)
	}
}

func TestCanvasAlpha(t *testing.T) {
	img, c := newImageCanvas()
	c.SetAlpha(0.5)
	c.FillPolygon(red, square(full))
	r, g, _ := rgb(img.Image().At(50, 50))
	assert.Equal(t, uint32(255), r)
	assert.InDelta(t, 128, g, 3)
}

func TestGG(t *testing.T) {
	ctx := gg.NewContext(100, 80)
	s := NewGG(ctx)
	assert.Equal(t, vg.Rectangle{Max: vg.Point{X: 100, Y: 80}}, s.Size())

	s.Push()
	s.Clip(vg.Rectangle{Max: vg.Point{X: 50, Y: 80}})
	s.FillPolygon(red, square(vg.Rectangle{Max: vg.Point{X: 100, Y: 80}}))
	s.Pop()
	s.DrawGlyph(draw.GlyphStyle{Color: red, Radius: 4, Shape: draw.BoxGlyph{}}, vg.Point{X: 200, Y: 10})
	s.Finish()

	r, g, _ := rgb(ctx.Image().At(20, 40))
	assert.Equal(t, uint32(255), r)
	assert.Equal(t, uint32(0), g)
	assert.Empty(t, s.stack)
}
