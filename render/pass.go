package render

import (
	"fmt"
	"math"

	"github.com/vdobler/fastplot/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// pass draws the unprocessed items of one series.
type pass struct {
	dc     *DrawContext
	r      *Renderer
	ds     *data.Dataset
	s      *data.Series
	series int
	n      int
	c      *Cursor
	st     *SeriesStats

	line     draw.LineStyle
	glyph    draw.GlyphStyle
	gapLimit float64
}

func (p *pass) run() {
	p.line = p.r.lineStyle(p.series)
	p.glyph = p.r.glyphStyle(p.series)
	p.gapLimit = math.Inf(1)
	if p.n > 0 {
		first, _ := p.s.XY(0)
		last, _ := p.s.XY(p.n - 1)
		p.gapLimit = p.r.Gap.limit(first, last, p.n)
	}

	for item := p.c.LastProcessed + 1; item < p.n; item++ {
		p.st.visit(item)
		switch p.r.Kind {
		case Generic, LinePath:
			p.linePath(item)
		case Step:
			p.step(item)
		case Scatter:
			p.scatter(item)
		case XVersusY:
			p.xvsy(item)
		default:
			panic(fmt.Sprintf("render: unknown kind %s", p.r.Kind))
		}
		p.c.LastProcessed = item
	}
}

// ----------------------------------------------------------------------------
// Connected items

type outcome int

const (
	hole    outcome = iota // not drawable
	anchor                 // starts a new line
	skipped                // decimated
	segment                // continues the line from the reference item
)

// advance classifies item for the connected kinds and maintains the
// backtrack so that item-Backtrack always is the last emitted item.
// For a segment from is the screen position of that item.
func (p *pass) advance(item int, gaps bool) (from, to vg.Point, o outcome) {
	x, y := p.s.XY(item)
	to, ok := p.dc.toScreen(x, y)
	if !ok {
		p.st.Holes++
		p.c.pathGood = false
		p.c.Backtrack++
		return from, to, hole
	}
	if !p.c.pathGood {
		p.start()
		return to, to, anchor
	}
	if gaps && item > 0 {
		px, _ := p.s.XY(item - 1)
		if math.Abs(x-px) > p.gapLimit {
			p.st.Gaps++
			p.start()
			return to, to, anchor
		}
	}

	rx, ry := p.s.XY(p.c.reference(item))
	from, _ = p.dc.toScreen(rx, ry)
	if p.r.Kind != Generic && !p.r.Decimation.Emit(from, to) {
		p.st.Decimated++
		p.c.Backtrack++
		return from, to, skipped
	}
	p.c.Backtrack = 1
	p.st.Emitted++
	return from, to, segment
}

func (p *pass) start() {
	p.c.pathGood = true
	p.c.Backtrack = 1
	p.st.Emitted++
}

// linePath accumulates the sub-paths of the series and strokes them once
// the last item has been visited. The last point stays pending so that
// the next pass continues the line from it.
func (p *pass) linePath(item int) {
	from, to, o := p.advance(item, true)
	switch o {
	case anchor:
		p.c.pending = append(p.c.pending, []vg.Point{to})
		p.mark(item, to)
	case segment:
		if len(p.c.pending) == 0 {
			p.c.pending = append(p.c.pending, []vg.Point{from})
		}
		last := len(p.c.pending) - 1
		p.c.pending[last] = append(p.c.pending[last], to)
		p.mark(item, to)
	}

	if item == p.n-1 {
		p.flush()
	}
}

func (p *pass) flush() {
	var lines [][]vg.Point
	for _, sp := range p.c.pending {
		if len(sp) > 1 {
			lines = append(lines, sp)
		}
	}
	if len(lines) > 0 {
		p.dc.Surface.StrokeLines(p.line, lines...)
	}

	if n := len(p.c.pending); p.c.pathGood && n > 0 {
		sp := p.c.pending[n-1]
		p.c.pending = [][]vg.Point{{sp[len(sp)-1]}}
	} else {
		p.c.pending = nil
	}
}

func (p *pass) step(item int) {
	from, to, o := p.advance(item, false)
	if o != segment {
		return
	}
	corner := vg.Point{X: to.X, Y: from.Y}
	if p.dc.Orientation == Horizontal {
		corner = vg.Point{X: from.X, Y: to.Y}
	}
	p.dc.Surface.StrokeLines(p.line, []vg.Point{from, corner, to})
	p.entity(item, Shape{Center: to, Glyph: p.glyph})
}

func (p *pass) xvsy(item int) {
	from, to, o := p.advance(item, false)
	if o == segment {
		p.dc.Surface.StrokeLines(p.line, []vg.Point{from, to})
		p.entity(item, Shape{Center: to, Glyph: p.glyph})
	}
	if item == p.n-1 && o != hole {
		p.moveHead(to)
	}
}

// moveHead erases the terminal marker on screen and draws it at pt.
func (p *pass) moveHead(pt vg.Point) {
	sf := p.dc.Surface
	sf.SetXOR(p.dc.Background)
	if old := p.c.LastShape; old != nil {
		sf.DrawGlyph(old.Glyph, old.Center)
	}
	head := Shape{Center: pt, Glyph: p.r.headStyle(p.series)}
	if head.Intersects(p.dc.DataArea) {
		sf.DrawGlyph(head.Glyph, head.Center)
		p.c.LastShape = &head
	} else {
		p.c.LastShape = nil
	}
	sf.SetPaintMode()
}

// ----------------------------------------------------------------------------
// Markers

func (p *pass) scatter(item int) {
	x, y := p.s.XY(item)
	to, ok := p.dc.toScreen(x, y)
	if !ok {
		p.st.Holes++
		p.c.Backtrack++
		return
	}
	if ref := p.c.reference(item); ref >= 0 {
		rx, ry := p.s.XY(ref)
		if from, ok := p.dc.toScreen(rx, ry); ok && !p.r.Decimation.Emit(from, to) {
			p.st.Decimated++
			p.c.Backtrack++
			return
		}
	}

	sh := Shape{Center: to, Glyph: p.glyph}
	if !sh.Intersects(p.dc.DataArea) {
		p.st.Clipped++
		p.c.Backtrack++
		return
	}
	p.dc.Surface.DrawGlyph(sh.Glyph, sh.Center)
	p.image(item, to)
	p.c.LastShape = &sh
	p.c.Backtrack = 1
	p.st.Emitted++
	p.entity(item, sh)
}

// mark draws the optional marker and image of a line point.
func (p *pass) mark(item int, pt vg.Point) {
	sh := Shape{Center: pt, Glyph: p.glyph}
	if p.r.Shapes && sh.Intersects(p.dc.DataArea) {
		p.dc.Surface.DrawGlyph(sh.Glyph, sh.Center)
	}
	p.image(item, pt)
	p.entity(item, sh)
}

func (p *pass) image(item int, pt vg.Point) {
	if p.r.Image == nil {
		return
	}
	img := p.r.Image(p.series, item)
	if img == nil {
		return
	}
	b := img.Bounds()
	p.dc.Surface.DrawImage(imageRect(pt, b.Dx(), b.Dy()), img)
}

func (p *pass) entity(item int, sh Shape) {
	if p.dc.Entities == nil {
		return
	}
	p.dc.Entities.Add(Entity{
		Area:    sh.Bounds(),
		Dataset: p.ds,
		Series:  p.series,
		Item:    item,
		X:       sh.Center.X,
		Y:       sh.Center.Y,
	})
}

// ----------------------------------------------------------------------------
// Generic

// generic draws all items of s without touching any stored cursor.
func (d *Dispatcher) generic(dc *DrawContext, r *Renderer, ds *data.Dataset, s *data.Series, i int, ss *SeriesStats) {
	p := &pass{dc: dc, r: r, ds: ds, s: s, series: i, n: s.Len(), c: newCursor(s), st: ss}
	p.run()
}
