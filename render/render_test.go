package render_test

import (
	"image"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vdobler/fastplot/data"
	"github.com/vdobler/fastplot/render"
	"github.com/vdobler/fastplot/surface"
	"gonum.org/v1/plot/vg"
)

// linear maps [min,max] onto the full extent of the area.
type linear struct{ min, max float64 }

func (a linear) ValueToScreen(v float64, area vg.Rectangle, e render.Edge) float64 {
	lo, hi := float64(area.Min.X), float64(area.Max.X)
	if !e.Horizontal() {
		lo, hi = float64(area.Min.Y), float64(area.Max.Y)
	}
	return lo + (v-a.min)*(hi-lo)/(a.max-a.min)
}

var area = vg.Rectangle{Max: vg.Point{X: 100, Y: 100}}

// fixture renders one dataset onto a recorder with data coordinates equal
// to screen coordinates.
type fixture struct {
	rec     *surface.Recorder
	dc      *render.DrawContext
	ds      *data.Dataset
	s       *data.Series
	r       *render.Renderer
	cursors *render.CursorSet
}

func newFixture(k render.Kind) *fixture {
	rec := &surface.Recorder{}
	ds := data.NewDataset()
	return &fixture{
		rec: rec,
		dc: &render.DrawContext{
			Surface:    rec,
			DataArea:   area,
			Domain:     linear{0, 100},
			Range:      linear{0, 100},
			DomainEdge: render.Bottom,
			RangeEdge:  render.Left,
		},
		ds:      ds,
		s:       ds.NewSeries("s"),
		r:       render.NewRenderer(k),
		cursors: render.NewCursorSet(),
	}
}

func (f *fixture) add(t *testing.T, pts ...float64) {
	t.Helper()
	for i := 0; i+1 < len(pts); i += 2 {
		require.NoError(t, f.s.Add(pts[i], pts[i+1]))
	}
}

func (f *fixture) draw(full bool) render.SeriesStats {
	f.rec.Reset()
	st := render.Render(f.dc, f.r, f.ds, f.cursors, full)
	return st.Series[0]
}

func (f *fixture) cursor(t *testing.T) *render.Cursor {
	t.Helper()
	c, ok := f.cursors.Lookup(f.s)
	require.True(t, ok, "no cursor")
	return c
}

func pt(x, y vg.Length) vg.Point { return vg.Point{X: x, Y: y} }

func seg(x0, y0, x1, y1 vg.Length) [2]vg.Point { return [2]vg.Point{pt(x0, y0), pt(x1, y1)} }

func TestEndToEndAppend(t *testing.T) {
	f := newFixture(render.LinePath)
	f.add(t, 0, 0, 1, 10, 2, 20, 3, 30, 4, 40)

	st := f.draw(true)
	assert.Equal(t, 5, st.Visited)
	assert.Equal(t, [][2]vg.Point{
		seg(0, 0, 1, 10), seg(1, 10, 2, 20), seg(2, 20, 3, 30), seg(3, 30, 4, 40),
	}, f.rec.Segments())
	assert.Equal(t, 4, f.cursor(t).LastProcessed)

	f.add(t, 5, 5)
	st = f.draw(false)
	assert.Equal(t, 5, st.First)
	assert.Equal(t, 5, st.Last)
	assert.Equal(t, 1, st.Visited)
	assert.Equal(t, [][2]vg.Point{seg(4, 40, 5, 5)}, f.rec.Segments())

	f.add(t, 6, 5.0001)
	st = f.draw(false)
	assert.Equal(t, 1, st.Decimated)
	assert.Empty(t, f.rec.Segments())
	assert.Equal(t, 6, f.cursor(t).LastProcessed)
	assert.Equal(t, 2, f.cursor(t).Backtrack)

	f.add(t, 7, 10)
	st = f.draw(false)
	assert.Equal(t, 1, st.Emitted)
	assert.Equal(t, [][2]vg.Point{seg(5, 5, 7, 10)}, f.rec.Segments())
	assert.Equal(t, 1, f.cursor(t).Backtrack)
}

func TestResumeVisitsEachItemOnce(t *testing.T) {
	for _, k := range []render.Kind{render.LinePath, render.Step, render.Scatter, render.XVersusY} {
		t.Run(k.String(), func(t *testing.T) {
			f := newFixture(k)
			rnd := rand.New(rand.NewSource(int64(k)))
			x := 0.0
			visited := 0
			for p := 0; p < 20; p++ {
				before := f.s.Len()
				for n := rnd.Intn(5); n > 0; n-- {
					x += rnd.Float64()
					f.add(t, x, rnd.Float64()*100)
				}
				st := f.draw(p == 0)
				visited += st.Visited
				if f.s.Len() > before {
					assert.Equal(t, before, st.First, "pass %d", p)
					assert.Equal(t, f.s.Len()-1, st.Last, "pass %d", p)
				} else {
					assert.Equal(t, -1, st.First, "pass %d", p)
				}
				assert.Equal(t, f.s.Len()-1, f.cursor(t).LastProcessed)
				assert.Equal(t, st.Visited, st.Emitted+st.Decimated+st.Holes+st.Clipped)
			}
			assert.Equal(t, f.s.Len(), visited)
		})
	}
}

var shouldEmitTests = []struct {
	x0, y0, x1, y1 float64
	want           bool
}{
	{0, 0, 0, 0, false},
	{0, 0, 2, 0, false},
	{0, 0, 2, 2, false},
	{0, 0, 2.001, 0, true},
	{0, 0, 0, -2.001, true},
	{10, 10, 8, 12, false},
	{10, 10, 7.9, 10, true},
}

func TestShouldEmit(t *testing.T) {
	for i, tc := range shouldEmitTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := render.ShouldEmit(tc.x0, tc.y0, tc.x1, tc.y1, render.DefaultThreshold)
			if got != tc.want {
				t.Errorf("ShouldEmit(%g,%g,%g,%g)=%t, want %t", tc.x0, tc.y0, tc.x1, tc.y1, got, tc.want)
			}
		})
	}

	d := render.Decimation{Threshold: -1}
	assert.True(t, d.Emit(pt(1, 1), pt(1, 1)), "disabled decimation emits everything")
	d = render.Decimation{Threshold: 10}
	assert.False(t, d.Emit(pt(0, 0), pt(10, 10)))
}

func TestBacktrackComparesWithLastDrawn(t *testing.T) {
	f := newFixture(render.XVersusY)
	// Each step is below the threshold, their sum is not.
	f.add(t, 10, 10, 11, 10, 12, 10, 13, 10)
	st := f.draw(true)
	assert.Equal(t, 2, st.Decimated)
	assert.Equal(t, [][2]vg.Point{seg(10, 10, 13, 10)}, f.rec.Segments())
}

func TestTruncationResetsCursor(t *testing.T) {
	f := newFixture(render.LinePath)
	for i := 0; i < 10; i++ {
		f.add(t, float64(i*10), float64(i*10))
	}
	f.draw(true)
	require.Equal(t, 9, f.cursor(t).LastProcessed)

	require.NoError(t, f.s.DeleteRange(5, 10))
	st := f.draw(false)
	assert.True(t, st.Reset)
	assert.True(t, st.Stale)
	assert.Equal(t, 0, st.First)
	assert.Equal(t, 5, st.Visited)
	assert.Equal(t, 4, f.cursor(t).LastProcessed)

	f.s.Clear()
	st = f.draw(false)
	assert.True(t, st.Stale)
	assert.Equal(t, 0, st.Visited)
	assert.Equal(t, -1, f.cursor(t).LastProcessed)
}

func TestInsertBeforeLastResetsCursor(t *testing.T) {
	f := newFixture(render.Scatter)
	f.add(t, 10, 10, 30, 30)
	f.draw(true)

	f.add(t, 20, 20)
	st := f.draw(false)
	assert.True(t, st.Stale)
	assert.Equal(t, 3, st.Visited)

	f.add(t, 40, 40)
	st = f.draw(false)
	assert.False(t, st.Reset)
	assert.Equal(t, 1, st.Visited)
}

func TestReattachedSeriesRedrawn(t *testing.T) {
	f := newFixture(render.LinePath)
	f.add(t, 10, 10, 20, 20, 30, 30, 40, 40)
	f.draw(true)
	f.ds.NewSeries("other")

	require.True(t, f.ds.RemoveSeries(f.s))
	require.NoError(t, f.ds.AddSeries(f.s))
	require.Equal(t, 1, f.s.Index())

	f.rec.Reset()
	stats := render.Render(f.dc, f.r, f.ds, f.cursors, false)
	require.Len(t, stats.Series, 2)
	st := stats.Series[1]
	assert.True(t, st.Reset)
	assert.True(t, st.Stale)
	assert.Equal(t, 4, st.Visited)
	assert.Len(t, f.rec.Segments(), 3)

	st = render.Render(f.dc, f.r, f.ds, f.cursors, false).Series[1]
	assert.False(t, st.Reset)
	assert.Zero(t, st.Visited)
}

func TestGenericDrawsEverythingEveryTime(t *testing.T) {
	f := newFixture(render.Generic)
	f.add(t, 10, 10, 11, 10, 20, 20)
	st := f.draw(true)
	assert.Equal(t, 3, st.Visited)
	assert.Equal(t, 0, st.Decimated)

	f.add(t, 30, 30)
	st = f.draw(false)
	assert.Equal(t, 0, st.First)
	assert.Equal(t, 4, st.Visited)
	assert.Len(t, f.rec.Segments(), 3)
	assert.Equal(t, 0, f.cursors.Len())
}

func TestXVersusYMovesHead(t *testing.T) {
	f := newFixture(render.XVersusY)
	f.add(t, 10, 10, 20, 20, 30, 30)
	f.draw(true)
	glyphs := f.rec.Filter(surface.OpGlyph)
	require.Len(t, glyphs, 1)
	assert.True(t, glyphs[0].XOR)
	assert.Equal(t, pt(30, 30), glyphs[0].Point)

	f.add(t, 40, 40)
	f.draw(false)
	assert.Equal(t, [][2]vg.Point{seg(30, 30, 40, 40)}, f.rec.Segments())
	glyphs = f.rec.Filter(surface.OpGlyph)
	require.Len(t, glyphs, 2)
	assert.Equal(t, pt(30, 30), glyphs[0].Point, "old head erased first")
	assert.Equal(t, pt(40, 40), glyphs[1].Point)
	assert.True(t, glyphs[0].XOR && glyphs[1].XOR)
	assert.Equal(t, surface.OpPaint, f.rec.Ops[len(f.rec.Ops)-1].Kind)

	c := f.cursor(t)
	require.NotNil(t, c.LastShape)
	assert.Equal(t, pt(40, 40), c.LastShape.Center)
	assert.Equal(t, vg.Length(4), c.LastShape.Glyph.Radius)
}

func TestScatter(t *testing.T) {
	f := newFixture(render.Scatter)
	f.add(t, 10, 10, 11, 10.5, 20, 20, 21, 200)
	st := f.draw(true)
	assert.Equal(t, []vg.Point{pt(10, 10), pt(20, 20)}, f.rec.Glyphs())
	assert.Equal(t, 1, st.Decimated)
	assert.Equal(t, 1, st.Clipped)

	c := f.cursor(t)
	assert.Equal(t, 2, c.Backtrack)
	assert.Equal(t, pt(20, 20), c.LastShape.Center)

	f.add(t, 22, 20.5)
	f.draw(false)
	assert.Empty(t, f.rec.Glyphs())
	assert.Equal(t, 3, c.Backtrack)
}

func TestStep(t *testing.T) {
	f := newFixture(render.Step)
	f.add(t, 0, 0, 10, 10, 20, 5)
	f.draw(true)
	lines := f.rec.Filter(surface.OpLines)
	require.Len(t, lines, 2)
	assert.Equal(t, []vg.Point{pt(0, 0), pt(10, 0), pt(10, 10)}, lines[0].Lines[0])
	assert.Equal(t, []vg.Point{pt(10, 10), pt(20, 10), pt(20, 5)}, lines[1].Lines[0])
}

func TestLineContinuesAcrossPasses(t *testing.T) {
	f := newFixture(render.LinePath)
	f.add(t, 0, 0, 10, 10, 20, 20)
	f.draw(true)
	f.add(t, 30, 30, 40, 40)
	f.draw(false)
	lines := f.rec.Filter(surface.OpLines)
	require.Len(t, lines, 1)
	assert.Equal(t, [][]vg.Point{{pt(20, 20), pt(30, 30), pt(40, 40)}}, lines[0].Lines)
}

func TestHolesBreakLines(t *testing.T) {
	f := newFixture(render.LinePath)
	f.add(t, 0, 0, 10, 10, 20, math.NaN(), 30, 30, 40, 40)
	st := f.draw(true)
	assert.Equal(t, 1, st.Holes)
	lines := f.rec.Filter(surface.OpLines)
	require.Len(t, lines, 1)
	assert.Equal(t, [][]vg.Point{
		{pt(0, 0), pt(10, 10)},
		{pt(30, 30), pt(40, 40)},
	}, lines[0].Lines)
}

func TestGapPolicy(t *testing.T) {
	for _, g := range []render.GapPolicy{
		{Mode: render.GapAbsolute, Threshold: 15},
		{Mode: render.GapRelative, Threshold: 2},
	} {
		t.Run(g.Mode.String(), func(t *testing.T) {
			f := newFixture(render.LinePath)
			f.r.Gap = g
			f.add(t, 0, 0, 10, 10, 20, 20, 50, 50, 60, 60)
			st := f.draw(true)
			assert.Equal(t, 1, st.Gaps)
			assert.Equal(t, [][]vg.Point{
				{pt(0, 0), pt(10, 10), pt(20, 20)},
				{pt(50, 50), pt(60, 60)},
			}, f.rec.Filter(surface.OpLines)[0].Lines)
		})
	}

	f := newFixture(render.LinePath)
	f.add(t, 0, 0, 10, 10, 50, 50)
	f.draw(true)
	assert.Len(t, f.rec.Segments(), 2, "gaps off by default")

	// Gaps are measured between consecutive samples, not from the last
	// drawn one.
	f = newFixture(render.LinePath)
	f.r.Decimation.Threshold = 20
	f.r.Gap = render.GapPolicy{Mode: render.GapAbsolute, Threshold: 15}
	f.add(t, 0, 0, 10, 0, 20, 0, 30, 0)
	st := f.draw(true)
	assert.Zero(t, st.Gaps)
	assert.Equal(t, 2, st.Decimated)
	assert.Equal(t, [][2]vg.Point{seg(0, 0, 30, 0)}, f.rec.Segments())
}

func TestGapModeNames(t *testing.T) {
	for m := render.GapInherit; m <= render.GapRelative; m++ {
		got, err := render.ParseGapMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	var r render.Renderer
	assert.Equal(t, render.GapInherit, r.Gap.Mode)
}

func TestHiddenSeriesSuppressedUntilFullDraw(t *testing.T) {
	f := newFixture(render.LinePath)
	hidden := false
	f.r.Hidden = func(int) bool { return hidden }
	f.add(t, 0, 0, 10, 10)
	f.draw(true)

	hidden = true
	f.add(t, 20, 20)
	st := f.draw(false)
	assert.True(t, st.Suppressed)
	assert.Empty(t, f.rec.Ops)
	assert.True(t, f.cursor(t).SuppressUntilFullRedraw)

	hidden = false
	f.add(t, 30, 30)
	st = f.draw(false)
	assert.True(t, st.Suppressed)
	assert.Empty(t, f.rec.Ops)

	st = f.draw(true)
	assert.False(t, st.Suppressed)
	assert.Len(t, f.rec.Segments(), 3)
}

func TestHorizontalOrientation(t *testing.T) {
	f := newFixture(render.XVersusY)
	f.dc.Orientation = render.Horizontal
	f.dc.DomainEdge, f.dc.RangeEdge = render.Left, render.Bottom
	f.add(t, 10, 80, 20, 60)
	f.draw(true)
	assert.Equal(t, [][2]vg.Point{seg(80, 10, 60, 20)}, f.rec.Segments())
}

func TestEntities(t *testing.T) {
	f := newFixture(render.Scatter)
	var es render.Entities
	f.dc.Entities = &es
	f.add(t, 10, 10, 50, 50)
	f.draw(true)
	require.Len(t, es, 2)
	assert.Equal(t, 1, es[1].Item)
	assert.Equal(t, f.ds, es[1].Dataset)

	hit := es.At(pt(50.5, 49.5))
	require.Len(t, hit, 1)
	assert.Equal(t, 1, hit[0].Item)
	assert.Empty(t, es.At(pt(30, 30)))
}

func TestImages(t *testing.T) {
	f := newFixture(render.Scatter)
	img := imageOfSize(4, 2)
	f.r.Image = func(i, item int) image.Image {
		if item == 1 {
			return img
		}
		return nil
	}
	f.add(t, 10, 10, 50, 50)
	f.draw(true)
	ops := f.rec.Filter(surface.OpImage)
	require.Len(t, ops, 1)
	assert.Equal(t, vg.Rectangle{Min: pt(48, 49), Max: pt(52, 51)}, ops[0].Rect)
}

func imageOfSize(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestCursorSet(t *testing.T) {
	ds := data.NewDataset()
	a, b := ds.NewSeries("a"), ds.NewSeries("b")
	cs := render.NewCursorSet()
	ca := cs.Get(a)
	assert.Same(t, ca, cs.Get(a))
	assert.Equal(t, -1, ca.LastProcessed)
	assert.Equal(t, 1, ca.Backtrack)
	cs.Get(b)
	assert.Equal(t, 2, cs.Len())

	require.True(t, ds.RemoveSeries(a))
	assert.Equal(t, 1, cs.Prune(ds))
	_, ok := cs.Lookup(a)
	assert.False(t, ok)

	cb := cs.Get(b)
	cb.LastProcessed, cb.Backtrack = 5, 3
	cs.ResetAll()
	assert.Equal(t, -1, cb.LastProcessed)
	assert.Equal(t, 1, cb.Backtrack)

	cs.Drop(b)
	assert.Equal(t, 0, cs.Len())
}

func TestKindNames(t *testing.T) {
	for k := render.Generic; k <= render.XVersusY; k++ {
		got, err := render.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := render.ParseKind("pie")
	assert.Error(t, err)
	assert.Equal(t, "Kind(9)", render.Kind(9).String())
}
