// Package render draws the series of a dataset incrementally. A Cursor per
// series remembers how far the series has been drawn, so that an append
// pass only paints the items added since, skipping points which are too
// close on screen to the last drawn one.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/vdobler/fastplot/data"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Surface is the drawing target of a render pass. Coordinates are in
// vg units with the origin in the lower left corner. A render pass sets
// up its own state and keeps none across calls.
type Surface interface {
	// StrokeLines strokes each polyline in lines with sty.
	StrokeLines(sty draw.LineStyle, lines ...[]vg.Point)

	// DrawGlyph draws a marker centered at pt.
	DrawGlyph(sty draw.GlyphStyle, pt vg.Point)

	// FillPolygon fills the polygon pts with c.
	FillPolygon(c color.Color, pts []vg.Point)

	// DrawImage draws img scaled into rect.
	DrawImage(rect vg.Rectangle, img image.Image)

	// FillText draws txt at pt.
	FillText(sty draw.TextStyle, pt vg.Point, txt string)

	// SetXOR switches to an inverting paint mode: drawing the same
	// glyph twice restores what was below it. Background is the color
	// the surface shows where nothing has been drawn.
	SetXOR(background color.Color)

	// SetPaintMode switches back to normal painting.
	SetPaintMode()

	// ResetXOR forgets what has been drawn in XOR mode. Call it when the
	// surface is painted over, so that the next XOR draw of a glyph
	// paints instead of erasing.
	ResetXOR()

	// SetAlpha sets the opacity applied to all subsequent drawing.
	SetAlpha(alpha float64)

	// Clip restricts drawing to r.
	Clip(r vg.Rectangle)

	// Push saves the clip, alpha and paint mode; Pop restores them.
	Push()
	Pop()
}

// ----------------------------------------------------------------------------
// Axes

// Edge is the side of the data area an axis is drawn on.
type Edge int

const (
	Bottom Edge = iota
	Left
	Top
	Right
)

func (e Edge) String() string {
	return []string{"bottom", "left", "top", "right"}[int(e)]
}

// Horizontal reports whether an axis on e runs horizontally, i.e. maps
// values to screen x coordinates.
func (e Edge) Horizontal() bool {
	return e == Bottom || e == Top
}

// Axis maps data values to screen coordinates.
type Axis interface {
	// ValueToScreen maps v to a coordinate inside area along the
	// direction given by edge. It returns NaN if v cannot be mapped.
	ValueToScreen(v float64, area vg.Rectangle, edge Edge) float64
}

// Orientation selects which screen direction the domain axis runs in.
type Orientation int

const (
	Vertical   Orientation = iota // domain along screen x
	Horizontal                    // domain along screen y
)

func (o Orientation) String() string {
	return []string{"vertical", "horizontal"}[int(o)]
}

// DrawContext carries everything a render pass needs besides the data.
type DrawContext struct {
	Surface  Surface
	DataArea vg.Rectangle

	Domain, Range         Axis
	DomainEdge, RangeEdge Edge
	Orientation           Orientation

	// Background is the color below the data, used to erase markers.
	Background color.Color

	// Entities, if non-nil, receives one Entity per emitted point.
	Entities EntityCollector
}

// toScreen transforms the data point (x, y). It reports false if either
// coordinate maps to NaN.
func (dc *DrawContext) toScreen(x, y float64) (vg.Point, bool) {
	sx := dc.Domain.ValueToScreen(x, dc.DataArea, dc.DomainEdge)
	sy := dc.Range.ValueToScreen(y, dc.DataArea, dc.RangeEdge)
	if math.IsNaN(sx) || math.IsNaN(sy) {
		return vg.Point{}, false
	}
	if dc.Orientation == Horizontal {
		sx, sy = sy, sx
	}
	return vg.Point{X: vg.Length(sx), Y: vg.Length(sy)}, true
}

// ----------------------------------------------------------------------------
// Entities

// Entity describes one drawn item for hit testing and tool tips.
type Entity struct {
	Area    vg.Rectangle
	Dataset *data.Dataset
	Series  int
	Item    int
	X, Y    vg.Length
}

// EntityCollector receives entities during a render pass.
type EntityCollector interface {
	Add(e Entity)
}

// Entities is an EntityCollector keeping all entities in a slice.
type Entities []Entity

func (es *Entities) Add(e Entity) { *es = append(*es, e) }

// At returns the entities whose area contains pt, topmost last.
func (es Entities) At(pt vg.Point) []Entity {
	var hit []Entity
	for _, e := range es {
		if contains(e.Area, pt) {
			hit = append(hit, e)
		}
	}
	return hit
}
