package surface

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/vdobler/fastplot/render"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// OpKind is the type of a recorded operation.
type OpKind int

const (
	OpLines OpKind = iota
	OpGlyph
	OpPolygon
	OpImage
	OpText
	OpXOR
	OpPaint
	OpAlpha
	OpClip
	OpPush
	OpPop
	OpResetXOR
)

func (k OpKind) String() string {
	return []string{"lines", "glyph", "polygon", "image", "text",
		"xor", "paint", "alpha", "clip", "push", "pop", "resetxor"}[int(k)]
}

// Op is one recorded surface call.
type Op struct {
	Kind  OpKind
	Lines [][]vg.Point // OpLines, OpPolygon
	Point vg.Point     // OpGlyph, OpText
	Rect  vg.Rectangle // OpImage, OpClip
	Color color.Color
	Text  string
	Alpha float64
	XOR   bool // drawn while in XOR mode
}

func (op Op) String() string {
	switch op.Kind {
	case OpLines:
		parts := make([]string, len(op.Lines))
		for i, l := range op.Lines {
			pts := make([]string, len(l))
			for j, p := range l {
				pts[j] = fmt.Sprintf("(%.4g,%.4g)", float64(p.X), float64(p.Y))
			}
			parts[i] = strings.Join(pts, "-")
		}
		return "lines " + strings.Join(parts, " ")
	case OpGlyph:
		return fmt.Sprintf("glyph (%.4g,%.4g) xor=%t", float64(op.Point.X), float64(op.Point.Y), op.XOR)
	case OpText:
		return fmt.Sprintf("text %q", op.Text)
	case OpAlpha:
		return fmt.Sprintf("alpha %g", op.Alpha)
	}
	return op.Kind.String()
}

// Recorder is a render.Surface remembering every call.
type Recorder struct {
	Ops []Op
	xor bool
}

var _ render.Surface = (*Recorder)(nil)

// Reset forgets all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.xor = false
}

// Filter returns the operations of kind k.
func (r *Recorder) Filter(k OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == k {
			ops = append(ops, op)
		}
	}
	return ops
}

// Segments returns all stroked line segments in drawing order.
func (r *Recorder) Segments() [][2]vg.Point {
	var segs [][2]vg.Point
	for _, op := range r.Filter(OpLines) {
		for _, l := range op.Lines {
			for i := 1; i < len(l); i++ {
				segs = append(segs, [2]vg.Point{l[i-1], l[i]})
			}
		}
	}
	return segs
}

// Glyphs returns the centers of all drawn glyphs.
func (r *Recorder) Glyphs() []vg.Point {
	var pts []vg.Point
	for _, op := range r.Filter(OpGlyph) {
		pts = append(pts, op.Point)
	}
	return pts
}

func (r *Recorder) add(op Op) {
	op.XOR = r.xor
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) StrokeLines(sty draw.LineStyle, lines ...[]vg.Point) {
	cp := make([][]vg.Point, len(lines))
	for i, l := range lines {
		cp[i] = append([]vg.Point(nil), l...)
	}
	r.add(Op{Kind: OpLines, Lines: cp, Color: sty.Color})
}

func (r *Recorder) DrawGlyph(sty draw.GlyphStyle, pt vg.Point) {
	r.add(Op{Kind: OpGlyph, Point: pt, Color: sty.Color})
}

func (r *Recorder) FillPolygon(c color.Color, pts []vg.Point) {
	r.add(Op{Kind: OpPolygon, Lines: [][]vg.Point{append([]vg.Point(nil), pts...)}, Color: c})
}

func (r *Recorder) DrawImage(rect vg.Rectangle, img image.Image) {
	r.add(Op{Kind: OpImage, Rect: rect})
}

func (r *Recorder) FillText(sty draw.TextStyle, pt vg.Point, txt string) {
	r.add(Op{Kind: OpText, Point: pt, Text: txt, Color: sty.Color})
}

func (r *Recorder) SetXOR(background color.Color) {
	r.xor = true
	r.add(Op{Kind: OpXOR, Color: background})
}

func (r *Recorder) SetPaintMode() {
	r.xor = false
	r.add(Op{Kind: OpPaint})
}

func (r *Recorder) ResetXOR() { r.add(Op{Kind: OpResetXOR}) }

func (r *Recorder) SetAlpha(alpha float64) { r.add(Op{Kind: OpAlpha, Alpha: alpha}) }
func (r *Recorder) Clip(rect vg.Rectangle) { r.add(Op{Kind: OpClip, Rect: rect}) }
func (r *Recorder) Push()                  { r.add(Op{Kind: OpPush}) }
func (r *Recorder) Pop()                   { r.add(Op{Kind: OpPop}) }
