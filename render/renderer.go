package render

import (
	"fmt"
	"image"
	"image/color"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Kind selects how a renderer draws its series.
type Kind int

const (
	Generic  Kind = iota // full polyline on every pass
	LinePath             // incremental polyline
	Step                 // incremental horizontal-then-vertical steps
	Scatter              // incremental markers
	XVersusY             // incremental trace with a moving head marker
)

var kindNames = []string{"generic", "line", "step", "scatter", "xvsy"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return Generic, fmt.Errorf("render: unknown kind %q", s)
}

// Incremental reports whether k resumes from the cursor on append passes.
func (k Kind) Incremental() bool { return k != Generic }

// ----------------------------------------------------------------------------
// Renderer

// A Renderer describes how the series of one dataset are drawn. The zero
// value draws generic lines in the plotutil default colors.
type Renderer struct {
	Kind       Kind
	Decimation Decimation

	// Gap breaks lines at gaps in x. The zero value, GapInherit, takes
	// the policy of the plot's config; GapOff switches gaps off
	// regardless of the config.
	Gap GapPolicy

	// Shapes draws a marker at every emitted point of LinePath and
	// Generic series.
	Shapes bool

	// LineStyle and GlyphStyle return the style of series i; nil means
	// DefaultLineStyle and DefaultGlyphStyle.
	LineStyle  func(i int) draw.LineStyle
	GlyphStyle func(i int) draw.GlyphStyle

	// Head returns the terminal marker style of XVersusY series i; nil
	// draws a circle of radius 4 in the series color.
	Head func(i int) draw.GlyphStyle

	// Image, if set, returns an image drawn centered on every emitted
	// point of item in series i. A nil image draws nothing.
	Image func(i, item int) image.Image

	// Hidden reports whether series i is invisible.
	Hidden func(i int) bool
}

// NewRenderer returns a renderer of kind k with default styles.
func NewRenderer(k Kind) *Renderer {
	return &Renderer{Kind: k}
}

// DefaultLineStyle is the line style of series i.
func DefaultLineStyle(i int) draw.LineStyle {
	return draw.LineStyle{
		Color: plotutil.Color(i),
		Width: vg.Points(1),
	}
}

// DefaultGlyphStyle is the marker style of series i.
func DefaultGlyphStyle(i int) draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  plotutil.Color(i),
		Radius: vg.Points(2.5),
		Shape:  plotutil.Shape(i),
	}
}

// DashedLineStyle is DefaultLineStyle with the plotutil dash pattern of i.
func DashedLineStyle(i int) draw.LineStyle {
	sty := DefaultLineStyle(i)
	sty.Dashes = plotutil.Dashes(i)
	return sty
}

func (r *Renderer) lineStyle(i int) draw.LineStyle {
	if r.LineStyle != nil {
		return r.LineStyle(i)
	}
	return DefaultLineStyle(i)
}

func (r *Renderer) glyphStyle(i int) draw.GlyphStyle {
	if r.GlyphStyle != nil {
		return r.GlyphStyle(i)
	}
	return DefaultGlyphStyle(i)
}

func (r *Renderer) headStyle(i int) draw.GlyphStyle {
	if r.Head != nil {
		return r.Head(i)
	}
	return draw.GlyphStyle{
		Color:  r.lineStyle(i).Color,
		Radius: 4,
		Shape:  draw.CircleGlyph{},
	}
}

func (r *Renderer) hidden(i int) bool {
	return r.Hidden != nil && r.Hidden(i)
}

// WithAlpha returns col with its alpha scaled by alpha in [0,1].
func WithAlpha(col color.Color, alpha float64) color.Color {
	if col == nil || alpha >= 1 {
		return col
	}
	if alpha < 0 {
		alpha = 0
	}
	r, g, b, a := col.RGBA()
	return color.RGBA64{
		uint16(float64(r) * alpha),
		uint16(float64(g) * alpha),
		uint16(float64(b) * alpha),
		uint16(float64(a) * alpha),
	}
}
