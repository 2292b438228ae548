package render

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Shape is a marker drawn at a screen position.
type Shape struct {
	Center vg.Point
	Glyph  draw.GlyphStyle
}

// Bounds returns the bounding box of s.
func (s Shape) Bounds() vg.Rectangle {
	r := s.Glyph.Radius
	return vg.Rectangle{
		Min: vg.Point{X: s.Center.X - r, Y: s.Center.Y - r},
		Max: vg.Point{X: s.Center.X + r, Y: s.Center.Y + r},
	}
}

// Intersects reports whether the bounding box of s overlaps area.
func (s Shape) Intersects(area vg.Rectangle) bool {
	return overlaps(s.Bounds(), area)
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func overlaps(a, b vg.Rectangle) bool {
	a, b = CanonicRectangle(a), CanonicRectangle(b)
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y
}

func contains(r vg.Rectangle, pt vg.Point) bool {
	r = CanonicRectangle(r)
	return pt.X >= r.Min.X && pt.X <= r.Max.X && pt.Y >= r.Min.Y && pt.Y <= r.Max.Y
}

// imageRect returns the rectangle of size w x h centered at pt.
func imageRect(pt vg.Point, w, h int) vg.Rectangle {
	hw, hh := vg.Length(w)/2, vg.Length(h)/2
	return vg.Rectangle{
		Min: vg.Point{X: pt.X - hw, Y: pt.Y - hh},
		Max: vg.Point{X: pt.X + hw, Y: pt.Y + hh},
	}
}
