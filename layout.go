package fastplot

import (
	"github.com/vdobler/fastplot/render"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// AxisSpace

// AxisSpace is the room reserved on each side of a data area for axes,
// titles and padding.
type AxisSpace struct {
	Top, Bottom, Left, Right vg.Length
}

// Shrink returns area with the space of a removed. The result never has
// negative size.
func (a AxisSpace) Shrink(area vg.Rectangle) vg.Rectangle {
	r := render.CanonicRectangle(area)
	r.Min.X += a.Left
	r.Max.X -= a.Right
	r.Min.Y += a.Bottom
	r.Max.Y -= a.Top
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// Union returns the larger space of a and b on each side.
func (a AxisSpace) Union(b AxisSpace) AxisSpace {
	return AxisSpace{
		Top:    maxLength(a.Top, b.Top),
		Bottom: maxLength(a.Bottom, b.Bottom),
		Left:   maxLength(a.Left, b.Left),
		Right:  maxLength(a.Right, b.Right),
	}
}

// ----------------------------------------------------------------------------
// Layout

// Layout determines the axis space of a plot.
type Layout struct {
	Style *Style
	Title string

	// Bottom and Left are the scales shown on the respective axis, nil if
	// the axis is not drawn.
	Bottom, Left *Scale
}

// AxisSpace computes the space needed around the data area inside area.
// No side takes more than a third of area.
func (l Layout) AxisSpace(area vg.Rectangle) AxisSpace {
	sty := l.Style
	as := AxisSpace{
		Top:    sty.Panel.PadY,
		Bottom: sty.Panel.PadY,
		Left:   sty.Panel.PadX,
		Right:  sty.Panel.PadX,
	}
	if l.Title != "" {
		as.Top += sty.TitleHeight
	}

	if l.Bottom != nil {
		as.Bottom = sty.XAxis.MajorTick.Length + textHeight(sty.XAxis.MajorTick.Label)
		if l.Bottom.Title != "" {
			as.Bottom += sty.XAxis.TitleHeight
		}
	}

	if l.Left != nil {
		var w vg.Length
		for _, t := range l.Left.Ticks() {
			if t.IsMinor() {
				continue
			}
			w = maxLength(w, textWidth(sty.YAxis.MajorTick.Label, t.Label))
		}
		as.Left = sty.YAxis.MajorTick.Length + w + sty.Panel.PadX/2
		if l.Left.Title != "" {
			as.Left += sty.YAxis.TitleWidth
		}
	}

	area = render.CanonicRectangle(area)
	maxW, maxH := (area.Max.X-area.Min.X)/3, (area.Max.Y-area.Min.Y)/3
	as.Left, as.Right = minLength(as.Left, maxW), minLength(as.Right, maxW)
	as.Top, as.Bottom = minLength(as.Top, maxH), minLength(as.Bottom, maxH)
	return as
}

// draw paints title, grid and axes of a plot whose data area dataArea
// lies inside area.
func (l Layout) draw(s render.Surface, area, dataArea vg.Rectangle) {
	sty := l.Style
	if l.Title != "" {
		s.FillText(sty.Title, vg.Point{X: (area.Min.X + area.Max.X) / 2, Y: area.Max.Y}, l.Title)
	}
	if sty.Panel.Background != nil {
		s.FillPolygon(sty.Panel.Background, rectPolygon(dataArea))
	}
	l.drawGrid(s, dataArea)
	if l.Bottom != nil {
		l.drawXAxis(s, area, dataArea)
	}
	if l.Left != nil {
		l.drawYAxis(s, area, dataArea)
	}
}

func (l Layout) drawGrid(s render.Surface, dataArea vg.Rectangle) {
	sty := l.Style
	if l.Bottom != nil {
		for _, tick := range l.Bottom.Ticks() {
			x := vg.Length(l.Bottom.ValueToScreen(tick.Value, dataArea, render.Bottom))
			if x < dataArea.Min.X || x > dataArea.Max.X {
				continue
			}
			ls := sty.Grid.Major
			if tick.IsMinor() {
				ls = sty.Grid.Minor
			}
			strokeLine(s, ls, x, dataArea.Min.Y, x, dataArea.Max.Y)
		}
	}
	if l.Left != nil {
		for _, tick := range l.Left.Ticks() {
			y := vg.Length(l.Left.ValueToScreen(tick.Value, dataArea, render.Left))
			if y < dataArea.Min.Y || y > dataArea.Max.Y {
				continue
			}
			ls := sty.Grid.Major
			if tick.IsMinor() {
				ls = sty.Grid.Minor
			}
			strokeLine(s, ls, dataArea.Min.X, y, dataArea.Max.X, y)
		}
	}
}

// drawXAxis draws the ticks, labels and title of the bottom axis.
func (l Layout) drawXAxis(s render.Surface, area, dataArea vg.Rectangle) {
	sty := l.Style
	y0 := dataArea.Min.Y
	if sty.XAxis.Line.Width > 0 {
		strokeLine(s, sty.XAxis.Line, dataArea.Min.X, y0, dataArea.Max.X, y0)
	}
	for _, tick := range l.Bottom.Ticks() {
		x := vg.Length(l.Bottom.ValueToScreen(tick.Value, dataArea, render.Bottom))
		if x < dataArea.Min.X || x > dataArea.Max.X {
			continue
		}
		if tick.IsMinor() {
			strokeLine(s, sty.XAxis.MinorTick.LineStyle, x, y0, x, y0-sty.XAxis.MinorTick.Length)
			continue
		}
		length := sty.XAxis.MajorTick.Length
		strokeLine(s, sty.XAxis.MajorTick.LineStyle, x, y0, x, y0-length)
		s.FillText(sty.XAxis.MajorTick.Label, vg.Point{X: x, Y: y0 - length}, tick.Label)
	}
	if l.Bottom.Title != "" {
		s.FillText(sty.XAxis.Title,
			vg.Point{X: (dataArea.Min.X + dataArea.Max.X) / 2, Y: area.Min.Y}, l.Bottom.Title)
	}
}

// drawYAxis draws the ticks, labels and title of the left axis.
func (l Layout) drawYAxis(s render.Surface, area, dataArea vg.Rectangle) {
	sty := l.Style
	x0 := dataArea.Min.X
	if sty.YAxis.Line.Width > 0 {
		strokeLine(s, sty.YAxis.Line, x0, dataArea.Min.Y, x0, dataArea.Max.Y)
	}
	for _, tick := range l.Left.Ticks() {
		y := vg.Length(l.Left.ValueToScreen(tick.Value, dataArea, render.Left))
		if y < dataArea.Min.Y || y > dataArea.Max.Y {
			continue
		}
		if tick.IsMinor() {
			strokeLine(s, sty.YAxis.MinorTick.LineStyle, x0-sty.YAxis.MinorTick.Length, y, x0, y)
			continue
		}
		length := sty.YAxis.MajorTick.Length
		strokeLine(s, sty.YAxis.MajorTick.LineStyle, x0-length, y, x0, y)
		s.FillText(sty.YAxis.MajorTick.Label, vg.Point{X: x0 - length, Y: y}, tick.Label)
	}
	if l.Left.Title != "" {
		s.FillText(sty.YAxis.Title,
			vg.Point{X: area.Min.X, Y: (dataArea.Min.Y + dataArea.Max.Y) / 2}, l.Left.Title)
	}
}

// ----------------------------------------------------------------------------
// Helpers

func strokeLine(s render.Surface, sty draw.LineStyle, x0, y0, x1, y1 vg.Length) {
	if sty.Color == nil || sty.Width <= 0 {
		return
	}
	s.StrokeLines(sty, []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y1}})
}

func rectPolygon(r vg.Rectangle) []vg.Point {
	return []vg.Point{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// textHeight and textWidth return 0 for styles without a font.
func textHeight(sty draw.TextStyle) vg.Length {
	if sty.Font.Size == 0 {
		return 0
	}
	return sty.Font.Extents().Height
}

func textWidth(sty draw.TextStyle, txt string) vg.Length {
	if sty.Font.Size == 0 {
		return 0
	}
	return sty.Font.Width(txt)
}

func minLength(a, b vg.Length) vg.Length {
	if a < b {
		return a
	}
	return b
}

func maxLength(a, b vg.Length) vg.Length {
	if a > b {
		return a
	}
	return b
}
