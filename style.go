package fastplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a Plot is drawn. XAxis is the axis drawn
// horizontally below the data, YAxis the one drawn vertically left of it,
// whichever scale they show.
type Style struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length

	Panel struct {
		Background color.Color
		PadX       vg.Length
		PadY       vg.Length
	}

	Grid struct {
		Major draw.LineStyle
		Minor draw.LineStyle
	}

	XAxis struct {
		Title       draw.TextStyle
		TitleHeight vg.Length
		Line        draw.LineStyle
		MajorTick   struct {
			draw.LineStyle
			Length vg.Length
			Label  draw.TextStyle
		}
		MinorTick struct {
			draw.LineStyle
			Length vg.Length
		}
	}

	YAxis struct {
		Title      draw.TextStyle
		TitleWidth vg.Length
		Line       draw.LineStyle
		MajorTick  struct {
			draw.LineStyle
			Length vg.Length
			Label  draw.TextStyle
		}
		MinorTick struct {
			draw.LineStyle
			Length vg.Length
		}
	}
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2.
// The baseFontSize is the font size for axis titles, the title is a bit
// bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	fs := Style{}
	fs.Background = color.White

	fs.TitleHeight = scale(baseFontSize, 3)
	fs.Title.Color = color.Black
	fs.Title.Font = titleFont
	fs.Title.XAlign = draw.XCenter
	fs.Title.YAlign = draw.YTop

	fs.Panel.Background = color.Gray16{0xeeee}
	fs.Panel.PadX = scale(baseFontSize, 0.5)
	fs.Panel.PadY = fs.Panel.PadX

	fs.Grid.Major.Color = color.White
	fs.Grid.Major.Width = vg.Length(1)
	fs.Grid.Minor.Color = color.White
	fs.Grid.Minor.Width = vg.Length(0.5)

	fs.XAxis.Title.Color = color.Black
	fs.XAxis.Title.Font = baseFont
	fs.XAxis.Title.XAlign = draw.XCenter
	fs.XAxis.Title.YAlign = draw.YBottom
	fs.XAxis.TitleHeight = scale(baseFontSize, 2)

	fs.XAxis.Line.Width = 0

	fs.XAxis.MajorTick.Color = color.Gray16{0x1111}
	fs.XAxis.MajorTick.Width = vg.Length(1)
	fs.XAxis.MajorTick.Length = vg.Length(5)
	fs.XAxis.MajorTick.Label.Color = color.Black
	fs.XAxis.MajorTick.Label.Font = tickFont
	fs.XAxis.MajorTick.Label.XAlign = draw.XCenter
	fs.XAxis.MajorTick.Label.YAlign = draw.YTop

	fs.XAxis.MinorTick.Color = color.Gray16{0x5555}
	fs.XAxis.MinorTick.Width = vg.Length(0.5)
	fs.XAxis.MinorTick.Length = vg.Length(3)

	fs.YAxis.Title.Color = color.Black
	fs.YAxis.Title.Font = baseFont
	fs.YAxis.Title.Rotation = math.Pi / 2
	fs.YAxis.Title.XAlign = draw.XCenter
	fs.YAxis.Title.YAlign = draw.YTop
	fs.YAxis.TitleWidth = scale(baseFontSize, 2)

	fs.YAxis.Line.Width = 0

	// Major Ticks and Labels
	fs.YAxis.MajorTick.Color = color.Gray16{0x1111}
	fs.YAxis.MajorTick.Width = vg.Length(1)
	fs.YAxis.MajorTick.Length = vg.Length(5)
	fs.YAxis.MajorTick.Label.Color = color.Black
	fs.YAxis.MajorTick.Label.Font = tickFont
	fs.YAxis.MajorTick.Label.XAlign = draw.XRight
	fs.YAxis.MajorTick.Label.YAlign = -0.3 // draw.YCenter

	fs.YAxis.MinorTick.Color = color.Gray16{0x5555}
	fs.YAxis.MinorTick.Width = vg.Length(0.5)
	fs.YAxis.MinorTick.Length = vg.Length(3)

	return fs
}
