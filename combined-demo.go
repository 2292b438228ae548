//go:build ignore
// +build ignore

package main

import (
	"image/color"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/sgostarter/i/l"
	"github.com/vdobler/fastplot"
	"github.com/vdobler/fastplot/data"
	"github.com/vdobler/fastplot/render"
	"github.com/vdobler/fastplot/surface"
	"gonum.org/v1/plot/vg/draw"
)

func main() {
	logger := l.NewConsoleLoggerWrapper()

	price := data.NewDataset()
	ps := price.NewSeries("price")
	volume := data.NewDataset()
	vs := volume.NewSeries("volume")

	top := fastplot.NewPlot(fastplot.WithLogger(logger))
	top.Range.Title = "price"
	top.AddLayer(price, render.NewRenderer(render.LinePath))

	bottom := fastplot.NewPlot(fastplot.WithLogger(logger))
	bottom.Range.Title = "volume"
	bottom.Range.FixMin(0)
	r := render.NewRenderer(render.Step)
	r.LineStyle = func(int) draw.LineStyle {
		return draw.LineStyle{Color: color.RGBA{R: 0x30, G: 0x60, B: 0xc0, A: 0xff}, Width: 1}
	}
	bottom.AddLayer(volume, r)

	c := fastplot.NewCombinedPlot(fastplot.WithLogger(logger))
	c.Title = "Price and volume"
	c.Domain.Title = "day"
	c.Add(top, 3)
	c.Add(bottom, 1)

	ctx := gg.NewContext(800, 600)
	s := surface.NewGG(ctx)
	area := s.Size()

	for day := 0; day < 365; day++ {
		t := float64(day)
		ps.Add(t, 100+10*math.Sin(t/30)+t/20)
		vs.Add(t, 50+40*math.Abs(math.Cos(t/11)))

		var err error
		if c.NeedsFullDraw() {
			_, err = c.FullDraw(s, area)
		} else {
			_, err = c.AppendDraw(s, area)
		}
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Error("draw failed")
			os.Exit(1)
		}
	}
	s.Finish()

	if err := ctx.SavePNG("testdata/combined.png"); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("save failed")
		os.Exit(1)
	}
}
