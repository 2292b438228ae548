//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/sgostarter/i/l"
	"github.com/vdobler/fastplot"
	"github.com/vdobler/fastplot/data"
	"github.com/vdobler/fastplot/render"
	"github.com/vdobler/fastplot/surface"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Usage: go run stream-demo.go [config.yaml] [key=value...]
func main() {
	logger := l.NewConsoleLoggerWrapper()

	cfg := fastplot.DefaultConfig()
	for _, arg := range os.Args[1:] {
		var err error
		if k, v, ok := strings.Cut(arg, "="); ok {
			err = cfg.Set(k, v)
		} else {
			cfg, err = fastplot.LoadConfig(arg)
		}
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("arg", arg)).Error("bad configuration")
			os.Exit(1)
		}
	}

	p := fastplot.NewPlot(fastplot.WithConfig(cfg), fastplot.WithLogger(logger))
	p.Title = "Random walk"
	p.Domain.Title = "t"
	p.Range.Title = "value"

	walks := data.NewDataset()
	a, b := walks.NewSeries("a"), walks.NewSeries("b")
	p.AddLayer(walks, render.NewRenderer(render.LinePath))

	orbit := data.NewDataset()
	o := orbit.NewSeries("orbit")
	p.AddLayer(orbit, render.NewRenderer(render.XVersusY))

	img := vgimg.New(600, 400)
	dc := draw.New(img)
	s := surface.NewCanvas(dc)

	ya, yb := 0.0, 0.0
	frame := 0
	for i := 0; i < 1000; i++ {
		t := float64(i)
		ya += rand.NormFloat64()
		yb += rand.NormFloat64()
		a.Add(t, ya)
		if i%7 != 0 {
			b.Add(t, yb)
		} else {
			b.Add(t, math.NaN())
		}
		o.Add(t, 10*math.Sin(t/40))

		var err error
		var stats render.Stats
		if p.NeedsFullDraw() {
			stats, err = p.FullDraw(s, dc.Rectangle)
		} else {
			stats, err = p.AppendDraw(s, dc.Rectangle)
		}
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Error("draw failed")
			os.Exit(1)
		}
		if stats.Resets() > 0 || i%200 == 199 {
			write(img, fmt.Sprintf("testdata/stream-%03d.png", frame))
			frame++
		}
	}
	write(img, "testdata/stream-final.png")
}

func write(canvas *vgimg.Canvas, name string) {
	w, err := os.Create(name)
	if err != nil {
		panic(err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: canvas}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
