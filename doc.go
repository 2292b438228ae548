// Package fastplot draws XY plots of streaming data incrementally.
//
// It uses gonum.org/v1/plot's vector graphics layer for geometry and
// styles and draws onto any render.Surface: a gonum draw.Canvas or a gogpu
// gg context (see package surface).
//
// Full and append draws
//
// A Plot has a domain and a range Scale and any number of layers, each a
// data.Dataset drawn by a render.Renderer. FullDraw autoscales the scales
// to the data, lays out and paints axes and grid and draws all samples.
// AppendDraw draws only the samples appended since the previous draw,
// continuing lines where they ended. Points closer than a few units on
// screen to the last drawn point of their series are skipped. Callers
// check NeedsFullDraw to find out when the data outgrew the scales.
//
//	p := fastplot.NewPlot()
//	ds := data.NewDataset()
//	s := ds.NewSeries("load")
//	p.AddLayer(ds, render.NewRenderer(render.LinePath))
//	p.FullDraw(sf, area)
//	for sample := range samples {
//		s.Add(sample.T, sample.V)
//		if p.NeedsFullDraw() {
//			p.FullDraw(sf, area)
//		} else {
//			p.AppendDraw(sf, area)
//		}
//	}
//
// Combined plots
//
// A CombinedPlot stacks plots sharing one domain scale. The domain axis is
// drawn once, below the lowest subplot.
//
// Configuration
//
// Decimation distance, gap handling, minimal drawable size, foreground
// opacity, layer order and orientation are read from a YAML Config.
//
// Neither Series nor Plot are safe for concurrent use: adding samples
// and drawing must be serialized by the caller.
package fastplot
