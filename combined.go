package fastplot

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/vdobler/fastplot/data"
	"github.com/vdobler/fastplot/render"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// CombinedPlot

// A CombinedPlot stacks several plots vertically which share one domain
// scale. The domain axis is drawn once below the lowest subplot. Subplots
// are always drawn in vertical orientation.
type CombinedPlot struct {
	Title  string
	Domain *Scale

	// Gap is the vertical space between two subplots.
	Gap vg.Length

	Style  Style
	Config Config

	subplots []*subplot
	logger   l.Wrapper

	drawn bool
	area  vg.Rectangle
}

type subplot struct {
	plot   *Plot
	weight float64
	area   vg.Rectangle
}

// NewCombinedPlot returns a combined plot without subplots.
func NewCombinedPlot(opts ...Option) *CombinedPlot {
	o := buildOptions(opts)
	return &CombinedPlot{
		Domain: NewScale(),
		Gap:    o.style.Panel.PadY,
		Style:  *o.style,
		Config: o.config,
		logger: o.logger.WithFields(l.StringField(l.ClsKey, "CombinedPlot")),
	}
}

// Add appends p below the existing subplots. Its height is proportional
// to weight. The domain scale of p is replaced by the shared one.
func (c *CombinedPlot) Add(p *Plot, weight float64) error {
	if p == nil || weight <= 0 {
		return fmt.Errorf("add subplot with weight %g: %w", weight, data.ErrInvalidArgument)
	}
	p.Domain = c.Domain
	p.sharedDomain = true
	p.Config.Orientation = render.Vertical.String()
	c.subplots = append(c.subplots, &subplot{plot: p, weight: weight})
	c.drawn = false
	return nil
}

// Subplots returns the subplots top to bottom.
func (c *CombinedPlot) Subplots() []*Plot {
	plots := make([]*Plot, len(c.subplots))
	for i, sp := range c.subplots {
		plots[i] = sp.plot
	}
	return plots
}

// SubplotArea returns the data area of the i'th subplot from the last
// FullDraw.
func (c *CombinedPlot) SubplotArea(i int) vg.Rectangle { return c.subplots[i].area }

func (c *CombinedPlot) tooSmall(area vg.Rectangle) bool {
	return float64(area.Max.X-area.Min.X) <= c.Config.MinWidth ||
		float64(area.Max.Y-area.Min.Y) <= c.Config.MinHeight
}

// FullDraw ranges the shared domain over all subplots, draws the domain
// axis and full-draws every subplot.
func (c *CombinedPlot) FullDraw(s render.Surface, area vg.Rectangle) (render.Stats, error) {
	var stats render.Stats
	if s == nil {
		return stats, ErrNilSurface
	}
	area = render.CanonicRectangle(area)
	if c.tooSmall(area) || len(c.subplots) == 0 {
		c.logger.Debug("nothing to draw")
		return stats, nil
	}

	c.Domain.ResetData()
	for _, sp := range c.subplots {
		sp.plot.learnDomain(c.Domain)
	}
	c.Domain.autoscale()
	c.Domain.deDegenerate()

	var total float64
	space := Layout{Style: &c.Style, Title: c.Title, Bottom: c.Domain}.AxisSpace(area)
	for _, sp := range c.subplots {
		sp.plot.rangeScale()
		left := sp.plot.layout().AxisSpace(area).Left
		space.Left = maxLength(space.Left, left)
		total += sp.weight
	}
	plotArea := space.Shrink(area)

	s.ResetXOR()
	s.Push()
	if c.Style.Background != nil {
		s.FillPolygon(c.Style.Background, rectPolygon(area))
	}
	shared := Layout{Style: &c.Style, Title: c.Title, Bottom: c.Domain}
	shared.drawXAxis(s, area, plotArea)
	if c.Title != "" {
		s.FillText(c.Style.Title, vg.Point{X: (area.Min.X + area.Max.X) / 2, Y: area.Max.Y}, c.Title)
	}
	s.Pop()

	gaps := c.Gap * vg.Length(len(c.subplots)-1)
	avail := plotArea.Max.Y - plotArea.Min.Y - gaps
	if avail < 0 {
		avail = 0
	}
	top := plotArea.Max.Y
	for _, sp := range c.subplots {
		h := avail * vg.Length(sp.weight/total)
		sp.area = vg.Rectangle{
			Min: vg.Point{X: plotArea.Min.X, Y: top - h},
			Max: vg.Point{X: plotArea.Max.X, Y: top},
		}
		top -= h + c.Gap

		outer := sp.area
		outer.Min.X = area.Min.X
		stats.Add(sp.plot.drawFull(s, outer, sp.area, sp.plot.layout()))
	}

	c.drawn, c.area = true, area
	return stats, nil
}

// AppendDraw append-draws every subplot into the areas of the last
// FullDraw. Without a previous FullDraw into area it performs one.
func (c *CombinedPlot) AppendDraw(s render.Surface, area vg.Rectangle) (render.Stats, error) {
	var stats render.Stats
	if s == nil {
		return stats, ErrNilSurface
	}
	area = render.CanonicRectangle(area)
	if c.tooSmall(area) {
		return stats, nil
	}
	if !c.drawn || area != c.area || c.layersChanged() {
		return c.FullDraw(s, area)
	}
	for _, sp := range c.subplots {
		stats.Add(sp.plot.appendDraw(s))
	}
	return stats, nil
}

// layersChanged reports whether a subplot got layers added or removed
// since the last FullDraw.
func (c *CombinedPlot) layersChanged() bool {
	for _, sp := range c.subplots {
		if !sp.plot.drawn {
			return true
		}
	}
	return false
}

// NeedsFullDraw reports whether any subplot needs a full draw.
func (c *CombinedPlot) NeedsFullDraw() bool {
	if !c.drawn {
		return true
	}
	for _, sp := range c.subplots {
		if sp.plot.NeedsFullDraw() {
			return true
		}
	}
	return false
}
