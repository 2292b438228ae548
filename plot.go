package fastplot

import (
	"errors"
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/vdobler/fastplot/data"
	"github.com/vdobler/fastplot/render"
	"gonum.org/v1/plot/vg"
)

// ErrNilSurface is returned when drawing onto a nil surface.
var ErrNilSurface = errors.New("fastplot: nil surface")

// ----------------------------------------------------------------------------
// Options

type options struct {
	config   Config
	logger   l.Wrapper
	style    *Style
	entities render.EntityCollector
}

// An Option configures a Plot or CombinedPlot.
type Option func(*options)

// WithConfig sets the configuration. The default is DefaultConfig().
func WithConfig(c Config) Option { return func(o *options) { o.config = c } }

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger l.Wrapper) Option { return func(o *options) { o.logger = logger } }

// WithStyle sets the style. The default is DefaultStyle(12).
func WithStyle(s Style) Option { return func(o *options) { o.style = &s } }

// WithEntities collects an Entity for every drawn data point.
func WithEntities(ec render.EntityCollector) Option {
	return func(o *options) { o.entities = ec }
}

func buildOptions(opts []Option) options {
	o := options{config: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = l.NewNopLoggerWrapper()
	}
	if o.style == nil {
		s := DefaultStyle(12)
		o.style = &s
	}
	return o
}

// ----------------------------------------------------------------------------
// Layer

// A Layer is a dataset drawn with one renderer. It owns the cursors of
// the dataset's series.
type Layer struct {
	Dataset  *data.Dataset
	Renderer *render.Renderer
	cursors  *render.CursorSet
}

// Cursors returns the cursors of l's series.
func (l *Layer) Cursors() *render.CursorSet { return l.cursors }

// ----------------------------------------------------------------------------
// Plot

// A Plot draws layers of series against a domain and a range scale. After
// a FullDraw, AppendDraw paints only the samples appended since the
// previous draw, reusing the layout of the last FullDraw.
type Plot struct {
	Title string

	Domain, Range *Scale

	Style  Style
	Config Config

	// Entities, if non-nil, collects the drawn data points.
	Entities render.EntityCollector

	layers     []*Layer
	logger     l.Wrapper
	dispatcher *render.Dispatcher

	sharedDomain bool // the domain scale is ranged and drawn by a CombinedPlot

	drawn          bool
	area, dataArea vg.Rectangle
	laidDomain     Interval
	laidRange      Interval
}

// NewPlot returns an empty plot with autoscaling linear scales.
func NewPlot(opts ...Option) *Plot {
	o := buildOptions(opts)
	logger := o.logger.WithFields(l.StringField(l.ClsKey, "Plot"))
	return &Plot{
		Domain:     NewScale(),
		Range:      NewScale(),
		Style:      *o.style,
		Config:     o.config,
		Entities:   o.entities,
		logger:     logger,
		dispatcher: render.NewDispatcher(logger),
	}
}

// AddLayer adds ds drawn by r on top of the existing layers.
func (p *Plot) AddLayer(ds *data.Dataset, r *render.Renderer) *Layer {
	if r == nil {
		r = render.NewRenderer(render.LinePath)
	}
	lay := &Layer{Dataset: ds, Renderer: r, cursors: render.NewCursorSet()}
	p.layers = append(p.layers, lay)
	p.drawn = false
	return lay
}

// RemoveLayer removes the i'th layer together with its cursors.
func (p *Plot) RemoveLayer(i int) error {
	if i < 0 || i >= len(p.layers) {
		return fmt.Errorf("remove layer %d of %d: %w", i, len(p.layers), data.ErrInvalidArgument)
	}
	p.layers = append(p.layers[:i], p.layers[i+1:]...)
	p.drawn = false
	return nil
}

// Layers returns the layers of p in drawing order. The slice must not be
// modified.
func (p *Plot) Layers() []*Layer { return p.layers }

// Prune drops the cursors of series no longer part of their layer's
// dataset and returns how many were dropped.
func (p *Plot) Prune() int {
	n := 0
	for _, lay := range p.layers {
		n += lay.cursors.Prune(lay.Dataset)
	}
	return n
}

// DataArea returns the data area of the last FullDraw.
func (p *Plot) DataArea() vg.Rectangle { return p.dataArea }

// NeedsFullDraw reports whether an AppendDraw cannot show all data: there
// was no full draw yet or the data outgrew the scales of the last one.
func (p *Plot) NeedsFullDraw() bool {
	if !p.drawn {
		return true
	}
	for _, lay := range p.layers {
		if lay.Dataset == nil || lay.Dataset.IsEmpty() {
			continue
		}
		d, r := lay.Dataset.DomainBounds(), lay.Dataset.RangeBounds()
		if !p.laidDomain.Covers(Interval{d.Min, d.Max}) || !p.laidRange.Covers(Interval{r.Min, r.Max}) {
			return true
		}
	}
	return false
}

// FullDraw autoscales the scales to the data, lays out and paints the
// whole plot into area and draws every series completely.
func (p *Plot) FullDraw(s render.Surface, area vg.Rectangle) (render.Stats, error) {
	if s == nil {
		return render.Stats{}, ErrNilSurface
	}
	if err := p.Config.Validate(); err != nil {
		return render.Stats{}, err
	}
	area = render.CanonicRectangle(area)
	if p.tooSmall(area) {
		p.logger.WithFields(l.StringField("area", fmt.Sprint(area))).Debug("area too small, not drawing")
		return render.Stats{}, nil
	}

	if !p.sharedDomain {
		p.Domain.ResetData()
		p.learnDomain(p.Domain)
		p.Domain.autoscale()
		p.Domain.deDegenerate()
	}
	p.rangeScale()
	p.debugScales("after ranging")

	lay := p.layout()
	dataArea := lay.AxisSpace(area).Shrink(area)
	return p.drawFull(s, area, dataArea, lay), nil
}

// drawFull paints p into area with the given data area and renders all
// layers in full mode.
func (p *Plot) drawFull(s render.Surface, area, dataArea vg.Rectangle, lay Layout) render.Stats {
	// Subplots share the surface with their siblings; the CombinedPlot
	// resets it once.
	if !p.sharedDomain {
		s.ResetXOR()
	}
	s.Push()
	if p.Style.Background != nil {
		s.FillPolygon(p.Style.Background, rectPolygon(area))
	}
	lay.draw(s, area, dataArea)
	s.Pop()

	p.area, p.dataArea = area, dataArea
	p.laidDomain, p.laidRange = p.Domain.Interval, p.Range.Interval
	p.drawn = true
	return p.renderLayers(s, true)
}

// AppendDraw draws the samples added since the last draw. Without a
// previous FullDraw into the same area it performs a FullDraw. Areas too
// small to draw in are ignored.
func (p *Plot) AppendDraw(s render.Surface, area vg.Rectangle) (render.Stats, error) {
	if s == nil {
		return render.Stats{}, ErrNilSurface
	}
	area = render.CanonicRectangle(area)
	if p.tooSmall(area) {
		p.logger.WithFields(l.StringField("area", fmt.Sprint(area))).Debug("area too small, not appending")
		return render.Stats{}, nil
	}
	if !p.drawn || area != p.area {
		p.logger.Debug("no matching full draw, drawing everything")
		return p.FullDraw(s, area)
	}
	return p.renderLayers(s, false), nil
}

// appendDraw is AppendDraw for subplots of a CombinedPlot which were
// drawn by drawFull.
func (p *Plot) appendDraw(s render.Surface) render.Stats {
	return p.renderLayers(s, false)
}

func (p *Plot) tooSmall(area vg.Rectangle) bool {
	return float64(area.Max.X-area.Min.X) <= p.Config.MinWidth ||
		float64(area.Max.Y-area.Min.Y) <= p.Config.MinHeight
}

// renderLayers draws all layers clipped to the data area.
func (p *Plot) renderLayers(s render.Surface, full bool) render.Stats {
	var stats render.Stats
	s.Push()
	defer s.Pop()
	s.Clip(p.dataArea)
	s.SetAlpha(p.Config.ForegroundAlpha)

	dc := p.drawContext(s)
	reverse, _ := p.Config.reverse()
	n := len(p.layers)
	for i := 0; i < n; i++ {
		lay := p.layers[i]
		if reverse {
			lay = p.layers[n-1-i]
		}
		r := p.effectiveRenderer(lay.Renderer)
		stats.Add(p.dispatcher.Render(dc, r, lay.Dataset, lay.cursors, full))
	}

	p.logger.WithFields(l.IntField("visited", stats.Visited()), l.IntField("emitted", stats.Emitted()),
		l.IntField("resets", stats.Resets())).Debug("rendered")
	return stats
}

// effectiveRenderer fills in the decimation and gap settings r leaves
// unset from the plot's config.
func (p *Plot) effectiveRenderer(r *render.Renderer) *render.Renderer {
	if r.Decimation.Threshold != 0 && r.Gap.Mode != render.GapInherit {
		return r
	}
	rr := *r
	if rr.Decimation.Threshold == 0 {
		rr.Decimation.Threshold = vg.Length(p.Config.ThresholdPx)
	}
	if rr.Gap.Mode == render.GapInherit {
		rr.Gap, _ = p.Config.gapPolicy()
	}
	return &rr
}

func (p *Plot) drawContext(s render.Surface) *render.DrawContext {
	o, _ := p.Config.orientation()
	dc := &render.DrawContext{
		Surface:     s,
		DataArea:    p.dataArea,
		Domain:      p.Domain,
		Range:       p.Range,
		DomainEdge:  render.Bottom,
		RangeEdge:   render.Left,
		Orientation: o,
		Background:  p.Style.Panel.Background,
		Entities:    p.Entities,
	}
	if o == render.Horizontal {
		dc.DomainEdge, dc.RangeEdge = render.Left, render.Bottom
	}
	return dc
}

// layout returns the layout of p. A shared domain axis is not drawn.
func (p *Plot) layout() Layout {
	lay := Layout{Style: &p.Style, Title: p.Title, Bottom: p.Domain, Left: p.Range}
	if o, _ := p.Config.orientation(); o == render.Horizontal {
		lay.Bottom, lay.Left = p.Range, p.Domain
	}
	if p.sharedDomain {
		lay.Bottom = nil
	}
	return lay
}

// ----------------------------------------------------------------------------
// Ranging

func (p *Plot) learnDomain(s *Scale) {
	for _, lay := range p.layers {
		if lay.Dataset != nil && !lay.Dataset.IsEmpty() {
			s.UpdateData(lay.Dataset.DomainBounds())
		}
	}
}

// rangeScale learns, autoscales and de-degenerates the range scale.
func (p *Plot) rangeScale() {
	p.Range.ResetData()
	for _, lay := range p.layers {
		if lay.Dataset != nil && !lay.Dataset.IsEmpty() {
			p.Range.UpdateData(lay.Dataset.RangeBounds())
		}
	}
	p.Range.autoscale()
	p.Range.deDegenerate()
}

func (p *Plot) debugScales(info string) {
	p.logger.WithFields(
		l.StringField("domain", p.Domain.String()),
		l.StringField("range", p.Range.String()),
	).Debug(info)
}
