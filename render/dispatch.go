package render

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/vdobler/fastplot/data"
)

// SeriesStats describes what a render pass did with one series.
type SeriesStats struct {
	Series int

	// First and Last are the first and last item visited, -1 if none.
	First, Last int

	Visited   int // items looked at
	Emitted   int // items that became drawn geometry or a line anchor
	Decimated int // items dropped for being too close to the last emitted one
	Holes     int // items with a coordinate that maps to NaN
	Gaps      int // line breaks caused by the gap policy
	Clipped   int // markers outside the data area

	Reset      bool // the cursor was reset before iterating
	Stale      bool // the reset was caused by a shrunk or reordered series
	Suppressed bool // the series was not drawn
}

func (ss SeriesStats) String() string {
	return fmt.Sprintf("series %d [%d,%d] visited=%d emitted=%d decimated=%d holes=%d gaps=%d",
		ss.Series, ss.First, ss.Last, ss.Visited, ss.Emitted, ss.Decimated, ss.Holes, ss.Gaps)
}

func (ss *SeriesStats) visit(item int) {
	if ss.First < 0 {
		ss.First = item
	}
	ss.Last = item
	ss.Visited++
}

// Stats collects the SeriesStats of one or more render passes.
type Stats struct {
	Series []SeriesStats
}

// Add appends the series stats of o to s.
func (s *Stats) Add(o Stats) { s.Series = append(s.Series, o.Series...) }

func (s Stats) sum(f func(SeriesStats) int) int {
	n := 0
	for _, ss := range s.Series {
		n += f(ss)
	}
	return n
}

func (s Stats) Visited() int   { return s.sum(func(ss SeriesStats) int { return ss.Visited }) }
func (s Stats) Emitted() int   { return s.sum(func(ss SeriesStats) int { return ss.Emitted }) }
func (s Stats) Decimated() int { return s.sum(func(ss SeriesStats) int { return ss.Decimated }) }
func (s Stats) Holes() int     { return s.sum(func(ss SeriesStats) int { return ss.Holes }) }

// Resets counts the series whose cursor was reset.
func (s Stats) Resets() int {
	return s.sum(func(ss SeriesStats) int {
		if ss.Reset {
			return 1
		}
		return 0
	})
}

// ----------------------------------------------------------------------------
// Dispatcher

// Dispatcher runs render passes.
type Dispatcher struct {
	logger l.Wrapper
}

// NewDispatcher returns a dispatcher logging to logger, which may be nil.
func NewDispatcher(logger l.Wrapper) *Dispatcher {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	return &Dispatcher{logger: logger.WithFields(l.StringField(l.ClsKey, "Dispatcher"))}
}

// Render draws the series of ds with r onto dc. A full pass resets every
// cursor and draws all items. Otherwise each series resumes after the
// last item its cursor processed; series that shrank or had items
// deleted or inserted are reset and drawn again from their first item.
func (d *Dispatcher) Render(dc *DrawContext, r *Renderer, ds *data.Dataset, cursors *CursorSet, full bool) Stats {
	var stats Stats
	if ds == nil {
		return stats
	}
	for i, s := range ds.All() {
		ss := SeriesStats{Series: i, First: -1, Last: -1}
		if r.Kind == Generic {
			if r.hidden(i) {
				ss.Suppressed = true
			} else {
				d.generic(dc, r, ds, s, i, &ss)
			}
			stats.Series = append(stats.Series, ss)
			continue
		}

		c := cursors.Get(s)
		switch {
		case full:
			c.Reset()
			c.SuppressUntilFullRedraw = false
			ss.Reset = true
		case c.stale():
			d.logger.WithFields(l.IntField("series", i), l.IntField("lastProcessed", c.LastProcessed),
				l.IntField("items", s.Len())).Debug("stale cursor reset")
			c.rewind()
			ss.Reset, ss.Stale = true, true
		}

		if r.hidden(i) {
			c.SuppressUntilFullRedraw = true
		}
		if c.SuppressUntilFullRedraw {
			c.LastProcessed = s.Len() - 1
			ss.Suppressed = true
			stats.Series = append(stats.Series, ss)
			continue
		}

		p := &pass{dc: dc, r: r, ds: ds, s: s, series: i, n: s.Len(), c: c, st: &ss}
		p.run()
		stats.Series = append(stats.Series, ss)
	}
	return stats
}

// Render is a convenience for NewDispatcher(nil).Render.
func Render(dc *DrawContext, r *Renderer, ds *data.Dataset, cursors *CursorSet, full bool) Stats {
	return NewDispatcher(nil).Render(dc, r, ds, cursors, full)
}
