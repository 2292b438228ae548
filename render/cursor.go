package render

import (
	"github.com/vdobler/fastplot/data"
	"gonum.org/v1/plot/vg"
)

// A Cursor records how far a series has been drawn so that an append pass
// draws only what was added since.
type Cursor struct {
	// LastProcessed is the index of the last item visited, -1 if none.
	LastProcessed int

	// Backtrack is the distance from the next item back to the last
	// emitted one: item-Backtrack is the decimation reference.
	Backtrack int

	// LastShape is the terminal marker currently on screen (XvsY).
	LastShape *Shape

	// SuppressUntilFullRedraw stops append passes from drawing the series.
	SuppressUntilFullRedraw bool

	pathGood bool         // the next point continues a line
	pending  [][]vg.Point // unstroked sub-paths of a LinePath series
	revision uint64
	attach   uint64
	series   *data.Series
}

func newCursor(s *data.Series) *Cursor {
	c := &Cursor{series: s}
	c.Reset()
	return c
}

// Reset puts c into its initial state: nothing processed, no marker on
// screen. SuppressUntilFullRedraw is left alone.
func (c *Cursor) Reset() {
	c.rewind()
	c.LastShape = nil
}

// rewind forgets what has been drawn but keeps the terminal marker so
// that it can be erased.
func (c *Cursor) rewind() {
	c.LastProcessed = -1
	c.Backtrack = 1
	c.pathGood = false
	c.pending = nil
	if c.series != nil {
		c.revision = c.series.Revision()
		c.attach = c.series.Attachment()
	}
}

// stale reports whether the series has lost or moved items, or has been
// detached or re-attached, since c last saw it, making LastProcessed
// meaningless.
func (c *Cursor) stale() bool {
	return c.LastProcessed >= c.series.Len() ||
		c.revision != c.series.Revision() ||
		c.attach != c.series.Attachment()
}

// reference returns the index of the last emitted item for item.
func (c *Cursor) reference(item int) int { return item - c.Backtrack }

// ----------------------------------------------------------------------------
// CursorSet

// CursorSet keeps the cursors of the series drawn by one renderer, keyed
// by series ID. Cursors of series removed from the dataset stay until
// Prune or Drop is called.
type CursorSet struct {
	cursors map[uint64]*Cursor
}

// NewCursorSet returns an empty set.
func NewCursorSet() *CursorSet {
	return &CursorSet{cursors: make(map[uint64]*Cursor)}
}

// Get returns the cursor of s, creating it in reset state if needed.
// A different series reusing the ID of a known one gets a fresh cursor.
func (cs *CursorSet) Get(s *data.Series) *Cursor {
	c, ok := cs.cursors[s.ID()]
	if !ok || c.series != s {
		c = newCursor(s)
		cs.cursors[s.ID()] = c
	}
	return c
}

// Lookup returns the cursor of s if there is one.
func (cs *CursorSet) Lookup(s *data.Series) (*Cursor, bool) {
	c, ok := cs.cursors[s.ID()]
	if !ok || c.series != s {
		return nil, false
	}
	return c, true
}

// Drop removes the cursor of s.
func (cs *CursorSet) Drop(s *data.Series) {
	if c, ok := cs.cursors[s.ID()]; ok && c.series == s {
		delete(cs.cursors, s.ID())
	}
}

// Prune removes the cursors of all series not in ds and returns how many
// were removed.
func (cs *CursorSet) Prune(ds *data.Dataset) int {
	n := 0
	for id, c := range cs.cursors {
		if ds == nil || c.series.Dataset() != ds {
			delete(cs.cursors, id)
			n++
		}
	}
	return n
}

// ResetAll resets every cursor, e.g. after the axes changed.
func (cs *CursorSet) ResetAll() {
	for _, c := range cs.cursors {
		c.Reset()
	}
}

// Len returns the number of cursors.
func (cs *CursorSet) Len() int { return len(cs.cursors) }
