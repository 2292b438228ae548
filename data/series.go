package data

import (
	"fmt"
	"math"
	"sort"
)

const initialCapacity = 1024

// ----------------------------------------------------------------------------
// Series

// A Series is an ordered sequence of samples, unique and strictly increasing
// in x. Appending a sample with an x larger than the last one is O(1);
// out-of-order samples are inserted at their sorted position and samples
// with an already stored x overwrite the stored y.
//
// The extents of the series are maintained incrementally. They only grow on
// Upsert: overwriting the sample holding the current minimum or maximum does
// not shrink them. DeleteRange and RecomputeExtents compute tight extents.
//
// A Series is not safe for concurrent use. Ingestion and drawing must be
// serialized by the caller.
type Series struct {
	name    string
	id      uint64
	items   []Sample
	domain  Range
	rng     Range
	rev     uint64
	dataset *Dataset
	index   int
	attach  uint64
}

// NewSeries returns an empty, detached series. Its ID is zero until it is
// added to a Dataset; use Dataset.NewSeries to get an ID right away.
func NewSeries(name string) *Series {
	return &Series{
		name:   name,
		items:  make([]Sample, 0, initialCapacity),
		domain: emptyRange(),
		rng:    emptyRange(),
		index:  -1,
	}
}

// Name returns the name of s.
func (s *Series) Name() string { return s.name }

// ID returns the identity of s assigned by the IDSource of the first
// dataset s was attached to. Zero means unassigned.
func (s *Series) ID() uint64 { return s.id }

// Dataset returns the dataset owning s or nil.
func (s *Series) Dataset() *Dataset { return s.dataset }

// Index returns the index of s in its dataset or -1 if s is detached.
func (s *Series) Index() int { return s.index }

// Revision is incremented on every change that moves already stored
// samples: deletion, clearing and insertion before the last sample.
// Appends and overwrites leave it unchanged.
func (s *Series) Revision() uint64 { return s.rev }

// Attachment is incremented whenever s is added to or removed from a
// dataset. Together with Revision it tells whether state derived from s
// is still valid.
func (s *Series) Attachment() uint64 { return s.attach }

// Len returns the number of samples in s.
func (s *Series) Len() int { return len(s.items) }

// XY returns the i'th sample. It implements plotter.XYer.
func (s *Series) XY(i int) (x, y float64) {
	it := s.items[i]
	return it.X, it.Y
}

// Value returns the i'th sample.
func (s *Series) Value(i int) Sample { return s.items[i] }

// Upsert stores the sample (x, y). If s already holds a sample at x its y
// value is replaced, otherwise the sample is inserted keeping s sorted.
// A NaN x is rejected; a NaN y is stored and drawn as a hole.
func (s *Series) Upsert(x, y float64) (UpsertResult, error) {
	if math.IsNaN(x) {
		return Inserted, fmt.Errorf("upsert into %q: NaN x: %w", s.name, ErrInvalidArgument)
	}

	s.domain.grow(x)
	s.rng.grow(y)

	n := len(s.items)
	if n == 0 || x > s.items[n-1].X {
		s.items = append(s.items, Sample{x, y})
		return Inserted, nil
	}

	i := sort.Search(n, func(i int) bool { return s.items[i].X >= x })
	if s.items[i].X == x {
		s.items[i].Y = y
		return Overwritten, nil
	}

	s.items = append(s.items, Sample{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = Sample{x, y}
	s.rev++
	return Inserted, nil
}

// Add is Upsert without the result.
func (s *Series) Add(x, y float64) error {
	_, err := s.Upsert(x, y)
	return err
}

// DeleteRange removes the samples with index in [start, end) and
// recomputes the extents.
func (s *Series) DeleteRange(start, end int) error {
	if start < 0 || end > len(s.items) || start > end {
		return fmt.Errorf("delete [%d,%d) from %q with %d items: %w",
			start, end, s.name, len(s.items), ErrInvalidArgument)
	}
	if start == end {
		return nil
	}
	s.items = append(s.items[:start], s.items[end:]...)
	s.rev++
	s.RecomputeExtents()
	return nil
}

// Clear removes all samples.
func (s *Series) Clear() {
	if len(s.items) == 0 {
		return
	}
	s.items = s.items[:0]
	s.domain, s.rng = emptyRange(), emptyRange()
	s.rev++
}

// RecomputeExtents recalculates the extents from the stored samples,
// undoing any overestimation caused by overwrites.
func (s *Series) RecomputeExtents() {
	s.domain, s.rng = emptyRange(), emptyRange()
	for _, it := range s.items {
		s.domain.grow(it.X)
		s.rng.grow(it.Y)
	}
}

// DomainExtent returns the x extent of s or DefaultRange if s never held
// data since its last Clear.
func (s *Series) DomainExtent() Range { return s.domain.orDefault() }

// RangeExtent returns the y extent of s or DefaultRange if no finite y
// value has been stored.
func (s *Series) RangeExtent() Range { return s.rng.orDefault() }

// Copy returns a new detached series holding the samples [start, end)
// of s.
func (s *Series) Copy(start, end int) (*Series, error) {
	if start < 0 || end > len(s.items) || start > end {
		return nil, fmt.Errorf("copy [%d,%d) of %q with %d items: %w",
			start, end, s.name, len(s.items), ErrInvalidArgument)
	}
	c := NewSeries(s.name)
	c.items = append(c.items, s.items[start:end]...)
	c.RecomputeExtents()
	return c, nil
}

func (s *Series) String() string {
	d, r := s.DomainExtent(), s.RangeExtent()
	return fmt.Sprintf("%q#%d n=%d x=[%g:%g] y=[%g:%g]",
		s.name, s.id, len(s.items), d.Min, d.Max, r.Min, r.Max)
}
