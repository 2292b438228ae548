package data

import (
	"fmt"

	"github.com/godruoyi/go-snowflake"
)

// ----------------------------------------------------------------------------
// Identity

// An IDSource hands out series identities.
type IDSource interface {
	NextID() uint64
}

// Sequence is an IDSource counting up from 1.
type Sequence struct {
	last uint64
}

// NewSequence returns a Sequence whose first ID is 1.
func NewSequence() *Sequence { return &Sequence{} }

func (q *Sequence) NextID() uint64 {
	q.last++
	return q.last
}

// SnowflakeIDs is an IDSource producing process-unique, time ordered IDs.
// Use it when series of several datasets end up in one CursorSet.
type SnowflakeIDs struct{}

func (SnowflakeIDs) NextID() uint64 { return snowflake.ID() }

// ----------------------------------------------------------------------------
// Dataset

// A Dataset is an ordered collection of series displayed together. The
// order of the series is the order they were added in and determines their
// index. A Dataset owns its series: a series can belong to one dataset
// only, removing it detaches it and reindexes the remaining ones.
type Dataset struct {
	series []*Series
	ids    IDSource
}

// DatasetOption configures a Dataset.
type DatasetOption func(*Dataset)

// WithIDSource sets the source of series IDs. The default is a Sequence.
func WithIDSource(src IDSource) DatasetOption {
	return func(d *Dataset) {
		if src != nil {
			d.ids = src
		}
	}
}

// NewDataset returns an empty dataset.
func NewDataset(opts ...DatasetOption) *Dataset {
	d := &Dataset{ids: NewSequence()}
	for _, o := range opts {
		o(d)
	}
	return d
}

// NewSeries creates a series named name and adds it to d.
func (d *Dataset) NewSeries(name string) *Series {
	s := NewSeries(name)
	d.attach(s)
	return s
}

// AddSeries appends s to d.
func (d *Dataset) AddSeries(s *Series) error {
	if s == nil {
		return fmt.Errorf("add nil series: %w", ErrInvalidArgument)
	}
	if s.dataset != nil {
		return fmt.Errorf("add series %q: already in a dataset: %w", s.name, ErrInvalidArgument)
	}
	d.attach(s)
	return nil
}

func (d *Dataset) attach(s *Series) {
	if s.id == 0 {
		s.id = d.ids.NextID()
	}
	s.dataset = d
	s.index = len(d.series)
	s.attach++
	d.series = append(d.series, s)
}

func detach(s *Series) {
	s.dataset, s.index = nil, -1
	s.attach++
}

// RemoveSeriesAt detaches the i'th series.
func (d *Dataset) RemoveSeriesAt(i int) error {
	if i < 0 || i >= len(d.series) {
		return fmt.Errorf("remove series %d of %d: %w", i, len(d.series), ErrInvalidArgument)
	}
	s := d.series[i]
	d.series = append(d.series[:i], d.series[i+1:]...)
	detach(s)
	d.reindex()
	return nil
}

// RemoveSeries detaches s and reports whether s was part of d.
func (d *Dataset) RemoveSeries(s *Series) bool {
	if s == nil || s.dataset != d {
		return false
	}
	return d.RemoveSeriesAt(s.index) == nil
}

// RemoveAllSeries detaches all series.
func (d *Dataset) RemoveAllSeries() {
	for _, s := range d.series {
		detach(s)
	}
	d.series = d.series[:0]
}

func (d *Dataset) reindex() {
	for i, s := range d.series {
		s.index = i
	}
}

// SeriesCount returns the number of series in d.
func (d *Dataset) SeriesCount() int { return len(d.series) }

// Series returns the i'th series.
func (d *Dataset) Series(i int) (*Series, error) {
	if i < 0 || i >= len(d.series) {
		return nil, fmt.Errorf("series %d of %d: %w", i, len(d.series), ErrInvalidArgument)
	}
	return d.series[i], nil
}

// All returns the series of d in display order. The slice must not be
// modified.
func (d *Dataset) All() []*Series { return d.series }

// ItemCount returns the number of samples of the i'th series. It panics if
// i is out of range.
func (d *Dataset) ItemCount(i int) int { return d.series[i].Len() }

// XValue returns the x value of item of series.
func (d *Dataset) XValue(series, item int) float64 { return d.series[series].items[item].X }

// YValue returns the y value of item of series.
func (d *Dataset) YValue(series, item int) float64 { return d.series[series].items[item].Y }

// IsEmpty reports whether d has no series or only empty ones.
func (d *Dataset) IsEmpty() bool {
	for _, s := range d.series {
		if s.Len() > 0 {
			return false
		}
	}
	return true
}

// DomainBounds returns the union of the x extents of all series.
func (d *Dataset) DomainBounds() Range {
	r := emptyRange()
	for _, s := range d.series {
		if !s.domain.IsEmpty() {
			r = r.union(s.domain)
		}
	}
	return r.orDefault()
}

// RangeBounds returns the union of the y extents of all series.
func (d *Dataset) RangeBounds() Range {
	r := emptyRange()
	for _, s := range d.series {
		if !s.rng.IsEmpty() {
			r = r.union(s.rng)
		}
	}
	return r.orDefault()
}
