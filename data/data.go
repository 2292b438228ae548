// Package data contains the sample stores rendered by fastplot: a Series is
// an x-ordered sequence of samples with cached extents, a Dataset an ordered
// collection of series drawn together.
package data

import (
	"errors"
	"math"

	"gonum.org/v1/plot/plotter"
)

// ErrInvalidArgument is returned (wrapped) by operations called with a nil
// series, an out-of-range index or a NaN x value. The operation has no
// effect in that case.
var ErrInvalidArgument = errors.New("data: invalid argument")

// Sample is a single (x, y) data point.
type Sample struct {
	X, Y float64
}

// UpsertResult reports what Series.Upsert did.
type UpsertResult int

const (
	Inserted UpsertResult = iota
	Overwritten
)

func (r UpsertResult) String() string {
	return []string{"inserted", "overwritten"}[int(r)]
}

// ----------------------------------------------------------------------------
// Range

// Range is a closed interval [Min, Max].
type Range struct {
	Min, Max float64
}

// DefaultRange is reported for series or datasets without data. Axis
// layout never sees an empty or inverted range.
var DefaultRange = Range{-1, 1}

// emptyRange is the inverted sentinel every update grows from.
func emptyRange() Range {
	return Range{math.Inf(1), math.Inf(-1)}
}

// IsEmpty reports whether r is the inverted sentinel.
func (r Range) IsEmpty() bool {
	return r.Min > r.Max
}

// Width returns Max-Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Contains reports whether x lies in r.
func (r Range) Contains(x float64) bool {
	return x >= r.Min && x <= r.Max
}

// grow expands r to include v. NaN values are ignored. It reports whether
// r changed.
func (r *Range) grow(v float64) bool {
	changed := false
	if v < r.Min {
		r.Min = v
		changed = true
	}
	if v > r.Max {
		r.Max = v
		changed = true
	}
	return changed
}

// union returns the smallest range covering r and s.
func (r Range) union(s Range) Range {
	return Range{math.Min(r.Min, s.Min), math.Max(r.Max, s.Max)}
}

func (r Range) orDefault() Range {
	if r.IsEmpty() {
		return DefaultRange
	}
	return r
}

// Samples implements plotter.XYer on a plain slice.
type Samples []Sample

func (s Samples) Len() int                { return len(s) }
func (s Samples) XY(i int) (x, y float64) { return s[i].X, s[i].Y }

var (
	_ plotter.XYer = Samples(nil)
	_ plotter.XYer = (*Series)(nil)
)
