package render

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"
)

// DefaultThreshold is the minimal screen distance, in vg units, a point
// must move away from the last drawn point along either axis to be drawn.
const DefaultThreshold = 2

// Decimation drops points whose screen position is too close to the last
// drawn point of their series.
type Decimation struct {
	// Threshold is the minimal distance along either axis. Zero means
	// DefaultThreshold, a negative value disables decimation.
	Threshold vg.Length
}

func (d Decimation) threshold() float64 {
	switch {
	case d.Threshold == 0:
		return DefaultThreshold
	case d.Threshold < 0:
		return -1
	}
	return float64(d.Threshold)
}

// Emit reports whether cur is far enough from prev to be drawn.
func (d Decimation) Emit(prev, cur vg.Point) bool {
	return ShouldEmit(float64(prev.X), float64(prev.Y), float64(cur.X), float64(cur.Y), d.threshold())
}

// ShouldEmit reports whether the screen point (x1, y1) differs from the
// reference (x0, y0) by strictly more than threshold along either axis.
func ShouldEmit(x0, y0, x1, y1, threshold float64) bool {
	return math.Abs(x1-x0) > threshold || math.Abs(y1-y0) > threshold
}

// ----------------------------------------------------------------------------
// Gaps

// GapMode selects how the distance between two successive x values is
// compared against GapPolicy.Threshold.
type GapMode int

const (
	GapInherit  GapMode = iota // use the policy of the plot; never breaks on its own
	GapOff                     // never break lines
	GapAbsolute                // break if Δx > Threshold
	GapRelative                // break if Δx > Threshold * mean x spacing
)

var gapModeNames = []string{"inherit", "off", "absolute", "relative"}

func (m GapMode) String() string {
	if m < 0 || int(m) >= len(gapModeNames) {
		return fmt.Sprintf("GapMode(%d)", int(m))
	}
	return gapModeNames[m]
}

// ParseGapMode is the inverse of GapMode.String.
func ParseGapMode(s string) (GapMode, error) {
	for i, n := range gapModeNames {
		if n == s {
			return GapMode(i), nil
		}
	}
	return GapOff, fmt.Errorf("render: unknown gap mode %q", s)
}

// GapPolicy breaks connected line renderings where the data has gaps
// in x.
//
// The distance is measured between an item and the item stored right
// before it, not the last drawn one: after decimated items a gap is only
// detected where consecutive samples lie far apart, even if the last
// drawn point is further away.
type GapPolicy struct {
	Mode      GapMode
	Threshold float64
}

// limit returns the largest x distance not considered a gap for a series
// with n items spanning [minX, maxX]. It returns +Inf if gaps are off.
func (g GapPolicy) limit(minX, maxX float64, n int) float64 {
	switch g.Mode {
	case GapAbsolute:
		return g.Threshold
	case GapRelative:
		if n < 2 {
			return math.Inf(1)
		}
		return (maxX - minX) / float64(n) * g.Threshold
	}
	return math.Inf(1)
}
