package fastplot

import (
	"fmt"
	"math"

	"github.com/vdobler/fastplot/data"
	"github.com/vdobler/fastplot/render"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ----------------------------------------------------------------------------
// Scale

// Scale is an axis of a plot: it learns the range covered by the data,
// autoscales it into its Interval and maps values to screen coordinates.
type Scale struct {
	// Title is the scale's title.
	Title string

	// Data is the range covered by actual data.
	Data Interval

	// Interval captures the range of this scale. It may be larger or
	// smaller than the actual Data range.
	Interval

	// ScaleType determines the fundamental nature of the scale.
	ScaleType ScaleType

	// Reverse lets the scale run from right to left or top to bottom.
	Reverse bool

	// Autoscaling can be used to control autoscaling of this scale.
	Autoscaling

	// Ticker is responsible for generating the ticks. Nil uses the
	// ticker of the scale's transformation.
	Ticker plot.Ticker
}

var _ render.Axis = (*Scale)(nil)

// NewScale returns a new linear scale which autoscales to the actual data.
func NewScale() *Scale {
	s := &Scale{
		Data:      unsetInterval(),
		Interval:  unsetInterval(),
		ScaleType: Linear,
		Autoscaling: Autoscaling{
			MinRange: unsetInterval(),
			MaxRange: unsetInterval(),
		},
	}
	s.Autoscaling.Expand.Relative = 0.05

	return s
}

// Transformation returns the transformation used to map values of s.
func (s *Scale) Transformation() Transformation {
	t := LinearTrans
	if s.ScaleType == Logarithmic {
		t = Log10Trans
	}
	if s.Reverse {
		t = Reversed(t)
	}
	return t
}

// ValueToScreen maps v to a coordinate in area: along the x axis of area
// for a scale drawn on the top or bottom edge and along the y axis
// otherwise. Values outside the scale's interval map outside of area.
// If s's Interval is degenerate or unset or v cannot be transformed
// ValueToScreen returns NaN.
func (s *Scale) ValueToScreen(v float64, area vg.Rectangle, edge render.Edge) float64 {
	if math.IsNaN(v) || !s.valid() {
		return math.NaN()
	}
	return s.Transformation().Trans(s.Interval, screenInterval(area, edge), v)
}

// ScreenToValue is the inverse of ValueToScreen.
func (s *Scale) ScreenToValue(c float64, area vg.Rectangle, edge render.Edge) float64 {
	if math.IsNaN(c) || !s.valid() {
		return math.NaN()
	}
	return s.Transformation().Inverse(s.Interval, screenInterval(area, edge), c)
}

func screenInterval(area vg.Rectangle, edge render.Edge) Interval {
	if edge.Horizontal() {
		return Interval{float64(area.Min.X), float64(area.Max.X)}
	}
	return Interval{float64(area.Min.Y), float64(area.Max.Y)}
}

func (s *Scale) valid() bool {
	if math.IsNaN(s.Min) || math.IsNaN(s.Max) || s.Min == s.Max {
		return false
	}
	return s.ScaleType != Logarithmic || (s.Min > 0 && s.Max > 0)
}

// Ticks returns the ticks of s.
func (s *Scale) Ticks() []plot.Tick {
	if !s.valid() {
		return nil
	}
	t := s.Ticker
	if t == nil {
		t = s.Transformation().Ticker
	}
	return t.Ticks(s.Min, s.Max)
}

// UpdateData updates s to cover r.
func (s *Scale) UpdateData(r data.Range) {
	s.Data.Update(r.Min, r.Max)
}

// ResetData forgets the learned data range.
func (s *Scale) ResetData() { s.Data = unsetInterval() }

// FixMin fixes the min of s to x. If x is NaN the min is determined by
// autoscaling to the actual data.
func (s *Scale) FixMin(x float64) {
	s.MinRange.Min = x
	s.MinRange.Max = x
}

// FixMax fixes the max of s to x. If x is NaN the max is determined by
// autoscaling to the actual data.
func (s *Scale) FixMax(x float64) {
	s.MaxRange.Min = x
	s.MaxRange.Max = x
}

// HasData reports whether the Data intervall of s is valid.
func (s *Scale) HasData() bool {
	return !math.IsNaN(s.Data.Min) && !math.IsNaN(s.Data.Max)
}

// InRange reports whether x lies in the the range of s.
func (s *Scale) InRange(x float64) bool {
	return x >= s.Min && x <= s.Max
}

func (s *Scale) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %s %q",
		s.Min, s.Max, s.Data.Min, s.Data.Max, s.ScaleType, s.Title)
}

// autoscale turns the data range into an actual scale range.
func (s *Scale) autoscale() {
	if !s.HasData() {
		return
	}

	lo, hi := s.Data.Min, s.Data.Max
	if s.ScaleType == Logarithmic && lo > 0 {
		lo, hi = math.Log10(lo), math.Log10(hi)
	}
	ext := s.Expand.Relative*(hi-lo) + s.Expand.Absolute

	// Determine the left edge of s.
	if s.MinRange.Min == s.MinRange.Max {
		// Degenerate MinRangeIntervall and non NaN:
		// The user has set a fixed Min.
		s.Min = s.MinRange.Min
	} else {
		switch s.ScaleType {
		case Linear:
			s.Min = s.Data.Min - ext
		case Logarithmic:
			s.Min = s.Data.Min / math.Pow(10, ext)
		default:
			panic(fmt.Sprintf("fastplot: unknown scale type %d", s.ScaleType))
		}

		// Clip autoscaling
		if s.MinRange.Min > s.Min {
			s.Min = s.MinRange.Min
		}
		if s.MinRange.Max < s.Min {
			s.Min = s.MinRange.Max
		}
	}

	// Determine the right edge of s.
	if s.MaxRange.Min == s.MaxRange.Max {
		s.Max = s.MaxRange.Min
	} else {
		switch s.ScaleType {
		case Linear:
			s.Max = s.Data.Max + ext
		case Logarithmic:
			s.Max = s.Data.Max * math.Pow(10, ext)
		default:
			panic(fmt.Sprintf("fastplot: unknown scale type %d", s.ScaleType))
		}

		if s.MaxRange.Min > s.Max {
			s.Max = s.MaxRange.Min
		}
		if s.MaxRange.Max < s.Max {
			s.Max = s.MaxRange.Max
		}
	}
}

// deDegenerate makes sure s has a usable, non-empty interval.
func (s *Scale) deDegenerate() {
	if math.IsNaN(s.Min) {
		s.Min = data.DefaultRange.Min
	}
	if math.IsNaN(s.Max) {
		s.Max = data.DefaultRange.Max
	}
	if s.Min == s.Max {
		d := math.Abs(s.Min) / 10
		if d == 0 {
			d = 1
		}
		s.Min, s.Max = s.Min-d, s.Max+d
	}
	if s.Min > s.Max {
		s.Min, s.Max = s.Max, s.Min
	}
	if s.ScaleType == Logarithmic && s.Min <= 0 {
		if s.Max <= 0 {
			s.Min, s.Max = 1, 10
		} else {
			s.Min = s.Max / 1000
		}
	}
}

// ----------------------------------------------------------------------------
// Intervall

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

func (i *Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// Covers reports whether j lies within i. Unset edges of j are ignored.
func (i Interval) Covers(j Interval) bool {
	return !(j.Min < i.Min) && !(j.Max > i.Max)
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the handful know scale types.
type ScaleType int

// String returns the type of st.
func (st ScaleType) String() string {
	return []string{"linear", "log"}[int(st)]
}

const (
	Linear ScaleType = iota
	Logarithmic
)

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the min and max value of a scale are scaled.
// Setting a range to a degenerate interval [f:f] will turn of autoscaling
// and fix the value to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expandend. For
	// logarithmic scales the expansion is done in decades.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange Interval // MinRange determines the allowed range of the Min of a scale.
	MaxRange Interval // MaxRange determines the allowed range of the Max of a scale.
}
