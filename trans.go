// Scale Transformations
//
// A Transformation maps the interval of a scale onto an interval of screen
// coordinates and back.
package fastplot

import (
	"math"

	"gonum.org/v1/plot"
)

// A Transformation bundles two functions Trans and Inverse together with
// an appropiate Ticker. The two functions map two intervals.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
	Ticker  plot.Ticker
}

// IdentityTrans does not transform at all.
var IdentityTrans = Transformation{
	Name:    "Identity",
	Trans:   func(from, to Interval, x float64) float64 { return x },
	Inverse: func(from, to Interval, y float64) float64 { return y },
	Ticker:  plot.DefaultTicks{},
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*(y-to.Min)/(to.Max-to.Min)
	},
	Ticker: plot.DefaultTicks{},
}

// Log10Trans maps from logarithmically. Non-positive values and intervals
// map to NaN.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(from, to Interval, x float64) float64 {
		if x <= 0 || from.Min <= 0 || from.Max <= 0 {
			return math.NaN()
		}
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		if from.Min <= 0 || from.Max <= 0 {
			return math.NaN()
		}
		return from.Min * math.Pow(10, math.Log10(from.Max/from.Min)*(y-to.Min)/(to.Max-to.Min))
	},
	Ticker: plot.LogTicks{},
}

// Reversed returns t with the direction of the target interval flipped,
// i.e. from.Min maps to to.Max.
func Reversed(t Transformation) Transformation {
	flip := func(i Interval) Interval { return Interval{i.Max, i.Min} }
	return Transformation{
		Name: t.Name + "Reversed",
		Trans: func(from, to Interval, x float64) float64 {
			return t.Trans(from, flip(to), x)
		},
		Inverse: func(from, to Interval, y float64) float64 {
			return t.Inverse(from, flip(to), y)
		},
		Ticker: t.Ticker,
	}
}
