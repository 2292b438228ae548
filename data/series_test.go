package data

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

var nan = math.NaN()

var upsertTests = []struct {
	in    []Sample
	want  []Sample
	count int
}{
	{nil, nil, 0},
	{[]Sample{{1, 1}, {2, 2}, {3, 3}}, []Sample{{1, 1}, {2, 2}, {3, 3}}, 3},
	{[]Sample{{3, 3}, {1, 1}, {2, 2}}, []Sample{{1, 1}, {2, 2}, {3, 3}}, 3},
	{[]Sample{{1, 1}, {1, 5}}, []Sample{{1, 5}}, 1},
	{[]Sample{{1, 1}, {3, 3}, {2, 2}, {3, 7}}, []Sample{{1, 1}, {2, 2}, {3, 7}}, 3},
	{[]Sample{{5, 0}, {4, 0}, {3, 0}, {4, 9}}, []Sample{{3, 0}, {4, 9}, {5, 0}}, 3},
	{[]Sample{{-1, 2}, {-1, nan}}, []Sample{{-1, nan}}, 1},
}

func TestSeriesUpsert(t *testing.T) {
	for i, tc := range upsertTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := NewSeries("s")
			for _, p := range tc.in {
				require.NoError(t, s.Add(p.X, p.Y))
			}
			require.Equal(t, tc.count, s.Len())
			for j, w := range tc.want {
				got := s.Value(j)
				if got.X != w.X || !(got.Y == w.Y || math.IsNaN(got.Y) && math.IsNaN(w.Y)) {
					t.Errorf("item %d = %v, want %v", j, got, w)
				}
			}
		})
	}
}

func TestSeriesUpsertResult(t *testing.T) {
	s := NewSeries("s")
	r, err := s.Upsert(2, 1)
	assert.NoError(t, err)
	assert.Equal(t, Inserted, r)

	r, err = s.Upsert(2, 3)
	assert.NoError(t, err)
	assert.Equal(t, Overwritten, r)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 3.0, s.Value(0).Y)

	_, err = s.Upsert(nan, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 1, s.Len())
}

func TestSeriesSortedInvariant(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	s := NewSeries("random")
	for n := 0; n < 2000; n++ {
		x := float64(rnd.Intn(500))
		require.NoError(t, s.Add(x, rnd.Float64()))
		for i := 0; i+1 < s.Len(); i++ {
			if s.Value(i).X >= s.Value(i+1).X {
				t.Fatalf("after %d upserts: x[%d]=%g >= x[%d]=%g",
					n, i, s.Value(i).X, i+1, s.Value(i+1).X)
			}
		}
	}
}

func TestSeriesExtentMonotonic(t *testing.T) {
	s := NewSeries("s")
	assert.Equal(t, DefaultRange, s.DomainExtent())
	assert.Equal(t, DefaultRange, s.RangeExtent())

	rnd := rand.New(rand.NewSource(7))
	var lastX, lastY float64
	for n := 0; n < 500; n++ {
		require.NoError(t, s.Add(rnd.NormFloat64()*10, rnd.NormFloat64()*100))
		d, r := s.DomainExtent(), s.RangeExtent()
		if n > 0 && (d.Width() < lastX || r.Width() < lastY) {
			t.Fatalf("extent shrank after upsert %d: %v %v", n, d, r)
		}
		lastX, lastY = d.Width(), r.Width()
	}

	xmin, xmax, ymin, ymax := plotter.XYRange(s)
	assert.Equal(t, Range{xmin, xmax}, s.DomainExtent())
	assert.Equal(t, Range{ymin, ymax}, s.RangeExtent())
}

func TestSeriesOverwriteKeepsExtent(t *testing.T) {
	s := NewSeries("s")
	require.NoError(t, s.Add(1, 100))
	require.NoError(t, s.Add(2, 0))
	require.NoError(t, s.Add(1, 5))
	assert.Equal(t, Range{0, 100}, s.RangeExtent())

	s.RecomputeExtents()
	assert.Equal(t, Range{0, 5}, s.RangeExtent())
}

func TestSeriesDeleteRange(t *testing.T) {
	s := NewSeries("s")
	for i := 0; i < 10; i++ {
		require.NoError(t, s.Add(float64(i), float64(i*i)))
	}
	rev := s.Revision()

	require.NoError(t, s.DeleteRange(5, 10))
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, Range{0, 4}, s.DomainExtent())
	assert.Equal(t, Range{0, 16}, s.RangeExtent())
	assert.Greater(t, s.Revision(), rev)

	assert.ErrorIs(t, s.DeleteRange(3, 9), ErrInvalidArgument)
	assert.ErrorIs(t, s.DeleteRange(-1, 2), ErrInvalidArgument)
	assert.ErrorIs(t, s.DeleteRange(3, 2), ErrInvalidArgument)
	assert.Equal(t, 5, s.Len())

	require.NoError(t, s.DeleteRange(0, 2))
	assert.Equal(t, 2.0, s.Value(0).X)
}

func TestSeriesClear(t *testing.T) {
	s := NewSeries("s")
	require.NoError(t, s.Add(3, 4))
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, DefaultRange, s.DomainExtent())
	assert.Equal(t, DefaultRange, s.RangeExtent())

	require.NoError(t, s.Add(10, 20))
	assert.Equal(t, Range{10, 10}, s.DomainExtent())
	assert.Equal(t, Range{20, 20}, s.RangeExtent())
}

func TestSeriesRevision(t *testing.T) {
	s := NewSeries("s")
	require.NoError(t, s.Add(1, 1))
	require.NoError(t, s.Add(3, 1))
	rev := s.Revision()

	require.NoError(t, s.Add(4, 1)) // append
	require.NoError(t, s.Add(3, 2)) // overwrite
	assert.Equal(t, rev, s.Revision())

	require.NoError(t, s.Add(2, 1)) // insert in the middle
	assert.Equal(t, rev+1, s.Revision())
}

func TestSeriesCopy(t *testing.T) {
	s := NewSeries("s")
	for i := 0; i < 6; i++ {
		require.NoError(t, s.Add(float64(i), float64(-i)))
	}
	c, err := s.Copy(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, Sample{2, -2}, c.Value(0))
	assert.Equal(t, Range{-3, -2}, c.RangeExtent())
	assert.Nil(t, c.Dataset())

	_, err = s.Copy(4, 7)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
