package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/equipot/internal/potential"
)

const (
	DefaultResolution = 100
	DefaultExtent     = 1.3

	// rows per goroutine below which evaluation stays on one goroutine
	minRowsPerWorker = 8
)

// Evaluator is anything that yields a scalar at a point in the plane.
type Evaluator interface {
	Effective(x, y float64) float64
}

// Field is a sampled scalar field over an axis-aligned grid.
type Field struct {
	Xs     []float64
	Ys     []float64
	Values *mat.Dense
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	s := floats.Span(make([]float64, n), lo, hi)
	s[n-1] = hi
	return s
}

// Sample evaluates sys on an n×n grid spanning ±extent·D in both x and y.
func Sample(sys potential.System, n int, extent float64) (*Field, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrResolution, n)
	}
	if !(extent > 0) || math.IsInf(extent, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrExtent, extent)
	}

	half := extent * sys.D
	xs := Linspace(-half, half, n)
	ys := make([]float64, n)
	copy(ys, xs)

	return Evaluate(sys, xs, ys), nil
}

// Evaluate applies e independently to every (x, y) pair of the grid.
func Evaluate(e Evaluator, xs, ys []float64) *Field {
	values := mat.NewDense(len(ys), len(xs), nil)

	parallelFor(len(ys), minRowsPerWorker, func(start, end int) {
		for j := start; j < end; j++ {
			y := ys[j]
			for i, x := range xs {
				values.Set(j, i, e.Effective(x, y))
			}
		}
	})

	return &Field{Xs: xs, Ys: ys, Values: values}
}

// Negate flips the sign of every value in place.
func (f *Field) Negate() {
	f.Values.Scale(-1, f.Values)
}

// Extrema returns the smallest and largest finite values. Both are NaN when
// the field holds no finite value.
func (f *Field) Extrema() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	found := false
	for _, v := range f.Values.RawMatrix().Data {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		found = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if !found {
		return math.NaN(), math.NaN()
	}
	return lo, hi
}

// Row returns a copy of the values sampled at Ys[j].
func (f *Field) Row(j int) []float64 {
	return mat.Row(nil, j, f.Values)
}

// Dims returns the number of x and y samples.
func (f *Field) Dims() (c, r int) {
	return len(f.Xs), len(f.Ys)
}

// Z returns the value at column c, row r.
func (f *Field) Z(c, r int) float64 {
	return f.Values.At(r, c)
}

// X returns the x coordinate of column c.
func (f *Field) X(c int) float64 {
	return f.Xs[c]
}

// Y returns the y coordinate of row r.
func (f *Field) Y(r int) float64 {
	return f.Ys[r]
}
