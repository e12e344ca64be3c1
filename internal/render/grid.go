package render

import (
	"math"
	"sort"

	"gonum.org/v1/plot/plotter"
)

// clampedGrid pins infinite samples (the bodies themselves) to the finite
// extrema so the contour tracer never interpolates towards infinity. NaN
// samples are pinned low.
type clampedGrid struct {
	plotter.GridXYZ
	lo, hi float64
}

func (g clampedGrid) Z(c, r int) float64 {
	v := g.GridXYZ.Z(c, r)
	switch {
	case math.IsInf(v, 1):
		return g.hi
	case math.IsInf(v, -1), math.IsNaN(v):
		return g.lo
	}
	return v
}

// bandGrid replaces each sample with the index of the level band holding it:
// band k covers [levels[k], levels[k+1]). Samples outside the levels, and
// NaN samples, map to -1 and are left unpainted.
type bandGrid struct {
	plotter.GridXYZ
	levels []float64
}

func (g bandGrid) Z(c, r int) float64 {
	v := g.GridXYZ.Z(c, r)
	if math.IsNaN(v) {
		return -1
	}
	k := sort.Search(len(g.levels), func(i int) bool { return g.levels[i] > v }) - 1
	if k >= len(g.levels)-1 {
		return -1
	}
	return float64(k)
}

// finiteExtrema scans g for its smallest and largest finite samples.
func finiteExtrema(g plotter.GridXYZ) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	c, r := g.Dims()
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			v := g.Z(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}
