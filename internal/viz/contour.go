package viz

import "math"

type Point struct{ X, Y float64 }

type Segment struct{ A, B Point }

// Grid is a sampled scalar field; field.Field satisfies it.
type Grid interface {
	Dims() (c, r int)
	Z(c, r int) float64
	X(c int) float64
	Y(r int) float64
}

// Segments traces the level set z = level through g with marching squares.
// Cells touching a non-finite sample are skipped. Saddle cells are split
// according to the mean of their corners.
func Segments(g Grid, level float64) []Segment {
	cols, rows := g.Dims()
	var segs []Segment

	for j := 0; j < rows-1; j++ {
		for i := 0; i < cols-1; i++ {
			// corners counter-clockwise from (i, j); edge k joins corner k and k+1
			z := [4]float64{g.Z(i, j), g.Z(i+1, j), g.Z(i+1, j+1), g.Z(i, j+1)}
			if !allFinite(z) {
				continue
			}

			var above [4]bool
			n := 0
			for k, v := range z {
				above[k] = v >= level
				if above[k] {
					n++
				}
			}
			if n == 0 || n == 4 {
				continue
			}

			p := [4]Point{
				{g.X(i), g.Y(j)},
				{g.X(i + 1), g.Y(j)},
				{g.X(i + 1), g.Y(j + 1)},
				{g.X(i), g.Y(j + 1)},
			}
			edge := func(k int) Point {
				a, b := k, (k+1)%4
				t := (level - z[a]) / (z[b] - z[a])
				return Point{p[a].X + t*(p[b].X-p[a].X), p[a].Y + t*(p[b].Y-p[a].Y)}
			}

			saddle := n == 2 && above[0] == above[2]
			if saddle {
				centre := (z[0]+z[1]+z[2]+z[3])/4 >= level
				for k := range above {
					if above[k] != centre {
						segs = append(segs, Segment{edge((k + 3) % 4), edge(k)})
					}
				}
				continue
			}

			var crossed []int
			for k := 0; k < 4; k++ {
				if above[k] != above[(k+1)%4] {
					crossed = append(crossed, k)
				}
			}
			segs = append(segs, Segment{edge(crossed[0]), edge(crossed[1])})
		}
	}

	return segs
}

func allFinite(z [4]float64) bool {
	for _, v := range z {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// DrawContours clears c, fits it to g and draws every level.
func DrawContours(c *Canvas, g Grid, levels []float64) {
	cols, rows := g.Dims()
	c.Clear()
	c.SetBounds(g.X(0), g.X(cols-1), g.Y(0), g.Y(rows-1))
	for _, level := range levels {
		for _, s := range Segments(g, level) {
			c.WorldLine(s.A, s.B)
		}
	}
}
