// Package profile samples the potential along the body axis and charts it,
// either as a terminal plot or as a PNG.
package profile

import (
	"io"
	"math"

	"github.com/guptarohit/asciigraph"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/equipot/internal/field"
	"github.com/san-kum/equipot/internal/potential"
)

// Profile is Φ(x, 0) sampled along the x-axis.
type Profile struct {
	Xs     []float64
	Phi    []float64
	X1, X2 float64
	L1     float64
}

// Along samples sys at n points over ±extent·D on the x-axis. When negate is
// set the values are sign-flipped, matching a negated field.
func Along(sys potential.System, n int, extent float64, negate bool) Profile {
	half := extent * sys.D
	xs := field.Linspace(-half, half, n)
	phi := make([]float64, n)
	for i, x := range xs {
		phi[i] = sys.Effective(x, 0)
		if negate {
			phi[i] = -phi[i]
		}
	}

	x1, x2 := sys.Positions()
	l1, _ := sys.L1()
	return Profile{Xs: xs, Phi: phi, X1: x1, X2: x2, L1: l1}
}

// Clip clamps every value into [-limit, limit]; the singular samples at the
// bodies end up on the bound nearest their sign, NaN on the lower bound.
func Clip(vals []float64, limit float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		switch {
		case math.IsNaN(v) || v < -limit:
			out[i] = -limit
		case v > limit:
			out[i] = limit
		default:
			out[i] = v
		}
	}
	return out
}

// Limit is twice the magnitude of the potential at L1: wide enough to show
// both wells and the saddle between them.
func Limit(sys potential.System) float64 {
	_, phi := sys.L1()
	return 2 * math.Abs(phi)
}

// ASCII renders the profile as a terminal line chart.
func (p Profile) ASCII(limit float64, width, height int, caption string) string {
	return asciigraph.Plot(Clip(p.Phi, limit),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// WritePNG renders the profile with dashed markers at both bodies and L1.
func (p Profile) WritePNG(w io.Writer, limit float64, title string) error {
	ys := Clip(p.Phi, limit)
	lo, hi := ys[0], ys[0]
	for _, v := range ys {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	marker := func(name string, x float64, col drawing.Color) chart.Series {
		return chart.ContinuousSeries{
			Name:    name,
			XValues: []float64{x, x},
			YValues: []float64{lo, hi},
			Style: chart.Style{
				StrokeColor:     col,
				StrokeWidth:     1,
				StrokeDashArray: []float64{4, 3},
			},
		}
	}

	graph := chart.Chart{
		Title:  title,
		Width:  1024,
		Height: 512,
		XAxis:  chart.XAxis{Name: "x"},
		YAxis:  chart.YAxis{Name: "phi(x, 0)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "phi",
				XValues: p.Xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: drawing.ColorBlack,
					StrokeWidth: 1.5,
				},
			},
			marker("body 1", p.X1, drawing.ColorRed),
			marker("body 2", p.X2, drawing.ColorRed),
			marker("L1", p.L1, drawing.ColorBlue),
		},
	}

	return graph.Render(chart.PNG, w)
}
