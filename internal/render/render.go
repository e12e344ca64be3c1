// Package render draws equipotential contours with gonum/plot.
//
// Line contours trace each level in black. Filled contours paint every grid
// cell with the colour of the level band it falls in; cells outside the
// first and last level stay empty.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

var formats = map[string]bool{
	"png":  true,
	"svg":  true,
	"pdf":  true,
	"eps":  true,
	"jpg":  true,
	"jpeg": true,
	"tif":  true,
	"tiff": true,
}

// Options controls how a field is drawn.
type Options struct {
	Filled   bool
	HideAxes bool
	Title    string
	Width    vg.Length
	Height   vg.Length
	// Markers are drawn as dots over the contours, typically the bodies.
	Markers plotter.XYs
}

func (o Options) size() (vg.Length, vg.Length) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

type monochrome []color.Color

func (m monochrome) Colors() []color.Color { return m }

// Plot builds a contour plot of g at the given levels.
func Plot(g plotter.GridXYZ, levels []float64, opts Options) (*plot.Plot, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	sorted := make([]float64, len(levels))
	copy(sorted, levels)
	sort.Float64s(sorted)

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	if opts.Filled {
		p.Add(filled(g, sorted))
	} else {
		p.Add(lines(g, sorted))
	}

	if len(opts.Markers) > 0 {
		s, err := plotter.NewScatter(opts.Markers)
		if err != nil {
			return nil, fmt.Errorf("markers: %w", err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		s.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(s)
	}

	if opts.HideAxes {
		p.HideAxes()
	}

	return p, nil
}

func lines(g plotter.GridXYZ, levels []float64) *plotter.Contour {
	lo, hi := finiteExtrema(g)
	if math.IsInf(lo, 1) {
		// nothing finite to trace
		lo, hi = levels[0], levels[len(levels)-1]
	}

	c := plotter.NewContour(clampedGrid{GridXYZ: g, lo: lo, hi: hi}, levels, monochrome{color.Black, color.Black})
	c.LineStyles = []draw.LineStyle{{Color: color.Black, Width: vg.Points(0.6)}}
	c.Min = math.Min(lo, levels[0])
	c.Max = math.Max(hi, levels[len(levels)-1])
	if c.Max <= c.Min {
		c.Max = c.Min + 1
	}
	return c
}

func filled(g plotter.GridXYZ, levels []float64) *plotter.HeatMap {
	n := len(levels) - 1
	if n < 2 {
		n = 2
	}

	h := plotter.NewHeatMap(bandGrid{GridXYZ: g, levels: levels}, palette.Heat(n, 1))
	h.Min = 0
	h.Max = float64(n - 1)
	h.Underflow = nil
	h.Overflow = nil
	return h
}

// Save writes p to path in the format named by its extension.
func Save(p *plot.Plot, path string, opts Options) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if !formats[ext] {
		return fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}
	w, h := opts.size()
	return p.Save(w, h, path)
}

// Image rasterises p.
func Image(p *plot.Plot, opts Options) image.Image {
	w, h := opts.size()
	c := vgimg.New(w, h)
	p.Draw(draw.New(c))
	return c.Image()
}
