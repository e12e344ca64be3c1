package render

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/plotter"

	"github.com/san-kum/equipot/internal/field"
	"github.com/san-kum/equipot/internal/levels"
	"github.com/san-kum/equipot/internal/potential"
)

type rampGrid struct {
	xs, ys []float64
	z      [][]float64
}

func (g rampGrid) Dims() (int, int)   { return len(g.xs), len(g.ys) }
func (g rampGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g rampGrid) X(c int) float64    { return g.xs[c] }
func (g rampGrid) Y(r int) float64    { return g.ys[r] }

func newRamp(values ...float64) rampGrid {
	return rampGrid{
		xs: []float64{0, 1, 2},
		ys: []float64{0, 1},
		z:  [][]float64{values[:3], values[3:]},
	}
}

func rocheField(t *testing.T) *field.Field {
	t.Helper()
	sys, err := potential.New(1, 40, 1, 1)
	if err != nil {
		t.Fatalf("system: %v", err)
	}
	f, err := field.Sample(sys, 40, field.DefaultExtent)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	f.Negate()
	return f
}

func TestBandGrid(t *testing.T) {
	g := bandGrid{
		GridXYZ: newRamp(-1, 0, 0.5, 1, 2, math.NaN()),
		levels:  []float64{0, 1, 2},
	}

	expected := [][]float64{{-1, 0, 0}, {1, -1, -1}}
	for r := range expected {
		for c := range expected[r] {
			if got := g.Z(c, r); got != expected[r][c] {
				t.Errorf("band at (%d,%d): expected %v, got %v", c, r, expected[r][c], got)
			}
		}
	}
}

func TestClampedGrid(t *testing.T) {
	g := clampedGrid{
		GridXYZ: newRamp(math.Inf(1), math.Inf(-1), math.NaN(), 1, 2, 3),
		lo:      1,
		hi:      3,
	}

	if g.Z(0, 0) != 3 {
		t.Errorf("expected +Inf clamped to 3, got %v", g.Z(0, 0))
	}
	if g.Z(1, 0) != 1 {
		t.Errorf("expected -Inf clamped to 1, got %v", g.Z(1, 0))
	}
	if g.Z(2, 0) != 1 {
		t.Errorf("expected NaN clamped to 1, got %v", g.Z(2, 0))
	}
	if g.Z(1, 1) != 2 {
		t.Errorf("expected finite value untouched, got %v", g.Z(1, 1))
	}

	lo, hi := finiteExtrema(g.GridXYZ)
	if lo != 1 || hi != 3 {
		t.Errorf("expected extrema 1..3, got %v..%v", lo, hi)
	}
}

func TestPlotRequiresLevels(t *testing.T) {
	_, err := Plot(newRamp(0, 1, 2, 3, 4, 5), nil, Options{})
	if !errors.Is(err, ErrNoLevels) {
		t.Errorf("expected ErrNoLevels, got %v", err)
	}
}

func TestSaveLineContours(t *testing.T) {
	f := rocheField(t)
	p, err := Plot(f, levels.HybridLevels(), Options{HideAxes: true, Markers: plotter.XYs{{X: -0.9756}, {X: 0.0244}}})
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	for _, name := range []string{"roche.svg", "roche.png"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Save(p, path, Options{Width: 3 * 72, Height: 3 * 72}); err != nil {
			t.Fatalf("save %s failed: %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestSaveFilledContours(t *testing.T) {
	f := rocheField(t)
	lo, hi := f.Extrema()
	lv, err := levels.Build(levels.Linear, lo, hi, 10)
	if err != nil {
		t.Fatalf("levels: %v", err)
	}

	p, err := Plot(f, lv, Options{Filled: true, Title: "filled"})
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "filled.png")
	if err := Save(p, path, Options{}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
}

func TestSaveRejectsUnknownFormat(t *testing.T) {
	p, err := Plot(newRamp(0, 1, 2, 3, 4, 5), []float64{1, 2}, Options{})
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	err = Save(p, filepath.Join(t.TempDir(), "out.bmp"), Options{})
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestImage(t *testing.T) {
	p, err := Plot(newRamp(0, 1, 2, 3, 4, 5), []float64{1, 2, 3}, Options{Filled: true})
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	img := Image(p, Options{Width: 2 * 72, Height: 72})
	b := img.Bounds()
	if b.Dx() <= b.Dy() || b.Dy() == 0 {
		t.Errorf("unexpected image bounds %v", b)
	}
}
