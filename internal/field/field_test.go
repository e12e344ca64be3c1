package field_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/equipot/internal/field"
	"github.com/san-kum/equipot/internal/potential"
)

type plane struct{}

func (plane) Effective(x, y float64) float64 { return 2*x + 3*y }

var _ = Describe("Linspace", func() {
	It("includes both endpoints", func() {
		s := field.Linspace(-1.3, 1.3, 100)
		Expect(s).To(HaveLen(100))
		Expect(s[0]).To(Equal(-1.3))
		Expect(s[99]).To(Equal(1.3))
	})

	It("is evenly spaced", func() {
		s := field.Linspace(0, 9, 10)
		for i, v := range s {
			Expect(v).To(BeNumerically("~", float64(i), 1e-12))
		}
	})
})

var _ = Describe("Sample", func() {
	var sys potential.System

	BeforeEach(func() {
		var err error
		sys, err = potential.New(1, 40, 1, 1)
		Expect(err).NotTo(HaveOccurred())
	})

	It("builds a 100x100 grid over ±1.3d", func() {
		f, err := field.Sample(sys, field.DefaultResolution, field.DefaultExtent)
		Expect(err).NotTo(HaveOccurred())

		c, r := f.Dims()
		Expect(c).To(Equal(100))
		Expect(r).To(Equal(100))
		rows, cols := f.Values.Dims()
		Expect(rows).To(Equal(100))
		Expect(cols).To(Equal(100))
		Expect(f.Xs[0]).To(BeNumerically("~", -1.3, 1e-12))
		Expect(f.Xs[99]).To(BeNumerically("~", 1.3, 1e-12))
		Expect(f.Ys).To(Equal(f.Xs))
	})

	It("scales the grid with the separation", func() {
		wide, err := potential.New(5, 10, 100, 1)
		Expect(err).NotTo(HaveOccurred())

		f, err := field.Sample(wide, field.DefaultResolution, field.DefaultExtent)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Xs[0]).To(BeNumerically("~", -130, 1e-9))
		Expect(f.Ys[99]).To(BeNumerically("~", 130, 1e-9))
	})

	It("stores Φ(x_i, y_j) at row j, column i", func() {
		f, err := field.Sample(sys, 17, 1.3)
		Expect(err).NotTo(HaveOccurred())

		for _, ij := range [][2]int{{0, 0}, {3, 11}, {16, 2}, {8, 8}} {
			i, j := ij[0], ij[1]
			Expect(f.Z(i, j)).To(Equal(sys.Effective(f.Xs[i], f.Ys[j])))
		}
	})

	It("rejects a degenerate resolution", func() {
		_, err := field.Sample(sys, 1, 1.3)
		Expect(err).To(MatchError(field.ErrResolution))
	})

	It("rejects a non-positive extent", func() {
		_, err := field.Sample(sys, 10, 0)
		Expect(err).To(MatchError(field.ErrExtent))
	})
})

var _ = Describe("Evaluate", func() {
	It("matches a serial evaluation on a large grid", func() {
		xs := field.Linspace(-5, 5, 257)
		ys := field.Linspace(-2, 2, 129)
		f := field.Evaluate(plane{}, xs, ys)

		for j, y := range ys {
			for i, x := range xs {
				Expect(f.Z(i, j)).To(Equal(2*x + 3*y))
			}
		}
	})
})

var _ = Describe("Field", func() {
	var f *field.Field

	BeforeEach(func() {
		f = field.Evaluate(plane{}, []float64{-1, 0, 1}, []float64{-1, 1})
	})

	It("negates in place", func() {
		f.Negate()
		Expect(f.Z(2, 1)).To(Equal(-5.0))
		Expect(f.Z(0, 0)).To(Equal(5.0))
	})

	It("reports finite extrema only", func() {
		f.Values.Set(0, 1, math.Inf(-1))
		f.Values.Set(1, 1, math.NaN())
		lo, hi := f.Extrema()
		Expect(lo).To(Equal(-5.0))
		Expect(hi).To(Equal(5.0))
	})

	It("returns NaN extrema when nothing is finite", func() {
		f = field.Evaluate(potentialAt(math.Inf(-1)), []float64{0, 1}, []float64{0, 1})
		lo, hi := f.Extrema()
		Expect(math.IsNaN(lo)).To(BeTrue())
		Expect(math.IsNaN(hi)).To(BeTrue())
	})

	It("copies a row", func() {
		Expect(f.Row(1)).To(Equal([]float64{1, 3, 5}))
	})
})

type potentialAt float64

func (p potentialAt) Effective(x, y float64) float64 { return float64(p) }
