package potential

import (
	"fmt"
	"math"
)

// System is a pair of point masses M1 and M2 a distance D apart, with
// gravitational constant G. The zero value is not useful; New validates,
// a struct literal does not.
type System struct {
	M1 float64
	M2 float64
	D  float64
	G  float64
}

// New returns a System after checking that every parameter is positive and
// finite.
func New(m1, m2, d, g float64) (System, error) {
	params := []struct {
		name string
		val  float64
	}{
		{"m1", m1},
		{"m2", m2},
		{"d", d},
		{"g", g},
	}
	for _, p := range params {
		if !(p.val > 0) || math.IsInf(p.val, 1) {
			return System{}, fmt.Errorf("%w: %s = %v", ErrParameterBounds, p.name, p.val)
		}
	}
	return System{M1: m1, M2: m2, D: d, G: g}, nil
}

// TotalMass returns M1 + M2.
func (s System) TotalMass() float64 {
	return s.M1 + s.M2
}

// MassFraction returns q = M1 / (M1 + M2).
func (s System) MassFraction() float64 {
	return s.M1 / s.TotalMass()
}

// Positions returns the x coordinates of body 1 and body 2.
func (s System) Positions() (x1, x2 float64) {
	q := s.MassFraction()
	return (q - 1) * s.D, q * s.D
}

// Distances returns the distance from (x, y) to body 1 and body 2.
func (s System) Distances(x, y float64) (d1, d2 float64) {
	x1, x2 := s.Positions()
	return math.Hypot(x-x1, y), math.Hypot(x-x2, y)
}

// Effective returns the effective potential at (x, y): both Newtonian point
// potentials plus the centrifugal term about the centre of mass.
func (s System) Effective(x, y float64) float64 {
	d1, d2 := s.Distances(x, y)
	centrifugal := s.TotalMass() / (2 * s.D * s.D * s.D) * (x*x + y*y)
	return s.G * (bodyTerm(s.M1, d1) + bodyTerm(s.M2, d2) - centrifugal)
}

// bodyTerm is -m/r, pinned to -Inf on the body itself so a massless body
// still yields a singularity rather than NaN.
func bodyTerm(m, r float64) float64 {
	if r == 0 {
		return math.Inf(-1)
	}
	return -m / r
}

// GradientX returns ∂Φ/∂x on the body axis (y = 0).
func (s System) GradientX(x float64) float64 {
	x1, x2 := s.Positions()
	r1, r2 := x-x1, x-x2
	return s.G * (s.M1*r1/math.Pow(math.Abs(r1), 3) +
		s.M2*r2/math.Pow(math.Abs(r2), 3) -
		s.TotalMass()*x/(s.D*s.D*s.D))
}

func (s System) String() string {
	return fmt.Sprintf("m1=%g m2=%g d=%g G=%g", s.M1, s.M2, s.D, s.G)
}
