package potential

import "math"

const (
	bisectIterations = 200
	bisectMargin     = 1e-9
)

// L1 returns the inner Lagrange point: the saddle of Φ on the segment
// between the bodies where ∂Φ/∂x vanishes. The potential there is the
// level at which the two Roche lobes touch.
func (s System) L1() (x, phi float64) {
	x1, x2 := s.Positions()
	lo := x1 + bisectMargin*s.D
	hi := x2 - bisectMargin*s.D

	// Φ climbs out of the well around body 1, so the gradient is positive
	// at lo and negative at hi.
	for i := 0; i < bisectIterations; i++ {
		mid := 0.5 * (lo + hi)
		if s.GradientX(mid) > 0 {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= math.Abs(mid)*1e-15 {
			break
		}
	}
	x = 0.5 * (lo + hi)
	return x, s.Effective(x, 0)
}
