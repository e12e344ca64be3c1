// Package potential evaluates the effective gravitational potential of a
// two-body system in the frame corotating with the bodies.
//
// The bodies sit on the x-axis with the centre of mass at the origin:
//
//	q  = m1 / (m1 + m2)
//	x1 = (q - 1) d
//	x2 = q d
//
// and the potential at (x, y) is
//
//	Φ = G (-m1/r1 - m2/r2 - (m1+m2)/(2d³) (x² + y²))
//
// # Example
//
//	sys, err := potential.New(1, 40, 1, 1)
//	if err != nil {
//		return err
//	}
//	phi := sys.Effective(0.5, 0.2)
package potential
