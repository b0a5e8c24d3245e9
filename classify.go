package mandel

import "math/cmplx"

// Threshold is the escape radius: a point is stable when its final |z| <= Threshold.
const Threshold = 2.0

// IsStable runs exactly iterations steps of z = z*z + c from z = 0
// and reports whether the final orbit value stayed within Threshold.
//
// There is no early exit: the loop always runs to completion. NaN and Inf
// values produced by diverging orbits fail the comparison and classify as unstable.
func IsStable(c complex128, iterations int) bool {
	z := complex(0, 0)
	for range iterations {
		z = z*z + c
	}
	return cmplx.Abs(z) <= Threshold
}

// AppendStable appends the stable points of points to dst, preserving order.
func AppendStable(dst []Point, points []complex128, iterations int) []Point {
	for _, c := range points {
		if IsStable(c, iterations) {
			dst = append(dst, Point{Re: real(c), Im: imag(c)})
		}
	}
	return dst
}

// CollectStable classifies every grid sample in traversal order
// and returns the stable ones.
func CollectStable(g Grid, iterations int) []Point {
	return AppendStable(nil, g.Points, iterations)
}
