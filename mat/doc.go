// Package mat provides the 2x2 and 3x3 linear transforms on float64 values.
//
// Matrices are stored row-major. Products are rounded term by term, so the
// result of every function matches the plain IEEE-754 formula
//
//	out[r] = m[r][0]*v[0] + m[r][1]*v[1] (+ m[r][2]*v[2])
//
// on every architecture; NaN and Inf propagate as the formula dictates.
package mat
