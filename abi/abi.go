// Package abi exposes the transforms with the flat calling convention used
// across the JavaScript boundary: scalar arguments in, results written to a
// caller-owned buffer.
//
// The functions only write out; they never read, grow or retain it. A
// buffer shorter than the documented slot count panics before anything is
// written. Concurrent calls are safe as long as they use distinct buffers.
package abi

import (
	"github.com/seqsense/lintransform/mat"
)

// Slot counts of the output buffers.
const (
	Multiply2x2Slots    = 2
	TransformBasisSlots = 4
	Multiply3x3Slots    = 3
)

// Multiply2x2 writes the image of (x, y) under the matrix with rows (a, b)
// and (c, d) to out[0:2].
func Multiply2x2(out []float64, a, b, c, d, x, y float64) {
	_ = out[1]
	v := mat.Multiply2x2(a, b, c, d, x, y)
	out[0] = v[0]
	out[1] = v[1]
}

// TransformBasis writes the images of e1 and e2 to out[0:2] and out[2:4].
func TransformBasis(out []float64, a, b, c, d float64) {
	_ = out[3]
	v := mat.TransformBasis(a, b, c, d)
	copy(out, v[:])
}

// Multiply3x3 writes the image of (x, y, z) under the matrix with rows
// (a, b, c), (d, e, f) and (g, h, i) to out[0:3].
func Multiply3x3(out []float64, a, b, c, d, e, f, g, h, i, x, y, z float64) {
	_ = out[2]
	v := mat.Multiply3x3(a, b, c, d, e, f, g, h, i, x, y, z)
	out[0] = v[0]
	out[1] = v[1]
	out[2] = v[2]
}
