package main

import (
	"github.com/seqsense/lintransform/mat"
)

// Page input element IDs, row-major for the matrix.
var (
	matrixIDs2D = []string{"a", "b", "c", "d"}
	matrixIDs3D = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	vectorIDs2D = []string{"x", "y"}
	vectorIDs3D = []string{"x", "y", "z"}
)

// readFields loads the matrix and vector of the current mode from the
// page fields. The transformed vector is left unset.
func readFields(s *transformState, get func(id string) float64) {
	switch s.Mode() {
	case mode3D:
		var m mat.Mat3
		for i, id := range matrixIDs3D {
			m[i] = get(id)
		}
		var v mat.Vec3
		for i, id := range vectorIDs3D {
			v[i] = get(id)
		}
		s.SetMat3(m)
		s.SetVector(v)
	default:
		var m mat.Mat2
		for i, id := range matrixIDs2D {
			m[i] = get(id)
		}
		var v mat.Vec3
		for i, id := range vectorIDs2D {
			v[i] = get(id)
		}
		s.SetMat2(m)
		s.SetVector(v)
	}
}

func writeFields(s *transformState, set func(id string, v float64)) {
	v := s.Vector()
	switch s.Mode() {
	case mode3D:
		m := s.Mat3()
		for i, id := range matrixIDs3D {
			set(id, m[i])
		}
		for i, id := range vectorIDs3D {
			set(id, v[i])
		}
	default:
		m := s.Mat2()
		for i, id := range matrixIDs2D {
			set(id, m[i])
		}
		for i, id := range vectorIDs2D {
			set(id, v[i])
		}
	}
}
