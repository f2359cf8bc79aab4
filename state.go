package main

import (
	"errors"

	"github.com/seqsense/lintransform/mat"
)

type mode int

const (
	mode2D mode = iota
	mode3D
)

var errInvalidMode = errors.New("invalid mode")

func parseMode(dim float64) (mode, error) {
	switch dim {
	case 2:
		return mode2D, nil
	case 3:
		return mode3D, nil
	default:
		return 0, errInvalidMode
	}
}

func (m mode) dim() int {
	if m == mode3D {
		return 3
	}
	return 2
}

// transformState is the matrix and vector being displayed.
// In mode2D only the upper-left 2x2 block and the xy components are used.
type transformState struct {
	mode mode
	m    mat.Mat3
	v    mat.Vec3

	applied     bool
	transformed mat.Vec3

	updated bool
}

func newTransformState(md mode) *transformState {
	s := &transformState{mode: md}
	s.Reset()
	return s
}

func (s *transformState) Reset() {
	s.m = mat.Identity3()
	switch s.mode {
	case mode3D:
		s.v = mat.Vec3{1, 1, 1}
	default:
		s.v = mat.Vec3{1, 1, 0}
	}
	s.applied = false
	s.transformed = mat.Vec3{}
	s.updated = true
}

func (s *transformState) SetMode(md mode) {
	s.mode = md
	s.Reset()
}

func (s *transformState) Mode() mode {
	return s.mode
}

func (s *transformState) Mat2() mat.Mat2 {
	return mat.NewMat2(s.m[0], s.m[1], s.m[3], s.m[4])
}

func (s *transformState) Mat3() mat.Mat3 {
	if s.mode == mode2D {
		return s.Mat2().Mat3()
	}
	return s.m
}

func (s *transformState) SetMat2(m mat.Mat2) {
	s.m = m.Mat3()
	s.applied = false
	s.updated = true
}

func (s *transformState) SetMat3(m mat.Mat3) {
	s.m = m
	s.applied = false
	s.updated = true
}

func (s *transformState) Vector() mat.Vec3 {
	if s.mode == mode2D {
		return mat.Vec3{s.v[0], s.v[1], 0}
	}
	return s.v
}

func (s *transformState) SetVector(v mat.Vec3) {
	s.v = v
	s.applied = false
	s.updated = true
}

// Apply transforms the current vector and keeps the result for display.
func (s *transformState) Apply() mat.Vec3 {
	switch s.mode {
	case mode3D:
		s.transformed = s.m.Transform(s.v)
	default:
		s.transformed = s.Mat2().Transform(s.v.XY()).Vec3()
	}
	s.applied = true
	s.updated = true
	return s.transformed
}

// Transformed returns the last result of Apply, if the matrix and vector
// have not changed since.
func (s *transformState) Transformed() (mat.Vec3, bool) {
	return s.transformed, s.applied
}

// Basis returns the images of e1 and e2 in mode2D.
func (s *transformState) Basis() (mat.Vec2, mat.Vec2) {
	return s.Mat2().Basis()
}

// Updated reports whether the state changed since the last call.
func (s *transformState) Updated() bool {
	u := s.updated
	s.updated = false
	return u
}
