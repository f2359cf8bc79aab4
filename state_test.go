package main

import (
	"testing"

	"github.com/seqsense/lintransform/mat"
)

func TestTransformState_Apply(t *testing.T) {
	s := newTransformState(mode2D)
	if !s.Updated() {
		t.Error("New state must be marked as updated")
	}
	if s.Updated() {
		t.Error("Updated flag must be cleared after read")
	}

	if _, ok := s.Transformed(); ok {
		t.Fatal("Transformed vector must not be available before Apply")
	}

	s.SetMat2(mat.NewMat2(2, 0, 0, 3))
	s.SetVector(mat.Vec3{5, 4, 100})
	tv := s.Apply()
	if expected := (mat.Vec3{10, 12, 0}); !tv.Equal(expected) {
		t.Errorf("Expected %v, got %v", expected, tv)
	}
	if !s.Updated() {
		t.Error("State must be marked as updated after Apply")
	}
	if got, ok := s.Transformed(); !ok || !got.Equal(tv) {
		t.Errorf("Transformed must return the last result, got %v (%v)", got, ok)
	}

	s.SetVector(mat.Vec3{1, 1, 0})
	if _, ok := s.Transformed(); ok {
		t.Error("Changing the vector must invalidate the transformed vector")
	}
}

func TestTransformState_Mode(t *testing.T) {
	s := newTransformState(mode2D)
	s.SetMat2(mat.NewMat2(1, 2, 3, 4))

	if expected := (mat.Mat3{1, 2, 0, 3, 4, 0, 0, 0, 1}); s.Mat3() != expected {
		t.Errorf("Expected 2D matrix embedded as %v, got %v", expected, s.Mat3())
	}

	s.SetMode(mode3D)
	if s.Mat3() != mat.Identity3() {
		t.Errorf("Changing mode must reset the matrix, got %v", s.Mat3())
	}
	if expected := (mat.Vec3{1, 1, 1}); !s.Vector().Equal(expected) {
		t.Errorf("Expected default 3D vector %v, got %v", expected, s.Vector())
	}
	tv := s.Apply()
	if !tv.Equal(mat.Vec3{1, 1, 1}) {
		t.Errorf("Identity must keep the vector, got %v", tv)
	}
}
