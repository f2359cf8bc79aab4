package mat

import (
	"math"
)

type Vec2 [2]float64

func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func (v Vec2) NormSq() float64 {
	return v[0]*v[0] + v[1]*v[1]
}

func (v Vec2) Norm() float64 {
	return math.Sqrt(v.NormSq())
}

func (v Vec2) Mul(a float64) Vec2 {
	return Vec2{v[0] * a, v[1] * a}
}

func (v Vec2) Sub(a Vec2) Vec2 {
	return Vec2{v[0] - a[0], v[1] - a[1]}
}

func (v Vec2) Add(a Vec2) Vec2 {
	return Vec2{v[0] + a[0], v[1] + a[1]}
}

func (v Vec2) Dot(a Vec2) float64 {
	return v[0]*a[0] + v[1]*a[1]
}

// Equal reports whether both components are exactly equal.
// NaN components are never equal.
func (v Vec2) Equal(a Vec2) bool {
	return v[0] == a[0] && v[1] == a[1]
}

// Vec3 lifts v onto the z = 0 plane.
func (v Vec2) Vec3() Vec3 {
	return Vec3{v[0], v[1], 0}
}
