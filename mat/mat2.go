package mat

// Mat2 is a 2x2 matrix in row major order.
//
//	| m[0] m[1] |   | a b |
//	| m[2] m[3] | = | c d |
type Mat2 [4]float64

func NewMat2(a, b, c, d float64) Mat2 {
	return Mat2{a, b, c, d}
}

func Identity2() Mat2 {
	return Mat2{
		1, 0,
		0, 1,
	}
}

// Multiply2x2 returns the image of (x, y) under the matrix with rows
// (a, b) and (c, d).
func Multiply2x2(a, b, c, d, x, y float64) Vec2 {
	// Conversions force rounding of each product; without them the
	// compiler may emit fused multiply-add on some architectures.
	return Vec2{
		float64(a*x) + float64(b*y),
		float64(c*x) + float64(d*y),
	}
}

// TransformBasis returns the images of e1 = (1, 0) and e2 = (0, 1),
// i.e. the matrix columns, as [e1x, e1y, e2x, e2y].
func TransformBasis(a, b, c, d float64) [4]float64 {
	return [4]float64{
		a, c,
		b, d,
	}
}

func (m Mat2) Transform(v Vec2) Vec2 {
	return Multiply2x2(m[0], m[1], m[2], m[3], v[0], v[1])
}

// Basis returns the images of the standard basis vectors.
func (m Mat2) Basis() (e1, e2 Vec2) {
	b := TransformBasis(m[0], m[1], m[2], m[3])
	return Vec2{b[0], b[1]}, Vec2{b[2], b[3]}
}

func (m Mat2) Add(a Mat2) Mat2 {
	var out Mat2
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

// Mat3 embeds m into a 3x3 matrix acting on the z = 0 plane.
func (m Mat2) Mat3() Mat3 {
	return Mat3{
		m[0], m[1], 0,
		m[2], m[3], 0,
		0, 0, 1,
	}
}
