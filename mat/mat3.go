package mat

// Mat3 is a 3x3 matrix in row major order.
//
// m[3*r + c] is the element in the r'th row and c'th column.
type Mat3 [9]float64

func NewMat3(a, b, c, d, e, f, g, h, i float64) Mat3 {
	return Mat3{a, b, c, d, e, f, g, h, i}
}

func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Multiply3x3 returns the image of (x, y, z) under the matrix with rows
// (a, b, c), (d, e, f) and (g, h, i).
func Multiply3x3(a, b, c, d, e, f, g, h, i, x, y, z float64) Vec3 {
	return Vec3{
		float64(a*x) + float64(b*y) + float64(c*z),
		float64(d*x) + float64(e*y) + float64(f*z),
		float64(g*x) + float64(h*y) + float64(i*z),
	}
}

func (m Mat3) Transform(v Vec3) Vec3 {
	return Multiply3x3(
		m[0], m[1], m[2],
		m[3], m[4], m[5],
		m[6], m[7], m[8],
		v[0], v[1], v[2],
	)
}

func (m Mat3) Add(a Mat3) Mat3 {
	var out Mat3
	for i := range m {
		out[i] = m[i] + a[i]
	}
	return out
}

func (m Mat3) At(r, c int) float64 {
	return m[3*r+c]
}
