package mat

import (
	glmat "github.com/seqsense/pcgol/mat"
)

// Mat4 converts m to a column-major float32 affine matrix with no
// translation, suitable for a WebGL model matrix.
func (m Mat3) Mat4() glmat.Mat4 {
	var out glmat.Mat4
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[4*c+r] = float32(m[3*r+c])
		}
	}
	out[15] = 1
	return out
}
