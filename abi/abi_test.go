package abi

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqsense/lintransform/mat"
)

func TestMultiply2x2(t *testing.T) {
	out := make([]float64, Multiply2x2Slots)
	Multiply2x2(out, 2, 0, 0, 3, 5, 4)
	assert.Equal(t, []float64{10, 12}, out)
}

func TestTransformBasis(t *testing.T) {
	out := make([]float64, TransformBasisSlots)
	TransformBasis(out, 1, 2, 3, 4)
	assert.Equal(t, []float64{1, 3, 2, 4}, out)

	var e1, e2 [2]float64
	Multiply2x2(e1[:], 1, 2, 3, 4, 1, 0)
	Multiply2x2(e2[:], 1, 2, 3, 4, 0, 1)
	assert.Equal(t, []float64{e1[0], e1[1], e2[0], e2[1]}, out)
}

func TestMultiply3x3(t *testing.T) {
	out := make([]float64, Multiply3x3Slots)
	Multiply3x3(out,
		1, 0, 0,
		0, 2, 0,
		0, 0, 3,
		1, 1, 1,
	)
	assert.Equal(t, []float64{1, 2, 3}, out)
}

func TestOutputNotRead(t *testing.T) {
	nan := math.NaN()

	out2 := []float64{nan, nan}
	Multiply2x2(out2, 1, 0, 0, 1, 7, 8)
	assert.Equal(t, []float64{7, 8}, out2)

	out4 := []float64{nan, nan, nan, nan}
	TransformBasis(out4, 1, 0, 0, 1)
	assert.Equal(t, []float64{1, 0, 0, 1}, out4)

	out3 := []float64{nan, nan, nan}
	Multiply3x3(out3, 1, 0, 0, 0, 1, 0, 0, 0, 1, 7, 8, 9)
	assert.Equal(t, []float64{7, 8, 9}, out3)
}

func TestExtraSlotsUntouched(t *testing.T) {
	out := []float64{-1, -1, -1, -1, -1}
	Multiply2x2(out, 1, 1, 1, 1, 1, 1)
	assert.Equal(t, []float64{2, 2, -1, -1, -1}, out)

	out = []float64{-1, -1, -1, -1, -1}
	Multiply3x3(out, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	assert.Equal(t, []float64{3, 3, 3, -1, -1}, out)

	out = []float64{-1, -1, -1, -1, -1}
	TransformBasis(out, 5, 6, 7, 8)
	assert.Equal(t, []float64{5, 7, 6, 8, -1}, out)
}

func TestShortBuffer(t *testing.T) {
	testCases := map[string]struct {
		call func(out []float64)
		n    int
	}{
		"Multiply2x2": {
			call: func(out []float64) { Multiply2x2(out, 1, 2, 3, 4, 5, 6) },
			n:    Multiply2x2Slots,
		},
		"TransformBasis": {
			call: func(out []float64) { TransformBasis(out, 1, 2, 3, 4) },
			n:    TransformBasisSlots,
		},
		"Multiply3x3": {
			call: func(out []float64) { Multiply3x3(out, 1, 2, 3, 4, 5, 6, 7, 8, 9, 1, 2, 3) },
			n:    Multiply3x3Slots,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			out := make([]float64, tt.n-1)
			for i := range out {
				out[i] = -1
			}
			require.Panics(t, func() { tt.call(out) })
			for i := range out {
				assert.Equal(t, -1.0, out[i], "partial write at %d", i)
			}
		})
	}
}

func TestConcurrentDistinctBuffers(t *testing.T) {
	const n = 64
	outs := make([][]float64, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		outs[i] = make([]float64, Multiply3x3Slots)
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f := float64(i)
			Multiply3x3(outs[i], f, 0, 0, 0, f, 0, 0, 0, f, 1, 2, 3)
		}(i)
	}
	wg.Wait()

	for i, out := range outs {
		f := float64(i)
		assert.Equal(t, []float64{f, 2 * f, 3 * f}, out)
	}
}

func TestMatchesValueTypes(t *testing.T) {
	m := mat.NewMat3(0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9)
	v := mat.NewVec3(1.5, -2.5, 3.5)

	out := make([]float64, Multiply3x3Slots)
	Multiply3x3(out, m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8], v[0], v[1], v[2])

	expected := m.Transform(v)
	assert.Equal(t, expected[:], out)
}
