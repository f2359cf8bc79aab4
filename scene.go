package main

import (
	"math"

	"github.com/seqsense/lintransform/mat"
)

// vertexStride is the number of float32 per vertex: x, y, z, r, g, b.
const vertexStride = 6

const arrowHeadAngle = math.Pi / 6

type sceneBuilder struct {
	buf []float32
}

func (b *sceneBuilder) line(p0, p1 mat.Vec3, c rgb) {
	b.buf = append(b.buf,
		float32(p0[0]), float32(p0[1]), float32(p0[2]), c[0], c[1], c[2],
		float32(p1[0]), float32(p1[1]), float32(p1[2]), c[0], c[1], c[2],
	)
}

func (b *sceneBuilder) grid(size float64, divisions int, c rgb) {
	half := size / 2
	step := size / float64(divisions)
	for i := 0; i <= divisions; i++ {
		p := -half + float64(i)*step
		b.line(mat.Vec3{p, -half, 0}, mat.Vec3{p, half, 0}, c)
		b.line(mat.Vec3{-half, p, 0}, mat.Vec3{half, p, 0}, c)
	}
}

func (b *sceneBuilder) axes(half float64, md mode, c rgb) {
	b.line(mat.Vec3{-half, 0, 0}, mat.Vec3{half, 0, 0}, c)
	b.line(mat.Vec3{0, -half, 0}, mat.Vec3{0, half, 0}, c)
	if md == mode3D {
		b.line(mat.Vec3{0, 0, -half}, mat.Vec3{0, 0, half}, c)
	}
}

// arrow draws a shaft from the origin to v and two head strokes.
// Zero length and non-finite arrows are skipped.
func (b *sceneBuilder) arrow(v mat.Vec3, head float64, c rgb) {
	l := v.Norm()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return
	}
	b.line(mat.Vec3{}, v, c)

	if head > l/2 {
		head = l / 2
	}
	d := v.Mul(1 / l)
	// Head strokes spread along d x z, which keeps 2D arrows in the
	// z = 0 plane. Shafts parallel to z use d x x instead.
	p := d.Cross(mat.Vec3{0, 0, 1})
	if p.NormSq() < 1e-12 {
		p = d.Cross(mat.Vec3{1, 0, 0})
	}
	p = p.Mul(1 / p.Norm())

	s, co := math.Sincos(arrowHeadAngle)
	back := d.Mul(head * co)
	side := p.Mul(head * s)
	b.line(v, v.Sub(back).Add(side), c)
	b.line(v, v.Sub(back).Sub(side), c)
}

// gridVertexCount is the number of leading vertices of buildScene output
// that belong to the grid.
func gridVertexCount(cfg *config) int {
	return (cfg.Grid.Divisions + 1) * 4
}

// buildScene returns LINES vertex data for the current state.
func buildScene(cfg *config, pal palette, s *transformState) []float32 {
	b := &sceneBuilder{}
	b.grid(cfg.Grid.Size, cfg.Grid.Divisions, pal.grid)
	b.axes(cfg.Grid.Size/2, s.Mode(), pal.axes)

	if s.Mode() == mode2D {
		e1, e2 := s.Basis()
		b.arrow(e1.Vec3(), cfg.ArrowHead, pal.basisX)
		b.arrow(e2.Vec3(), cfg.ArrowHead, pal.basisY)
	}
	b.arrow(s.Vector(), cfg.ArrowHead, pal.vector)
	if tv, ok := s.Transformed(); ok {
		b.arrow(tv, cfg.ArrowHead, pal.transformed)
	}
	return b.buf
}
