package main

import (
	glmat "github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"
)

const (
	aVertexPosition = 0
	aVertexColor    = 1
)

type renderer struct {
	gl      *webgl.WebGL
	program webgl.Program
	buf     webgl.Buffer
	nVertex int

	uProjectionMatrix webgl.Location
	uModelViewMatrix  webgl.Location
	uTint             webgl.Location
	uTintMix          webgl.Location

	nGrid int
	tint  glmat.Vec3

	width, height int
}

const transformedGridTint = 0.6

func newRenderer(gl *webgl.WebGL, cfg *config, pal palette) (*renderer, error) {
	vs, err := initShader(gl, gl.VERTEX_SHADER, vsSource)
	if err != nil {
		return nil, err
	}
	fs, err := initShader(gl, gl.FRAGMENT_SHADER, fsSource)
	if err != nil {
		return nil, err
	}
	program, err := linkShaders(gl, vs, fs)
	if err != nil {
		return nil, err
	}

	r := &renderer{
		gl:                gl,
		program:           program,
		buf:               gl.CreateBuffer(),
		uProjectionMatrix: gl.GetUniformLocation(program, "uProjectionMatrix"),
		uModelViewMatrix:  gl.GetUniformLocation(program, "uModelViewMatrix"),
		uTint:             gl.GetUniformLocation(program, "uTint"),
		uTintMix:          gl.GetUniformLocation(program, "uTintMix"),
		nGrid:             gridVertexCount(cfg),
		tint:              glmat.Vec3(pal.transformed),
	}

	gl.ClearColor(0.04, 0.07, 0.11, 1.0)
	gl.ClearDepth(1.0)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)

	gl.UseProgram(program)
	gl.EnableVertexAttribArray(aVertexPosition)
	gl.EnableVertexAttribArray(aVertexColor)

	return r, nil
}

func (r *renderer) setScene(vertices []float32) {
	r.nVertex = len(vertices) / vertexStride
	if r.nVertex == 0 {
		return
	}
	r.gl.BindBuffer(r.gl.ARRAY_BUFFER, r.buf)
	r.gl.BufferData(r.gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(vertices), r.gl.STATIC_DRAW)
}

// resize updates the canvas and projection if the client size changed.
func (r *renderer) resize(vi *view) {
	width := r.gl.Canvas.ClientWidth()
	height := r.gl.Canvas.ClientHeight()
	if width == r.width && height == r.height || width == 0 || height == 0 {
		return
	}
	r.width, r.height = width, height

	r.gl.Canvas.SetWidth(width)
	r.gl.Canvas.SetHeight(height)
	r.gl.UseProgram(r.program)
	r.gl.UniformMatrix4fv(r.uProjectionMatrix, false, vi.projection(width, height))
	r.gl.Viewport(0, 0, width, height)
}

// draw renders the scene. If model is not nil, the grid is drawn once more
// mapped by model and tinted with the transformed vector colour.
func (r *renderer) draw(modelView glmat.Mat4, model *glmat.Mat4) {
	r.gl.Clear(r.gl.COLOR_BUFFER_BIT | r.gl.DEPTH_BUFFER_BIT)
	if r.nVertex == 0 {
		return
	}
	r.gl.UseProgram(r.program)
	r.gl.BindBuffer(r.gl.ARRAY_BUFFER, r.buf)
	r.gl.VertexAttribPointer(aVertexPosition, 3, r.gl.FLOAT, false, vertexStride*4, 0)
	r.gl.VertexAttribPointer(aVertexColor, 3, r.gl.FLOAT, false, vertexStride*4, 3*4)
	r.gl.Uniform3fv(r.uTint, r.tint)
	r.gl.Uniform1f(r.uTintMix, 0)
	r.gl.UniformMatrix4fv(r.uModelViewMatrix, false, modelView)
	r.gl.DrawArrays(r.gl.LINES, 0, r.nVertex)

	if model != nil && r.nGrid <= r.nVertex {
		r.gl.Uniform1f(r.uTintMix, transformedGridTint)
		r.gl.UniformMatrix4fv(r.uModelViewMatrix, false, modelView.MulAffine(*model))
		r.gl.DrawArrays(r.gl.LINES, 0, r.nGrid)
	}
}

func showDebugInfo(gl *webgl.WebGL) {
	defer func() {
		if r := recover(); r != nil {
			println("Failed to get debug info")
		}
	}()

	ri, ok := gl.GetExtension("WEBGL_debug_renderer_info")
	if !ok {
		println("GPU info: hidden by the browser privacy setting")
		return
	}
	println("GPU:",
		gl.GetParameter(ri.Get("UNMASKED_VENDOR_WEBGL").Int()).String(),
		gl.GetParameter(ri.Get("UNMASKED_RENDERER_WEBGL").Int()).String(),
	)
}
