package main

import (
	"math"

	glmat "github.com/seqsense/pcgol/mat"
)

const (
	defaultPitch3D = math.Pi / 3
	defaultYaw3D   = -math.Pi / 4
	yDeadband      = 20

	minDistance = 0.5
	maxDistance = 100.0

	nearClip = 0.1
	farClip  = 1000.0
)

type dragStart struct {
	x, y   int
	button int
}

// view is a camera orbiting the origin.
// pitch 0 looks straight down the z axis.
type view struct {
	fov                  float64
	yaw, pitch, distance float64
	defaultDistance      float64

	yaw0, pitch0 float64
	drag0        *dragStart
}

func newView(cfg cameraConfig, md mode) *view {
	v := &view{
		fov:             cfg.Fov * math.Pi / 180,
		defaultDistance: cfg.Distance,
	}
	v.reset(md)
	return v
}

func (v *view) reset(md mode) {
	v.distance = v.defaultDistance
	switch md {
	case mode3D:
		v.yaw = defaultYaw3D
		v.pitch = defaultPitch3D
	default:
		v.yaw = 0
		v.pitch = 0
	}
}

func (v *view) wheel(deltaY float64) {
	v.distance += deltaY * (v.distance*0.001 + 0.001)
	if v.distance < minDistance {
		v.distance = minDistance
	} else if v.distance > maxDistance {
		v.distance = maxDistance
	}
}

func (v *view) mouseDragStart(x, y, button int) {
	v.drag0 = &dragStart{x: x, y: y, button: button}
	v.yaw0 = v.yaw
	v.pitch0 = v.pitch
}

func (v *view) mouseDragEnd(x, y int) {
	if v.drag0 == nil {
		return
	}
	v.mouseDrag(x, y)
	v.drag0 = nil
}

func (v *view) mouseDrag(x, y int) {
	if v.drag0 == nil || v.drag0.button != 0 {
		return
	}
	xDiff := float64(x - v.drag0.x)
	yDiff := float64(y - v.drag0.y)

	v.yaw = math.Remainder(v.yaw0-0.01*xDiff, 2*math.Pi)
	if yDiff < -yDeadband {
		yDiff += yDeadband
	} else if yDiff > yDeadband {
		yDiff -= yDeadband
	} else {
		yDiff = 0
	}
	v.pitch = v.pitch0 - 0.01*yDiff
	if v.pitch < 0 {
		v.pitch = 0
	} else if v.pitch > math.Pi {
		v.pitch = math.Pi
	}
}

func (v *view) modelView() glmat.Mat4 {
	return glmat.Translate(0, 0, -float32(v.distance)).
		MulAffine(glmat.Rotate(1, 0, 0, float32(v.pitch))).
		MulAffine(glmat.Rotate(0, 0, 1, float32(v.yaw)))
}

func (v *view) projection(width, height int) glmat.Mat4 {
	return glmat.Perspective(
		float32(v.fov),
		float32(width)/float32(height),
		nearClip, farClip,
	)
}
