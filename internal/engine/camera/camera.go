// Package camera provides the perspective camera that rides along with the terrain.
package camera

import (
	gomath "math"

	"github.com/Faultbox/terrain-backdrop/pkg/math"
)

// Defaults for the backdrop camera.
const (
	DefaultFovDegrees = 45
	DefaultNear       = 0.1
	DefaultFar        = 800
	DefaultTilt       = gomath.Pi / 2.2 // rotation about world X before the boom
	DefaultBoom       = 150             // distance along the tilted Y axis
)

// RigCamera is a perspective camera with a fixed viewing direction. Its
// position is owned by the caller (the motion rig), so the look target
// travels with it.
type RigCamera struct {
	FovY   float32 // radians
	Near   float32
	Far    float32
	Aspect float32

	// Forward is the unit view direction.
	Forward math.Vec3
	Up      math.Vec3
}

// Placement returns the position reached by rotating about world X by tilt
// and then moving boom units along the rotated Y axis.
func Placement(tilt, boom float32) math.Vec3 {
	return math.RotateX(tilt).TransformPoint(math.Vec3{Y: boom})
}

// New creates a camera that looks from home toward the world origin.
func New(home math.Vec3, aspect float32) *RigCamera {
	fwd := home.Scale(-1).Normalize()
	if fwd.Length() == 0 {
		fwd = math.Vec3{Z: -1}
	}
	c := &RigCamera{
		FovY:    float32(DefaultFovDegrees * gomath.Pi / 180),
		Near:    DefaultNear,
		Far:     DefaultFar,
		Aspect:  1,
		Forward: fwd,
		Up:      math.Vec3{Y: 1},
	}
	c.SetAspect(aspect)
	return c
}

// SetAspect updates the aspect ratio. Non-positive or non-finite values are ignored.
func (c *RigCamera) SetAspect(aspect float32) {
	if aspect > 0 && !gomath.IsInf(float64(aspect), 0) {
		c.Aspect = aspect
	}
}

// Resize sets the aspect ratio from a viewport size.
func (c *RigCamera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.SetAspect(float32(width) / float32(height))
}

// Target returns the point the camera looks at from eye.
func (c *RigCamera) Target(eye math.Vec3) math.Vec3 {
	return eye.Add(c.Forward)
}

// ViewMatrix returns the view matrix for a camera at eye.
func (c *RigCamera) ViewMatrix(eye math.Vec3) math.Mat4 {
	return math.LookAt(eye, c.Target(eye), c.Up)
}

// ProjectionMatrix returns the perspective projection matrix.
func (c *RigCamera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}
