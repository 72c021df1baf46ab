// Package motion moves the terrain, camera and point light along Z in lockstep.
package motion

import (
	gomath "math"

	"github.com/Faultbox/terrain-backdrop/internal/scroll"
	"github.com/Faultbox/terrain-backdrop/pkg/math"
)

// DirectionSource reports the current scroll direction.
type DirectionSource interface {
	Direction() scroll.Direction
}

// SpeedSource reports the current travel speed in world units per second.
type SpeedSource interface {
	Speed() float32
}

// Rig holds the three positions that travel together.
type Rig struct {
	Mesh   math.Vec3
	Camera math.Vec3
	Light  math.Vec3
}

// Controller advances a Rig each frame.
type Controller struct {
	rig   *Rig
	dir   DirectionSource
	speed SpeedSource
}

// NewController creates a controller that moves rig.
func NewController(rig *Rig, dir DirectionSource, speed SpeedSource) *Controller {
	return &Controller{rig: rig, dir: dir, speed: speed}
}

// Advance moves all three positions by speed*dt along Z: forward (+Z) while
// scrolling up, backward (-Z) while scrolling down. It returns the signed
// delta that was applied. A negative or non-finite dt moves nothing.
func (c *Controller) Advance(dt float64) float32 {
	if !(dt > 0) || gomath.IsInf(dt, 1) {
		return 0
	}

	delta := c.speed.Speed() * float32(dt)
	if c.dir.Direction() == scroll.Down {
		delta = -delta
	}

	c.rig.Mesh.Z += delta
	c.rig.Camera.Z += delta
	c.rig.Light.Z += delta
	return delta
}
