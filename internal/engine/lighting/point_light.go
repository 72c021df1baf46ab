// Package lighting describes the light and fog environment of the backdrop.
package lighting

import "github.com/Faultbox/terrain-backdrop/pkg/math"

// PointLight is an omnidirectional light. A Range of 0 means no falloff.
type PointLight struct {
	Position  math.Vec3
	Color     [3]float32 // RGB, 0-1
	Range     float32
	Intensity float32
}

// AmbientLight lights every surface evenly.
type AmbientLight struct {
	Color     [3]float32
	Intensity float32
}

// Fog is linear distance fog.
type Fog struct {
	Color [3]float32
	Near  float32
	Far   float32
}

// Environment groups everything the terrain shader needs besides geometry.
type Environment struct {
	Ambient AmbientLight
	Light   PointLight
	Fog     Fog
}

var white = [3]float32{1, 1, 1}

// DefaultLightPosition is where the point light starts.
var DefaultLightPosition = math.Vec3{X: -10, Y: 100, Z: 10}

// Default returns white ambient light, a white point light at
// DefaultLightPosition and white fog from 1 to 500.
func Default() Environment {
	return Environment{
		Ambient: AmbientLight{Color: white, Intensity: 1},
		Light: PointLight{
			Position:  DefaultLightPosition,
			Color:     white,
			Intensity: 1,
		},
		Fog: Fog{Color: white, Near: 1, Far: 500},
	}
}
