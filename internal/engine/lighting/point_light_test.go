package lighting

import (
	"testing"

	"github.com/Faultbox/terrain-backdrop/pkg/math"
)

func TestDefault(t *testing.T) {
	env := Default()
	if env.Light.Position != (math.Vec3{X: -10, Y: 100, Z: 10}) {
		t.Errorf("light position = %+v", env.Light.Position)
	}
	if env.Light.Color != white || env.Light.Intensity != 1 {
		t.Errorf("light = %v x %g, want white x 1", env.Light.Color, env.Light.Intensity)
	}
	// The shader skips falloff for a zero range.
	if env.Light.Range != 0 {
		t.Errorf("light range = %g, want 0", env.Light.Range)
	}
	if env.Ambient.Color != white || env.Ambient.Intensity != 1 {
		t.Errorf("ambient = %v x %g, want white x 1", env.Ambient.Color, env.Ambient.Intensity)
	}
	if env.Fog.Near != 1 || env.Fog.Far != 500 {
		t.Errorf("fog range = %g..%g, want 1..500", env.Fog.Near, env.Fog.Far)
	}
	if env.Fog.Color != white {
		t.Errorf("fog color = %v, want white", env.Fog.Color)
	}
}

func TestDefaultIsACopy(t *testing.T) {
	env := Default()
	env.Light.Position.Z = 99
	if DefaultLightPosition.Z != 10 {
		t.Errorf("DefaultLightPosition changed to %+v", DefaultLightPosition)
	}
}
