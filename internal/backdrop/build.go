package backdrop

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-backdrop/internal/config"
	"github.com/Faultbox/terrain-backdrop/internal/engine/debug"
	"github.com/Faultbox/terrain-backdrop/internal/noise"
	"github.com/Faultbox/terrain-backdrop/internal/params"
	"github.com/Faultbox/terrain-backdrop/internal/scene"
	"github.com/Faultbox/terrain-backdrop/pkg/math"
)

// maxFrameDelta caps dt so a stalled frame (window drag, breakpoint) does
// not make the terrain jump.
const maxFrameDelta = 0.25

// NewScene builds the scene described by cfg. It touches no GL state and
// is shared by both front ends.
func NewScene(cfg *config.Config, log *zap.Logger) (*scene.Scene, error) {
	src, err := noise.New(noise.Kind(cfg.Noise.Kind), cfg.Noise.Seed, cfg.Noise.Octaves)
	if err != nil {
		return nil, fmt.Errorf("creating noise source: %w", err)
	}

	t := cfg.Terrain
	p := params.New(params.Tuning{
		Peak:      t.Peak,
		Smooth:    t.Smooth,
		Speed:     t.Speed,
		SegmentsX: t.SegmentsX,
		SegmentsY: t.SegmentsY,
		Color:     params.Color(t.Color),
		Scale:     math.Vec3{X: 1, Y: 1, Z: 1},
	}, log.Named("params"))

	sc := scene.DefaultConfig()
	sc.Width = t.Width
	sc.Depth = t.Depth
	sc.PageHeight = float64(cfg.Scroll.PageHeight)
	sc.PixelsPerNotch = float64(cfg.Scroll.PixelsPerNotch)
	if cfg.Graphics.Height > 0 {
		sc.Aspect = float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height)
	}

	return scene.New(sc, src, p, log.Named("scene")), nil
}

// NewScreenshots creates the screenshot writer configured in cfg.
func NewScreenshots(cfg *config.Config) (*debug.ScreenshotCapture, error) {
	format, err := debug.ParseFormat(cfg.Screenshot.Format)
	if err != nil {
		return nil, err
	}
	return debug.NewScreenshotCapture(cfg.Screenshot.Dir, "backdrop", format), nil
}

// FrameDelta clamps a measured frame time to [0, maxFrameDelta] seconds.
func FrameDelta(seconds float64) float64 {
	if !(seconds > 0) {
		return 0
	}
	return min(seconds, maxFrameDelta)
}
