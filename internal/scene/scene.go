// Package scene owns the backdrop state: the terrain field, the scroll
// tracker, the motion rig, the tuning parameters, the camera and the lights.
// It has no GL dependencies; renderers read from it.
package scene

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-backdrop/internal/engine/camera"
	"github.com/Faultbox/terrain-backdrop/internal/engine/lighting"
	"github.com/Faultbox/terrain-backdrop/internal/motion"
	"github.com/Faultbox/terrain-backdrop/internal/noise"
	"github.com/Faultbox/terrain-backdrop/internal/params"
	"github.com/Faultbox/terrain-backdrop/internal/scroll"
	"github.com/Faultbox/terrain-backdrop/internal/terrain"
	"github.com/Faultbox/terrain-backdrop/pkg/math"
)

// MeshTilt is the rotation about X that lays the grid down.
const MeshTilt = gomath.Pi / 2

// ResetCameraPosition is where Reset puts the camera.
var ResetCameraPosition = math.Vec3{Z: 75}

// Config holds the fixed scene setup.
type Config struct {
	Width, Depth   float32 // terrain extent
	Aspect         float32
	PageHeight     float64
	PixelsPerNotch float64
}

// DefaultConfig returns the standard 300x300 terrain.
func DefaultConfig() Config {
	return Config{
		Width:          300,
		Depth:          300,
		Aspect:         16.0 / 9.0,
		PageHeight:     4000,
		PixelsPerNotch: 100,
	}
}

// Scene is the owning context passed to the front ends.
type Scene struct {
	Field   *terrain.Field
	Tracker *scroll.Tracker
	Page    *scroll.Page
	Params  *params.Params
	Camera  *camera.RigCamera
	Env     lighting.Environment

	rig    motion.Rig
	motion *motion.Controller
	unsub  func()
	log    *zap.Logger
}

// New builds a scene sampling src and driven by p. The grid is allocated
// with p's segment counts and rebuilt whenever they change.
func New(cfg Config, src noise.Source, p *params.Params, log *zap.Logger) *Scene {
	if log == nil {
		log = zap.NewNop()
	}

	segX, segY := p.Segments()
	home := camera.Placement(camera.DefaultTilt, camera.DefaultBoom)
	env := lighting.Default()

	s := &Scene{
		Field:   terrain.NewField(src, cfg.Width, cfg.Depth, segX, segY, log.Named("terrain")),
		Tracker: scroll.NewTracker(log.Named("scroll")),
		Page:    scroll.NewPage(cfg.PageHeight, cfg.PixelsPerNotch),
		Params:  p,
		Camera:  camera.New(home, cfg.Aspect),
		Env:     env,
		rig: motion.Rig{
			Camera: home,
			Light:  env.Light.Position,
		},
		log: log,
	}
	s.motion = motion.NewController(&s.rig, s.Tracker, p)
	s.unsub = p.Subscribe(s.onChange)

	log.Info("scene created",
		zap.Int("segments_x", segX),
		zap.Int("segments_y", segY),
		zap.Float32("width", cfg.Width),
		zap.Float32("depth", cfg.Depth),
	)
	return s
}

func (s *Scene) onChange(c params.Change) {
	if c.Field == params.FieldSegments {
		s.Field.Rebuild(c.Tuning.SegmentsX, c.Tuning.SegmentsY)
	}
}

// Close detaches the scene from its parameters.
func (s *Scene) Close() {
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
}

// Tick runs the per-frame update after the frame was drawn: heights are
// recomputed from the current mesh position, then the rig advances by dt
// seconds.
func (s *Scene) Tick(dt float64) {
	s.Field.Recompute(s.rig.Mesh, s.Params.Peak(), s.Params.Smooth())
	s.motion.Advance(dt)
	s.Env.Light.Position = s.rig.Light
}

// ScrollTo feeds a page scroll offset to the direction tracker.
func (s *Scene) ScrollTo(offset float64) scroll.Direction {
	return s.Tracker.Observe(offset)
}

// Wheel moves the virtual page by notches and reports the offset to the
// tracker when it changed.
func (s *Scene) Wheel(notches float64) {
	if off, moved := s.Page.Wheel(notches); moved {
		s.ScrollTo(off)
	}
}

// Stop halts travel.
func (s *Scene) Stop() {
	s.Params.SetSpeed(0)
	s.log.Info("motion stopped")
}

// Reset moves the camera to ResetCameraPosition, restores a unit mesh
// scale and turns wireframe on.
func (s *Scene) Reset() {
	s.rig.Camera = ResetCameraPosition
	s.Params.SetScale(math.Vec3{X: 1, Y: 1, Z: 1})
	s.Params.SetWireframe(true)
	s.log.Info("scene reset")
}

// SetCameraXY moves the camera sideways and vertically, keeping its Z.
func (s *Scene) SetCameraXY(x, y float32) {
	s.rig.Camera.X = x
	s.rig.Camera.Y = y
}

// Resize updates the camera aspect ratio.
func (s *Scene) Resize(width, height int) {
	s.Camera.Resize(width, height)
}

// MeshPosition returns the terrain mesh position.
func (s *Scene) MeshPosition() math.Vec3 { return s.rig.Mesh }

// CameraPosition returns the camera position.
func (s *Scene) CameraPosition() math.Vec3 { return s.rig.Camera }

// LightPosition returns the point light position.
func (s *Scene) LightPosition() math.Vec3 { return s.rig.Light }

// ModelMatrix places the grid: translate to the mesh position, lay it down
// with MeshTilt, then apply the tuned scale.
func (s *Scene) ModelMatrix() math.Mat4 {
	t := s.Params.Tuning()
	return math.Translate(s.rig.Mesh).
		Mul(math.RotateX(MeshTilt)).
		Mul(math.Scale(t.Scale))
}

// ViewMatrix returns the camera view matrix.
func (s *Scene) ViewMatrix() math.Mat4 {
	return s.Camera.ViewMatrix(s.rig.Camera)
}

// ProjectionMatrix returns the camera projection matrix.
func (s *Scene) ProjectionMatrix() math.Mat4 {
	return s.Camera.ProjectionMatrix()
}
