package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/terrain-backdrop/internal/params"
	"github.com/Faultbox/terrain-backdrop/internal/scene"
	"github.com/Faultbox/terrain-backdrop/internal/scroll"
	"github.com/Faultbox/terrain-backdrop/pkg/math"
)

// Camera slider range.
const (
	cameraPosMin = 0
	cameraPosMax = 100
)

// values is the widget-side copy of everything the panel edits.
type values struct {
	CamX, CamY float32
	Speed      float32
	Peak       float32
	Smooth     float32
	Segments   int32
	Color      [3]float32
	Scale      [3]float32
	Wireframe  bool
}

// actions are the buttons pressed this frame.
type actions struct {
	Stop       bool
	Reset      bool
	Screenshot bool
}

// Panel is the tuning window drawn over the scene.
type Panel struct {
	scene        *scene.Scene
	onScreenshot func()

	// Visible toggles the whole window.
	Visible bool
	// FPS is shown in the footer when positive.
	FPS float32
}

// NewPanel creates a panel editing s. onScreenshot may be nil.
func NewPanel(s *scene.Scene, onScreenshot func()) *Panel {
	return &Panel{
		scene:        s,
		onScreenshot: onScreenshot,
		Visible:      true,
	}
}

// Render draws the panel and applies whatever the user changed.
func (p *Panel) Render() {
	if !p.Visible {
		return
	}

	v := p.read()
	var act actions

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 0), imgui.CondFirstUseEver)
	imgui.SetNextWindowBgAlpha(0.85)

	if imgui.BeginV("Terrain###Panel", nil, imgui.WindowFlagsAlwaysAutoResize) {
		if imgui.TreeNodeExStrV("Camera", imgui.TreeNodeFlagsDefaultOpen) {
			imgui.SliderFloatV("Pos X", &v.CamX, cameraPosMin, cameraPosMax, "%.1f", imgui.SliderFlagsNone)
			imgui.SliderFloatV("Pos Y", &v.CamY, cameraPosMin, cameraPosMax, "%.1f", imgui.SliderFlagsNone)
			imgui.TreePop()
		}

		if imgui.TreeNodeExStrV("Perlin noise", imgui.TreeNodeFlagsDefaultOpen) {
			imgui.SliderFloatV("Peak", &v.Peak, 0, params.PeakMax, "%.1f", imgui.SliderFlagsNone)
			imgui.SliderFloatV("Smoothness", &v.Smooth, 0, params.SmoothMax, "%.1f", imgui.SliderFlagsNone)
			imgui.SliderIntV("Segments", &v.Segments, params.SegmentsMin, params.SegmentsMax, "%d", imgui.SliderFlagsNone)
			imgui.SliderFloatV("Speed", &v.Speed, 0, params.SpeedMax, "%.1f", imgui.SliderFlagsNone)
			imgui.TreePop()
		}

		if imgui.TreeNodeExStrV("Material colour", imgui.TreeNodeFlagsDefaultOpen) {
			imgui.ColorEdit3("Colour", &v.Color)
			imgui.TreePop()
		}

		if imgui.TreeNodeExStrV("Mesh", imgui.TreeNodeFlagsDefaultOpen) {
			imgui.SliderFloatV("Width", &v.Scale[0], 0, params.ScaleMax, "%.2f", imgui.SliderFlagsNone)
			imgui.SliderFloatV("Height", &v.Scale[1], 0, params.ScaleMax, "%.2f", imgui.SliderFlagsNone)
			imgui.SliderFloatV("Length", &v.Scale[2], 0, params.ScaleMax, "%.2f", imgui.SliderFlagsNone)
			imgui.Checkbox("Wireframe", &v.Wireframe)
			imgui.TreePop()
		}

		imgui.Separator()
		act.Stop = imgui.Button("Stop")
		imgui.SameLine()
		act.Reset = imgui.Button("Reset")
		if p.onScreenshot != nil {
			imgui.SameLine()
			act.Screenshot = imgui.Button("Screenshot")
		}

		imgui.Separator()
		imgui.TextDisabled(footer(p.scene.Page.Offset(), p.scene.Tracker.Direction()))
		if p.FPS > 0 {
			imgui.SameLine()
			imgui.TextDisabled(fmt.Sprintf("FPS: %.0f", p.FPS))
		}
	}
	imgui.End()

	p.apply(v, act)
}

// read copies the current scene state into widget values.
func (p *Panel) read() values {
	t := p.scene.Params.Tuning()
	cam := p.scene.CameraPosition()
	return values{
		CamX:      cam.X,
		CamY:      cam.Y,
		Speed:     t.Speed,
		Peak:      t.Peak,
		Smooth:    t.Smooth,
		Segments:  int32(t.SegmentsX),
		Color:     t.Color.RGB(),
		Scale:     t.Scale.Array(),
		Wireframe: t.Wireframe,
	}
}

// apply pushes edited values into the scene, then runs the buttons. Setters
// ignore unchanged values, so untouched widgets emit nothing.
func (p *Panel) apply(v values, act actions) {
	s := p.scene
	cam := s.CameraPosition()
	if v.CamX != cam.X || v.CamY != cam.Y {
		s.SetCameraXY(v.CamX, v.CamY)
	}

	s.Params.SetPeak(v.Peak)
	s.Params.SetSmooth(v.Smooth)
	s.Params.SetSpeed(v.Speed)
	if segX, _ := s.Params.Segments(); int(v.Segments) != segX {
		s.Params.SetSegments(int(v.Segments), int(v.Segments))
	}
	// Keep the stored color when the widget round-trip is lossless.
	if v.Color != s.Params.Tuning().Color.RGB() {
		s.Params.SetColor(params.ColorFromRGB(v.Color))
	}
	s.Params.SetScale(math.Vec3{X: v.Scale[0], Y: v.Scale[1], Z: v.Scale[2]})
	s.Params.SetWireframe(v.Wireframe)

	if act.Stop {
		s.Stop()
	}
	if act.Reset {
		s.Reset()
	}
	if act.Screenshot && p.onScreenshot != nil {
		p.onScreenshot()
	}
}

// footer describes the page scroll state.
func footer(offset float64, dir scroll.Direction) string {
	return fmt.Sprintf("Page: %.0f px (%s)", offset, dir)
}
