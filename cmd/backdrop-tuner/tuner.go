package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-backdrop/internal/backdrop"
	"github.com/Faultbox/terrain-backdrop/internal/engine/debug"
	"github.com/Faultbox/terrain-backdrop/internal/engine/framebuffer"
	"github.com/Faultbox/terrain-backdrop/internal/engine/renderer"
	"github.com/Faultbox/terrain-backdrop/internal/engine/ui"
	"github.com/Faultbox/terrain-backdrop/internal/scene"
	"github.com/Faultbox/terrain-backdrop/internal/scroll"
)

type tuner struct {
	scene    *scene.Scene
	renderer *renderer.Renderer
	target   *framebuffer.Framebuffer
	shots    *debug.ScreenshotCapture
	backend  *ui.Backend
	panel    *ui.Panel
	log      *zap.Logger

	width, height  int32
	title          scroll.Direction
	wantScreenshot bool
	err            error
}

// setup creates the GL objects on the first frame, when the backend's
// context is current.
func (t *tuner) setup() error {
	r, err := renderer.New(renderer.Config{Width: int(t.width), Height: int(t.height)})
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	t.renderer = r
	r.Follow(t.scene.Params)

	fb, err := framebuffer.New(t.width, t.height)
	if err != nil {
		return fmt.Errorf("creating framebuffer: %w", err)
	}
	t.target = fb
	return nil
}

// release frees the GL objects. It runs before the backend destroys the
// context, whether or not setup finished.
func (t *tuner) release() {
	if t.target != nil {
		t.target.Destroy()
		t.target = nil
	}
	if t.renderer != nil {
		t.renderer.Close()
		t.renderer = nil
	}
}

// frame runs inside the backend loop: draw the scene offscreen, show it
// behind the panel, let the panel edit parameters, then advance.
func (t *tuner) frame() {
	if t.err != nil {
		return
	}
	if t.renderer == nil || t.target == nil {
		if err := t.setup(); err != nil {
			t.err = err
			t.backend.Close()
			return
		}
	}

	x, y, w, h := t.backend.GetViewport()
	t.target.Resize(int32(w), int32(h))
	t.scene.Resize(int(w), int(h))

	restore := t.target.Bind()
	t.renderer.Render(t.scene)
	restore()

	if t.wantScreenshot {
		t.wantScreenshot = false
		t.screenshot()
	}

	ui.DrawBackground(t.target.ColorTexture(), x, y, w, h)

	if wheel := ui.WheelForScene(); wheel != 0 {
		t.scene.Wheel(float64(wheel))
	}
	if ui.IsKeyPressed(imgui.KeyF1) {
		t.panel.Visible = !t.panel.Visible
	}
	if ui.IsKeyPressed(imgui.KeyF12) {
		t.wantScreenshot = true
	}

	io := imgui.CurrentIO()
	t.panel.FPS = io.Framerate()
	t.panel.Render()

	t.scene.Tick(backdrop.FrameDelta(float64(io.DeltaTime())))

	if dir := t.scene.Tracker.Direction(); dir != t.title {
		t.title = dir
		t.backend.SetWindowTitle(windowTitle(dir))
	}
}

func windowTitle(dir scroll.Direction) string {
	return fmt.Sprintf("Terrain Backdrop Tuner - scrolling %s", dir)
}

func (t *tuner) screenshot() {
	path, err := t.shots.Capture(t.target.Image())
	if err != nil {
		t.log.Error("screenshot failed", zap.Error(err))
		return
	}
	t.log.Info("screenshot saved", zap.String("path", path))
}
