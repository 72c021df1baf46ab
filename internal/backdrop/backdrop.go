// Package backdrop runs the kiosk front end: a bare window showing the
// terrain, driven by the mouse wheel.
package backdrop

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-backdrop/internal/config"
	"github.com/Faultbox/terrain-backdrop/internal/engine/debug"
	"github.com/Faultbox/terrain-backdrop/internal/engine/framebuffer"
	"github.com/Faultbox/terrain-backdrop/internal/engine/input"
	"github.com/Faultbox/terrain-backdrop/internal/engine/renderer"
	"github.com/Faultbox/terrain-backdrop/internal/engine/window"
	"github.com/Faultbox/terrain-backdrop/internal/logger"
	"github.com/Faultbox/terrain-backdrop/internal/scene"
)

// Backdrop is the kiosk instance.
type Backdrop struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	shots    *debug.ScreenshotCapture
	log      *zap.Logger

	wantScreenshot bool
}

// New creates the window, renderer and scene.
func New(cfg *config.Config) (*Backdrop, error) {
	b := &Backdrop{
		config: cfg,
		log:    logger.Named("backdrop"),
	}
	b.log.Info("initializing backdrop",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("noise", cfg.Noise.Kind),
	)

	var err error
	b.shots, err = NewScreenshots(cfg)
	if err != nil {
		return nil, err
	}

	b.scene, err = NewScene(cfg, logger.Log)
	if err != nil {
		return nil, err
	}

	// Window first: it creates the OpenGL context.
	b.window, err = window.New(window.Config{
		Title:      "Terrain Backdrop",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		b.scene.Close()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	b.window.ShowCursor(!cfg.Graphics.Fullscreen)

	width, height := b.window.DrawableSize()
	b.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		b.window.Close()
		b.scene.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	b.renderer.Follow(b.scene.Params)
	b.renderer.Resize(width, height)
	b.scene.Resize(width, height)

	b.input = input.New()

	b.log.Info("backdrop initialized")
	return b, nil
}

// Run starts the frame loop and returns when the window is closed or
// Escape is pressed.
func (b *Backdrop) Run() error {
	b.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	b.log.Info("starting frame loop")

	for b.running {
		now := time.Now()
		dt := FrameDelta(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Input
		if b.input.Update() {
			b.running = false
			break
		}
		b.handleEvents()

		// 2. Draw the current state
		b.renderer.Render(b.scene)
		if b.wantScreenshot {
			b.wantScreenshot = false
			b.screenshot()
		}

		// 3. Recompute heights and advance
		b.scene.Tick(dt)

		// 4. Present
		b.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			b.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Stringer("direction", b.scene.Tracker.Direction()),
			)
			b.window.SetTitle(fmt.Sprintf("Terrain Backdrop - %d FPS", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (b *Backdrop) handleEvents() {
	for _, event := range b.input.Events() {
		if event.Type == input.EventWindowResize {
			width, height := b.window.DrawableSize()
			b.renderer.Resize(width, height)
			b.scene.Resize(width, height)
		}
	}

	if b.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		b.running = false
	}
	if b.input.IsKeyPressed(sdl.SCANCODE_F12) {
		b.wantScreenshot = true
	}
	if notches := wheelNotches(b.input); notches != 0 {
		b.scene.Wheel(notches)
	}
}

// frameInput is the per-frame input summary the kiosk reads.
type frameInput interface {
	IsKeyPressed(scancode sdl.Scancode) bool
	WheelTotal() float64
}

// wheelNotches folds the frame's wheel movement and the Up/Down arrows into
// one scroll step. Each arrow counts as a single notch.
func wheelNotches(in frameInput) float64 {
	notches := in.WheelTotal()
	if in.IsKeyPressed(sdl.SCANCODE_UP) {
		notches++
	}
	if in.IsKeyPressed(sdl.SCANCODE_DOWN) {
		notches--
	}
	return notches
}

// screenshot saves the back buffer. It must run between Render and SwapBuffers.
func (b *Backdrop) screenshot() {
	pixels, width, height := b.renderer.ReadPixels()
	path, err := b.shots.Capture(framebuffer.FlipRows(pixels, width, height))
	if err != nil {
		b.log.Error("screenshot failed", zap.Error(err))
		return
	}
	b.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases everything New created.
func (b *Backdrop) Close() {
	b.log.Info("closing backdrop")

	if b.renderer != nil {
		b.renderer.Close()
	}
	if b.scene != nil {
		b.scene.Close()
	}
	if b.window != nil {
		b.window.Close()
	}
}
