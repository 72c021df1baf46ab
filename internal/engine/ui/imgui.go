// Package ui provides the Dear ImGui window and the parameter panel.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window and the ImGui context. GL objects belong in
// the frame callback, once the context is current.
func NewBackend(title string, width, height int32) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(1, 1, 1, 1))
	b.backend.CreateWindow(title, int(width), int(height))

	return b, nil
}

// Run starts the main render loop. renderFunc runs once per frame between
// the backend's NewFrame and Render.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// OnShutdown registers fn to run after the last frame, while the GL context
// is still alive.
func (b *Backend) OnShutdown(fn func()) {
	b.backend.SetBeforeDestroyContextHook(fn)
}

// Close ends Run after the current frame. Run then tears down the window
// and the ImGui context.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// GetViewport returns the main viewport work area.
func (b *Backend) GetViewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// DrawBackground shows a texture stretched over the whole viewport behind
// every other window. GL textures are bottom-up, so V is flipped.
func DrawBackground(texID uint32, x, y, width, height float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(width, height))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs | imgui.WindowFlagsNoSavedSettings

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##SceneBackground", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texID))
		imgui.ImageV(*texRef,
			imgui.NewVec2(width, height),
			imgui.NewVec2(0, 1),
			imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// WheelForScene returns the mouse wheel movement this frame unless ImGui
// wants the mouse, for example while hovering the panel.
func WheelForScene() float32 {
	io := imgui.CurrentIO()
	if io.WantCaptureMouse() {
		return 0
	}
	return io.MouseWheel()
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
