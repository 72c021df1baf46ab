// Package renderer draws the terrain backdrop with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-backdrop/internal/engine/renderer/shaders"
	"github.com/Faultbox/terrain-backdrop/internal/engine/shader"
	"github.com/Faultbox/terrain-backdrop/internal/logger"
	"github.com/Faultbox/terrain-backdrop/internal/params"
	"github.com/Faultbox/terrain-backdrop/internal/scene"
	"github.com/Faultbox/terrain-backdrop/internal/terrain"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the terrain GPU buffers and shader.
type Renderer struct {
	config Config
	log    *zap.Logger

	program uint32

	// Uniform locations
	locModel, locView, locProj           int32
	locColor                             int32
	locAmbientColor, locAmbientIntensity int32
	locLightPos, locLightColor           int32
	locLightIntensity, locLightRange     int32
	locFogColor, locFogNear, locFogFar   int32

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	color     [3]float32
	wireframe bool
	unsub     func()
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	r.log.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// The material is double sided.
	gl.Disable(gl.CULL_FACE)

	program, err := shader.CompileProgram(shaders.TerrainVertexShader, shaders.TerrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	r.program = program

	r.locModel = shader.GetUniform(program, "uModel")
	r.locView = shader.GetUniform(program, "uView")
	r.locProj = shader.GetUniform(program, "uProj")
	r.locColor = shader.GetUniform(program, "uColor")
	r.locAmbientColor = shader.GetUniform(program, "uAmbientColor")
	r.locAmbientIntensity = shader.GetUniform(program, "uAmbientIntensity")
	r.locLightPos = shader.GetUniform(program, "uLightPos")
	r.locLightColor = shader.GetUniform(program, "uLightColor")
	r.locLightIntensity = shader.GetUniform(program, "uLightIntensity")
	r.locLightRange = shader.GetUniform(program, "uLightRange")
	r.locFogColor = shader.GetUniform(program, "uFogColor")
	r.locFogNear = shader.GetUniform(program, "uFogNear")
	r.locFogFar = shader.GetUniform(program, "uFogFar")

	r.createBuffers()

	r.log.Debug("terrain renderer created", zap.Uint32("program", program))
	return r, nil
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, terrain.VertexStride, nil)
	gl.EnableVertexAttribArray(0)

	// Normal (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, terrain.VertexStride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	// The element buffer binding is VAO state.
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Follow takes the material color and wireframe flag from p and keeps them
// in sync with later changes.
func (r *Renderer) Follow(p *params.Params) {
	if r.unsub != nil {
		r.unsub()
	}
	t := p.Tuning()
	r.color = t.Color.RGB()
	r.wireframe = t.Wireframe

	r.unsub = p.Subscribe(func(c params.Change) {
		switch c.Field {
		case params.FieldColor:
			r.color = c.Tuning.Color.RGB()
		case params.FieldWireframe:
			r.wireframe = c.Tuning.Wireframe
		}
	})
}

// Upload sends the parts of f that changed since the last upload to the GPU.
// A rebuilt grid reallocates both buffers; otherwise the vertex data is
// overwritten in place.
func (r *Renderer) Upload(f *terrain.Field) {
	dirty := f.Dirty()
	if dirty == 0 || len(f.Vertices) == 0 {
		return
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	size := len(f.Vertices) * terrain.VertexStride
	if dirty&terrain.DirtyIndices != 0 {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(&f.Vertices[0]), gl.DYNAMIC_DRAW)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(f.Indices)*4, gl.Ptr(&f.Indices[0]), gl.STATIC_DRAW)
		r.indexCount = int32(len(f.Indices))

		segX, segY := f.Segments()
		width, depth := f.Extent()
		r.log.Debug("terrain buffers reallocated",
			zap.Int("segments_x", segX),
			zap.Int("segments_y", segY),
			zap.Float32("width", width),
			zap.Float32("depth", depth),
			zap.Int("vertices", len(f.Vertices)),
		)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(&f.Vertices[0]))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	f.ClearDirty()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render clears the current target to the fog color and draws the terrain
// as seen by the scene camera.
func (r *Renderer) Render(s *scene.Scene) {
	r.Upload(s.Field)

	fog := s.Env.Fog
	gl.ClearColor(fog.Color[0], fog.Color[1], fog.Color[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	if r.indexCount == 0 {
		return
	}

	model := s.ModelMatrix()
	view := s.ViewMatrix()
	proj := s.ProjectionMatrix()

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProj, 1, false, proj.Ptr())
	gl.Uniform3fv(r.locColor, 1, &r.color[0])

	env := s.Env
	gl.Uniform3fv(r.locAmbientColor, 1, &env.Ambient.Color[0])
	gl.Uniform1f(r.locAmbientIntensity, env.Ambient.Intensity)
	lightPos := env.Light.Position.Array()
	gl.Uniform3fv(r.locLightPos, 1, &lightPos[0])
	gl.Uniform3fv(r.locLightColor, 1, &env.Light.Color[0])
	gl.Uniform1f(r.locLightIntensity, env.Light.Intensity)
	gl.Uniform1f(r.locLightRange, env.Light.Range)
	gl.Uniform3fv(r.locFogColor, 1, &fog.Color[0])
	gl.Uniform1f(r.locFogNear, fog.Near)
	gl.Uniform1f(r.locFogFar, fog.Far)

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	gl.BindVertexArray(r.vao)
	gl.DrawElements(gl.TRIANGLES, r.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// ReadPixels reads the default framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, width, height
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.unsub != nil {
		r.unsub()
		r.unsub = nil
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
