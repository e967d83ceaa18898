// Package render draws editor frames with OpenGL.
//
// The renderer owns a single shader program and a single VBO/VAO pair. Each
// shape of a frame is uploaded into the VBO (growing it when needed) and drawn
// straight away, so the buffer only ever holds one shape.
package render

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/irfansharif/quads/internal/frame"
	"github.com/irfansharif/quads/internal/geom"
	"github.com/irfansharif/quads/internal/palette"
)

var (
	// ErrSurfaceNotFound is returned when no drawable is registered under the
	// requested surface id.
	ErrSurfaceNotFound = errors.New("surface not found")
	// ErrContextUnavailable is returned when the OpenGL backend cannot be
	// acquired for the surface.
	ErrContextUnavailable = errors.New("rendering context unavailable")
	// ErrInvalidBuffer is returned for buffers that are not whole
	// x, y, r, g, b records.
	ErrInvalidBuffer = errors.New("invalid vertex buffer")
)

const floatSize = int(unsafe.Sizeof(float32(0)))

// Surfaces maps surface ids to the windows that back them.
type Surfaces struct {
	windows map[string]*glfw.Window
}

// NewSurfaces creates an empty surface registry.
func NewSurfaces() *Surfaces {
	return &Surfaces{windows: make(map[string]*glfw.Window)}
}

// Register makes the window available under id.
func (s *Surfaces) Register(id string, window *glfw.Window) {
	s.windows[id] = window
}

// Lookup returns the window registered under id.
func (s *Surfaces) Lookup(id string) (*glfw.Window, bool) {
	w, ok := s.windows[id]
	return w, ok
}

// Renderer draws x, y, r, g, b vertex buffers into a window.
type Renderer struct {
	window        *glfw.Window
	shaderManager *ShaderManager
	vao, vbo      uint32
	capacity      int // VBO size in floats
}

// ConfigureSurface acquires an OpenGL context for the surface registered
// under id and prepares the shader program and vertex buffer.
func ConfigureSurface(surfaces *Surfaces, id string) (*Renderer, error) {
	window, ok := surfaces.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: no drawable with id %q", ErrSurfaceNotFound, id)
	}

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContextUnavailable, err)
	}

	sm, err := NewShaderManager()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContextUnavailable, err)
	}
	// Model space is already normalized device coordinates.
	sm.SetTransform(geom.MakeAffine(1, 0, 0, 0, 1, 0).Matrix4())

	r := &Renderer{window: window, shaderManager: sm}
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Position (location 0): 2 floats; colour (location 1): 3 floats.
	stride := int32(frame.FloatsPerVertex * floatSize)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(2*floatSize))
	gl.EnableVertexAttribArray(1)

	w, h := window.GetFramebufferSize()
	r.SetViewport(w, h)
	return r, nil
}

// SetViewport matches the GL viewport to the framebuffer size.
func (r *Renderer) SetViewport(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

// Clear clears the surface to the background colour.
func (r *Renderer) Clear() {
	cr, cg, cb := palette.RGB32(palette.Background)
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Upload copies the buffer into the VBO, growing it if needed.
func (r *Renderer) Upload(buf []float32) error {
	if len(buf) == 0 || len(buf)%frame.FloatsPerVertex != 0 {
		return fmt.Errorf("%w: %d floats is not a whole number of %d-float vertices",
			ErrInvalidBuffer, len(buf), frame.FloatsPerVertex)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	if len(buf) > r.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(buf)*floatSize, gl.Ptr(buf), gl.DYNAMIC_DRAW)
		r.capacity = len(buf)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*floatSize, gl.Ptr(buf))
	}
	return glError("upload")
}

// Draw issues a draw call over the first vertexCount uploaded vertices.
func (r *Renderer) Draw(kind frame.Primitive, vertexCount int) error {
	var mode uint32
	switch kind {
	case frame.TriangleFan:
		mode = gl.TRIANGLE_FAN
	case frame.Triangles:
		mode = gl.TRIANGLES
	default:
		return fmt.Errorf("unsupported primitive %s", kind)
	}
	if vertexCount*frame.FloatsPerVertex > r.capacity {
		return fmt.Errorf("%w: drawing %d vertices from a %d-float buffer", ErrInvalidBuffer, vertexCount, r.capacity)
	}

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(mode, 0, int32(vertexCount))
	return glError("draw")
}

// Destroy releases the GL objects owned by the renderer.
func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.shaderManager.program)
}

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: OpenGL error 0x%x", op, code)
	}
	return nil
}
