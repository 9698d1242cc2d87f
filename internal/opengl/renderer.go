package opengl

import (
	"fmt"
	"log/slog"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"model-viewer/core"
)

// Init loads the OpenGL function pointers and sets the fixed pipeline state.
// Must be called after the GLFW window context is made current.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	slog.Info("opengl ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return nil
}

// SetViewport resizes the OpenGL viewport.
func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Renderer draws one textured mesh with one program.
type Renderer struct {
	program uint32
	mvpLoc  int32
	texture uint32
	mesh    *VertexArray
	clear   core.Color
}

// NewRenderer looks up the "mvp" uniform of program. A program without it
// (for example one that failed to link) still draws; the matrix upload is
// ignored by the driver.
func NewRenderer(program, texture uint32, mesh *VertexArray, clear core.Color) *Renderer {
	loc := gl.GetUniformLocation(program, gl.Str("mvp\x00"))
	if loc < 0 {
		slog.Warn("shader program has no active mvp uniform", "program", program)
	}
	return &Renderer{
		program: program,
		mvpLoc:  loc,
		texture: texture,
		mesh:    mesh,
		clear:   clear,
	}
}

// Clear clears colour and depth to the background colour.
func (r *Renderer) Clear() {
	gl.ClearColor(r.clear.R, r.clear.G, r.clear.B, r.clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Renderer) UseProgram() {
	gl.UseProgram(r.program)
}

// SetMVP uploads the matrix; mgl32 is column-major, so no transpose.
func (r *Renderer) SetMVP(mvp mgl32.Mat4) {
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0])
}

// Draw binds the texture to unit 0 and the vertex array, then draws.
func (r *Renderer) Draw() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	r.mesh.Draw()
}
