package renderer

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"model-viewer/scene"
)

// State is the lifecycle stage of a Viewer.
type State int

const (
	Initializing State = iota
	Running
	ShuttingDown
	Terminated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case ShuttingDown:
		return "shutting down"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Surface is the presentation side of the window.
type Surface interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// Frame issues the GPU commands for one frame.
type Frame interface {
	Clear()
	UseProgram()
	SetMVP(mvp mgl32.Mat4)
	Draw()
}

// Viewer runs the render loop for one mesh seen through one orbit camera.
type Viewer struct {
	surface Surface
	frame   Frame
	camera  *scene.OrbitCamera

	model      mgl32.Mat4
	projection mgl32.Mat4

	state    State
	frames   uint64
	shutdown []func()
}

func NewViewer(surface Surface, frame Frame, camera *scene.OrbitCamera, model, projection mgl32.Mat4) *Viewer {
	return &Viewer{
		surface:    surface,
		frame:      frame,
		camera:     camera,
		model:      model,
		projection: projection,
		state:      Initializing,
	}
}

func (v *Viewer) State() State { return v.state }

// SetProjection replaces the projection, e.g. after a framebuffer resize.
func (v *Viewer) SetProjection(projection mgl32.Mat4) { v.projection = projection }

// Frames is the number of frames presented so far.
func (v *Viewer) Frames() uint64 { return v.frames }

// OnShutdown registers fn to run when the loop exits, newest first.
func (v *Viewer) OnShutdown(fn func()) {
	v.shutdown = append(v.shutdown, fn)
}

// Run renders frames until the surface reports a close request, then runs the
// shutdown hooks.
func (v *Viewer) Run() {
	v.state = Running
	slog.Debug("render loop started")

	for !v.surface.ShouldClose() {
		v.RenderFrame()
	}

	v.state = ShuttingDown
	slog.Debug("render loop stopped", "frames", v.frames)
	for i := len(v.shutdown) - 1; i >= 0; i-- {
		v.shutdown[i]()
	}
	v.shutdown = nil
	v.state = Terminated
}

// RenderFrame draws, presents and then drains input for one frame.
func (v *Viewer) RenderFrame() {
	v.frame.Clear()
	v.frame.UseProgram()

	view := v.camera.ViewMatrix()
	mvp := scene.MVP(v.projection, view, v.model)
	v.frame.SetMVP(mvp)
	v.frame.Draw()

	v.surface.SwapBuffers()
	v.frames++
	v.surface.PollEvents()
}
