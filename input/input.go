package input

import (
	"model-viewer/scene"
)

// Mouse button constants (glfw numbering).
const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2
)

// Source is the part of a window the controller needs: callback registration
// for pointer and wheel events and direct button polling.
type Source interface {
	IsMouseButtonPressed(button int) bool
	SetCursorPosCallback(cb func(x, y float64))
	SetScrollCallback(cb func(xoff, yoff float64))
}

// Controller routes window input to an orbit camera. Callbacks run
// synchronously inside the window's event poll on the render thread.
type Controller struct {
	camera *scene.OrbitCamera
	source Source

	// Buttons that drive orbiting and panning.
	OrbitButton int
	PanButton   int

	// Running totals, reported in debug logs.
	MoveEvents   int
	ScrollEvents int
}

// Bind registers the cursor and scroll callbacks on src.
func Bind(src Source, camera *scene.OrbitCamera) *Controller {
	c := &Controller{
		camera:      camera,
		source:      src,
		OrbitButton: MouseLeft,
		PanButton:   MouseRight,
	}
	src.SetCursorPosCallback(c.CursorMoved)
	src.SetScrollCallback(c.Scrolled)
	return c
}

// CursorMoved polls the button state and forwards the position to the camera.
func (c *Controller) CursorMoved(x, y float64) {
	c.MoveEvents++
	orbit := c.source.IsMouseButtonPressed(c.OrbitButton)
	pan := c.source.IsMouseButtonPressed(c.PanButton)
	c.camera.PointerMoved(x, y, orbit, pan)
}

// Scrolled zooms with the vertical wheel offset; horizontal offset is ignored.
func (c *Controller) Scrolled(xoff, yoff float64) {
	c.ScrollEvents++
	c.camera.Scroll(yoff)
}
