package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraState is the mutable part of the orbit camera. Only input handlers
// write it; the per-frame view computation only reads it.
type CameraState struct {
	Angle float32 // orbit angle in radians, unbounded
	PanX  float32
	PanY  float32
	Zoom  float32 // distance from target, clamped to [MinZoom, MaxZoom]
}

// CameraSettings holds the constants that turn pointer and wheel deltas into
// camera motion.
type CameraSettings struct {
	OrbitSensitivity     float32 // radians per pixel, primary drag X
	OrbitLiftSensitivity float32 // pan-Y units per pixel, primary drag Y
	PanSensitivity       float32 // pan units per pixel, secondary drag
	MinZoom              float32
	MaxZoom              float32
	InitialZoom          float32
	Anchor               mgl32.Vec3 // look-at point before panning
}

func DefaultCameraSettings() CameraSettings {
	return CameraSettings{
		OrbitSensitivity:     0.005,
		OrbitLiftSensitivity: 0.02,
		PanSensitivity:       0.01,
		MinZoom:              0.01,
		MaxZoom:              100.0,
		InitialZoom:          5.0,
		Anchor:               mgl32.Vec3{0, -1, 0},
	}
}

// OrbitCamera circles a target point on a horizontal ring. The ring radius is
// the zoom distance and the ring height follows the target.
type OrbitCamera struct {
	CameraState
	Settings CameraSettings

	lastX, lastY float64
	seeded       bool
}

func NewOrbitCamera(settings CameraSettings) *OrbitCamera {
	c := &OrbitCamera{Settings: settings}
	c.Zoom = settings.InitialZoom
	c.clampZoom()
	return c
}

// PointerMoved consumes an absolute cursor position. orbit and pan report
// whether the primary and secondary buttons are held. The first call after
// construction only records the position.
func (c *OrbitCamera) PointerMoved(x, y float64, orbit, pan bool) {
	if !c.seeded {
		c.lastX, c.lastY = x, y
		c.seeded = true
		return
	}

	dx := x - c.lastX
	dy := y - c.lastY
	c.lastX, c.lastY = x, y

	if orbit {
		c.Angle += float32(dx * float64(c.Settings.OrbitSensitivity))
		c.PanY += float32(-dy * float64(c.Settings.OrbitLiftSensitivity))
	}
	if pan {
		c.PanX += float32(dx * float64(c.Settings.PanSensitivity))
		c.PanY += float32(-dy * float64(c.Settings.PanSensitivity))
	}
}

// Scroll moves the camera toward the target for positive yoff.
func (c *OrbitCamera) Scroll(yoff float64) {
	z := float64(c.Zoom) - yoff
	switch {
	case z < float64(c.Settings.MinZoom):
		c.Zoom = c.Settings.MinZoom
	case z > float64(c.Settings.MaxZoom):
		c.Zoom = c.Settings.MaxZoom
	default:
		c.Zoom = float32(z)
	}
}

func (c *OrbitCamera) clampZoom() {
	if c.Zoom < c.Settings.MinZoom {
		c.Zoom = c.Settings.MinZoom
	}
	if c.Zoom > c.Settings.MaxZoom {
		c.Zoom = c.Settings.MaxZoom
	}
}

// Target is the anchor shifted by the pan offset.
func (c *OrbitCamera) Target() mgl32.Vec3 {
	return c.Settings.Anchor.Add(mgl32.Vec3{c.PanX, c.PanY, 0})
}

// Eye is the camera position on the orbit ring around Target.
func (c *OrbitCamera) Eye() mgl32.Vec3 {
	sin, cos := math.Sincos(float64(c.Angle))
	offset := mgl32.Vec3{float32(sin), 0, float32(cos)}.Mul(c.Zoom)
	return c.Target().Add(offset)
}

func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target(), mgl32.Vec3{0, 1, 0})
}
