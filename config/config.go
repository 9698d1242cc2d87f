package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"model-viewer/scene"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  *bool  `yaml:"vsync"`
}

type Assets struct {
	Mesh           string `yaml:"mesh"`
	Texture        string `yaml:"texture"`
	VertexShader   string `yaml:"vertexShader"`
	FragmentShader string `yaml:"fragmentShader"`
	FlipY          *bool  `yaml:"flipY"`
}

type Camera struct {
	OrbitSensitivity     float32     `yaml:"orbitSensitivity"`
	OrbitLiftSensitivity float32     `yaml:"orbitLiftSensitivity"`
	PanSensitivity       float32     `yaml:"panSensitivity"`
	MinZoom              float32     `yaml:"minZoom"`
	MaxZoom              float32     `yaml:"maxZoom"`
	InitialZoom          float32     `yaml:"initialZoom"`
	Anchor               *[3]float32 `yaml:"anchor"`
}

type Model struct {
	Translate  *[3]float32 `yaml:"translate"`
	RotateXDeg float32     `yaml:"rotateXDeg"`
	Scale      float32     `yaml:"scale"`
}

type Projection struct {
	FovDeg float32 `yaml:"fovDeg"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
	// TrackAspect recomputes the aspect ratio when the framebuffer is resized.
	TrackAspect bool `yaml:"trackAspect"`
}

type Shaders struct {
	Strict bool `yaml:"strict"`
}

// Config is the full viewer configuration. Zero values are replaced by
// defaults in Normalize; pointer fields distinguish "unset" from an explicit
// zero or false.
type Config struct {
	Window     Window      `yaml:"window"`
	Assets     Assets      `yaml:"assets"`
	Camera     Camera      `yaml:"camera"`
	Model      Model       `yaml:"model"`
	Projection Projection  `yaml:"projection"`
	Background *[4]float32 `yaml:"background"`
	Shaders    Shaders     `yaml:"shaders"`
	Progress   bool        `yaml:"progress"`
}

// Default returns a normalized configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.Normalize()
	return c
}

// Load reads and validates the YAML file at path. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML, applies defaults and validates. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func boolPtr(b bool) *bool { return &b }

// Normalize fills unset fields with their defaults.
func (c *Config) Normalize() {
	if c.Window.Width == 0 {
		c.Window.Width = 800
	}
	if c.Window.Height == 0 {
		c.Window.Height = 600
	}
	if c.Window.Title == "" {
		c.Window.Title = "Model Viewer"
	}
	if c.Window.VSync == nil {
		c.Window.VSync = boolPtr(true)
	}

	if c.Assets.Mesh == "" {
		c.Assets.Mesh = "assets/models/cube.obj"
	}
	if c.Assets.Texture == "" {
		c.Assets.Texture = "assets/models/cube.png"
	}
	if c.Assets.VertexShader == "" {
		c.Assets.VertexShader = "assets/shaders/vertex_shader.glsl"
	}
	if c.Assets.FragmentShader == "" {
		c.Assets.FragmentShader = "assets/shaders/fragment_shader.glsl"
	}
	if c.Assets.FlipY == nil {
		c.Assets.FlipY = boolPtr(true)
	}

	cam := scene.DefaultCameraSettings()
	if c.Camera.OrbitSensitivity == 0 {
		c.Camera.OrbitSensitivity = cam.OrbitSensitivity
	}
	if c.Camera.OrbitLiftSensitivity == 0 {
		c.Camera.OrbitLiftSensitivity = cam.OrbitLiftSensitivity
	}
	if c.Camera.PanSensitivity == 0 {
		c.Camera.PanSensitivity = cam.PanSensitivity
	}
	if c.Camera.MinZoom == 0 {
		c.Camera.MinZoom = cam.MinZoom
	}
	if c.Camera.MaxZoom == 0 {
		c.Camera.MaxZoom = cam.MaxZoom
	}
	if c.Camera.InitialZoom == 0 {
		c.Camera.InitialZoom = cam.InitialZoom
	}
	if c.Camera.Anchor == nil {
		a := [3]float32(cam.Anchor)
		c.Camera.Anchor = &a
	}

	model := scene.DefaultModelTransform()
	if c.Model.Translate == nil {
		t := [3]float32(model.Translate)
		c.Model.Translate = &t
	}
	if c.Model.Scale == 0 {
		c.Model.Scale = model.Scale
	}

	proj := scene.DefaultProjection()
	if c.Projection.FovDeg == 0 {
		c.Projection.FovDeg = proj.FovYDeg
	}
	if c.Projection.Near == 0 {
		c.Projection.Near = proj.Near
	}
	if c.Projection.Far == 0 {
		c.Projection.Far = proj.Far
	}

	if c.Background == nil {
		c.Background = &[4]float32{0.1, 0.2, 0.3, 1}
	}
}

// Validate reports the first inconsistent setting, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Assets.Mesh == "":
		return fmt.Errorf("%w: assets.mesh is empty", ErrInvalid)
	case c.Assets.VertexShader == "" || c.Assets.FragmentShader == "":
		return fmt.Errorf("%w: shader paths are required", ErrInvalid)
	case c.Camera.MinZoom <= 0:
		return fmt.Errorf("%w: camera.minZoom must be positive, got %v", ErrInvalid, c.Camera.MinZoom)
	case c.Camera.MinZoom > c.Camera.MaxZoom:
		return fmt.Errorf("%w: camera.minZoom %v exceeds maxZoom %v", ErrInvalid, c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Camera.InitialZoom < c.Camera.MinZoom || c.Camera.InitialZoom > c.Camera.MaxZoom:
		return fmt.Errorf("%w: camera.initialZoom %v outside [%v, %v]", ErrInvalid,
			c.Camera.InitialZoom, c.Camera.MinZoom, c.Camera.MaxZoom)
	case c.Model.Scale <= 0:
		return fmt.Errorf("%w: model.scale must be positive, got %v", ErrInvalid, c.Model.Scale)
	case c.Projection.Near <= 0:
		return fmt.Errorf("%w: projection.near must be positive, got %v", ErrInvalid, c.Projection.Near)
	case c.Projection.Far <= c.Projection.Near:
		return fmt.Errorf("%w: projection.far %v must exceed near %v", ErrInvalid, c.Projection.Far, c.Projection.Near)
	}
	return nil
}

func (c *Config) CameraSettings() scene.CameraSettings {
	return scene.CameraSettings{
		OrbitSensitivity:     c.Camera.OrbitSensitivity,
		OrbitLiftSensitivity: c.Camera.OrbitLiftSensitivity,
		PanSensitivity:       c.Camera.PanSensitivity,
		MinZoom:              c.Camera.MinZoom,
		MaxZoom:              c.Camera.MaxZoom,
		InitialZoom:          c.Camera.InitialZoom,
		Anchor:               mgl32.Vec3(*c.Camera.Anchor),
	}
}

func (c *Config) ModelTransform() scene.ModelTransform {
	return scene.ModelTransform{
		Translate:  mgl32.Vec3(*c.Model.Translate),
		RotateXDeg: c.Model.RotateXDeg,
		Scale:      c.Model.Scale,
	}
}

// ProjectionFor builds the projection for a framebuffer of the given size.
// A degenerate size falls back to the configured window aspect.
func (c *Config) ProjectionFor(width, height int) scene.Projection {
	if width <= 0 || height <= 0 {
		width, height = c.Window.Width, c.Window.Height
	}
	return scene.Projection{
		FovYDeg: c.Projection.FovDeg,
		Aspect:  float32(width) / float32(height),
		Near:    c.Projection.Near,
		Far:     c.Projection.Far,
	}
}

func (c *Config) VSync() bool { return c.Window.VSync == nil || *c.Window.VSync }

func (c *Config) FlipY() bool { return c.Assets.FlipY == nil || *c.Assets.FlipY }

func (c *Config) BackgroundColor() [4]float32 {
	if c.Background == nil {
		return [4]float32{0.1, 0.2, 0.3, 1}
	}
	return *c.Background
}
