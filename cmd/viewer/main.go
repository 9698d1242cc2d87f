package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"model-viewer/config"
	"model-viewer/core"
	"model-viewer/input"
	"model-viewer/internal/opengl"
	"model-viewer/renderer"
	"model-viewer/scene"
)

const (
	exitOK      = 0
	exitFailure = -1
)

func main() {
	os.Exit(run(os.Args[0], os.Args[1:]))
}

func run(name string, args []string) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitFailure
	}

	level := slog.LevelInfo
	if flags.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := flags.Resolve()
	if err != nil {
		slog.Error("configuration rejected", "error", err)
		return exitFailure
	}

	if err := view(cfg); err != nil {
		var shaderErr *opengl.ShaderError
		switch {
		case errors.Is(err, scene.ErrNoGeometry), errors.Is(err, scene.ErrUnsupportedFormat):
			slog.Error("mesh unusable", "path", cfg.Assets.Mesh, "error", err)
		case errors.As(err, &shaderErr):
			slog.Error("shader rejected", "stage", shaderErr.Stage, "error", err)
		default:
			slog.Error("viewer failed", "error", err)
		}
		return exitFailure
	}
	return exitOK
}

// view loads the mesh, opens the window and runs the render loop until the
// window is closed.
func view(cfg *config.Config) error {
	mesh, err := scene.LoadMesh(cfg.Assets.Mesh, scene.LoadOptions{Progress: cfg.Progress})
	if err != nil {
		return err
	}

	winCfg := core.DefaultWindowConfig()
	winCfg.Width = cfg.Window.Width
	winCfg.Height = cfg.Window.Height
	winCfg.Title = cfg.Window.Title
	winCfg.VSync = cfg.VSync()

	window, err := core.NewWindow(winCfg)
	if err != nil {
		return err
	}
	defer window.Destroy()
	window.SetTitle(fmt.Sprintf("%s - %s", cfg.Window.Title, filepath.Base(cfg.Assets.Mesh)))

	if err := opengl.Init(); err != nil {
		return err
	}
	fbWidth, fbHeight := window.GetFramebufferSize()
	opengl.SetViewport(fbWidth, fbHeight)

	res := &opengl.Resources{}
	defer res.Release()

	vertexArray, err := opengl.UploadMesh(mesh, res)
	if err != nil {
		return err
	}
	texture, err := opengl.LoadTexture(cfg.Assets.Texture, cfg.FlipY(), res)
	if err != nil {
		return err
	}
	program, err := opengl.LoadProgram(cfg.Assets.VertexShader, cfg.Assets.FragmentShader, cfg.Shaders.Strict, res)
	if err != nil {
		return err
	}

	camera := scene.NewOrbitCamera(cfg.CameraSettings())
	controller := input.Bind(window, camera)

	frame := opengl.NewRenderer(program, texture, vertexArray, core.ColorFromArray(cfg.BackgroundColor()))
	projection := cfg.ProjectionFor(cfg.Window.Width, cfg.Window.Height)
	model := cfg.ModelTransform().Matrix()
	viewer := renderer.NewViewer(window, frame, camera, model, projection.Matrix())

	bounds := mesh.Bounds().Transform(model)
	slog.Info("model placed", "min", bounds.Min, "max", bounds.Max)
	frustum := scene.FrustumFromMatrix(projection.Matrix().Mul4(camera.ViewMatrix()))
	if !bounds.IntersectsFrustum(&frustum) {
		slog.Warn("model is outside the initial view, check model.scale and model.translate")
	}

	window.OnFramebufferResize(func(width, height int) {
		opengl.SetViewport(width, height)
		if cfg.Projection.TrackAspect && width > 0 && height > 0 {
			viewer.SetProjection(cfg.ProjectionFor(width, height).Matrix())
		}
	})

	viewer.OnShutdown(window.Destroy)
	viewer.OnShutdown(res.Release)
	viewer.OnShutdown(func() {
		slog.Debug("input totals", "moves", controller.MoveEvents, "scrolls", controller.ScrollEvents)
	})

	viewer.Run()
	slog.Info("viewer closed", "frames", viewer.Frames(), "state", viewer.State())
	return nil
}
