package opengl

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderError carries the driver's compile or link log.
type ShaderError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

// LoadProgram reads, compiles and links a vertex/fragment pair. The program
// is registered with res.
//
// Compile and link failures are logged with the driver's diagnostics and,
// unless strict is set, the possibly broken program is still returned: it
// can be bound and drawn with, it just renders nothing useful. With strict
// the diagnostics come back as *ShaderError values. Unreadable source files
// are always an error.
func LoadProgram(vertexPath, fragmentPath string, strict bool, res *Resources) (uint32, error) {
	vertSrc, err := readSource(vertexPath)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	fragSrc, err := readSource(fragmentPath)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog, diags := newProgram(vertSrc, fragSrc, res)
	if err := reportShaderErrors(strict, diags...); err != nil {
		return 0, err
	}
	slog.Debug("shader program ready", "program", prog, "vertex", vertexPath, "fragment", fragmentPath)
	return prog, nil
}

// readSource returns the file contents NUL-terminated for gl.Strs.
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader %q: %w", path, err)
	}
	return string(data) + "\x00", nil
}

// reportShaderErrors logs each diagnostic. With strict it also returns them
// joined; otherwise it returns nil.
func reportShaderErrors(strict bool, diags ...*ShaderError) error {
	var errs []error
	for _, d := range diags {
		if d == nil {
			continue
		}
		slog.Error("shader diagnostics", "stage", d.Stage, "log", d.Log)
		errs = append(errs, d)
	}
	if !strict {
		return nil
	}
	return errors.Join(errs...)
}

func newProgram(vertSrc, fragSrc string, res *Resources) (uint32, []*ShaderError) {
	vert, vertErr := compileShader(vertSrc, gl.VERTEX_SHADER, "vertex")
	frag, fragErr := compileShader(fragSrc, gl.FRAGMENT_SHADER, "fragment")

	prog := gl.CreateProgram()
	res.Add("shader program", func() { gl.DeleteProgram(prog) })
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var linkErr *ShaderError
	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		linkErr = &ShaderError{Stage: "link", Log: cleanLog(log)}
	}

	// Flagged for deletion; they live on while attached to prog.
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, []*ShaderError{vertErr, fragErr, linkErr}
}

// compileShader always returns the shader object, even when compilation
// failed, so that linking can still be attempted.
func compileShader(src string, shaderType uint32, stage string) (uint32, *ShaderError) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return shader, &ShaderError{Stage: stage, Log: cleanLog(log)}
	}
	return shader, nil
}

func cleanLog(log string) string {
	if log = strings.TrimRight(log, "\x00 \t\r\n"); log == "" {
		return "(no driver log)"
	}
	return log
}
