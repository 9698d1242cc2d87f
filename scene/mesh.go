package scene

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// Interleaved vertex layout: x, y, z, u, v.
const (
	PositionComponents = 3
	TexCoordComponents = 2
	VertexStride       = PositionComponents + TexCoordComponents
	FloatSize          = 4
	VertexStrideBytes  = VertexStride * FloatSize
	TexCoordOffset     = PositionComponents * FloatSize
)

var (
	ErrNoGeometry        = errors.New("no geometry")
	ErrUnsupportedFormat = errors.New("unsupported mesh format")
)

// Mesh is a flat, non-indexed triangle list. Every face-vertex occurrence is
// expanded into its own VertexStride floats. A Mesh is not modified after
// loading.
type Mesh struct {
	Name     string
	Vertices []float32
}

// VertexCount is the number of vertices, i.e. len(Vertices)/VertexStride.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// TriangleCount is the number of complete triangles in the list.
func (m *Mesh) TriangleCount() int {
	return m.VertexCount() / 3
}

// Validate checks the stride invariant and that there is something to draw.
func (m *Mesh) Validate() error {
	if len(m.Vertices)%VertexStride != 0 {
		return fmt.Errorf("mesh %q: %d floats is not a multiple of %d", m.Name, len(m.Vertices), VertexStride)
	}
	if len(m.Vertices) == 0 {
		return fmt.Errorf("mesh %q: %w", m.Name, ErrNoGeometry)
	}
	return nil
}

// LoadOptions tunes mesh loading.
type LoadOptions struct {
	// Progress renders a byte progress bar on stderr while the file is read.
	Progress bool
}

// LoadMesh reads a mesh file, choosing the decoder by extension: .obj for
// Wavefront OBJ, .gltf and .glb for glTF.
func LoadMesh(path string, opts LoadOptions) (*Mesh, error) {
	var (
		mesh *Mesh
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		mesh, err = LoadOBJ(path, opts)
	case ".gltf", ".glb":
		mesh, err = LoadGLTF(path)
	default:
		return nil, fmt.Errorf("load mesh %q: %w: %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}

	slog.Info("mesh loaded",
		"path", path,
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount())
	return mesh, nil
}

func appendVertex(dst []float32, pos [3]float32, uv [2]float32) []float32 {
	return append(dst, pos[0], pos[1], pos[2], uv[0], uv[1])
}
