package scene

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/g3n/engine/loader/obj"
	"github.com/schollz/progressbar/v3"
)

// LoadOBJ decodes a Wavefront .obj file into a flat Mesh. Material libraries
// are ignored; the viewer samples a single texture.
func LoadOBJ(path string, opts LoadOptions) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if opts.Progress {
		bar := newProgressBar(f, "loading "+filepath.Base(path))
		defer bar.Finish()
		r = io.TeeReader(f, bar)
	}

	mesh, err := DecodeOBJ(r)
	if err != nil {
		return nil, fmt.Errorf("obj %q: %w", path, err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// DecodeOBJ parses OBJ text and flattens every face of every object.
func DecodeOBJ(r io.Reader) (*Mesh, error) {
	dec, err := obj.DecodeReader(r, strings.NewReader(""))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for _, w := range dec.Warnings {
		slog.Warn("obj decoder", "warning", w)
	}

	vertices, err := flattenOBJ(dec)
	if err != nil {
		return nil, err
	}
	return &Mesh{Vertices: vertices}, nil
}

// flattenOBJ expands the indexed faces into VertexStride floats per corner.
// Polygons are fan-triangulated (0,i,i+1). Corners without a usable texture
// coordinate get (0,0); a corner referencing a missing position is an error.
func flattenOBJ(dec *obj.Decoder) ([]float32, error) {
	positions := []float32(dec.Vertices)
	uvs := []float32(dec.Uvs)

	corner := func(dst []float32, face *obj.Face, i int) ([]float32, error) {
		vi := face.Vertices[i]
		if vi < 0 || 3*vi+2 >= len(positions) {
			return nil, fmt.Errorf("face references vertex %d of %d", vi+1, len(positions)/3)
		}
		pos := [3]float32{positions[3*vi], positions[3*vi+1], positions[3*vi+2]}

		var uv [2]float32
		if i < len(face.Uvs) {
			if ti := face.Uvs[i]; ti >= 0 && 2*ti+1 < len(uvs) {
				uv = [2]float32{uvs[2*ti], uvs[2*ti+1]}
			}
		}
		return appendVertex(dst, pos, uv), nil
	}

	var out []float32
	for oi := range dec.Objects {
		faces := dec.Objects[oi].Faces
		for fi := range faces {
			face := &faces[fi]
			for i := 1; i+1 < len(face.Vertices); i++ {
				var err error
				for _, c := range [3]int{0, i, i + 1} {
					if out, err = corner(out, face, c); err != nil {
						return nil, fmt.Errorf("object %q: %w", dec.Objects[oi].Name, err)
					}
				}
			}
		}
	}
	if len(out) == 0 {
		return nil, ErrNoGeometry
	}
	return out, nil
}

func newProgressBar(f *os.File, description string) *progressbar.ProgressBar {
	size := int64(-1)
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}
	return progressbar.NewOptions64(size,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
}
