package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF opens a .gltf or .glb file and flattens the triangle primitives of
// every mesh into one Mesh. Node transforms are not applied; the viewer's
// model matrix positions the result.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	vertices, err := flattenGLTF(doc)
	if err != nil {
		return nil, fmt.Errorf("gltf %q: %w", path, err)
	}
	return &Mesh{Name: filepath.Base(path), Vertices: vertices}, nil
}

func flattenGLTF(doc *gltf.Document) ([]float32, error) {
	var out []float32
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				slog.Warn("gltf: skipping non-triangle primitive", "mesh", mi, "primitive", pi, "mode", prim.Mode)
				continue
			}
			var err error
			out, err = appendGLTFPrimitive(out, doc, prim)
			if err != nil {
				return nil, fmt.Errorf("mesh %d prim %d: %w", mi, pi, err)
			}
		}
	}
	if len(out) == 0 {
		return nil, ErrNoGeometry
	}
	return out, nil
}

// appendGLTFPrimitive expands one primitive through its index list (or in
// vertex order when it has none).
func appendGLTFPrimitive(dst []float32, doc *gltf.Document, prim *gltf.Primitive) ([]float32, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return nil, fmt.Errorf("texcoords: %w", err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	for _, idx := range indices {
		if int(idx) >= len(positions) {
			return nil, fmt.Errorf("index %d out of range (%d positions)", idx, len(positions))
		}
		var uv [2]float32
		if int(idx) < len(uvs) {
			// glTF puts the texture origin top-left, OBJ bottom-left.
			uv = [2]float32{uvs[idx][0], 1 - uvs[idx][1]}
		}
		dst = appendVertex(dst, positions[idx], uv)
	}
	return dst, nil
}
