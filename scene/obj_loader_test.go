package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const triangleOBJ = `o tri
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func TestDecodeOBJTriangleWithoutTexcoords(t *testing.T) {
	mesh, err := DecodeOBJ(strings.NewReader(triangleOBJ))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}

	if len(mesh.Vertices) != 15 {
		t.Fatalf("expected 15 floats, got %d", len(mesh.Vertices))
	}
	for v := 0; v < 3; v++ {
		u := mesh.Vertices[v*VertexStride+3]
		w := mesh.Vertices[v*VertexStride+4]
		if u != 0 || w != 0 {
			t.Errorf("vertex %d: expected uv (0, 0), got (%v, %v)", v, u, w)
		}
	}

	want := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	for v := 0; v < 3; v++ {
		for c := 0; c < 3; c++ {
			got := mesh.Vertices[v*VertexStride+c]
			if got != want[v*3+c] {
				t.Errorf("vertex %d component %d: expected %v, got %v", v, c, want[v*3+c], got)
			}
		}
	}
}

func TestDecodeOBJTexcoords(t *testing.T) {
	src := `o tri
v 0 0 0
v 1 0 0
v 0 1 0
vt 0.25 0.5
vt 0.75 0.5
vt 0.5 1
f 1/1 2/2 3/3
`
	mesh, err := DecodeOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}

	want := []float32{
		0, 0, 0, 0.25, 0.5,
		1, 0, 0, 0.75, 0.5,
		0, 1, 0, 0.5, 1,
	}
	if len(mesh.Vertices) != len(want) {
		t.Fatalf("expected %d floats, got %d", len(want), len(mesh.Vertices))
	}
	for i := range want {
		if mesh.Vertices[i] != want[i] {
			t.Errorf("float %d: expected %v, got %v", i, want[i], mesh.Vertices[i])
		}
	}
}

func TestDecodeOBJCountsFaceVertexOccurrences(t *testing.T) {
	// Four unique positions, two triangles sharing an edge.
	src := `o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`
	mesh, err := DecodeOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	if len(mesh.Vertices)%VertexStride != 0 {
		t.Fatalf("length %d is not a multiple of %d", len(mesh.Vertices), VertexStride)
	}
	if mesh.VertexCount() != 6 {
		t.Errorf("expected 6 vertices, got %d", mesh.VertexCount())
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", mesh.TriangleCount())
	}
}

func TestDecodeOBJFanTriangulatesPolygons(t *testing.T) {
	src := `o pentagon
v 0 0 0
v 1 0 0
v 2 1 0
v 1 2 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0.5 1
vt 0 1
f 1/1 2/2 3/3 4/4 5/5
`
	mesh, err := DecodeOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	if mesh.VertexCount() != 9 {
		t.Fatalf("expected 9 vertices (3 triangles), got %d", mesh.VertexCount())
	}

	// Every triangle of the fan starts at the first polygon corner.
	for tri := 0; tri < 3; tri++ {
		base := tri * 3 * VertexStride
		for c := 0; c < VertexStride; c++ {
			if mesh.Vertices[base+c] != 0 {
				t.Errorf("triangle %d: expected first corner at origin, got %v", tri, mesh.Vertices[base:base+VertexStride])
				break
			}
		}
	}
}

func TestDecodeOBJOutOfRangeTexcoordFallsBackToZero(t *testing.T) {
	src := `o tri
v 0 0 0
v 1 0 0
v 0 1 0
vt 0.5 0.5
f 1/1 2/7 3/9
`
	mesh, err := DecodeOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	uv := func(v int) [2]float32 {
		return [2]float32{mesh.Vertices[v*VertexStride+3], mesh.Vertices[v*VertexStride+4]}
	}
	if got := uv(0); got != [2]float32{0.5, 0.5} {
		t.Errorf("vertex 0: expected (0.5, 0.5), got %v", got)
	}
	for _, v := range []int{1, 2} {
		if got := uv(v); got != [2]float32{0, 0} {
			t.Errorf("vertex %d: expected (0, 0), got %v", v, got)
		}
	}
}

func TestDecodeOBJMultipleObjects(t *testing.T) {
	src := triangleOBJ + `o second
v 0 0 1
v 1 0 1
v 0 1 1
f 4 5 6
`
	mesh, err := DecodeOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	if mesh.VertexCount() != 6 {
		t.Errorf("expected 6 vertices, got %d", mesh.VertexCount())
	}
	if z := mesh.Vertices[3*VertexStride+2]; z != 1 {
		t.Errorf("second object: expected z=1, got %v", z)
	}
}

func TestDecodeOBJMissingPosition(t *testing.T) {
	src := `o broken
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 9
`
	if _, err := DecodeOBJ(strings.NewReader(src)); err == nil {
		t.Error("expected error for face referencing a missing vertex")
	}
}

func TestDecodeOBJNoFaces(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\n"
	if _, err := DecodeOBJ(strings.NewReader(src)); err == nil {
		t.Error("expected error for file without faces")
	}
}

func TestLoadOBJFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	if err := os.WriteFile(path, []byte(triangleOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, progress := range []bool{false, true} {
		mesh, err := LoadOBJ(path, LoadOptions{Progress: progress})
		if err != nil {
			t.Fatalf("LoadOBJ(progress=%v): %v", progress, err)
		}
		if mesh.Name != "tri.obj" {
			t.Errorf("Name: expected tri.obj, got %q", mesh.Name)
		}
		if mesh.VertexCount() != 3 {
			t.Errorf("expected 3 vertices, got %d", mesh.VertexCount())
		}
	}
}

func TestLoadOBJMissingFile(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj"), LoadOptions{}); err == nil {
		t.Error("expected error for missing file")
	}
}
