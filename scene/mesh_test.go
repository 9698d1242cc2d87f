package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMeshCounts(t *testing.T) {
	m := &Mesh{Vertices: make([]float32, 6*VertexStride)}
	if m.VertexCount() != 6 {
		t.Errorf("VertexCount: expected 6, got %d", m.VertexCount())
	}
	if m.TriangleCount() != 2 {
		t.Errorf("TriangleCount: expected 2, got %d", m.TriangleCount())
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name    string
		floats  int
		wantErr bool
	}{
		{"triangle", 15, false},
		{"empty", 0, true},
		{"ragged", 16, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Name: tt.name, Vertices: make([]float32, tt.floats)}
			err := m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate: wantErr=%v, got %v", tt.wantErr, err)
			}
		})
	}

	if err := (&Mesh{}).Validate(); !errors.Is(err, ErrNoGeometry) {
		t.Errorf("empty mesh: expected ErrNoGeometry, got %v", err)
	}
}

func TestLayoutConstants(t *testing.T) {
	if VertexStrideBytes != 20 {
		t.Errorf("VertexStrideBytes: expected 20, got %d", VertexStrideBytes)
	}
	if TexCoordOffset != 12 {
		t.Errorf("TexCoordOffset: expected 12, got %d", TexCoordOffset)
	}
}

func TestLoadMeshDispatch(t *testing.T) {
	dir := t.TempDir()
	objPath := filepath.Join(dir, "Model.OBJ")
	if err := os.WriteFile(objPath, []byte(triangleOBJ), 0o644); err != nil {
		t.Fatal(err)
	}

	mesh, err := LoadMesh(objPath, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadMesh: %v", err)
	}
	if mesh.VertexCount() != 3 {
		t.Errorf("expected 3 vertices, got %d", mesh.VertexCount())
	}

	_, err = LoadMesh(filepath.Join(dir, "model.fbx"), LoadOptions{})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}

	if _, err := LoadMesh(filepath.Join(dir, "missing.obj"), LoadOptions{}); err == nil {
		t.Error("expected error for missing file")
	}
}
