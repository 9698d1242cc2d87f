package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMeshBounds(t *testing.T) {
	m := &Mesh{Vertices: []float32{
		-1, 2, 0, 0, 0,
		3, -4, 5, 1, 0,
		0, 0, -6, 0, 1,
	}}
	b := m.Bounds()
	if b.Min != (mgl32.Vec3{-1, -4, -6}) {
		t.Errorf("Min: expected (-1,-4,-6), got %v", b.Min)
	}
	if b.Max != (mgl32.Vec3{3, 2, 5}) {
		t.Errorf("Max: expected (3,2,5), got %v", b.Max)
	}
	if b.Size() != (mgl32.Vec3{4, 6, 11}) {
		t.Errorf("Size: expected (4,6,11), got %v", b.Size())
	}
	if b.Center() != (mgl32.Vec3{1, -1, -0.5}) {
		t.Errorf("Center: expected (1,-1,-0.5), got %v", b.Center())
	}
}

func TestMeshBoundsEmpty(t *testing.T) {
	if b := (&Mesh{}).Bounds(); b != (AABB{}) {
		t.Errorf("expected zero box, got %+v", b)
	}
}

func TestAABBTransform(t *testing.T) {
	b := AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	got := b.Transform(DefaultModelTransform().Matrix())

	want := AABB{Min: mgl32.Vec3{-0.01, -1.01, -0.01}, Max: mgl32.Vec3{0.01, -0.99, 0.01}}
	if !got.Min.ApproxEqualThreshold(want.Min, 1e-6) || !got.Max.ApproxEqualThreshold(want.Max, 1e-6) {
		t.Errorf("Transform: expected %+v, got %+v", want, got)
	}
}

func TestAABBTransformRotation(t *testing.T) {
	b := AABB{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{1, 2, 0}}
	got := b.Transform(mgl32.HomogRotate3DX(mgl32.DegToRad(90)))

	// +Y maps to +Z under a 90 degree turn about X
	if !approx(got.Max.Z(), 2, 1e-5) || !approx(got.Min.Y(), 0, 1e-5) || !approx(got.Max.Y(), 0, 1e-5) {
		t.Errorf("Transform: unexpected %+v", got)
	}
}

func TestFrustumCulling(t *testing.T) {
	cam := NewOrbitCamera(DefaultCameraSettings())
	vp := DefaultProjection().Matrix().Mul4(cam.ViewMatrix())
	f := FrustumFromMatrix(vp)

	tests := []struct {
		name string
		box  AABB
		want bool
	}{
		{"at target", AABB{Min: mgl32.Vec3{-0.1, -1.1, -0.1}, Max: mgl32.Vec3{0.1, -0.9, 0.1}}, true},
		{"behind eye", AABB{Min: mgl32.Vec3{-0.1, -1.1, 9}, Max: mgl32.Vec3{0.1, -0.9, 10}}, false},
		{"far side", AABB{Min: mgl32.Vec3{-1, -2, -200}, Max: mgl32.Vec3{1, 0, -150}}, false},
		{"far left", AABB{Min: mgl32.Vec3{-60, -1, 0}, Max: mgl32.Vec3{-50, 0, 1}}, false},
		{"straddles near plane", AABB{Min: mgl32.Vec3{-1, -2, 2}, Max: mgl32.Vec3{1, 0, 6}}, true},
	}
	for _, tt := range tests {
		if got := tt.box.IntersectsFrustum(&f); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestPlaneNormalized(t *testing.T) {
	f := FrustumFromMatrix(DefaultProjection().Matrix())
	for i, p := range f.Planes {
		if !approx(p.Normal.Len(), 1, 1e-5) {
			t.Errorf("plane %d: expected unit normal, got length %v", i, p.Normal.Len())
		}
	}
}
