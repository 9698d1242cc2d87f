package scene

import "github.com/go-gl/mathgl/mgl32"

// Plane is the half-space n·p + d >= 0; the normal points inward.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// DistanceTo returns the signed distance from pt to the plane, positive inside.
func (p Plane) DistanceTo(pt mgl32.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a view frustum:
// left, right, bottom, top, near, far.
type Frustum struct {
	Planes [6]Plane
}

// FrustumFromMatrix extracts normalized clip planes from a view-projection
// (or full MVP) matrix using the Gribb/Hartmann row combinations.
func FrustumFromMatrix(vp mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := vp.Row(0), vp.Row(1), vp.Row(2), vp.Row(3)

	var f Frustum
	f.Planes[0] = planeFrom(r3.Add(r0))
	f.Planes[1] = planeFrom(r3.Sub(r0))
	f.Planes[2] = planeFrom(r3.Add(r1))
	f.Planes[3] = planeFrom(r3.Sub(r1))
	f.Planes[4] = planeFrom(r3.Add(r2))
	f.Planes[5] = planeFrom(r3.Sub(r2))
	return f
}

func planeFrom(v mgl32.Vec4) Plane {
	n := v.Vec3()
	l := n.Len()
	if l == 0 {
		return Plane{Normal: n, D: v.W()}
	}
	return Plane{Normal: n.Mul(1 / l), D: v.W() / l}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max mgl32.Vec3
}

func (b AABB) Center() mgl32.Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

func (b AABB) Size() mgl32.Vec3 { return b.Max.Sub(b.Min) }

func (b AABB) extend(p mgl32.Vec3) AABB {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
	return b
}

// Transform returns the box enclosing all eight corners after m.
func (b AABB) Transform(m mgl32.Mat4) AABB {
	mn, mx := b.Min, b.Max
	corners := [8]mgl32.Vec3{
		{mn[0], mn[1], mn[2]},
		{mx[0], mn[1], mn[2]},
		{mn[0], mx[1], mn[2]},
		{mx[0], mx[1], mn[2]},
		{mn[0], mn[1], mx[2]},
		{mx[0], mn[1], mx[2]},
		{mn[0], mx[1], mx[2]},
		{mx[0], mx[1], mx[2]},
	}
	first := mgl32.TransformCoordinate(corners[0], m)
	out := AABB{Min: first, Max: first}
	for _, c := range corners[1:] {
		out = out.extend(mgl32.TransformCoordinate(c, m))
	}
	return out
}

// IntersectsFrustum is false only when the box lies entirely outside one of
// the planes.
func (b AABB) IntersectsFrustum(f *Frustum) bool {
	for _, p := range f.Planes {
		// corner furthest along the plane normal
		var v mgl32.Vec3
		for i := 0; i < 3; i++ {
			if p.Normal[i] < 0 {
				v[i] = b.Min[i]
			} else {
				v[i] = b.Max[i]
			}
		}
		if p.DistanceTo(v) < 0 {
			return false
		}
	}
	return true
}

// Bounds returns the model-space box of all vertex positions. An empty mesh
// yields the zero box.
func (m *Mesh) Bounds() AABB {
	if m.VertexCount() == 0 {
		return AABB{}
	}
	v := m.Vertices
	first := mgl32.Vec3{v[0], v[1], v[2]}
	out := AABB{Min: first, Max: first}
	for i := VertexStride; i+PositionComponents <= len(v); i += VertexStride {
		out = out.extend(mgl32.Vec3{v[i], v[i+1], v[i+2]})
	}
	return out
}
