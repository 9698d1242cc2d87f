package scene

import "github.com/go-gl/mathgl/mgl32"

// ModelTransform places the mesh in the world: scale first, then rotation
// about X, then translation.
type ModelTransform struct {
	Translate  mgl32.Vec3
	RotateXDeg float32
	Scale      float32
}

func DefaultModelTransform() ModelTransform {
	return ModelTransform{
		Translate:  mgl32.Vec3{0, -1, 0},
		RotateXDeg: 0,
		Scale:      0.01,
	}
}

func (t ModelTransform) Matrix() mgl32.Mat4 {
	translation := mgl32.Translate3D(t.Translate.X(), t.Translate.Y(), t.Translate.Z())
	rotation := mgl32.HomogRotate3DX(mgl32.DegToRad(t.RotateXDeg))
	scale := mgl32.Scale3D(t.Scale, t.Scale, t.Scale)
	return translation.Mul4(rotation).Mul4(scale)
}

// Projection is a fixed perspective frustum.
type Projection struct {
	FovYDeg float32
	Aspect  float32
	Near    float32
	Far     float32
}

func DefaultProjection() Projection {
	return Projection{
		FovYDeg: 45,
		Aspect:  800.0 / 600.0,
		Near:    0.1,
		Far:     100,
	}
}

func (p Projection) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FovYDeg), p.Aspect, p.Near, p.Far)
}

// MVP composes projection * view * model.
func MVP(projection, view, model mgl32.Mat4) mgl32.Mat4 {
	return projection.Mul4(view).Mul4(model)
}
