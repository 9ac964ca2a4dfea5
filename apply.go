package gltransform

import "github.com/go-gl/mathgl/mgl32"

// TransformPoint maps p through the transform as the row vector [x y z 1] and projects
// the result back onto w=1. Transforms built only from this package keep w at 1.
func (t Transform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	// mathgl's column-major Mul4x1 on our array is exactly the row-vector product.
	return mgl32.TransformCoordinate(p, t.m)
}

// TransformDirection maps d as the row vector [x y z 0]; translation does not apply.
func (t Transform) TransformDirection(d mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformNormal(d, t.m)
}
