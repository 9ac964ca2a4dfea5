// Package gltransform builds immutable 4x4 affine transforms for a rendering pipeline.
//
// A Transform holds 16 float32 values in row-major order: the element at row r,
// column c lives at index r*4+c. Translation occupies indices 12, 13 and 14, which
// is also the memory image WebGL and OpenGL expect for a mat4 uniform, so the
// array can be uploaded as-is.
//
// Every builder method returns a new Transform. Chained calls compose so that the
// most recent call is applied first to a point (row-vector convention, v' = v * M):
//
//	model := gltransform.New().Translate(x, y, z).RotateY(angle).Scale(2, 2, 2)
//
// scales the model, then rotates it, then moves it to (x, y, z).
package gltransform

import "github.com/go-gl/mathgl/mgl32"

// Transform is an immutable 4x4 matrix stored row-major.
type Transform struct {
	m mgl32.Mat4
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{m: mgl32.Ident4()}
}

// New returns a transform with no operation applied, equal to Identity.
func New() Transform {
	return Identity()
}

// FromArray wraps a row-major array without modifying it.
func FromArray(raw [16]float32) Transform {
	return Transform{m: mgl32.Mat4(raw)}
}

// Translate composes a translation by (tx, ty, tz).
func (t Transform) Translate(tx, ty, tz float32) Transform {
	return t.compose(mgl32.Translate3D(tx, ty, tz))
}

// RotateX composes a rotation of angle radians about the X axis.
func (t Transform) RotateX(angle float32) Transform {
	return t.compose(mgl32.HomogRotate3DX(angle))
}

// RotateY composes a rotation of angle radians about the Y axis.
func (t Transform) RotateY(angle float32) Transform {
	return t.compose(mgl32.HomogRotate3DY(angle))
}

// RotateZ composes a rotation of angle radians about the Z axis.
func (t Transform) RotateZ(angle float32) Transform {
	return t.compose(mgl32.HomogRotate3DZ(angle))
}

// Scale composes a scaling by (sx, sy, sz). A zero factor is accepted and yields a singular matrix.
func (t Transform) Scale(sx, sy, sz float32) Transform {
	return t.compose(mgl32.Scale3D(sx, sy, sz))
}

// Rotate composes the rotation described by q.
// q is expected to be a unit quaternion; it is not normalized here.
func (t Transform) Rotate(q mgl32.Quat) Transform {
	return t.compose(q.Mat4())
}

// RotateAxis composes a rotation of angle radians about axis, which must be normalized.
func (t Transform) RotateAxis(angle float32, axis mgl32.Vec3) Transform {
	return t.compose(mgl32.HomogRotate3D(angle, axis))
}

// Then composes an already built transform onto t, exactly as if other were a single
// elementary operation: New().Translate(1, 0, 0).Then(New().RotateZ(a)) equals
// New().Translate(1, 0, 0).RotateZ(a).
func (t Transform) Then(other Transform) Transform {
	return t.compose(other.m)
}

func (t Transform) compose(elementary mgl32.Mat4) Transform {
	return Transform{m: multiply(t.m, elementary)}
}

// multiply returns the row-major product elementary * current: element (i, j) is the
// dot product of row i of elementary with column j of current.
//
// mathgl reads the same arrays column-major, where each array is the transpose of the
// row-major matrix, so the product is current.Mul4(elementary) on the mathgl side.
// Mul4 is the dense form (64 multiplications, 48 additions) and sums the four terms of
// each element in the same k = 0..3 order.
func multiply(current, elementary mgl32.Mat4) mgl32.Mat4 {
	return current.Mul4(elementary)
}
