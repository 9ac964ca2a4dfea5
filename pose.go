package gltransform

import "github.com/go-gl/mathgl/mgl32"

// Pose describes where an object sits in the scene
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// NewPose creates a pose at the origin with no rotation and unit scale
func NewPose() Pose {
	return Pose{
		Position: mgl32.Vec3{0, 0, 0},
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Transform builds the model transform of the pose: points are scaled, then rotated, then translated.
func (p Pose) Transform() Transform {
	return New().
		Translate(p.Position.X(), p.Position.Y(), p.Position.Z()).
		Rotate(p.Rotation).
		Scale(p.Scale.X(), p.Scale.Y(), p.Scale.Z())
}
