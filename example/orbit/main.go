package main

import (
	"encoding/hex"
	"fmt"
	"math"

	"github.com/akmonengine/gltransform"
	"github.com/go-gl/mathgl/mgl32"
)

// SetupScene creates a few crates spread on a ring around the origin
func SetupScene(count int, radius float32) []gltransform.Pose {
	poses := make([]gltransform.Pose, count)
	for i := range poses {
		angle := 2 * math.Pi * float64(i) / float64(count)
		pose := gltransform.NewPose()
		pose.Position = mgl32.Vec3{radius * float32(math.Cos(angle)), 0, radius * float32(math.Sin(angle))}
		pose.Scale = mgl32.Vec3{0.5, 0.5, 0.5}
		poses[i] = pose
	}
	return poses
}

// Step advances every crate along the ring and spins it about its own Y axis
func Step(poses []gltransform.Pose, dt float32) {
	orbit := gltransform.New().RotateY(dt * 0.5)
	spin := mgl32.QuatRotate(dt*2, mgl32.Vec3{0, 1, 0})

	for i := range poses {
		poses[i].Position = orbit.TransformPoint(poses[i].Position)
		poses[i].Rotation = spin.Mul(poses[i].Rotation).Normalize()
	}
}

// Cull returns the indices of the models whose world bounds of box reach into visible
func Cull(models []gltransform.Transform, box, visible gltransform.AABB) []int {
	var kept []int
	for i, model := range models {
		if model.TransformAABB(box).Overlaps(visible) {
			kept = append(kept, i)
		}
	}
	return kept
}

func main() {
	const dt float32 = 1.0 / 60.0
	const frames = 5

	poses := SetupScene(4, 3)
	crate := gltransform.AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}
	view := gltransform.New().Translate(0, -1, -10).RotateX(mgl32.DegToRad(20))
	// world-space region in front of the camera, the only part drawn
	visible := gltransform.AABB{Min: mgl32.Vec3{-5, -5, -5}, Max: mgl32.Vec3{5, 5, 1}}

	for frame := 0; frame < frames; frame++ {
		fmt.Printf("--- frame %d ---\n", frame+1)

		models := gltransform.BuildAll(4, poses)
		kept := Cull(models, crate, visible)
		fmt.Printf("%d of %d crates visible\n", len(kept), len(models))

		for _, i := range kept {
			model := models[i]
			// the model matrix applies first, then the camera
			modelView := view.Then(model)
			bounds := model.TransformAABB(crate)

			fmt.Printf("crate %d at %v\n", i, poses[i].Position)
			fmt.Printf("  world bounds: min=%v max=%v\n", bounds.Min, bounds.Max)
			fmt.Printf("  uniform: %s\n", hex.EncodeToString(modelView.Bytes()))
		}

		Step(poses, dt)
	}
}
