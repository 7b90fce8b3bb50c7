package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Spot is one fixed spotlight aimed at a scene target.
type Spot struct {
	Position  mgl32.Vec3
	Target    mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// Direction is the normalized aim vector from the light to its target.
func (s Spot) Direction() mgl32.Vec3 {
	return s.Target.Sub(s.Position).Normalize()
}

// SpotRig is the fixed dual-spotlight setup of the landscape scene: two
// mirrored spots raking across the terrain from either side.
type SpotRig struct {
	Spots [2]Spot
}

func NewSpotRig() *SpotRig {
	return &SpotRig{
		Spots: [2]Spot{
			{
				Position:  mgl32.Vec3{0.5, 0.75, 2.2},
				Target:    mgl32.Vec3{-0.25, 0.25, 0.25},
				Color:     mgl32.Vec3{0.85, 0.35, 1.0},
				Intensity: 0.9,
			},
			{
				Position:  mgl32.Vec3{-0.5, 0.75, 2.2},
				Target:    mgl32.Vec3{0.25, 0.25, 0.25},
				Color:     mgl32.Vec3{0.35, 0.75, 1.0},
				Intensity: 0.9,
			},
		},
	}
}

// Apply pushes the rig into a shader's spot uniforms.
func (r *SpotRig) Apply(shader *Shader) {
	for i, s := range r.Spots {
		name := "spotColor0"
		dirName := "spotDir0"
		if i == 1 {
			name = "spotColor1"
			dirName = "spotDir1"
		}
		shader.SetVec3(name, s.Color.Mul(s.Intensity))
		shader.SetVec3(dirName, s.Direction())
	}
}
