package scene

import (
	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/material"
)

// NewCornellScene creates a classic Cornell box: five triangle-mesh walls,
// a ceiling light, and two spheres. The environment light is disabled so the
// only illumination is the emissive panel.
func NewCornellScene() *Scene {
	s := &Scene{
		Sky: Sky{Enabled: false},
		Camera: CameraConfig{
			Center:          core.NewVec3(278, 278, -800),
			LookAt:          core.NewVec3(278, 278, 0),
			Up:              core.NewVec3(0, 1, 0),
			VFov:            40,
			AspectRatio:     1.0,
			DivergeStrength: 1.0,
			FocusDistance:   800,
		},
	}

	white := material.NewDiffuse(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewDiffuse(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewDiffuse(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec3(1, 0.9, 0.7), 15)
	chrome := material.NewGlossy(core.NewVec3(0.8, 0.8, 0.8), core.NewVec3(0.9, 0.9, 0.9), 1.0, 0.9)

	const boxSize = 555.0

	// Wall windings keep the inward face toward the camera, since triangle
	// intersection culls back faces
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), white)                    // floor
	s.AddQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)              // ceiling
	s.AddQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), white)              // back wall
	s.AddQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red)                      // left wall
	s.AddQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), green)              // right wall

	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	s.AddQuad(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		light,
	)

	s.AddSphere(core.NewVec3(185, 90, 150), 90, chrome)
	s.AddSphere(core.NewVec3(370, 90, 350), 90, white)

	return s
}
