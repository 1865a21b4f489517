package scene

import (
	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/geometry"
	"github.com/miminashca/Ray-Tracing/pkg/material"
)

// NewShowcaseScene creates the default outdoor scene: a row of spheres with
// varying smoothness on a large ground sphere, a mirrored pyramid mesh, and
// a sun-lit sky.
func NewShowcaseScene() *Scene {
	s := &Scene{
		Sky: DefaultSky(),
		Camera: CameraConfig{
			Center:          core.NewVec3(0, 1, 4),
			LookAt:          core.NewVec3(0, 0.6, -1),
			Up:              core.NewVec3(0, 1, 0),
			VFov:            40,
			AspectRatio:     16.0 / 9.0,
			DefocusStrength: 0.02,
			DivergeStrength: 0.002,
			FocusDistance:   5,
		},
	}

	ground := material.NewDiffuse(core.NewVec3(0.45, 0.5, 0.4))
	matte := material.NewDiffuse(core.NewVec3(0.8, 0.25, 0.2))
	glossy := material.NewGlossy(core.NewVec3(0.2, 0.3, 0.8), core.NewVec3(1, 1, 1), 0.7, 0.15)
	mirror := material.NewGlossy(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.95, 0.95, 0.95), 1.0, 1.0)
	lamp := material.NewEmissive(core.NewVec3(1, 0.85, 0.6), 10)

	// Ground is a huge sphere so bounce rays still see curvature-free terrain
	s.AddSphere(core.NewVec3(0, -100, -1), 100, ground)

	s.AddSphere(core.NewVec3(-1.3, 0.5, -1), 0.5, matte)
	s.AddSphere(core.NewVec3(0, 0.5, -1), 0.5, glossy)
	s.AddSphere(core.NewVec3(1.3, 0.5, -1), 0.5, mirror)
	s.AddSphere(core.NewVec3(-0.5, 0.2, 0.2), 0.2, lamp)

	s.AddMesh(pyramid(core.NewVec3(0.7, 0, 0.3), 0.6, 0.7),
		material.NewGlossy(core.NewVec3(0.85, 0.7, 0.3), core.NewVec3(0.9, 0.8, 0.5), 0.9, 0.6))

	return s
}

// pyramid builds a four-sided pyramid with a square base centered at base,
// with the given base edge length and height
func pyramid(base core.Vec3, edge, height float64) []geometry.Triangle {
	h := edge / 2
	apex := base.Add(core.NewVec3(0, height, 0))
	c0 := base.Add(core.NewVec3(-h, 0, -h))
	c1 := base.Add(core.NewVec3(h, 0, -h))
	c2 := base.Add(core.NewVec3(h, 0, h))
	c3 := base.Add(core.NewVec3(-h, 0, h))

	return []geometry.Triangle{
		geometry.NewTriangle(c0, apex, c1), // back face
		geometry.NewTriangle(c1, apex, c2), // right face
		geometry.NewTriangle(c2, apex, c3), // front face
		geometry.NewTriangle(c3, apex, c0), // left face
		geometry.NewTriangle(c0, c1, c2),   // base
		geometry.NewTriangle(c0, c2, c3),
	}
}
