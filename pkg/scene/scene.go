package scene

import (
	"math"

	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/geometry"
	"github.com/miminashca/Ray-Tracing/pkg/material"
)

// Offset applied to the minimum hit distance so bounce rays starting on a
// surface do not immediately re-intersect it
const shadowEpsilon = 1e-4

// CameraConfig describes the camera for a scene
type CameraConfig struct {
	Center          core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // World up direction
	VFov            float64   // Vertical field of view in degrees
	AspectRatio     float64   // Width / height
	DefocusStrength float64   // Lens disk radius for depth of field
	DivergeStrength float64   // Target jitter radius for anti-aliasing
	FocusDistance   float64   // Distance to the plane in focus
}

// Scene holds the flat primitive arrays consumed by the integrator. Spheres,
// triangles, and mesh groups are read-only during a frame; mesh groups index
// into the shared triangle array.
type Scene struct {
	Spheres    []geometry.Sphere
	Triangles  []geometry.Triangle
	MeshGroups []geometry.MeshGroup
	Sky        Sky
	Camera     CameraConfig
}

// Hit finds the nearest intersection along the ray across all spheres and
// all mesh-group triangles. Iteration order is fixed: spheres by index, then
// mesh groups by index, triangles by index within a group. The strict
// distance comparison means the first primitive encountered wins exact ties.
func (s *Scene) Hit(ray core.Ray) (material.HitRecord, bool) {
	closest := material.HitRecord{T: math.Inf(1)}
	found := false

	for _, sphere := range s.Spheres {
		if hit, ok := sphere.Hit(ray, shadowEpsilon, closest.T); ok && hit.T < closest.T {
			closest = hit
			found = true
		}
	}

	for _, group := range s.MeshGroups {
		if hit, ok := group.Hit(s.Triangles, ray, shadowEpsilon, closest.T); ok && hit.T < closest.T {
			closest = hit
			found = true
		}
	}

	return closest, found
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat *material.Material) {
	s.Spheres = append(s.Spheres, geometry.NewSphere(center, radius, mat))
}

// AddMesh appends triangles as a new mesh group with a fitted bounding box.
// Appending keeps the group's triangle range exclusive to it.
func (s *Scene) AddMesh(triangles []geometry.Triangle, mat *material.Material) {
	first := len(s.Triangles)
	s.Triangles = append(s.Triangles, triangles...)
	s.MeshGroups = append(s.MeshGroups, geometry.NewMeshGroup(s.Triangles, first, len(triangles), mat))
}

// AddQuad appends a rectangle as a two-triangle mesh group. The quad is
// spanned by edge vectors u and v from the corner; its normal follows u x v.
func (s *Scene) AddQuad(corner, u, v core.Vec3, mat *material.Material) {
	p0 := corner
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)
	s.AddMesh([]geometry.Triangle{
		geometry.NewTriangle(p0, p1, p2),
		geometry.NewTriangle(p0, p2, p3),
	}, mat)
}

// PrimitiveCount returns the total number of primitives in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Spheres) + len(s.Triangles)
}
