package geometry

import (
	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/material"
)

// Triangle represents a triangle with per-vertex normals for smooth shading
type Triangle struct {
	V0, V1, V2 core.Vec3 // Vertex positions
	N0, N1, N2 core.Vec3 // Vertex normals, interpolated at the hit point
}

// NewTriangle creates a triangle with one flat normal shared by all vertices
func NewTriangle(v0, v1, v2 core.Vec3) Triangle {
	normal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return Triangle{V0: v0, V1: v1, V2: v2, N0: normal, N1: normal, N2: normal}
}

// NewSmoothTriangle creates a triangle with a separate normal per vertex
func NewSmoothTriangle(v0, v1, v2, n0, n1, n2 core.Vec3) Triangle {
	return Triangle{V0: v0, V1: v1, V2: v2, N0: n0, N1: n1, N2: n2}
}

// Hit tests if a ray intersects the triangle using the Möller-Trumbore
// algorithm. Back faces and near-parallel rays are culled against the signed
// determinant; the shading normal is interpolated from the vertex normals
// with the barycentric weights of the hit.
func (t Triangle) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	normal := edge1.Cross(edge2)

	// Signed denominator; below epsilon means back face or near-parallel
	determinant := -ray.Direction.Dot(normal)
	if determinant < epsilon {
		return material.HitRecord{}, false
	}
	invDet := 1.0 / determinant

	ao := ray.Origin.Subtract(t.V0)
	dao := ao.Cross(ray.Direction)

	dist := ao.Dot(normal) * invDet
	u := edge2.Dot(dao) * invDet
	v := -edge1.Dot(dao) * invDet
	w := 1.0 - u - v

	if dist < tMin || dist > tMax || u < 0 || v < 0 || w < 0 {
		return material.HitRecord{}, false
	}

	shadingNormal := t.N0.Multiply(w).
		Add(t.N1.Multiply(u)).
		Add(t.N2.Multiply(v)).
		Normalize()

	return material.HitRecord{
		T:      dist,
		Point:  ray.At(dist),
		Normal: shadingNormal,
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}
