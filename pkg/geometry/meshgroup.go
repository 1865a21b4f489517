package geometry

import (
	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/material"
)

// MeshGroup is a contiguous run of triangles sharing one material, bounded
// by a single axis-aligned box used to reject the whole group before its
// triangles are tested individually. The [First, First+Count) range must
// belong to this group only.
type MeshGroup struct {
	First    int // Index of the group's first triangle in the scene array
	Count    int // Number of triangles in the group
	Material *material.Material
	Bounds   core.AABB
}

// NewMeshGroup creates a group over triangles[first:first+count] with a
// bounding box fitted to those triangles
func NewMeshGroup(triangles []Triangle, first, count int, mat *material.Material) MeshGroup {
	group := MeshGroup{First: first, Count: count, Material: mat}
	if count > 0 {
		bounds := triangles[first].BoundingBox()
		for i := first + 1; i < first+count; i++ {
			bounds = bounds.Union(triangles[i].BoundingBox())
		}
		group.Bounds = bounds
	}
	return group
}

// Hit finds the closest triangle intersection in this group, or reports a
// miss after a single box test when the ray cannot reach the group at all.
// The returned record carries the group's material.
func (g MeshGroup) Hit(triangles []Triangle, ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	if !g.Bounds.Hit(ray) {
		return material.HitRecord{}, false
	}

	closest := material.HitRecord{T: tMax}
	found := false
	for i := g.First; i < g.First+g.Count; i++ {
		if hit, ok := triangles[i].Hit(ray, tMin, closest.T); ok && hit.T < closest.T {
			closest = hit
			found = true
		}
	}

	if !found {
		return material.HitRecord{}, false
	}
	closest.Material = g.Material
	return closest, true
}
