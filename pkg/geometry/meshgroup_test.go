package geometry

import (
	"math"
	"testing"

	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/material"
)

func quadTriangles(corner, u, v core.Vec3) []Triangle {
	p0 := corner
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)
	return []Triangle{
		NewTriangle(p0, p1, p2),
		NewTriangle(p0, p2, p3),
	}
}

func TestMeshGroup_Hit_AttachesMaterial(t *testing.T) {
	mat := material.NewDiffuse(core.NewVec3(0, 1, 0))
	triangles := quadTriangles(core.NewVec3(-1, -1, -3), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0))
	group := NewMeshGroup(triangles, 0, len(triangles), mat)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := group.Hit(triangles, ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(hit.T-3.0) > 1e-12 {
		t.Errorf("Expected t=3, got t=%g", hit.T)
	}
	if hit.Material != mat {
		t.Error("Expected the group's material on the hit record")
	}
}

func TestMeshGroup_Hit_BoxRejection(t *testing.T) {
	triangles := quadTriangles(core.NewVec3(-1, -1, -3), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0))
	group := NewMeshGroup(triangles, 0, len(triangles), nil)

	// Ray that cannot reach the group's bounding box
	ray := core.NewRay(core.NewVec3(10, 10, 0), core.NewVec3(0, 0, -1))
	if _, ok := group.Hit(triangles, ray, 0, math.Inf(1)); ok {
		t.Error("Expected miss for ray outside the group's bounds")
	}
}

func TestMeshGroup_Hit_RespectsTriangleRange(t *testing.T) {
	// Two quads in one array; each group must only test its own range
	near := quadTriangles(core.NewVec3(-1, -1, -3), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0))
	far := quadTriangles(core.NewVec3(-1, -1, -6), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0))
	all := append(append([]Triangle{}, near...), far...)

	nearMat := material.NewDiffuse(core.NewVec3(1, 0, 0))
	farMat := material.NewDiffuse(core.NewVec3(0, 0, 1))
	nearGroup := NewMeshGroup(all, 0, 2, nearMat)
	farGroup := NewMeshGroup(all, 2, 2, farMat)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, ok := farGroup.Hit(all, ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected far group hit")
	}
	if math.Abs(hit.T-6.0) > 1e-12 || hit.Material != farMat {
		t.Errorf("Far group returned t=%g, material %v", hit.T, hit.Material)
	}

	hit, ok = nearGroup.Hit(all, ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected near group hit")
	}
	if math.Abs(hit.T-3.0) > 1e-12 || hit.Material != nearMat {
		t.Errorf("Near group returned t=%g, material %v", hit.T, hit.Material)
	}
}

func TestMeshGroup_BoundsEncloseTriangles(t *testing.T) {
	triangles := quadTriangles(core.NewVec3(-2, 0, -5), core.NewVec3(4, 0, 0), core.NewVec3(0, 3, 0))
	group := NewMeshGroup(triangles, 0, len(triangles), nil)

	if group.Bounds.Min != core.NewVec3(-2, 0, -5) {
		t.Errorf("Expected bounds min (-2,0,-5), got %v", group.Bounds.Min)
	}
	if group.Bounds.Max != core.NewVec3(2, 3, -5) {
		t.Errorf("Expected bounds max (2,3,-5), got %v", group.Bounds.Max)
	}
}
