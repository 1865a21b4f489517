package material

import (
	"math"
	"testing"

	"github.com/miminashca/Ray-Tracing/pkg/core"
)

func TestMaterial_Scatter_MirrorBounce(t *testing.T) {
	// Specular probability 1 and smoothness 1 must always produce the exact
	// mirror direction with the specular color
	mat := NewGlossy(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.9, 0.8, 0.7), 1.0, 1.0)

	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}
	rayIn := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0).Normalize())

	rng := core.NewRNG(1, 0)
	for i := 0; i < 100; i++ {
		scatter := mat.Scatter(rayIn, hit, rng)

		if !scatter.Specular {
			t.Fatal("Expected a specular bounce")
		}
		want := rayIn.Direction.Reflect(hit.Normal)
		if scatter.Scattered.Direction.Subtract(want).Length() > 1e-12 {
			t.Fatalf("Expected mirror direction %v, got %v", want, scatter.Scattered.Direction)
		}
		if scatter.Attenuation != mat.SpecularColor {
			t.Fatalf("Expected specular color attenuation, got %v", scatter.Attenuation)
		}
	}
}

func TestMaterial_Scatter_DiffuseBounce(t *testing.T) {
	// Specular probability 0 ignores smoothness entirely
	mat := NewGlossy(core.NewVec3(0.2, 0.4, 0.6), core.NewVec3(1, 1, 1), 1.0, 0.0)

	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 1, 0),
	}
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	rng := core.NewRNG(2, 0)
	for i := 0; i < 1000; i++ {
		scatter := mat.Scatter(rayIn, hit, rng)

		if scatter.Specular {
			t.Fatal("Expected a diffuse bounce")
		}
		if scatter.Attenuation != mat.Color {
			t.Fatalf("Expected base color attenuation, got %v", scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Expected bounce origin at hit point, got %v", scatter.Scattered.Origin)
		}
		// normal + unit sphere direction always lands in the normal's hemisphere
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Fatalf("Diffuse direction %v below surface", scatter.Scattered.Direction)
		}
		if math.Abs(scatter.Scattered.Direction.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit direction, got length %g", scatter.Scattered.Direction.Length())
		}
	}
}

func TestMaterial_Emitted(t *testing.T) {
	mat := NewEmissive(core.NewVec3(1, 0.5, 0.25), 4)

	if got := mat.Emitted(); got != core.NewVec3(4, 2, 1) {
		t.Errorf("Expected (4,2,1), got %v", got)
	}

	if got := NewDiffuse(core.NewVec3(1, 1, 1)).Emitted(); got != (core.Vec3{}) {
		t.Errorf("Expected no emission, got %v", got)
	}
}
