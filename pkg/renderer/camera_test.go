package renderer

import (
	"math"
	"testing"

	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/scene"
)

func testCameraConfig() scene.CameraConfig {
	return scene.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 16.0 / 9.0,
	}
}

func TestCamera_CenterRayTowardLookAt(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	rng := core.NewRNG(0, 0)

	ray := camera.GetRay(0.5, 0.5, rng)

	if ray.Origin != (core.Vec3{}) {
		t.Errorf("Expected ray origin at camera center, got %v", ray.Origin)
	}
	want := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected center ray toward look-at %v, got %v", want, ray.Direction)
	}
}

func TestCamera_RayDirectionsAreUnit(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	rng := core.NewRNG(7, 0)

	for _, st := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0.25, 0.75}} {
		ray := camera.GetRay(st[0], st[1], rng)
		if math.Abs(ray.Direction.Length()-1.0) > 1e-9 {
			t.Errorf("GetRay(%g, %g): expected unit direction, got length %g",
				st[0], st[1], ray.Direction.Length())
		}
	}
}

func TestCamera_DeterministicWithoutJitter(t *testing.T) {
	// With zero defocus and diverge strength the ray depends only on (s, t),
	// not on the random stream
	camera := NewCamera(testCameraConfig())

	a := camera.GetRay(0.3, 0.7, core.NewRNG(1, 0))
	b := camera.GetRay(0.3, 0.7, core.NewRNG(999, 42))

	if a.Origin != b.Origin || a.Direction != b.Direction {
		t.Errorf("Expected identical rays, got %v and %v", a, b)
	}
}

func TestCamera_DefocusOffsetsOrigin(t *testing.T) {
	config := testCameraConfig()
	config.DefocusStrength = 0.5
	config.FocusDistance = 10
	camera := NewCamera(config)
	rng := core.NewRNG(3, 0)

	sawOffset := false
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, rng)
		offset := ray.Origin.Subtract(config.Center).Length()
		if offset > config.DefocusStrength+1e-12 {
			t.Fatalf("Ray origin %v outside the lens disk", ray.Origin)
		}
		if offset > 1e-9 {
			sawOffset = true
		}
	}
	if !sawOffset {
		t.Error("Expected defocus to move ray origins off the camera center")
	}
}

func TestCamera_DivergeJittersDirection(t *testing.T) {
	config := testCameraConfig()
	config.DivergeStrength = 0.01
	camera := NewCamera(config)

	a := camera.GetRay(0.5, 0.5, core.NewRNG(1, 0))
	b := camera.GetRay(0.5, 0.5, core.NewRNG(2, 0))

	if a.Direction == b.Direction {
		t.Error("Expected diverge jitter to vary ray directions across streams")
	}
}

func TestCamera_DefaultFocusDistance(t *testing.T) {
	// A zero focus distance focuses on the look-at point
	explicit := testCameraConfig()
	explicit.Center = core.NewVec3(1, 2, 3)
	explicit.LookAt = core.NewVec3(1, 2, -1)
	explicit.FocusDistance = 4

	defaulted := explicit
	defaulted.FocusDistance = 0

	rayA := NewCamera(explicit).GetRay(0.25, 0.75, core.NewRNG(0, 0))
	rayB := NewCamera(defaulted).GetRay(0.25, 0.75, core.NewRNG(0, 0))

	if rayA.Origin != rayB.Origin || rayA.Direction != rayB.Direction {
		t.Errorf("Expected identical rays, got %v and %v", rayA, rayB)
	}
}
