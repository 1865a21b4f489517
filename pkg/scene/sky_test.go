package scene

import (
	"math"
	"testing"

	"github.com/miminashca/Ray-Tracing/pkg/core"
)

func testSky() Sky {
	return Sky{
		Enabled:      true,
		GroundColor:  core.NewVec3(0.2, 0.2, 0.2),
		HorizonColor: core.NewVec3(1, 1, 1),
		ZenithColor:  core.NewVec3(0.1, 0.4, 0.8),
		SunDirection: core.NewVec3(1, 0, 0), // perpendicular to straight up
		SunFocus:     500,
		SunIntensity: 100,
	}
}

func TestSky_Radiance_Disabled(t *testing.T) {
	sky := testSky()
	sky.Enabled = false

	if got := sky.Radiance(core.NewVec3(0, 1, 0)); got != (core.Vec3{}) {
		t.Errorf("Expected black, got %v", got)
	}
}

func TestSky_Radiance_Zenith(t *testing.T) {
	// Straight up: both blend factors saturate at 1, and the sun direction is
	// perpendicular so its contribution is exactly zero
	sky := testSky()

	got := sky.Radiance(core.NewVec3(0, 1, 0))
	if got.Subtract(sky.ZenithColor).Length() > 1e-15 {
		t.Errorf("Expected zenith color %v, got %v", sky.ZenithColor, got)
	}
}

func TestSky_Radiance_Ground(t *testing.T) {
	// Well below the horizon transition the ground color comes through pure
	sky := testSky()

	got := sky.Radiance(core.NewVec3(0, -1, 0))
	if got != sky.GroundColor {
		t.Errorf("Expected ground color %v, got %v", sky.GroundColor, got)
	}
}

func TestSky_Radiance_Horizon(t *testing.T) {
	// At y=0 the sky half is pure horizon color, and the ground blend has just
	// reached 1, so the sun gate is open
	sky := testSky()

	got := sky.Radiance(core.NewVec3(0, 0, 1))
	if got.Subtract(sky.HorizonColor).Length() > 1e-15 {
		t.Errorf("Expected horizon color %v, got %v", sky.HorizonColor, got)
	}
}

func TestSky_Radiance_SunDisk(t *testing.T) {
	// Looking straight into the sun adds the full intensity on top of the
	// gradient
	sky := testSky()
	toward := sky.SunDirection.Negate() // (-1, 0, 0), on the horizon

	got := sky.Radiance(toward)
	want := sky.HorizonColor.Add(core.NewVec3(100, 100, 100))
	if got.Subtract(want).Length() > 1e-9 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSky_Radiance_SunBelowHorizonGate(t *testing.T) {
	// A direction dipping below the horizon blends toward ground and must not
	// receive any sun even when it points nearly at the sun
	sky := testSky()
	sky.SunDirection = core.NewVec3(0, 0.001, -1).Normalize()

	dir := core.NewVec3(0, -0.005, 1).Normalize()
	got := sky.Radiance(dir)

	// All channels stay inside the gradient range; the sun would exceed it
	for _, c := range []float64{got.X, got.Y, got.Z} {
		if c > 1 {
			t.Fatalf("Sun leaked through the horizon gate: %v", got)
		}
	}
}

func TestSky_Radiance_SkyBlendExponent(t *testing.T) {
	// Partway up the gradient the sky blend follows smoothstep^0.35
	sky := testSky()
	y := 0.2

	skyT := math.Pow(core.Smoothstep(0, 0.4, y), 0.35)
	want := sky.HorizonColor.Lerp(sky.ZenithColor, skyT)

	// the sun direction is perpendicular to the y axis, so only the gradient
	// contributes
	got := sky.Radiance(core.NewVec3(0, y, math.Sqrt(1-y*y)))
	if got.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
