package scene

import (
	"math"

	"github.com/miminashca/Ray-Tracing/pkg/core"
)

// Sky is the analytic environment light evaluated for rays that escape the
// scene: a ground-to-horizon-to-zenith gradient plus a sun disk.
type Sky struct {
	Enabled      bool
	GroundColor  core.Vec3
	HorizonColor core.Vec3
	ZenithColor  core.Vec3
	SunDirection core.Vec3 // Unit vector pointing from the sun toward the scene
	SunFocus     float64   // Exponent controlling the sun disk size, >= 0
	SunIntensity float64   // Sun brightness multiplier, >= 0
}

// DefaultSky returns a daytime sky with a warm sun
func DefaultSky() Sky {
	return Sky{
		Enabled:      true,
		GroundColor:  core.NewVec3(0.35, 0.3, 0.35),
		HorizonColor: core.NewVec3(1, 1, 1),
		ZenithColor:  core.NewVec3(0.08, 0.37, 0.73),
		SunDirection: core.NewVec3(0.5, -0.6, -0.5).Normalize(),
		SunFocus:     500,
		SunIntensity: 100,
	}
}

// Radiance returns the environment radiance for an escaped ray direction.
// The sun term is added only when the ground-to-sky blend has fully reached
// the sky half, so the sun never shows through the horizon transition.
func (s Sky) Radiance(direction core.Vec3) core.Vec3 {
	if !s.Enabled {
		return core.Vec3{}
	}

	skyT := math.Pow(core.Smoothstep(0, 0.4, direction.Y), 0.35)
	skyColor := s.HorizonColor.Lerp(s.ZenithColor, skyT)

	groundT := core.Smoothstep(-0.01, 0, direction.Y)
	color := s.GroundColor.Lerp(skyColor, groundT)

	if groundT >= 1 {
		sun := math.Pow(math.Max(0, direction.Dot(s.SunDirection.Negate())), s.SunFocus) * s.SunIntensity
		color = color.Add(core.NewVec3(sun, sun, sun))
	}

	return color
}
