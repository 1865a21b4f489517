package renderer

import (
	"math"

	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/scene"
)

// Camera generates primary rays from a scene camera description
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // Camera-space right and up basis vectors
	defocusStrength float64
	divergeStrength float64
}

// NewCamera derives the per-pixel ray parameterization from field of view,
// aspect ratio, and the look-from/look-at transform. A zero FocusDistance
// focuses on the look-at point.
func NewCamera(config scene.CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := viewportHeight * config.AspectRatio

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		defocusStrength: config.DefocusStrength,
		divergeStrength: config.DivergeStrength,
	}
}

// GetRay generates a ray through viewport coordinates (s, t) in [0, 1].
// The origin is offset by a disk sample scaled by the defocus strength
// (depth of field) and the target point on the focus plane by a disk sample
// scaled by the diverge strength (anti-aliasing). With both strengths zero
// the ray is fully determined by (s, t).
func (c *Camera) GetRay(s, t float64, rng *core.RNG) core.Ray {
	lens := rng.UnitDiskPoint().Multiply(c.defocusStrength)
	origin := c.origin.
		Add(c.u.Multiply(lens.X)).
		Add(c.v.Multiply(lens.Y))

	jitter := rng.UnitDiskPoint().Multiply(c.divergeStrength)
	target := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Add(c.u.Multiply(jitter.X)).
		Add(c.v.Multiply(jitter.Y))

	return core.NewRay(origin, target.Subtract(origin).Normalize())
}
