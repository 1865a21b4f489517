package integrator

import (
	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/scene"
)

// PathTracer implements unidirectional path tracing with a fixed bounce
// budget. A path is followed for at most maxBounces+1 segments; there is no
// roulette termination.
type PathTracer struct {
	maxBounces int
}

// NewPathTracer creates a path tracer with the given bounce budget
func NewPathTracer(maxBounces int) *PathTracer {
	return &PathTracer{maxBounces: maxBounces}
}

// TraceRay returns the radiance estimate for a single camera ray. Each
// segment queries the scene for the nearest hit; a miss is resolved by the
// environment light and terminates the path. On a hit the emitted light is
// collected before the throughput is attenuated, so emissive surfaces are
// visible regardless of the remaining bounce budget.
func (pt *PathTracer) TraceRay(ray core.Ray, s *scene.Scene, rng *core.RNG) core.Vec3 {
	incomingLight := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for bounce := 0; bounce <= pt.maxBounces; bounce++ {
		hit, ok := s.Hit(ray)
		if !ok {
			incomingLight = incomingLight.Add(s.Sky.Radiance(ray.Direction).MultiplyVec(throughput))
			break
		}

		scatter := hit.Material.Scatter(ray, hit, rng)
		incomingLight = incomingLight.Add(hit.Material.Emitted().MultiplyVec(throughput))
		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return incomingLight
}
