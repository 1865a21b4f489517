package renderer

import (
	"image"

	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/integrator"
	"github.com/miminashca/Ray-Tracing/pkg/scene"
)

// SamplingConfig contains per-frame sampling parameters
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel, >= 1
	MaxBounces      int // Bounce budget per path, >= 0
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 16,
		MaxBounces:      8,
	}
}

// Raytracer renders single-frame radiance estimates for a fixed scene.
// The scene is treated as an immutable snapshot; a Raytracer may be shared
// by workers rendering disjoint pixel regions.
type Raytracer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator *integrator.PathTracer
	width      int
	height     int
	config     SamplingConfig
}

// NewRaytracer creates a raytracer for the given scene and image size
func NewRaytracer(sc *scene.Scene, width, height int, config SamplingConfig) *Raytracer {
	return &Raytracer{
		scene:      sc,
		camera:     NewCamera(sc.Camera),
		integrator: integrator.NewPathTracer(config.MaxBounces),
		width:      width,
		height:     height,
		config:     config,
	}
}

// RenderPixel returns the averaged radiance estimate for one pixel of one
// frame. The RNG stream is seeded from the pixel index and frame index only,
// so re-rendering the same frame reproduces the same samples.
func (rt *Raytracer) RenderPixel(x, y, frameIndex int) core.Vec3 {
	// No samples means no paths and a zero estimate, not a 0/0
	if rt.config.SamplesPerPixel <= 0 {
		return core.Vec3{}
	}

	pixelIndex := uint32(y*rt.width + x)
	rng := core.NewRNG(pixelIndex, uint32(frameIndex))

	total := core.Vec3{}
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float64(x) + 0.5) / float64(rt.width)
		t := (float64(rt.height-1-y) + 0.5) / float64(rt.height)
		ray := rt.camera.GetRay(s, t, rng)
		total = total.Add(rt.integrator.TraceRay(ray, rt.scene, rng))
	}

	return total.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
}

// RenderBounds renders a pixel region of the frame estimate into the shared
// frame buffer. Regions rendered by different workers must not overlap;
// each pixel slot is written exactly once per frame.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, frameIndex int, frame []core.Vec3) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			frame[y*rt.width+x] = rt.RenderPixel(x, y, frameIndex)
		}
	}
}
