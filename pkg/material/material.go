package material

import (
	"github.com/miminashca/Ray-Tracing/pkg/core"
)

// Flag marks material variants that receive special treatment outside the
// bounce model itself
type Flag int

const (
	FlagNone      Flag = iota
	FlagInvisible      // reserved: see-through marker for light covers
)

// Material describes how a surface emits and scatters light. Materials are
// immutable during a frame and shared by reference among primitives.
type Material struct {
	Color               core.Vec3 // Base (diffuse) color
	EmissionColor       core.Vec3 // Emitted light color
	EmissionStrength    float64   // Emission multiplier, >= 0
	SpecularColor       core.Vec3 // Color applied on specular bounces
	Smoothness          float64   // 0 = rough reflection, 1 = perfect mirror
	SpecularProbability float64   // Chance a bounce is treated as specular
	Flag                Flag      // Optional variant marker
}

// NewDiffuse creates a matte material with the given base color
func NewDiffuse(color core.Vec3) *Material {
	return &Material{Color: color, SpecularColor: core.NewVec3(1, 1, 1)}
}

// NewEmissive creates a light-emitting material
func NewEmissive(color core.Vec3, strength float64) *Material {
	return &Material{EmissionColor: color, EmissionStrength: strength}
}

// NewGlossy creates a material that mixes diffuse and specular bounces
func NewGlossy(color, specularColor core.Vec3, smoothness, specularProbability float64) *Material {
	return &Material{
		Color:               color,
		SpecularColor:       specularColor,
		Smoothness:          smoothness,
		SpecularProbability: specularProbability,
	}
}

// Emitted returns the light emitted by this material
func (m *Material) Emitted() core.Vec3 {
	return m.EmissionColor.Multiply(m.EmissionStrength)
}

// ScatterResult contains the result of a material bounce
type ScatterResult struct {
	Scattered   core.Ray  // The outgoing ray for the next path segment
	Attenuation core.Vec3 // Color multiplied into the path throughput
	Specular    bool      // Whether this bounce was specular
}

// Scatter selects the outgoing direction for a bounce at the given hit.
// One uniform draw decides between a diffuse and a specular bounce; the
// outgoing direction blends the rough candidate toward the mirror candidate
// by smoothness, but only on specular bounces. Diffuse bounces ignore
// smoothness entirely.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, rng *core.RNG) ScatterResult {
	diffuseDir := hit.Normal.Add(rng.UnitSphereDirection()).Normalize()
	specularDir := rayIn.Direction.Reflect(hit.Normal)

	isSpecular := rng.Uniform() <= m.SpecularProbability

	blend := 0.0
	if isSpecular {
		blend = m.Smoothness
	}
	direction := diffuseDir.Lerp(specularDir, blend)

	attenuation := m.Color
	if isSpecular {
		attenuation = m.SpecularColor
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
		Specular:    isSpecular,
	}
}

// HitRecord contains information about a ray-primitive intersection
type HitRecord struct {
	T        float64   // Distance along the ray, >= 0
	Point    core.Vec3 // World-space point of intersection
	Normal   core.Vec3 // World-space surface normal at the intersection
	Material *Material // Material of the hit primitive
}
