package core

import "math"

// RNG seed decorrelation multiplier: pixel streams for consecutive frames
// must not overlap, so the frame index is spread by a large odd constant.
const frameSeedMultiplier = 719393

// RNG is a deterministic 32-bit permuted-congruential generator. Each path
// carries its own instance; a single draw mutates the state in place.
type RNG struct {
	state uint32
}

// NewRNG creates a generator seeded from a pixel index and frame index
func NewRNG(pixelIndex, frameIndex uint32) *RNG {
	return &RNG{state: pixelIndex + frameIndex*frameSeedMultiplier}
}

// NextUint32 advances the state and returns the next raw 32-bit output.
// The multiply/add step relies on unsigned 32-bit wraparound; the result is
// mixed with an xor-shift permutation before being returned.
func (r *RNG) NextUint32() uint32 {
	r.state = r.state*747796405 + 2891336453
	result := ((r.state >> ((r.state >> 28) + 4)) ^ r.state) * 277803737
	return (result >> 22) ^ result
}

// Uniform returns a uniformly distributed value in [0, 1]
func (r *RNG) Uniform() float64 {
	return float64(r.NextUint32()) / float64(math.MaxUint32)
}

// Normal returns a normally distributed value (mean 0, stddev 1) using the
// Box-Muller transform. The first uniform is clamped away from zero so the
// logarithm stays finite.
func (r *RNG) Normal() float64 {
	u1 := max(r.Uniform(), 1e-12)
	u2 := r.Uniform()
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}

// UnitSphereDirection returns a uniformly distributed direction on the unit
// sphere. Three normal draws give a rotationally symmetric vector, so
// normalizing is rejection-free.
func (r *RNG) UnitSphereDirection() Vec3 {
	return NewVec3(r.Normal(), r.Normal(), r.Normal()).Normalize()
}

// HemisphereDirection returns a uniform direction in the hemisphere around
// the given surface normal
func (r *RNG) HemisphereDirection(normal Vec3) Vec3 {
	dir := r.UnitSphereDirection()
	if dir.Dot(normal) < 0 {
		return dir.Negate()
	}
	return dir
}

// UnitDiskPoint returns a uniformly distributed point in the unit disk.
// The radius is sqrt(uniform) to keep the area density uniform.
func (r *RNG) UnitDiskPoint() Vec2 {
	angle := 2.0 * math.Pi * r.Uniform()
	radius := math.Sqrt(r.Uniform())
	return NewVec2(radius*math.Cos(angle), radius*math.Sin(angle))
}
