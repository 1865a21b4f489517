package geometry

import (
	"math"

	"github.com/miminashca/Ray-Tracing/pkg/core"
	"github.com/miminashca/Ray-Tracing/pkg/material"
)

// Sphere represents a sphere primitive
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) Sphere {
	return Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit tests if a ray intersects the sphere within [tMin, tMax].
// Solves |O + tD - C|^2 = r^2 and takes the smaller root; intersections
// behind the ray origin are rejected.
func (s Sphere) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}

	t := (-b - math.Sqrt(discriminant)) / (2 * a)
	if t < tMin || t > tMax {
		return material.HitRecord{}, false
	}

	point := ray.At(t)
	return material.HitRecord{
		T:        t,
		Point:    point,
		Normal:   point.Subtract(s.Center).Normalize(),
		Material: s.Material,
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}
