package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-simple-raytracer/pkg/core"
)

// Sphere is an implicit surface with a flat diffuse color
type Sphere struct {
	Radius   float64
	Center   core.Vec3
	Emission core.Vec3 // not used by shading
	Albedo   core.Vec3 // reflectance per channel in [0,1]
	Material MaterialKind
}

// NewSphere creates a sphere after checking radius and albedo
func NewSphere(radius float64, center, emission, albedo core.Vec3, material MaterialKind) (Sphere, error) {
	s := Sphere{
		Radius:   radius,
		Center:   center,
		Emission: emission,
		Albedo:   albedo,
		Material: material,
	}
	if err := s.Validate(); err != nil {
		return Sphere{}, err
	}
	return s, nil
}

// Validate checks that the radius is positive and finite, the albedo lies in [0,1]
// and the material is a declared kind.
func (s Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("sphere radius %g must be positive and finite: %w", s.Radius, core.ErrInvalidSurface)
	}
	if !s.Albedo.InUnitCube() {
		return fmt.Errorf("sphere albedo %v outside [0,1]: %w", s.Albedo, core.ErrInvalidSurface)
	}
	if !s.Material.IsValid() {
		return fmt.Errorf("sphere material %d: %w", s.Material, core.ErrInvalidSurface)
	}
	return nil
}

// NewDiffuseSphere creates a non-emissive diffuse sphere
func NewDiffuseSphere(radius float64, center, albedo core.Vec3) (Sphere, error) {
	return NewSphere(radius, center, core.Vec3{}, albedo, Diffuse)
}

// Intersect returns the smallest ray parameter t > core.Epsilon where the ray meets the sphere.
//
// Solves (d.d)t² + 2(op.d)t + op.op - r² = 0 with op = origin - center. When the
// origin is inside the sphere only the far root is positive and that one is returned.
func (s Sphere) Intersect(ray core.Ray) (float64, bool) {
	op := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * op.Dot(ray.Direction)
	c := op.Dot(op) - s.Radius*s.Radius

	if a == 0 {
		return 0, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)

	switch {
	case t0 > core.Epsilon && t1 > core.Epsilon:
		return math.Min(t0, t1), true
	case t0 > core.Epsilon:
		return t0, true
	case t1 > core.Epsilon:
		return t1, true
	default:
		return 0, false
	}
}

// Normal returns the outward unit normal at a point on the sphere.
// A point at the center has no normal and yields core.ErrDegenerateVector.
func (s Sphere) Normal(point core.Vec3) (core.Vec3, error) {
	n, err := point.Subtract(s.Center).Normalize()
	if err != nil {
		return core.Vec3{}, fmt.Errorf("sphere normal at %v: %w", point, err)
	}
	return n, nil
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
