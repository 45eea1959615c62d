package core

import "math"

// AABB is an axis-aligned bounding box used to cull rays that cannot reach any surface
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates a new AABB from min and max corners
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns a box that contains nothing and acts as the identity for Union
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// Axis returns the component of v along axis i (0=X, 1=Y, 2=Z)
func Axis(v Vec3, i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Hit reports whether the ray passes through the box somewhere in [tMin, tMax] (slab method).
func (b AABB) Hit(ray Ray, tMin, tMax float64) bool {
	if !b.IsValid() {
		return false
	}
	for i := 0; i < 3; i++ {
		lo, hi := Axis(b.Min, i), Axis(b.Max, i)
		origin, direction := Axis(ray.Origin, i), Axis(ray.Direction, i)

		// Parallel to this slab: either always inside it or never
		if math.Abs(direction) < 1e-12 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		inv := 1.0 / direction
		t1 := (lo - origin) * inv
		t2 := (hi - origin) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both boxes
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: NewVec3(math.Min(b.Min.X, other.Min.X), math.Min(b.Min.Y, other.Min.Y), math.Min(b.Min.Z, other.Min.Z)),
		Max: NewVec3(math.Max(b.Max.X, other.Max.X), math.Max(b.Max.Y, other.Max.Y), math.Max(b.Max.Z, other.Max.Z)),
	}
}

// Size returns the extent of the box along each axis
func (b AABB) Size() Vec3 {
	return b.Max.Subtract(b.Min)
}

// IsValid returns true if min <= max on every axis
func (b AABB) IsValid() bool {
	return b.Min.X <= b.Max.X &&
		b.Min.Y <= b.Max.Y &&
		b.Min.Z <= b.Max.Z
}

// Expand returns the box grown by amount in all directions
func (b AABB) Expand(amount float64) AABB {
	pad := NewVec3(amount, amount, amount)
	return AABB{Min: b.Min.Subtract(pad), Max: b.Max.Add(pad)}
}

// Center returns the center point of the box
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent
func (b AABB) LongestAxis() int {
	size := b.Size()
	if size.X >= size.Y && size.X >= size.Z {
		return 0
	}
	if size.Y >= size.Z {
		return 1
	}
	return 2
}
