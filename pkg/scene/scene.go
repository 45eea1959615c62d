package scene

import (
	"fmt"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/geometry"
)

// Scene is an ordered, immutable list of spheres.
// Order only matters for breaking ties between equal hit distances.
type Scene struct {
	spheres []geometry.Sphere
	bvh     *bvh
}

// Hit identifies the nearest surface struck by a ray
type Hit struct {
	T     float64 // Ray parameter of the hit
	Index int     // Index of the sphere in scene order
}

// New creates a scene from spheres. The slice is copied so later changes by the caller are not seen.
func New(spheres ...geometry.Sphere) (*Scene, error) {
	owned := make([]geometry.Sphere, len(spheres))
	copy(owned, spheres)

	for i, s := range owned {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
	}

	return &Scene{spheres: owned, bvh: newBVH(owned)}, nil
}

// Len returns the number of spheres
func (s *Scene) Len() int {
	return len(s.spheres)
}

// Sphere returns the sphere at index i
func (s *Scene) Sphere(i int) geometry.Sphere {
	return s.spheres[i]
}

// Spheres returns a copy of the scene's spheres in order
func (s *Scene) Spheres() []geometry.Sphere {
	out := make([]geometry.Sphere, len(s.spheres))
	copy(out, s.spheres)
	return out
}

// Bounds returns the padded bounding box of every sphere
func (s *Scene) Bounds() core.AABB {
	if s.bvh.root == nil {
		return core.EmptyAABB()
	}
	return s.bvh.root.bounds
}

// Hit finds the nearest sphere hit with t > core.Epsilon.
// Equal distances resolve to the lowest index.
func (s *Scene) Hit(ray core.Ray) (Hit, bool) {
	return s.bvh.hit(ray)
}
