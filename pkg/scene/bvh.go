package scene

import (
	"math"
	"sort"

	"github.com/df07/go-simple-raytracer/pkg/core"
	"github.com/df07/go-simple-raytracer/pkg/geometry"
)

// Leaf threshold: if we have this many or fewer spheres, store them in a leaf node
const leafThreshold = 4

// bvhNode is a node in the bounding volume hierarchy.
// Leaves hold sphere indices in ascending order; internal nodes hold none.
type bvhNode struct {
	bounds  core.AABB
	left    *bvhNode
	right   *bvhNode
	indices []int
}

// bvh indexes the spheres of a scene by position.
// Hits are reported by scene index so ties resolve exactly as a linear scan would.
type bvh struct {
	root    *bvhNode
	spheres []geometry.Sphere
}

func newBVH(spheres []geometry.Sphere) *bvh {
	if len(spheres) == 0 {
		return &bvh{spheres: spheres}
	}

	indices := make([]int, len(spheres))
	for i := range indices {
		indices[i] = i
	}

	b := &bvh{spheres: spheres}
	b.root = b.build(indices)
	return b
}

// build recursively splits indices at the median along the longest axis
func (b *bvh) build(indices []int) *bvhNode {
	bounds := core.EmptyAABB()
	for _, i := range indices {
		bounds = bounds.Union(b.spheres[i].BoundingBox())
	}
	bounds = padBounds(bounds)

	if len(indices) <= leafThreshold {
		leaf := append([]int(nil), indices...)
		sort.Ints(leaf)
		return &bvhNode{bounds: bounds, indices: leaf}
	}

	axis := bounds.LongestAxis()
	sort.SliceStable(indices, func(i, j int) bool {
		return core.Axis(b.spheres[indices[i]].Center, axis) < core.Axis(b.spheres[indices[j]].Center, axis)
	})

	mid := len(indices) / 2
	return &bvhNode{
		bounds: bounds,
		left:   b.build(indices[:mid]),
		right:  b.build(indices[mid:]),
	}
}

// padBounds grows a box slightly so hits on its faces are never culled by rounding
func padBounds(bounds core.AABB) core.AABB {
	if !bounds.IsValid() {
		return bounds
	}
	size := bounds.Size()
	return bounds.Expand(1e-6 * (1 + math.Max(size.X, math.Max(size.Y, size.Z))))
}

// hit returns the nearest hit with t > core.Epsilon, preferring the lowest index on equal t
func (b *bvh) hit(ray core.Ray) (Hit, bool) {
	closest := Hit{T: math.Inf(1), Index: -1}
	if b.root != nil {
		b.hitNode(b.root, ray, &closest)
	}
	if closest.Index < 0 {
		return Hit{}, false
	}
	return closest, true
}

func (b *bvh) hitNode(node *bvhNode, ray core.Ray, closest *Hit) {
	// A sphere at exactly the current distance can still win a tie, so keep boxes touching it
	if !node.bounds.Hit(ray, core.Epsilon, math.Nextafter(closest.T, math.Inf(1))) {
		return
	}

	if node.left == nil && node.right == nil {
		for _, i := range node.indices {
			t, ok := b.spheres[i].Intersect(ray)
			if !ok || t <= core.Epsilon {
				continue
			}
			if t < closest.T || (t == closest.T && i < closest.Index) {
				*closest = Hit{T: t, Index: i}
			}
		}
		return
	}

	b.hitNode(node.left, ray, closest)
	b.hitNode(node.right, ray, closest)
}
