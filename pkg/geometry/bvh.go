package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is a node of a Bounding Volume Hierarchy. Interior nodes hold two
// children; a leaf holds a single object in Left and a nil Right. Children of
// interior nodes are either further nodes or the primitives themselves.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// NewBVHNode builds a BVH over objects using median splits on the longest axis.
// The input slice is copied, never reordered. Panics on an empty slice: a scene
// without objects is a construction bug.
func NewBVHNode(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: cannot build BVH from an empty object list")
	}

	// Sorting happens in place, so work on a copy
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	if len(objectsCopy) == 1 {
		return &BVHNode{Left: objectsCopy[0], bbox: objectsCopy[0].BoundingBox()}
	}
	return buildBVH(objectsCopy)
}

// buildBVH recursively splits objects (len >= 2) at the median of the longest axis
func buildBVH(objects []Hittable) *BVHNode {
	boundingBox := unionBoundingBoxes(objects)
	axis := boundingBox.LongestAxis()

	// Equal keys compare as not-less, so SliceStable keeps their input order
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].BoundingBox().AxisInterval(axis).Min <
			objects[j].BoundingBox().AxisInterval(axis).Min
	})

	mid := len(objects) / 2
	return &BVHNode{
		Left:  buildChild(objects[:mid]),
		Right: buildChild(objects[mid:]),
		bbox:  boundingBox,
	}
}

func buildChild(objects []Hittable) Hittable {
	if len(objects) == 1 {
		return objects[0]
	}
	return buildBVH(objects)
}

// IsLeaf reports whether the node wraps a single object
func (n *BVHNode) IsLeaf() bool {
	return n.Right == nil
}

// Hit prunes on the node's box, then searches left before right. A left hit
// narrows the interval for the right child, and a right hit always wins.
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if _, isHit := n.bbox.HitWithin(ray, rayT); !isHit {
		return nil, false
	}

	if n.IsLeaf() {
		return n.Left.Hit(ray, rayT, sampler)
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)

	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, rightT, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the cached union box of the subtree
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int     // BVHNodes in the tree
	Primitives int     // Non-BVH objects referenced by the tree
	MaxDepth   int     // Deepest primitive, root is depth 0
	AvgDepth   float64 // Mean primitive depth
}

// Stats returns statistics about the BVH structure
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.Primitives > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.Primitives)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	for _, child := range []Hittable{n.Left, n.Right} {
		if child == nil {
			continue
		}
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
			continue
		}

		stats.Primitives++
		stats.AvgDepth += float64(depth + 1) // Accumulate depth for average calculation
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
	}
}
