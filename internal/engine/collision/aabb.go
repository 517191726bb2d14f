// Package collision provides axis-aligned bounding boxes and overlap tests.
package collision

import "github.com/Faultbox/gldemos/pkg/math"

// AABB is an axis-aligned bounding box. Min and Max are only ever written
// together by Update, which keeps Min <= Max on every axis for non-negative
// extents.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB returns a box of the given full extents centred on center.
func NewAABB(center, extents math.Vec3) AABB {
	var b AABB
	b.Update(center, extents)
	return b
}

// Update recentres the box: Min = center - extents/2, Max = center + extents/2.
func (b *AABB) Update(center, extents math.Vec3) {
	half := extents.Scale(0.5)
	b.Min = center.Sub(half)
	b.Max = center.Add(half)
}

// Intersects reports whether the boxes overlap on all three axes.
// Boxes that only share a face, edge or corner do not intersect.
func (b AABB) Intersects(other AABB) bool {
	return overlaps(b.Min.X, b.Max.X, other.Min.X, other.Max.X) &&
		overlaps(b.Min.Y, b.Max.Y, other.Min.Y, other.Max.Y) &&
		overlaps(b.Min.Z, b.Max.Z, other.Min.Z, other.Max.Z)
}

func overlaps(minA, maxA, minB, maxB float32) bool {
	return minA < maxB && minB < maxA
}

// Center returns the midpoint of the box.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the full extents of the box.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether p lies inside or on the box.
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}
