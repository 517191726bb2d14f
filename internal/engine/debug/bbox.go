// Package debug provides debug visualization utilities.
package debug

import (
	"github.com/Faultbox/gldemos/internal/engine/collision"
)

// BoxVertexCount is the number of vertices for a box wireframe (12 edges × 2).
const BoxVertexCount = 24

// DefaultBoxPadding keeps wireframes from z-fighting with the mesh they enclose.
const DefaultBoxPadding = 0.02

// BoxWireframe creates line vertices for the edges of an AABB, grown by
// padding on all sides. Format: [x, y, z] per vertex, 24 vertices.
func BoxWireframe(box collision.AABB, padding float32) []float32 {
	minX, minY, minZ := box.Min.X-padding, box.Min.Y-padding, box.Min.Z-padding
	maxX, maxY, maxZ := box.Max.X+padding, box.Max.Y+padding, box.Max.Z+padding

	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// BoxesWireframe concatenates the wireframes of several boxes.
func BoxesWireframe(boxes []collision.AABB, padding float32) []float32 {
	out := make([]float32, 0, len(boxes)*BoxVertexCount*3)
	for _, b := range boxes {
		out = append(out, BoxWireframe(b, padding)...)
	}
	return out
}
