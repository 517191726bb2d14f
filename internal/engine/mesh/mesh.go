// Package mesh builds CPU-side geometry for the demo primitives. The
// renderer uploads the result; nothing here touches the GPU.
package mesh

import "github.com/Faultbox/gldemos/pkg/math"

// Vertex layout: position (3), color (4), normal (3).
const (
	PositionSize = 3
	ColorSize    = 4
	NormalSize   = 3
	Stride       = PositionSize + ColorSize + NormalSize
)

// Color is RGBA in [0, 1].
type Color [4]float32

// Palette is the fixed set of face colours, in cycling order.
var Palette = []Color{
	{1, 0, 0, 1}, // Red
	{0, 1, 0, 1}, // Green
	{0, 0, 1, 1}, // Blue
	{1, 0, 1, 1}, // Magenta
	{0, 1, 1, 1}, // Cyan
	{1, 1, 0, 1}, // Yellow
}

// PaletteNames labels Palette entries for logs and titles.
var PaletteNames = []string{"Red", "Green", "Blue", "Magenta", "Cyan", "Yellow"}

// Data is an indexed triangle mesh with interleaved vertices.
type Data struct {
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (d Data) VertexCount() int {
	return len(d.Vertices) / Stride
}

// Position returns the position of vertex i.
func (d Data) Position(i int) math.Vec3 {
	o := i * Stride
	return math.Vec3{X: d.Vertices[o], Y: d.Vertices[o+1], Z: d.Vertices[o+2]}
}

// Normal returns the normal of vertex i.
func (d Data) Normal(i int) math.Vec3 {
	o := i*Stride + PositionSize + ColorSize
	return math.Vec3{X: d.Vertices[o], Y: d.Vertices[o+1], Z: d.Vertices[o+2]}
}

func (d *Data) add(p math.Vec3, c Color, n math.Vec3) {
	d.Vertices = append(d.Vertices, p.X, p.Y, p.Z, c[0], c[1], c[2], c[3], n.X, n.Y, n.Z)
}

// quad appends four corners (counter-clockwise seen from the normal side)
// as two triangles.
func (d *Data) quad(corners [4]math.Vec3, c Color, n math.Vec3) {
	base := uint32(d.VertexCount())
	for _, p := range corners {
		d.add(p, c, n)
	}
	d.Indices = append(d.Indices, base, base+1, base+2, base, base+2, base+3)
}

// Triangle returns the classic RGB triangle in the XY plane.
func Triangle() Data {
	var d Data
	n := math.Vec3{Z: 1}
	d.add(math.Vec3{X: -0.5, Y: -0.5}, Color{1, 0, 0, 1}, n)
	d.add(math.Vec3{X: 0.5, Y: -0.5}, Color{0, 1, 0, 1}, n)
	d.add(math.Vec3{X: 0, Y: 0.5}, Color{0, 0, 1, 1}, n)
	d.Indices = []uint32{0, 1, 2}
	return d
}
