package mesh

import "github.com/Faultbox/gldemos/pkg/math"

// Face indexes the six cube faces.
type Face int

const (
	Top Face = iota
	Front
	Left
	Bottom
	Back
	Right
)

// faces lists, per Face, the outward normal and four corners of a unit cube
// centred at the origin, counter-clockwise seen from outside.
var faces = [6]struct {
	normal  math.Vec3
	corners [4]math.Vec3
}{
	Top: {math.Vec3{Y: 1}, [4]math.Vec3{
		{X: -0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5},
	}},
	Front: {math.Vec3{Z: 1}, [4]math.Vec3{
		{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5},
	}},
	Left: {math.Vec3{X: -1}, [4]math.Vec3{
		{X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: -0.5},
	}},
	Bottom: {math.Vec3{Y: -1}, [4]math.Vec3{
		{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: 0.5}, {X: -0.5, Y: -0.5, Z: 0.5},
	}},
	Back: {math.Vec3{Z: -1}, [4]math.Vec3{
		{X: 0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: -0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5},
	}},
	Right: {math.Vec3{X: 1}, [4]math.Vec3{
		{X: 0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: -0.5}, {X: 0.5, Y: 0.5, Z: 0.5},
	}},
}

// ColoredCube returns a unit cube with one flat colour per face.
func ColoredCube(colors [6]Color) Data {
	var d Data
	for f, face := range faces {
		d.quad(face.corners, colors[f], face.normal)
	}
	return d
}

// SolidCube returns a unit cube in a single colour.
func SolidCube(c Color) Data {
	return ColoredCube([6]Color{c, c, c, c, c, c})
}

// InteriorCube returns a unit cube meant to be seen from inside, e.g. a
// skybox: normals point inward and winding is reversed. The top face uses
// sky, the bottom ground, and the sides blend between them.
func InteriorCube(sky, ground Color) Data {
	var d Data
	for f, face := range faces {
		c := sky
		switch Face(f) {
		case Bottom:
			c = ground
		case Top:
		default:
			c = mix(sky, ground, 0.35)
		}
		reversed := [4]math.Vec3{face.corners[0], face.corners[3], face.corners[2], face.corners[1]}
		d.quad(reversed, c, face.normal.Scale(-1))
	}
	return d
}

// Plane returns a size×size quad on the XZ plane facing +Y.
func Plane(size float32, c Color) Data {
	var d Data
	h := size / 2
	d.quad([4]math.Vec3{
		{X: -h, Z: h}, {X: h, Z: h}, {X: h, Z: -h}, {X: -h, Z: -h},
	}, c, math.Vec3{Y: 1})
	return d
}

func mix(a, b Color, t float32) Color {
	var out Color
	for i := range out {
		out[i] = a[i]*(1-t) + b[i]*t
	}
	return out
}
