package math

import (
	gomath "math"

	"github.com/chewxy/math32"
)

// Pi as float32.
const Pi = float32(gomath.Pi)

// TwoPi is a full turn in radians.
const TwoPi = 2 * Pi

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / Pi
}

// WrapAngle maps any angle into [0, 2π).
func WrapAngle(a float32) float32 {
	a = math32.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// float32 rounding can land exactly on 2π after the add
	if a >= TwoPi {
		a = 0
	}
	return a
}

// SphericalDir returns the unit direction for a horizontal angle (around Y,
// measured from +Z towards +X) and a vertical angle above the XZ plane.
func SphericalDir(azimuth, elevation float32) Vec3 {
	ce := math32.Cos(elevation)
	return Vec3{
		X: ce * math32.Sin(azimuth),
		Y: math32.Sin(elevation),
		Z: ce * math32.Cos(azimuth),
	}
}
