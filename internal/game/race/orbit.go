package race

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/gldemos/internal/engine/kinematics"
	"github.com/Faultbox/gldemos/pkg/math"
)

// OrbitPath moves an opponent around an axis-aligned ellipse centred on the
// origin. Drift makes each opponent's clock run slightly fast so paths that
// start together separate over time.
type OrbitPath struct {
	SemiX  float32
	SemiZ  float32
	Height float32
	Rate   float32 // radians of path parameter per second
	Drift  float32

	timer float32
}

// Timer returns the accumulated, drift-scaled time.
func (o *OrbitPath) Timer() float32 { return o.timer }

// Advance moves the path clock forward by dt.
func (o *OrbitPath) Advance(dt float32) {
	o.timer += dt * (1 + o.Drift)
}

// Position returns the point on the ellipse for the current timer.
func (o *OrbitPath) Position() math.Vec3 {
	phase := o.Rate * o.timer
	return math.Vec3{
		X: o.SemiX * math32.Cos(phase),
		Y: o.Height,
		Z: o.SemiZ * math32.Sin(phase),
	}
}

// Heading returns the yaw whose Forward vector is the path tangent.
func (o *OrbitPath) Heading() float32 {
	phase := o.Rate * o.timer
	dx := -o.SemiX * math32.Sin(phase)
	dz := o.SemiZ * math32.Cos(phase)
	return math32.Atan2(dx, dz)
}

// Place writes the current pose straight into v and recomposes its state.
func (o *OrbitPath) Place(v *kinematics.Vehicle) {
	v.Position = o.Position()
	v.Orientation = o.Heading()
	v.UpdateState()
}
