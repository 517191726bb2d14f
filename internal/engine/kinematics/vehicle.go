// Package kinematics implements the bicycle-model vehicle used by the
// driving demo, for both the player and the orbiting opponents.
package kinematics

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/gldemos/internal/engine/collision"
	"github.com/Faultbox/gldemos/pkg/math"
)

// minSteerTan is the smallest |tan(steering)| treated as a turn. Below it the
// turn radius blows up and the vehicle moves in a straight line.
const minSteerTan = 1e-6

// Vehicle is a rigid body driven by speed and steering angle.
//
// The model matrix and bounding box are derived state: every method that
// changes position, orientation or scale recomputes both.
type Vehicle struct {
	Position    math.Vec3
	Orientation float32 // radians, kept in [0, 2π)

	// DeltaOrientation is the heading change made by the last UpdateSteering.
	DeltaOrientation float32

	Speed         float32 // signed, world units per second
	Acceleration  float32
	MaxSpeed      float32
	SteeringAngle float32 // degrees
	WheelBase     float32
	Scale         float32

	Model math.Mat4
	Box   collision.AABB

	boxDimensions math.Vec3 // unscaled width, height, length
}

// NewVehicle creates a unit-scale vehicle at the origin facing +Z.
func NewVehicle() *Vehicle {
	v := &Vehicle{
		Scale:         1,
		boxDimensions: math.Vec3{X: 1, Y: 1, Z: 1},
	}
	v.UpdateState()
	return v
}

// Forward returns the unit heading on the XZ plane.
func (v *Vehicle) Forward() math.Vec3 {
	return math.Vec3{X: math32.Sin(v.Orientation), Z: math32.Cos(v.Orientation)}
}

// UpdateSteering integrates steering and speed over dt: the turn radius is
// WheelBase / tan(SteeringAngle), the heading changes by Speed/radius·dt and
// the vehicle then moves along its new heading by Speed·dt.
func (v *Vehicle) UpdateSteering(dt float32) {
	v.DeltaOrientation = v.angularVelocity() * dt
	v.Orientation = math.WrapAngle(v.Orientation + v.DeltaOrientation)
	v.Position = v.Position.Add(v.Forward().Scale(v.Speed * dt))
	v.UpdateState()
}

func (v *Vehicle) angularVelocity() float32 {
	tan := math32.Tan(math.DegToRad(v.SteeringAngle))
	if math32.Abs(tan) < minSteerTan || v.WheelBase == 0 {
		return 0
	}
	turnRadius := v.WheelBase / tan
	return v.Speed / turnRadius
}

// TurnRadius returns the signed turning radius for the current steering
// angle, or +Inf when driving straight.
func (v *Vehicle) TurnRadius() float32 {
	tan := math32.Tan(math.DegToRad(v.SteeringAngle))
	if math32.Abs(tan) < minSteerTan {
		return math32.Inf(1)
	}
	return v.WheelBase / tan
}

// Translate moves the vehicle by delta without touching its heading.
func (v *Vehicle) Translate(delta math.Vec3) {
	v.Position = v.Position.Add(delta)
	v.UpdateState()
}

// SetPosition places the vehicle.
func (v *Vehicle) SetPosition(p math.Vec3) {
	v.Position = p
	v.UpdateState()
}

// SetRotation sets the heading in radians.
func (v *Vehicle) SetRotation(rad float32) {
	v.Orientation = rad
	v.UpdateState()
}

// SetScale sets the uniform model scale. Box dimensions scale with it.
func (v *Vehicle) SetScale(s float32) {
	v.Scale = s
	v.UpdateState()
}

// SetBoundingBoxDimensions sets the unscaled box size. Width runs along X,
// height along Y and length along Z.
func (v *Vehicle) SetBoundingBoxDimensions(width, length, height float32) {
	v.boxDimensions = math.Vec3{X: width, Y: height, Z: length}
	v.updateBox()
}

// BoxDimensions returns the unscaled box size.
func (v *Vehicle) BoxDimensions() math.Vec3 {
	return v.boxDimensions
}

// BoxExtents returns the full box size after scaling.
func (v *Vehicle) BoxExtents() math.Vec3 {
	return v.boxDimensions.Scale(v.Scale)
}

// UpdateState recomposes the model matrix and bounding box from the current
// position, orientation and scale without advancing any dynamics. Use it
// after writing Position or Orientation directly.
func (v *Vehicle) UpdateState() {
	v.Orientation = math.WrapAngle(v.Orientation)
	v.Model = math.Chain(
		math.Translate(v.Position),
		math.RotateY(v.Orientation),
		math.UniformScale(v.Scale),
	)
	v.updateBox()
}

func (v *Vehicle) updateBox() {
	v.Box.Update(v.Position, v.BoxExtents())
}

// FollowPoint implements camera.Subject.
func (v *Vehicle) FollowPoint() math.Vec3 { return v.Position }

// FollowTurn implements camera.Subject.
func (v *Vehicle) FollowTurn() float32 { return v.DeltaOrientation }
