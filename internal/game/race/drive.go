package race

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/gldemos/internal/engine/kinematics"
)

// Coasting behaviour.
const (
	FrictionFactor = 0.98
	StopSpeed      = 2
)

// KmhPerUnit converts world units per second to the km/h the HUD shows.
const KmhPerUnit = 3.6

// Controls is the held-key state driving the player for one tick.
type Controls struct {
	Throttle bool
	Brake    bool
	Left     bool
	Right    bool
}

// Drive turns controls into speed and steering for a vehicle.
type Drive struct {
	SteerDeg float32
}

// Apply updates speed and steering from c, then integrates the vehicle.
// Throttle wins over brake. Reverse speed is capped at half of MaxSpeed.
// Steering only takes effect while a pedal is held.
func (d Drive) Apply(v *kinematics.Vehicle, c Controls, dt float32) {
	switch {
	case c.Throttle:
		v.Speed = math32.Min(v.Speed+v.Acceleration*dt, v.MaxSpeed)
	case c.Brake:
		v.Speed = math32.Max(v.Speed-v.Acceleration*dt, -v.MaxSpeed/2)
	default:
		v.Speed *= FrictionFactor
		if math32.Abs(v.Speed) < StopSpeed {
			v.Speed = 0
		}
	}

	v.SteeringAngle = 0
	if c.Throttle || c.Brake {
		switch {
		case c.Left && !c.Right:
			v.SteeringAngle = d.SteerDeg
		case c.Right && !c.Left:
			v.SteeringAngle = -d.SteerDeg
		}
	}

	v.UpdateSteering(dt)
}
