// Package animation drives the time-based motion of the cube rig demos.
package animation

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/gldemos/pkg/math"
)

// State is the run state of a Clock.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// RollDirection is the sign of the clock's progression.
type RollDirection int

const (
	Forward  RollDirection = 1
	Backward RollDirection = -1
)

// Reverse returns the opposite direction.
func (d RollDirection) Reverse() RollDirection {
	if d == Backward {
		return Forward
	}
	return Backward
}

const (
	// TimeMax is the upper wrap boundary of the clock, in degrees.
	TimeMax = 360

	// StepPerAdvance is the fixed time increment of one Advance call.
	StepPerAdvance = 3

	// StopThreshold is the net displacement, in either direction, after
	// which a running clock stops on its own: one quarter turn.
	StopThreshold = 90
)

// Clock advances a bounded time value in [0, 360] and derives the pulse and
// spin values of the cube rig from it. Outputs stay valid while stopped.
//
// Advance moves the clock by a fixed amount per call regardless of the frame
// delta, so animation speed follows the frame rate.
type Clock struct {
	state        State
	time         float32
	displacement float32
	direction    RollDirection

	centerScale     float32
	ownSpinAngle    float32
	globalSpinAngle float32
}

// NewClock returns a stopped clock at time zero.
func NewClock() *Clock {
	c := &Clock{direction: Forward}
	c.recompute()
	return c
}

// State returns whether the clock is running.
func (c *Clock) State() State { return c.state }

// Running reports whether the clock is running.
func (c *Clock) Running() bool { return c.state == Running }

// Time returns the current clock time in degrees.
func (c *Clock) Time() float32 { return c.time }

// Direction returns the roll direction recorded by the last Start.
func (c *Clock) Direction() RollDirection { return c.direction }

// CenterScale oscillates in [0.8, 1.2].
func (c *Clock) CenterScale() float32 { return c.centerScale }

// OwnSpinAngle is the clock time converted to radians.
func (c *Clock) OwnSpinAngle() float32 { return c.ownSpinAngle }

// GlobalSpinAngle is the raw clock time, used directly as radians.
func (c *Clock) GlobalSpinAngle() float32 { return c.globalSpinAngle }

// Seek moves the clock to t, clamped to [0, 360], and refreshes the outputs.
// The run state is unchanged.
func (c *Clock) Seek(t float32) {
	c.time = math32.Max(0, math32.Min(TimeMax, t))
	c.recompute()
}

// Start resumes the clock in the given direction.
func (c *Clock) Start(dir RollDirection) {
	c.direction = dir
	if c.state == Running {
		return
	}
	c.state = Running
	c.displacement = 0
}

// Stop freezes the clock.
func (c *Clock) Stop() {
	c.state = Stopped
	c.displacement = 0
}

// Toggle starts a stopped clock in dir or stops a running one.
func (c *Clock) Toggle(dir RollDirection) {
	if c.state == Running {
		c.Stop()
		return
	}
	c.Start(dir)
}

// Advance moves a running clock one step in dir. dt is accepted for
// interface symmetry with other per-tick updates but not integrated.
// It reports whether the clock stopped during this call.
func (c *Clock) Advance(dt float32, dir RollDirection) bool {
	if c.state != Running {
		return false
	}
	if c.quarterDone() {
		c.Stop()
		return true
	}

	// Snap to the opposite boundary instead of accumulating past it; the
	// snap consumes this call's step.
	switch {
	case c.time >= TimeMax && dir == Forward:
		c.time = 0
	case c.time <= 0 && dir == Backward:
		c.time = TimeMax
	default:
		c.time += StepPerAdvance * float32(dir)
		c.displacement += StepPerAdvance * float32(dir)
	}
	c.recompute()

	if c.quarterDone() {
		c.Stop()
		return true
	}
	return false
}

// quarterDone reports whether the net travel since the last start or stop
// reached a quarter turn. The snap between 360 and 0 is not travel.
func (c *Clock) quarterDone() bool {
	return math32.Abs(c.displacement) >= StopThreshold
}

func (c *Clock) recompute() {
	c.centerScale = 1 + 0.2*math32.Sin(1.5*c.time)
	c.ownSpinAngle = math.DegToRad(c.time)
	c.globalSpinAngle = c.time
}
