package animation

import (
	gomath "math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClockIsStopped(t *testing.T) {
	c := NewClock()
	assert.Equal(t, Stopped, c.State())
	assert.Equal(t, float32(0), c.Time())
	assert.Equal(t, float32(1), c.CenterScale())
}

func TestStoppedClockIsFrozen(t *testing.T) {
	c := NewClock()
	c.Seek(42)
	for i := 0; i < 10; i++ {
		assert.False(t, c.Advance(0.016, Forward))
	}
	assert.Equal(t, float32(42), c.Time())
	assert.Equal(t, float32(42), c.GlobalSpinAngle())
}

func TestForwardBoundarySnap(t *testing.T) {
	c := NewClock()
	c.Seek(360)
	c.Start(Forward)

	c.Advance(0.016, Forward)
	assert.Equal(t, float32(0), c.Time(), "360 forward must snap to 0, not 363")

	c.Advance(0.016, Forward)
	assert.Equal(t, float32(3), c.Time())
}

func TestBackwardBoundarySnap(t *testing.T) {
	c := NewClock()
	c.Start(Backward)

	c.Advance(0.016, Backward)
	assert.Equal(t, float32(360), c.Time())

	c.Advance(0.016, Backward)
	assert.Equal(t, float32(357), c.Time())
}

func TestAutoStopAfterQuarterTurn(t *testing.T) {
	c := NewClock()
	c.Start(Forward)

	for i := 1; i < 30; i++ {
		require.False(t, c.Advance(0.016, Forward), "stopped early at call %d", i)
		require.Equal(t, Running, c.State())
	}

	assert.True(t, c.Advance(0.016, Forward), "30th call should stop the clock")
	assert.Equal(t, Stopped, c.State())
	assert.Equal(t, float32(90), c.Time())

	for i := 0; i < 5; i++ {
		c.Advance(0.016, Forward)
	}
	assert.Equal(t, float32(90), c.Time(), "advances after stop are no-ops")
}

func TestRestartRunsAnotherQuarterTurn(t *testing.T) {
	c := NewClock()
	c.Start(Forward)
	for c.Running() {
		c.Advance(0.016, Forward)
	}

	c.Toggle(Backward)
	assert.Equal(t, Backward, c.Direction())
	for c.Running() {
		c.Advance(0.016, Backward)
	}
	assert.Equal(t, float32(0), c.Time())
}

func TestQuarterTurnAcrossWrap(t *testing.T) {
	c := NewClock()
	c.Seek(330)
	c.Start(Forward)

	calls := 0
	for c.Running() {
		c.Advance(0.016, Forward)
		calls++
		require.Less(t, calls, 100)
	}

	// 10 steps to 360, one snap, 20 steps to 60.
	assert.Equal(t, 31, calls)
	assert.Equal(t, float32(60), c.Time())
}

func TestReversalCountsNetDisplacement(t *testing.T) {
	c := NewClock()
	c.Start(Forward)
	for i := 0; i < 20; i++ {
		require.False(t, c.Advance(0.016, Forward))
	}
	for i := 0; i < 10; i++ {
		require.False(t, c.Advance(0.016, Backward))
	}
	assert.True(t, c.Running(), "net 30 is short of a quarter turn")
	assert.Equal(t, float32(30), c.Time())

	calls := 0
	for c.Running() {
		c.Advance(0.016, Forward)
		calls++
		require.Less(t, calls, 100)
	}
	assert.Equal(t, 20, calls, "stops at net +90, not after 30 steps of any direction")
	assert.Equal(t, float32(90), c.Time())
}

func TestReversalStopsAtNegativeQuarter(t *testing.T) {
	c := NewClock()
	c.Start(Forward)
	for i := 0; i < 20; i++ {
		c.Advance(0.016, Forward)
	}

	// From net +60: 20 steps to 0, one snap to 360, 30 steps to 270.
	calls := 0
	for c.Running() {
		c.Advance(0.016, Backward)
		calls++
		require.Less(t, calls, 100)
	}
	assert.Equal(t, 51, calls)
	assert.Equal(t, float32(270), c.Time())
}

func TestDerivedOutputs(t *testing.T) {
	c := NewClock()
	c.Seek(30)

	assert.InDelta(t, 1+0.2*math32.Sin(45), c.CenterScale(), 1e-6)
	assert.InDelta(t, gomath.Pi/6, c.OwnSpinAngle(), 1e-6)
	assert.Equal(t, float32(30), c.GlobalSpinAngle())
}

func TestCenterScaleBounds(t *testing.T) {
	c := NewClock()
	for tm := float32(0); tm <= 360; tm += 3 {
		c.Seek(tm)
		assert.GreaterOrEqual(t, c.CenterScale(), float32(0.8)-1e-6)
		assert.LessOrEqual(t, c.CenterScale(), float32(1.2)+1e-6)
	}
}

func TestToggleStopsRunningClock(t *testing.T) {
	c := NewClock()
	c.Toggle(Forward)
	assert.True(t, c.Running())
	c.Toggle(Forward)
	assert.False(t, c.Running())
}

func TestReverse(t *testing.T) {
	assert.Equal(t, Backward, Forward.Reverse())
	assert.Equal(t, Forward, Backward.Reverse())
}
