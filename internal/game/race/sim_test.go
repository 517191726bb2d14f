package race

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/engine/kinematics"
	"github.com/Faultbox/gldemos/pkg/math"
)

const eps = 1e-4

func assertVec(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func newSim(t *testing.T) *Sim {
	t.Helper()
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	return NewSim(cfg.Race)
}

func TestNewSimStartsAtSpawn(t *testing.T) {
	s := newSim(t)

	assertVec(t, math.Vec3{X: 26, Y: 1.8}, s.Player.Position)
	assert.Equal(t, float32(0), s.Player.Orientation)
	assert.Len(t, s.Opponents, 2)
	assert.Equal(t, "apple", s.Opponents[0].Name)
	assertVec(t, math.Vec3{X: 35, Y: 1.5}, s.Opponents[0].Vehicle.Position)
	assertVec(t, math.Vec3{X: 40, Y: 5}, s.Opponents[1].Vehicle.Position)
	assertVec(t, s.Player.Position, s.Chase.Target)
	assert.Equal(t, ChaseView, s.Mode)
	assert.Same(t, s.Chase, s.Camera())
}

func TestNewSimBoxSizes(t *testing.T) {
	s := newSim(t)

	tests := []struct {
		name string
		box  math.Vec3
		want math.Vec3
	}{
		{"player", s.Player.Box.Size(), math.Vec3{X: 0.26, Y: 1.28, Z: 0.5}},
		{"apple", s.Opponents[0].Vehicle.Box.Size(), math.Vec3{X: 7, Y: 32, Z: 12.5}},
		{"pear", s.Opponents[1].Vehicle.Box.Size(), math.Vec3{X: 1.35, Y: 0.35, Z: 0.575}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, tt.box)
		})
	}
}

func TestCollisionResetScenario(t *testing.T) {
	s := newSim(t)
	p := s.Player

	p.Speed = 25
	p.SteeringAngle = 10
	p.Position = math.Vec3{X: 100, Y: 1.8, Z: -40}
	p.Orientation = 1.2
	p.UpdateState()
	s.Chase.RotateAzimuth(0.7)
	s.Chase.SetTarget(p.Position)

	npc := s.Opponents[0].Vehicle
	npc.SetPosition(p.Position.Add(math.Vec3{X: 0.1}))

	collided := s.Resolver.Resolve(p, s.npcs, s.Follow)

	require.True(t, collided)
	assert.Equal(t, math.Vec3{X: 26, Y: 1.8, Z: 0}, p.Position)
	assert.Equal(t, float32(0), p.Orientation)
	assert.Equal(t, float32(0), p.Speed)
	assert.Equal(t, float32(0), p.SteeringAngle)
	assertVec(t, p.Position, p.Box.Center())
	assert.InDelta(t, gomath.Pi, s.Chase.Azimuth, eps)
	assertVec(t, p.Position, s.Chase.Target)

	assertVec(t, math.Vec3{X: 100.1, Y: 1.8, Z: -40}, npc.Position)
}

func TestResolveWithoutOverlap(t *testing.T) {
	s := newSim(t)
	p := s.Player
	p.Speed = 12
	p.SetPosition(math.Vec3{X: -80, Y: 1.8, Z: 0})

	assert.False(t, s.Resolver.Resolve(p, s.npcs, s.Follow))
	assert.Equal(t, float32(12), p.Speed)
	assertVec(t, math.Vec3{X: -80, Y: 1.8}, p.Position)
}

func TestResolveTouchingBoxes(t *testing.T) {
	player := kinematics.NewVehicle()
	player.SetPosition(math.Vec3{X: 10})
	npc := kinematics.NewVehicle()
	npc.SetPosition(math.Vec3{X: 11})

	r := Resolver{Spawn: math.Vec3{X: 26, Y: 1.8}}
	assert.False(t, r.Resolve(player, []*kinematics.Vehicle{npc}, nil), "shared face is not a collision")

	npc.SetPosition(math.Vec3{X: 10.99})
	assert.True(t, r.Resolve(player, []*kinematics.Vehicle{npc}, nil))
	assert.Equal(t, math.Vec3{X: 26, Y: 1.8}, player.Position)
}

func TestResolveNoOpponents(t *testing.T) {
	r := Resolver{}
	assert.False(t, r.Resolve(kinematics.NewVehicle(), nil, nil))
}

func newCar() *kinematics.Vehicle {
	v := kinematics.NewVehicle()
	v.MaxSpeed = 30
	v.Acceleration = 5
	v.WheelBase = 2.8
	return v
}

func TestDriveSpeed(t *testing.T) {
	tests := []struct {
		name  string
		start float32
		c     Controls
		dt    float32
		want  float32
	}{
		{"throttle accelerates", 10, Controls{Throttle: true}, 0.5, 12.5},
		{"throttle clamps at max", 29.9, Controls{Throttle: true}, 1, 30},
		{"throttle wins over brake", 10, Controls{Throttle: true, Brake: true}, 1, 15},
		{"brake decelerates", 10, Controls{Brake: true}, 1, 5},
		{"reverse clamps at half max", -14.9, Controls{Brake: true}, 1, -15},
		{"coasting applies friction", 10, Controls{}, 0.016, 9.8},
		{"coasting snaps to zero", 2.01, Controls{}, 0.016, 0},
		{"reverse coasting snaps to zero", -1.5, Controls{}, 0.016, 0},
		{"reverse coasting keeps friction", -10, Controls{}, 0.016, -9.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newCar()
			v.Speed = tt.start
			Drive{SteerDeg: 10}.Apply(v, tt.c, tt.dt)
			assert.InDelta(t, tt.want, v.Speed, eps)
		})
	}
}

func TestDriveSteering(t *testing.T) {
	tests := []struct {
		name string
		c    Controls
		want float32
	}{
		{"left without pedal", Controls{Left: true}, 0},
		{"left with throttle", Controls{Throttle: true, Left: true}, 10},
		{"right with brake", Controls{Brake: true, Right: true}, -10},
		{"both directions cancel", Controls{Throttle: true, Left: true, Right: true}, 0},
		{"pedal only", Controls{Throttle: true}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newCar()
			v.Speed = 10
			v.SteeringAngle = 5
			Drive{SteerDeg: 10}.Apply(v, tt.c, 0.016)
			assert.Equal(t, tt.want, v.SteeringAngle)
		})
	}
}

func TestDriveMovesAlongHeading(t *testing.T) {
	v := newCar()
	v.Speed = 10
	Drive{SteerDeg: 10}.Apply(v, Controls{Throttle: true}, 0.1)

	// Speed is updated first, then integrated: 10.5 · 0.1.
	assertVec(t, math.Vec3{Z: 1.05}, v.Position)
	assert.Equal(t, float32(0), v.Orientation)
}

func TestDriveLeftTurnsTowardPositiveX(t *testing.T) {
	v := newCar()
	v.Speed = 10
	for i := 0; i < 30; i++ {
		Drive{SteerDeg: 10}.Apply(v, Controls{Throttle: true, Left: true}, 1.0/60)
	}
	assert.Greater(t, v.Position.X, float32(0))
	assert.Greater(t, v.Orientation, float32(0))
}

func TestOrbitPath(t *testing.T) {
	o := &OrbitPath{SemiX: 35, SemiZ: 155, Height: 1.5, Rate: 0.3, Drift: 0.01}

	assertVec(t, math.Vec3{X: 35, Y: 1.5}, o.Position())
	assert.InDelta(t, 0, o.Heading(), eps, "tangent at phase 0 is +Z")

	o.Advance(1)
	assert.InDelta(t, 1.01, o.Timer(), eps)

	phase := float64(0.3 * o.Timer())
	want := math.Vec3{
		X: float32(35 * gomath.Cos(phase)),
		Y: 1.5,
		Z: float32(155 * gomath.Sin(phase)),
	}
	assertVec(t, want, o.Position())
}

func TestOrbitHeadingFollowsTangent(t *testing.T) {
	o := &OrbitPath{SemiX: 40, SemiZ: 170, Height: 5, Rate: 0.3, Drift: 0.012}
	v := kinematics.NewVehicle()

	for _, dt := range []float32{0.5, 3, 7, 2.5, 10} {
		o.Advance(dt)
		o.Place(v)

		phase := float64(o.Rate * o.Timer())
		tangent := math.Vec3{
			X: float32(-40 * gomath.Sin(phase)),
			Z: float32(170 * gomath.Cos(phase)),
		}.Normalize()
		assertVec(t, tangent, v.Forward())
		assert.GreaterOrEqual(t, v.Orientation, float32(0))
		assert.Less(t, v.Orientation, float32(2*gomath.Pi))
		assertVec(t, o.Position(), v.Box.Center())
	}
}

func TestStepWithoutCollision(t *testing.T) {
	s := newSim(t)
	start := s.Opponents[0].Vehicle.Position

	f := s.Step(1.0/60, Controls{Throttle: true})

	assert.False(t, f.Collided)
	assert.Greater(t, f.Speed, float32(0))
	assert.NotEqual(t, start, s.Opponents[0].Vehicle.Position)
	assertVec(t, s.Player.Position, s.Chase.Target)
	assert.Equal(t, 0, s.Collisions)
}

func TestStepChaseCameraTurnsWithPlayer(t *testing.T) {
	s := newSim(t)
	s.Player.Speed = 20

	var turned float32
	for i := 0; i < 20; i++ {
		s.Step(1.0/60, Controls{Throttle: true, Left: true})
		turned += s.Player.DeltaOrientation
	}

	assert.Greater(t, turned, float32(0))
	assert.InDelta(t, gomath.Pi+float64(turned), s.Chase.Azimuth, eps)
	assertVec(t, s.Player.Position, s.Chase.Target)
}

func TestStepResolvesCollision(t *testing.T) {
	cfg := config.Default().Race
	cfg.Opponents = []config.OpponentConfig{
		{Name: "blocker", SemiX: 30, SemiZ: 30, Height: 1.8, Rate: 0.3, Scale: 1, Box: [3]float32{10, 10, 10}},
	}
	s := NewSim(cfg)
	s.Player.Speed = 15
	s.Player.SetRotation(1)

	f := s.Step(1.0/60, Controls{Throttle: true})

	require.True(t, f.Collided)
	assert.Equal(t, float32(0), f.Speed)
	assert.Equal(t, math.Vec3{X: 26, Y: 1.8}, s.Player.Position)
	assert.Equal(t, float32(0), s.Player.Orientation)
	assert.Equal(t, 1, s.Collisions)
	assert.InDelta(t, gomath.Pi, s.Chase.Azimuth, eps)
}

func TestSwitchCamera(t *testing.T) {
	s := newSim(t)

	assert.Equal(t, OverviewView, s.SwitchCamera())
	assert.Same(t, s.Overview, s.Camera())
	assert.Equal(t, float32(300), s.Camera().Distance)

	assert.Equal(t, ChaseView, s.SwitchCamera())
	assert.Same(t, s.Chase, s.Camera())
	assert.Equal(t, "chase", s.Mode.String())
}

func TestToggleBoundsAndBoxes(t *testing.T) {
	s := newSim(t)
	assert.False(t, s.ShowBounds)
	assert.True(t, s.ToggleBounds())
	assert.False(t, s.ToggleBounds())

	boxes := s.Boxes()
	require.Len(t, boxes, 3)
	assert.Equal(t, s.Player.Box, boxes[0])
	assert.Equal(t, s.Opponents[1].Vehicle.Box, boxes[2])
}

func TestHUD(t *testing.T) {
	s := newSim(t)
	s.Player.Speed = 10
	assert.Equal(t, "Speed: 36.00 km/h", s.HUD())
	assert.InDelta(t, 36, s.SpeedKmh(), eps)
}
