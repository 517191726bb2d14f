// Package race is the driving demo: a player car, two opponents on
// elliptical orbits, a chase camera and a one-sided collision reset.
//
// Sim holds all state and update rules and never touches GL; Scene renders
// it.
package race

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/engine/camera"
	"github.com/Faultbox/gldemos/internal/engine/collision"
	"github.com/Faultbox/gldemos/internal/engine/kinematics"
	"github.com/Faultbox/gldemos/internal/logger"
	"github.com/Faultbox/gldemos/pkg/math"
)

// CameraMode selects the active view.
type CameraMode int

const (
	ChaseView CameraMode = iota
	OverviewView
)

func (m CameraMode) String() string {
	if m == OverviewView {
		return "overview"
	}
	return "chase"
}

// Opponent is an NPC vehicle bound to its orbit.
type Opponent struct {
	Name    string
	Vehicle *kinematics.Vehicle
	Path    *OrbitPath
}

// Frame is what one Step produced.
type Frame struct {
	Collided bool
	Speed    float32
}

// Sim is the race state for one session.
type Sim struct {
	Player    *kinematics.Vehicle
	Opponents []Opponent
	Drive     Drive
	Resolver  Resolver

	Chase    *camera.OrbitCamera
	Overview *camera.OrbitCamera
	Follow   *camera.Follow

	Mode       CameraMode
	ShowBounds bool
	Collisions int

	npcs []*kinematics.Vehicle
	log  *zap.Logger
}

// NewSim builds a session from configuration. The player starts at spawn and
// each opponent at the start of its orbit.
func NewSim(cfg config.RaceConfig) *Sim {
	s := &Sim{
		Drive: Drive{SteerDeg: cfg.Player.SteerDeg},
		Resolver: Resolver{
			Spawn:            vec3(cfg.Spawn),
			SpawnOrientation: math.DegToRad(cfg.SpawnHeadingDeg),
		},
		ShowBounds: cfg.ShowBounds,
		log:        logger.Named("race"),
	}

	p := kinematics.NewVehicle()
	p.Acceleration = cfg.Player.Acceleration
	p.MaxSpeed = cfg.Player.MaxSpeed
	p.WheelBase = cfg.Player.WheelBase
	p.Scale = cfg.Player.Scale
	p.SetBoundingBoxDimensions(cfg.Player.Box[0], cfg.Player.Box[1], cfg.Player.Box[2])
	p.Position = s.Resolver.Spawn
	p.Orientation = s.Resolver.SpawnOrientation
	p.UpdateState()
	s.Player = p

	for _, oc := range cfg.Opponents {
		v := kinematics.NewVehicle()
		v.Scale = oc.Scale
		v.SetBoundingBoxDimensions(oc.Box[0], oc.Box[1], oc.Box[2])
		path := &OrbitPath{
			SemiX:  oc.SemiX,
			SemiZ:  oc.SemiZ,
			Height: oc.Height,
			Rate:   oc.Rate,
			Drift:  oc.Drift,
		}
		path.Place(v)
		s.Opponents = append(s.Opponents, Opponent{Name: oc.Name, Vehicle: v, Path: path})
		s.npcs = append(s.npcs, v)
	}

	s.Chase = camera.NewOrbitCamera(cameraConfig(cfg.Chase, p.Position))
	s.Overview = camera.NewOrbitCamera(cameraConfig(cfg.Overview, math.Zero))
	s.Follow = camera.NewFollow(s.Chase, p)
	s.Follow.Reset()

	return s
}

func cameraConfig(c config.CameraConfig, target math.Vec3) camera.Config {
	return camera.Config{
		Distance:     c.Distance,
		Azimuth:      math.DegToRad(c.AzimuthDeg),
		Elevation:    math.DegToRad(c.ElevationDeg),
		HeightOffset: c.HeightOffset,
		Target:       target,
	}
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Step advances one tick: opponents move along their orbits, the player is
// driven, the chase camera follows, then collisions are resolved.
func (s *Sim) Step(dt float32, c Controls) Frame {
	for _, o := range s.Opponents {
		o.Path.Advance(dt)
		o.Path.Place(o.Vehicle)
	}

	s.Drive.Apply(s.Player, c, dt)
	s.Follow.Update()

	collided := s.Resolver.Resolve(s.Player, s.npcs, s.Follow)
	if collided {
		s.Collisions++
		s.log.Info("collision reset",
			zap.Int("count", s.Collisions),
			zap.Stringer("spawn", s.Resolver.Spawn),
		)
	}

	return Frame{Collided: collided, Speed: s.Player.Speed}
}

// Camera returns the active camera.
func (s *Sim) Camera() *camera.OrbitCamera {
	if s.Mode == OverviewView {
		return s.Overview
	}
	return s.Chase
}

// SwitchCamera toggles between chase and overview.
func (s *Sim) SwitchCamera() CameraMode {
	if s.Mode == ChaseView {
		s.Mode = OverviewView
	} else {
		s.Mode = ChaseView
	}
	s.log.Debug("camera switched", zap.Stringer("mode", s.Mode))
	return s.Mode
}

// ToggleBounds flips bounding-box display.
func (s *Sim) ToggleBounds() bool {
	s.ShowBounds = !s.ShowBounds
	return s.ShowBounds
}

// Boxes returns the player's box followed by each opponent's.
func (s *Sim) Boxes() []collision.AABB {
	boxes := make([]collision.AABB, 0, 1+len(s.npcs))
	boxes = append(boxes, s.Player.Box)
	for _, v := range s.npcs {
		boxes = append(boxes, v.Box)
	}
	return boxes
}

// SpeedKmh returns the player speed for display.
func (s *Sim) SpeedKmh() float32 {
	return s.Player.Speed * KmhPerUnit
}

// HUD returns the speed readout.
func (s *Sim) HUD() string {
	return fmt.Sprintf("Speed: %.2f km/h", s.SpeedKmh())
}

// BodyMatrix is the stand-in body transform for v: its model matrix with the
// unit cube stretched to the unscaled box, so the drawn body matches Box
// while the vehicle faces an axis.
func BodyMatrix(v *kinematics.Vehicle) math.Mat4 {
	return v.Model.Mul(math.Scale(v.BoxDimensions()))
}
