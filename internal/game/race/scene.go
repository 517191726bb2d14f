package race

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/engine/audio"
	"github.com/Faultbox/gldemos/internal/engine/debug"
	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/engine/lighting"
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/engine/renderer"
	"github.com/Faultbox/gldemos/internal/game/states"
	"github.com/Faultbox/gldemos/internal/logger"
	"github.com/Faultbox/gldemos/pkg/math"
)

// CrashCue is the audio cue played on a collision reset.
const CrashCue = "crash"

// trackSize is the unscaled edge of the ground plane; it covers the widest
// default orbit once TrackScale is applied.
const trackSize = 240

// TitleSetter shows the HUD line.
type TitleSetter interface {
	SetTitle(title string)
}

// CuePlayer plays a named sound cue.
type CuePlayer interface {
	Play(name string) error
}

// Scene renders the race and feeds it input.
type Scene struct {
	cfg   *config.Config
	r     *renderer.Renderer
	hud   TitleSetter
	cues  CuePlayer
	shots *debug.Screenshots
	log   *zap.Logger

	sim      *Sim
	held     input.HeldSet
	light    lighting.Light
	material lighting.Material
	title    string
	capture  bool

	player, apple, pear *renderer.Mesh
	sky, track          *renderer.Mesh
	bounds              *renderer.Lines
}

// NewScene prepares the race. cues may be nil.
func NewScene(cfg *config.Config, r *renderer.Renderer, hud TitleSetter, cues CuePlayer) *Scene {
	return &Scene{
		cfg:   cfg,
		r:     r,
		hud:   hud,
		cues:  cues,
		shots: debug.NewScreenshots(cfg.Screenshots.Dir, "race"),
		log:   logger.Named("race"),
	}
}

var _ states.State = (*Scene)(nil)

// Name implements states.State.
func (s *Scene) Name() string { return "race" }

// Sim exposes the simulation.
func (s *Scene) Sim() *Sim { return s.sim }

// Enter builds the simulation and uploads the geometry.
func (s *Scene) Enter() error {
	s.sim = NewSim(s.cfg.Race)
	s.light, s.material = lighting.FromConfig(s.cfg.Race.Light)

	uploads := []struct {
		dst  **renderer.Mesh
		data mesh.Data
	}{
		{&s.player, mesh.SolidCube(mesh.Color{0.85, 0.1, 0.1, 1})},
		{&s.apple, mesh.SolidCube(mesh.Color{0.4, 0.8, 0.2, 1})},
		{&s.pear, mesh.SolidCube(mesh.Color{0.9, 0.8, 0.2, 1})},
		{&s.sky, mesh.InteriorCube(mesh.Color{0.45, 0.65, 0.95, 1}, mesh.Color{0.25, 0.3, 0.25, 1})},
		{&s.track, mesh.Plane(trackSize, mesh.Color{0.35, 0.35, 0.38, 1})},
	}
	for _, u := range uploads {
		m, err := s.r.Upload(u.data)
		if err != nil {
			s.release()
			return fmt.Errorf("upload race geometry: %w", err)
		}
		*u.dst = m
	}
	s.bounds = s.r.NewLines(mesh.Color{1, 1, 0, 1})

	s.log.Info("race ready",
		zap.Int("opponents", len(s.sim.Opponents)),
		zap.Bool("bounds", s.sim.ShowBounds),
	)
	return nil
}

// Exit releases GL resources.
func (s *Scene) Exit() error {
	s.release()
	return nil
}

func (s *Scene) release() {
	for _, m := range []*renderer.Mesh{s.player, s.apple, s.pear, s.sky, s.track} {
		m.Delete()
	}
	s.bounds.Delete()
	s.player, s.apple, s.pear, s.sky, s.track, s.bounds = nil, nil, nil, nil, nil, nil
}

// Keymap implements states.State.
func (s *Scene) Keymap() input.Keymap {
	return Keymap()
}

// Keymap is the race binding set.
func Keymap() input.Keymap {
	return input.Keymap{
		Pressed: map[sdl.Scancode]input.Command{
			sdl.SCANCODE_F5: input.CmdSwitchCamera,
			sdl.SCANCODE_B:  input.CmdToggleBounds,
		},
		Held: map[input.Command][]sdl.Scancode{
			input.CmdThrottle:   {sdl.SCANCODE_W, sdl.SCANCODE_UP},
			input.CmdBrake:      {sdl.SCANCODE_S, sdl.SCANCODE_DOWN},
			input.CmdSteerLeft:  {sdl.SCANCODE_A, sdl.SCANCODE_LEFT},
			input.CmdSteerRight: {sdl.SCANCODE_D, sdl.SCANCODE_RIGHT},
		},
	}
}

// ControlsFrom converts sampled held keys into drive controls.
func ControlsFrom(held input.HeldSet) Controls {
	return Controls{
		Throttle: held.Has(input.CmdThrottle),
		Brake:    held.Has(input.CmdBrake),
		Left:     held.Has(input.CmdSteerLeft),
		Right:    held.Has(input.CmdSteerRight),
	}
}

// HandleCommand implements states.State.
func (s *Scene) HandleCommand(cmd input.Command) error {
	switch cmd {
	case input.CmdQuit:
		return states.ErrQuit
	case input.CmdScreenshot:
		s.capture = true
	case input.CmdSwitchCamera:
		s.sim.SwitchCamera()
	case input.CmdToggleBounds:
		s.log.Debug("bounds toggled", zap.Bool("show", s.sim.ToggleBounds()))
	}
	return nil
}

// SetHeld implements states.State.
func (s *Scene) SetHeld(held input.HeldSet) {
	s.held = held
}

// Update advances the simulation and refreshes the HUD.
func (s *Scene) Update(dt float64) error {
	frame := s.sim.Step(float32(dt), ControlsFrom(s.held))

	if frame.Collided && s.cues != nil {
		if err := s.cues.Play(CrashCue); err != nil && !errors.Is(err, audio.ErrNotInitialized) {
			s.log.Warn("crash cue failed", zap.Error(err))
		}
	}

	if title := s.sim.HUD(); title != s.title {
		s.title = title
		if s.hud != nil {
			s.hud.SetTitle(title)
		}
	}
	return nil
}

// Render draws the frame from the active camera.
func (s *Scene) Render() error {
	g := s.cfg.Graphics
	cam := s.sim.Camera()
	proj := math.Perspective(math.DegToRad(g.FOVDeg), s.r.Aspect(), g.Near, s.cfg.Race.Far)

	s.r.Begin()
	s.r.SetCamera(cam.ViewMatrix(), proj, cam.Position())
	s.r.SetLighting(s.light, s.material)

	s.r.DrawUnlit(s.sky, math.UniformScale(s.cfg.Race.SkyboxScale))
	s.r.Draw(s.track, math.UniformScale(s.cfg.Race.TrackScale))

	s.r.Draw(s.player, BodyMatrix(s.sim.Player))
	for i, o := range s.sim.Opponents {
		m := s.apple
		if i%2 == 1 {
			m = s.pear
		}
		s.r.Draw(m, BodyMatrix(o.Vehicle))
	}

	if s.sim.ShowBounds {
		s.bounds.Set(debug.BoxesWireframe(s.sim.Boxes(), debug.DefaultBoxPadding))
		s.r.DrawLines(s.bounds)
	}
	s.r.End()

	if s.capture {
		s.capture = false
		path, err := s.shots.Capture(s.r)
		if err != nil {
			s.log.Warn("screenshot failed", zap.Error(err))
		} else {
			s.log.Info("screenshot saved", zap.String("path", path))
		}
	}
	return nil
}
