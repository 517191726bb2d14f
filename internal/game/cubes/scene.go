package cubes

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/engine/debug"
	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/engine/renderer"
	"github.com/Faultbox/gldemos/internal/game/states"
	"github.com/Faultbox/gldemos/internal/logger"
	"github.com/Faultbox/gldemos/pkg/math"
)

// TitleSetter shows the status line.
type TitleSetter interface {
	SetTitle(title string)
}

// Scene renders the rig and feeds it input.
type Scene struct {
	cfg   *config.Config
	r     *renderer.Renderer
	hud   TitleSetter
	shots *debug.Screenshots
	log   *zap.Logger

	rig      *Rig
	title    string
	capture  bool
	colorIdx int

	base, center *renderer.Mesh
}

// NewScene prepares the cube demo. hud may be nil.
func NewScene(cfg *config.Config, r *renderer.Renderer, hud TitleSetter) *Scene {
	return &Scene{
		cfg:   cfg,
		r:     r,
		hud:   hud,
		shots: debug.NewScreenshots(cfg.Screenshots.Dir, "cubes"),
		log:   logger.Named("cubes"),
	}
}

var _ states.State = (*Scene)(nil)

// Name implements states.State.
func (s *Scene) Name() string { return "cubes" }

// Rig exposes the rig state.
func (s *Scene) Rig() *Rig { return s.rig }

// Enter builds the rig and uploads both cube meshes.
func (s *Scene) Enter() error {
	s.rig = NewRig(s.cfg.Cubes)

	base, err := s.r.Upload(mesh.ColoredCube(BaseFaces()))
	if err != nil {
		return fmt.Errorf("upload cube: %w", err)
	}
	s.base = base

	if err := s.uploadCenter(); err != nil {
		s.release()
		return err
	}

	s.log.Info("cubes ready", zap.Stringer("layout", s.rig.Layout))
	return nil
}

// uploadCenter replaces the centre mesh with the current face colours.
func (s *Scene) uploadCenter() error {
	m, err := s.r.Upload(mesh.ColoredCube(s.rig.CenterFaces()))
	if err != nil {
		return fmt.Errorf("upload centre cube: %w", err)
	}
	s.center.Delete()
	s.center = m
	s.colorIdx = s.rig.ColorIndex
	return nil
}

// Exit releases GL resources.
func (s *Scene) Exit() error {
	s.release()
	return nil
}

func (s *Scene) release() {
	s.base.Delete()
	s.center.Delete()
	s.base, s.center = nil, nil
}

// Keymap implements states.State.
func (s *Scene) Keymap() input.Keymap {
	return Keymap()
}

// Keymap is the cube demo binding set.
func Keymap() input.Keymap {
	return input.Keymap{
		Pressed: map[sdl.Scancode]input.Command{
			sdl.SCANCODE_LEFT:         input.CmdAzimuthLeft,
			sdl.SCANCODE_RIGHT:        input.CmdAzimuthRight,
			sdl.SCANCODE_UP:           input.CmdZoomIn,
			sdl.SCANCODE_DOWN:         input.CmdZoomOut,
			sdl.SCANCODE_U:            input.CmdElevationUp,
			sdl.SCANCODE_D:            input.CmdElevationDown,
			sdl.SCANCODE_SPACE:        input.CmdToggleAnimation,
			sdl.SCANCODE_R:            input.CmdReverseRoll,
			sdl.SCANCODE_C:            input.CmdCycleColor,
			sdl.SCANCODE_RIGHTBRACKET: input.CmdShininessUp,
			sdl.SCANCODE_LEFTBRACKET:  input.CmdShininessDown,
			sdl.SCANCODE_L:            input.CmdToggleLayout,
			sdl.SCANCODE_TAB:          input.CmdCycleTerm,
			sdl.SCANCODE_EQUALS:       input.CmdTermUp,
			sdl.SCANCODE_MINUS:        input.CmdTermDown,
			sdl.SCANCODE_K:            input.CmdCycleLightColor,
		},
	}
}

// HandleCommand implements states.State.
func (s *Scene) HandleCommand(cmd input.Command) error {
	switch cmd {
	case input.CmdQuit:
		return states.ErrQuit
	case input.CmdScreenshot:
		s.capture = true
	default:
		s.rig.Apply(cmd)
	}
	return nil
}

// SetHeld implements states.State. The cube demo has no held bindings.
func (s *Scene) SetHeld(input.HeldSet) {}

// Update advances the animation and refreshes the centre colours and title.
func (s *Scene) Update(dt float64) error {
	s.rig.Step(float32(dt))

	if s.rig.ColorIndex != s.colorIdx {
		if err := s.uploadCenter(); err != nil {
			return err
		}
	}

	if title := s.rig.Status(); title != s.title {
		s.title = title
		if s.hud != nil {
			s.hud.SetTitle(title)
		}
	}
	return nil
}

// Render draws the current layout.
func (s *Scene) Render() error {
	g := s.cfg.Graphics
	cam := s.rig.Camera
	proj := math.Perspective(math.DegToRad(g.FOVDeg), s.r.Aspect(), g.Near, s.cfg.Cubes.Far)

	s.r.Begin()
	s.r.SetCamera(cam.ViewMatrix(), proj, cam.Position())
	s.r.SetLighting(s.rig.Light, s.rig.Material)

	models, center := s.rig.Models()
	for i, m := range models {
		if center[i] {
			s.r.Draw(s.center, m)
		} else {
			s.r.Draw(s.base, m)
		}
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
