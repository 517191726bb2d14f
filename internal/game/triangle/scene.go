// Package triangle is the smallest demo: one vertex-coloured triangle drawn
// straight into clip space.
package triangle

import (
	"fmt"

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

// Scene draws the triangle.
type Scene struct {
	r       *renderer.Renderer
	shots   *debug.Screenshots
	log     *zap.Logger
	capture bool

	tri *renderer.Mesh
}

// NewScene prepares the triangle demo.
func NewScene(cfg *config.Config, r *renderer.Renderer) *Scene {
	return &Scene{
		r:     r,
		shots: debug.NewScreenshots(cfg.Screenshots.Dir, "triangle"),
		log:   logger.Named("triangle"),
	}
}

var _ states.State = (*Scene)(nil)

// Name implements states.State.
func (s *Scene) Name() string { return "triangle" }

// Enter uploads the triangle.
func (s *Scene) Enter() error {
	m, err := s.r.Upload(mesh.Triangle())
	if err != nil {
		return fmt.Errorf("upload triangle: %w", err)
	}
	s.tri = m
	return nil
}

// Exit releases the triangle.
func (s *Scene) Exit() error {
	s.tri.Delete()
	s.tri = nil
	return nil
}

// Keymap implements states.State; only the shared bindings apply.
func (s *Scene) Keymap() input.Keymap { return input.Keymap{} }

// HandleCommand implements states.State.
func (s *Scene) HandleCommand(cmd input.Command) error {
	switch cmd {
	case input.CmdQuit:
		return states.ErrQuit
	case input.CmdScreenshot:
		s.capture = true
	}
	return nil
}

// SetHeld implements states.State.
func (s *Scene) SetHeld(input.HeldSet) {}

// Update implements states.State. The triangle is static.
func (s *Scene) Update(float64) error { return nil }

// Render draws the triangle with identity transforms.
func (s *Scene) Render() error {
	s.r.Begin()
	s.r.SetCamera(math.Identity(), math.Identity(), math.Zero)
	s.r.DrawUnlit(s.tri, math.Identity())
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
