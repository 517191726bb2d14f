// Package game implements the demo loop shared by every entry point.
package game

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/engine/renderer"
	"github.com/Faultbox/gldemos/internal/engine/window"
	"github.com/Faultbox/gldemos/internal/game/states"
	"github.com/Faultbox/gldemos/internal/logger"
)

// Game owns the window, the renderer and the running state.
type Game struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	states   *states.Manager
	log      *zap.Logger
}

// New opens the window and the GL context.
func New(title string, cfg *config.Config) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		states: states.NewManager(),
		log:    logger.Named("game"),
	}

	g.log.Info("initializing",
		zap.String("title", title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	var err error
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	// The renderer needs the GL context the window just made. The viewport
	// is in drawable pixels, which differ from window points on HiDPI.
	w, h := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		ClearColor: renderer.DefaultClearColor,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	g.input = input.New()
	return g, nil
}

// Renderer returns the renderer scenes draw with.
func (g *Game) Renderer() *renderer.Renderer { return g.renderer }

// Window returns the window, e.g. for title updates.
func (g *Game) Window() *window.Window { return g.window }

// Start schedules the first state; it is entered on the first frame.
func (g *Game) Start(s states.State) {
	g.states.Change(s)
}

// Run drives the loop until the window closes or a state asks to quit.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if g.input.Update() {
			g.log.Info("window closed")
			break
		}

		km := g.states.Keymap()
		quit, err := dispatch(g.input.Events(), km, g.states, g.resize)
		if err != nil {
			return err
		}
		if quit {
			break
		}
		g.states.SetHeld(g.input.Held(km))

		if err := g.states.Update(dt); err != nil {
			return fmt.Errorf("update: %w", err)
		}
		if err := g.states.Render(); err != nil {
			return fmt.Errorf("render: %w", err)
		}

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	g.running = false
	return nil
}

func (g *Game) resize(int, int) {
	w, h := g.window.DrawableSize()
	g.renderer.Resize(w, h)
}

// dispatch routes one frame's events: resizes go to resize, key presses
// become commands for the current state. It reports whether the state asked
// to quit.
func dispatch(events []input.Event, km input.Keymap, m *states.Manager, resize func(w, h int)) (bool, error) {
	for _, e := range events {
		switch e.Type {
		case input.EventWindowResize:
			resize(e.Width, e.Height)
		case input.EventKeyDown:
			cmd := km.Command(e)
			if cmd == input.CmdNone {
				continue
			}
			if err := m.Dispatch(cmd); err != nil {
				if errors.Is(err, states.ErrQuit) {
					return true, nil
				}
				return false, fmt.Errorf("%s: %w", cmd, err)
			}
		}
	}
	return false, nil
}

// Close exits the current state and tears down GL and SDL.
func (g *Game) Close() {
	g.log.Info("closing")

	if err := g.states.Close(); err != nil {
		g.log.Warn("state exit failed", zap.Error(err))
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
