// Package states implements demo state management.
package states

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/logger"
)

// ErrQuit is returned by a state that wants the loop to end.
var ErrQuit = errors.New("quit requested")

// State is one runnable demo scene.
type State interface {
	// Name identifies the state in logs.
	Name() string

	// Enter is called when entering this state. GL resources are created here.
	Enter() error

	// Exit is called when leaving this state and releases what Enter made.
	Exit() error

	// Keymap lists the bindings this state understands.
	Keymap() input.Keymap

	// HandleCommand processes a discrete command, once per key press.
	HandleCommand(cmd input.Command) error

	// SetHeld receives the held-key commands sampled this frame, before Update.
	SetHeld(held input.HeldSet)

	// Update is called every frame. It must not touch GL.
	Update(dt float64) error

	// Render is called every frame to draw the state.
	Render() error
}

// Manager manages state transitions.
type Manager struct {
	current State
	next    State
	log     *zap.Logger
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{log: logger.Named("states")}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change, applied on the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Keymap returns the current state's bindings merged over the shared ones.
func (m *Manager) Keymap() input.Keymap {
	if m.current == nil {
		return input.Common()
	}
	return input.Common().Merge(m.current.Keymap())
}

// Dispatch forwards a command to the current state.
func (m *Manager) Dispatch(cmd input.Command) error {
	if m.current == nil || cmd == input.CmdNone {
		return nil
	}
	return m.current.HandleCommand(cmd)
}

// SetHeld forwards the sampled held keys to the current state.
func (m *Manager) SetHeld(held input.HeldSet) {
	if m.current != nil {
		m.current.SetHeld(held)
	}
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return fmt.Errorf("exit %s: %w", m.current.Name(), err)
			}
		}
		m.current = m.next
		m.next = nil
		m.log.Info("entering state", zap.String("state", m.current.Name()))
		if err := m.current.Enter(); err != nil {
			return fmt.Errorf("enter %s: %w", m.current.Name(), err)
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// Close exits the current state.
func (m *Manager) Close() error {
	if m.current == nil {
		return nil
	}
	err := m.current.Exit()
	m.current = nil
	return err
}
