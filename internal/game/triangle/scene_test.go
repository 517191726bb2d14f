package triangle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/game/states"
)

func TestHandleCommand(t *testing.T) {
	s := NewScene(config.Default(), nil)

	assert.ErrorIs(t, s.HandleCommand(input.CmdQuit), states.ErrQuit)
	assert.NoError(t, s.HandleCommand(input.CmdScreenshot))
	assert.True(t, s.capture)
	assert.NoError(t, s.HandleCommand(input.CmdCycleColor))
	assert.NoError(t, s.Update(1.0/60))
	assert.Equal(t, "triangle", s.Name())
}

func TestKeymapUsesCommonBindings(t *testing.T) {
	s := NewScene(config.Default(), nil)
	km := input.Common().Merge(s.Keymap())
	assert.Equal(t, input.Common().Pressed, km.Pressed)
	assert.Empty(t, km.Held)
}
