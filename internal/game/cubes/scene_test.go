package cubes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/gldemos/internal/engine/input"
)

func TestKeymap(t *testing.T) {
	km := input.Common().Merge(Keymap())

	tests := []struct {
		key  sdl.Scancode
		want input.Command
	}{
		{sdl.SCANCODE_LEFT, input.CmdAzimuthLeft},
		{sdl.SCANCODE_RIGHT, input.CmdAzimuthRight},
		{sdl.SCANCODE_UP, input.CmdZoomIn},
		{sdl.SCANCODE_DOWN, input.CmdZoomOut},
		{sdl.SCANCODE_U, input.CmdElevationUp},
		{sdl.SCANCODE_D, input.CmdElevationDown},
		{sdl.SCANCODE_SPACE, input.CmdToggleAnimation},
		{sdl.SCANCODE_R, input.CmdReverseRoll},
		{sdl.SCANCODE_C, input.CmdCycleColor},
		{sdl.SCANCODE_L, input.CmdToggleLayout},
		{sdl.SCANCODE_ESCAPE, input.CmdQuit},
		{sdl.SCANCODE_W, input.CmdNone},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := km.Command(input.Event{Type: input.EventKeyDown, Key: tt.key})
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Empty(t, Keymap().Held)
}

func TestEveryBindingIsARigCommand(t *testing.T) {
	for key, cmd := range Keymap().Pressed {
		r := newRig(t)
		assert.True(t, r.Apply(cmd), "key %d", key)
	}
}
