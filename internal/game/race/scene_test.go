package race

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/engine/kinematics"
	"github.com/Faultbox/gldemos/pkg/math"
)

func TestControlsFromHeldKeys(t *testing.T) {
	km := input.Common().Merge(Keymap())
	down := map[sdl.Scancode]bool{sdl.SCANCODE_W: true, sdl.SCANCODE_LEFT: true}

	c := ControlsFrom(km.Held(func(sc sdl.Scancode) bool { return down[sc] }))

	assert.Equal(t, Controls{Throttle: true, Left: true}, c)
}

func TestKeymapBindings(t *testing.T) {
	km := Keymap()
	assert.Equal(t, input.CmdSwitchCamera, km.Command(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_F5}))
	assert.Equal(t, input.CmdToggleBounds, km.Command(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_B}))
}

func TestBodyMatrixMatchesBox(t *testing.T) {
	v := kinematics.NewVehicle()
	v.Scale = 0.2
	v.SetBoundingBoxDimensions(1.3, 6.4, 2.5)
	v.SetPosition(math.Vec3{X: 26, Y: 1.8})

	m := BodyMatrix(v)
	corner := m.TransformPoint(math.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
	assertVec(t, v.Box.Max, corner)
	corner = m.TransformPoint(math.Vec3{X: -0.5, Y: -0.5, Z: -0.5})
	assertVec(t, v.Box.Min, corner)
}
