package input

import "github.com/veandco/go-sdl2/sdl"

// Command is a demo action a key can trigger.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdScreenshot

	// Orbit camera.
	CmdAzimuthLeft
	CmdAzimuthRight
	CmdZoomIn
	CmdZoomOut
	CmdElevationUp
	CmdElevationDown

	// Cube rig.
	CmdToggleAnimation
	CmdReverseRoll
	CmdCycleColor
	CmdShininessUp
	CmdShininessDown
	CmdToggleLayout
	CmdCycleTerm
	CmdTermUp
	CmdTermDown
	CmdCycleLightColor

	// Race.
	CmdSwitchCamera
	CmdToggleBounds
	CmdThrottle
	CmdBrake
	CmdSteerLeft
	CmdSteerRight

	cmdCount
)

var commandNames = [...]string{
	CmdNone:            "none",
	CmdQuit:            "quit",
	CmdScreenshot:      "screenshot",
	CmdAzimuthLeft:     "azimuth-left",
	CmdAzimuthRight:    "azimuth-right",
	CmdZoomIn:          "zoom-in",
	CmdZoomOut:         "zoom-out",
	CmdElevationUp:     "elevation-up",
	CmdElevationDown:   "elevation-down",
	CmdToggleAnimation: "toggle-animation",
	CmdReverseRoll:     "reverse-roll",
	CmdCycleColor:      "cycle-color",
	CmdShininessUp:     "shininess-up",
	CmdShininessDown:   "shininess-down",
	CmdToggleLayout:    "toggle-layout",
	CmdCycleTerm:       "cycle-term",
	CmdTermUp:          "term-up",
	CmdTermDown:        "term-down",
	CmdCycleLightColor: "cycle-light-color",
	CmdSwitchCamera:    "switch-camera",
	CmdToggleBounds:    "toggle-bounds",
	CmdThrottle:        "throttle",
	CmdBrake:           "brake",
	CmdSteerLeft:       "steer-left",
	CmdSteerRight:      "steer-right",
}

func (c Command) String() string {
	if c < 0 || c >= cmdCount {
		return "unknown"
	}
	return commandNames[c]
}

// HeldSet records which held-key commands are active this frame.
type HeldSet uint32

// Has reports whether cmd is held.
func (h HeldSet) Has(cmd Command) bool {
	return h&(1<<uint(cmd)) != 0
}

// With returns h with cmd marked held.
func (h HeldSet) With(cmd Command) HeldSet {
	return h | 1<<uint(cmd)
}

// Keymap binds scancodes to commands. Pressed commands fire once per key
// down; Held commands are sampled every frame from the keyboard state.
type Keymap struct {
	Pressed map[sdl.Scancode]Command
	Held    map[Command][]sdl.Scancode
}

// Common holds the bindings every demo shares.
func Common() Keymap {
	return Keymap{
		Pressed: map[sdl.Scancode]Command{
			sdl.SCANCODE_ESCAPE: CmdQuit,
			sdl.SCANCODE_F12:    CmdScreenshot,
		},
	}
}

// Merge returns a keymap with the bindings of both; other wins on conflict.
func (k Keymap) Merge(other Keymap) Keymap {
	out := Keymap{
		Pressed: make(map[sdl.Scancode]Command, len(k.Pressed)+len(other.Pressed)),
		Held:    make(map[Command][]sdl.Scancode, len(k.Held)+len(other.Held)),
	}
	for sc, cmd := range k.Pressed {
		out.Pressed[sc] = cmd
	}
	for sc, cmd := range other.Pressed {
		out.Pressed[sc] = cmd
	}
	for cmd, keys := range k.Held {
		out.Held[cmd] = keys
	}
	for cmd, keys := range other.Held {
		out.Held[cmd] = keys
	}
	return out
}

// Command resolves a key-down event. Key repeats are ignored so toggles do
// not flicker while a key is held.
func (k Keymap) Command(e Event) Command {
	if e.Type != EventKeyDown || e.Repeat {
		return CmdNone
	}
	return k.Pressed[e.Key]
}

// Held samples every held binding through isDown.
func (k Keymap) Held(isDown func(sdl.Scancode) bool) HeldSet {
	var set HeldSet
	for cmd, keys := range k.Held {
		for _, sc := range keys {
			if isDown(sc) {
				set = set.With(cmd)
				break
			}
		}
	}
	return set
}
