// Package cubes is the lit cube demo: a pulsing centre cube with a revolving
// diamond cube, or a 3x3x3 arrangement whose top layer turns a quarter at a
// time.
//
// Rig holds the animation, camera, light and colour state and never touches
// GL; Scene renders it.
package cubes

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/engine/animation"
	"github.com/Faultbox/gldemos/internal/engine/camera"
	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/engine/lighting"
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/logger"
	"github.com/Faultbox/gldemos/pkg/math"
)

// Layout selects what the rig draws.
type Layout int

const (
	// LayoutDiamond is the centre cube with the revolving diamond.
	LayoutDiamond Layout = iota
	// LayoutCubelets is the 3x3x3 arrangement.
	LayoutCubelets
)

func (l Layout) String() string {
	if l == LayoutCubelets {
		return "cubelets"
	}
	return "diamond"
}

const (
	// ShininessStep is the change of one shininess command.
	ShininessStep = 5

	// StrengthStep is the change of one ambient, diffuse or specular command.
	StrengthStep = 0.05

	// CubeletSize is the edge of one cubelet; the gap to its neighbours is
	// 1 - CubeletSize.
	CubeletSize = 0.95

	diamondScale = 0.25
)

// diamondOffset is where the diamond sits before the global spin.
var diamondOffset = math.Vec3{X: 1, Y: 1}

// Rig is the cube demo state.
type Rig struct {
	Clock     *animation.Clock
	Direction animation.RollDirection
	Camera    *camera.OrbitCamera
	Light     lighting.Light
	Material  lighting.Material

	ColorIndex int
	Layout     Layout

	// Term is the material weight the strength commands adjust.
	Term       lighting.Term
	LightIndex int

	log *zap.Logger
}

// NewRig builds the rig from configuration with a stopped clock.
func NewRig(cfg config.CubesConfig) *Rig {
	r := &Rig{
		Clock:     animation.NewClock(),
		Direction: animation.Forward,
		Camera: camera.NewOrbitCamera(camera.Config{
			Distance:     cfg.Camera.Distance,
			Azimuth:      math.DegToRad(cfg.Camera.AzimuthDeg),
			Elevation:    math.DegToRad(cfg.Camera.ElevationDeg),
			HeightOffset: cfg.Camera.HeightOffset,
		}),
		log: logger.Named("cubes"),
	}
	r.Light, r.Material = lighting.FromConfig(cfg.Light)
	return r
}

// Step advances the animation by one tick.
func (r *Rig) Step(dt float32) {
	if r.Clock.Advance(dt, r.Direction) {
		r.log.Debug("animation stopped", zap.Float32("time", r.Clock.Time()))
	}
}

// Apply runs a rig or camera command. It reports whether cmd was one.
func (r *Rig) Apply(cmd input.Command) bool {
	switch cmd {
	case input.CmdAzimuthLeft:
		r.Camera.DecreaseAzimuth()
	case input.CmdAzimuthRight:
		r.Camera.IncreaseAzimuth()
	case input.CmdZoomIn:
		r.Camera.DecreaseDistance()
	case input.CmdZoomOut:
		r.Camera.IncreaseDistance()
	case input.CmdElevationUp:
		r.Camera.IncreaseElevation()
	case input.CmdElevationDown:
		r.Camera.DecreaseElevation()
	case input.CmdToggleAnimation:
		r.Clock.Toggle(r.Direction)
		r.log.Debug("animation toggled", zap.Stringer("state", r.Clock.State()))
	case input.CmdReverseRoll:
		r.Direction = r.Direction.Reverse()
	case input.CmdCycleColor:
		r.CycleColor()
	case input.CmdShininessUp:
		r.Material.AdjustShininess(ShininessStep)
	case input.CmdShininessDown:
		r.Material.AdjustShininess(-ShininessStep)
	case input.CmdCycleTerm:
		r.Term = r.Term.Next()
	case input.CmdTermUp:
		r.Material.AdjustStrength(r.Term, StrengthStep)
	case input.CmdTermDown:
		r.Material.AdjustStrength(r.Term, -StrengthStep)
	case input.CmdCycleLightColor:
		r.CycleLightColor()
	case input.CmdToggleLayout:
		if r.Layout == LayoutDiamond {
			r.Layout = LayoutCubelets
		} else {
			r.Layout = LayoutDiamond
		}
	default:
		return false
	}
	return true
}

// CycleColor moves the centre cube's front face to the next palette colour.
func (r *Rig) CycleColor() int {
	r.ColorIndex = (r.ColorIndex + 1) % len(mesh.Palette)
	return r.ColorIndex
}

// CycleLightColor switches the light to the next preset colour.
func (r *Rig) CycleLightColor() math.Vec3 {
	r.LightIndex = (r.LightIndex + 1) % len(lighting.LightColors)
	r.Light.Color = lighting.LightColors[r.LightIndex]
	return r.Light.Color
}

// BaseFaces is the palette in face order.
func BaseFaces() [6]mesh.Color {
	var faces [6]mesh.Color
	copy(faces[:], mesh.Palette)
	return faces
}

// CenterFaces is BaseFaces with the front face set to the selected colour.
func (r *Rig) CenterFaces() [6]mesh.Color {
	faces := BaseFaces()
	faces[mesh.Front] = mesh.Palette[r.ColorIndex]
	return faces
}

// CenterModel pulses the centre cube in place.
func (r *Rig) CenterModel() math.Mat4 {
	return math.UniformScale(r.Clock.CenterScale())
}

// DiamondModel stands a small cube on a corner, spins it about its own axis
// and carries it around the world Y axis.
func (r *Rig) DiamondModel() math.Mat4 {
	return math.Chain(
		math.RotateY(r.Clock.GlobalSpinAngle()),
		math.Translate(diamondOffset),
		math.RotateY(r.Clock.OwnSpinAngle()),
		math.RotateZ(math.Pi/4),
		math.RotateX(math.Pi/4),
		math.UniformScale(diamondScale),
	)
}

// FrontCenter is the index in Cubelets of the cubelet in the middle of the
// front face.
const FrontCenter = 16

// Cubelets returns the 27 cubelet models, bottom layer first, then back to
// front, then left to right. The top layer turns about Y by the own spin
// angle.
func (r *Rig) Cubelets() []math.Mat4 {
	models := make([]math.Mat4, 0, 27)
	turn := math.RotateY(r.Clock.OwnSpinAngle())
	size := math.UniformScale(CubeletSize)
	for y := -1; y <= 1; y++ {
		for z := -1; z <= 1; z++ {
			for x := -1; x <= 1; x++ {
				m := math.Translate(math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}).Mul(size)
				if y == 1 {
					m = turn.Mul(m)
				}
				models = append(models, m)
			}
		}
	}
	return models
}

// Models returns every model matrix of the current layout, with whether each
// one uses the centre colours.
func (r *Rig) Models() (models []math.Mat4, center []bool) {
	if r.Layout == LayoutCubelets {
		models = r.Cubelets()
		center = make([]bool, len(models))
		center[FrontCenter] = true
		return models, center
	}
	return []math.Mat4{r.CenterModel(), r.DiamondModel()}, []bool{true, false}
}

// Status is the title line: selected colour, material and layout.
func (r *Rig) Status() string {
	return fmt.Sprintf("Cubes | front: %s | shininess: %.0f | %s: %.2f | %s",
		mesh.PaletteNames[r.ColorIndex], r.Material.Shininess,
		r.Term, r.Material.Strength(r.Term), r.Layout)
}
