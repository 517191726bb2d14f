// Package lighting holds the Phong light and material parameters the
// renderer uploads each frame.
package lighting

import (
	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/pkg/math"
)

// Shininess limits match the range exposed to users.
const (
	MinShininess = 1
	MaxShininess = 200
)

// Light is a single white-ish point light.
type Light struct {
	Position math.Vec3
	Color    math.Vec3
}

// Material weights the ambient, diffuse and specular terms.
type Material struct {
	Shininess float32
	Ambient   float32
	Diffuse   float32
	Specular  float32
}

// DefaultLight returns a white light above the origin.
func DefaultLight() Light {
	return Light{
		Position: math.Vec3{Y: 10},
		Color:    math.Vec3{X: 1, Y: 1, Z: 1},
	}
}

// DefaultMaterial returns the cube demo's starting material.
func DefaultMaterial() Material {
	return Material{
		Shininess: 50,
		Ambient:   0.2,
		Diffuse:   0.3,
		Specular:  0.5,
	}
}

// AdjustShininess changes the specular exponent, clamped to the valid range.
func (m *Material) AdjustShininess(delta float32) {
	m.Shininess = clamp(m.Shininess+delta, MinShininess, MaxShininess)
}

// Term names one of the material's strength weights.
type Term int

const (
	Ambient Term = iota
	Diffuse
	Specular
	termCount
)

func (t Term) String() string {
	switch t {
	case Ambient:
		return "ambient"
	case Diffuse:
		return "diffuse"
	case Specular:
		return "specular"
	}
	return "unknown"
}

// Next returns the following term, wrapping after Specular.
func (t Term) Next() Term {
	return (t + 1) % termCount
}

func (m *Material) term(t Term) *float32 {
	switch t {
	case Diffuse:
		return &m.Diffuse
	case Specular:
		return &m.Specular
	}
	return &m.Ambient
}

// Strength returns the weight of t.
func (m Material) Strength(t Term) float32 {
	return *m.term(t)
}

// AdjustStrength changes the weight of t, clamped to [0, 1], and returns it.
func (m *Material) AdjustStrength(t Term, delta float32) float32 {
	p := m.term(t)
	*p = clamp(*p+delta, 0, 1)
	return *p
}

// LightColors is the set of colours a light can cycle through, white first.
var LightColors = []math.Vec3{
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: 0.85, Z: 0.6},
	{X: 0.6, Y: 0.8, Z: 1},
	{X: 1, Y: 0.3, Z: 0.3},
	{X: 0.3, Y: 1, Z: 0.3},
	{X: 0.3, Y: 0.3, Z: 1},
}

// Clamp forces every strength into [0, 1] and shininess into its range.
func (m *Material) Clamp() {
	m.Shininess = clamp(m.Shininess, MinShininess, MaxShininess)
	m.Ambient = clamp(m.Ambient, 0, 1)
	m.Diffuse = clamp(m.Diffuse, 0, 1)
	m.Specular = clamp(m.Specular, 0, 1)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FromConfig builds the light and its material from a config section. Out of
// range values are clamped.
func FromConfig(c config.LightConfig) (Light, Material) {
	l := Light{
		Position: math.Vec3{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]},
		Color:    math.Vec3{X: c.Color[0], Y: c.Color[1], Z: c.Color[2]},
	}
	m := Material{
		Shininess: c.Shininess,
		Ambient:   c.Ambient,
		Diffuse:   c.Diffuse,
		Specular:  c.Specular,
	}
	m.Clamp()
	return l, m
}
