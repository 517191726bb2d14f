package lighting

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/pkg/math"
)

func TestAdjustShininess(t *testing.T) {
	tests := []struct {
		start, delta, want float32
	}{
		{50, 10, 60},
		{195, 10, MaxShininess},
		{5, -10, MinShininess},
	}

	for _, tt := range tests {
		m := Material{Shininess: tt.start}
		m.AdjustShininess(tt.delta)
		if m.Shininess != tt.want {
			t.Errorf("AdjustShininess(%v) from %v = %v, want %v", tt.delta, tt.start, m.Shininess, tt.want)
		}
	}
}

func TestAdjustStrength(t *testing.T) {
	tests := []struct {
		term  Term
		delta float32
		want  float32
	}{
		{Ambient, 0.1, 0.3},
		{Diffuse, -0.5, 0},
		{Specular, 0.7, 1},
	}

	for _, tt := range tests {
		m := Material{Ambient: 0.2, Diffuse: 0.3, Specular: 0.5}
		if got := m.AdjustStrength(tt.term, tt.delta); math32.Abs(got-tt.want) > 1e-6 {
			t.Errorf("AdjustStrength(%v, %v) = %v, want %v", tt.term, tt.delta, got, tt.want)
		}
		if math32.Abs(m.Strength(tt.term)-tt.want) > 1e-6 {
			t.Errorf("Strength(%v) = %v, want %v", tt.term, m.Strength(tt.term), tt.want)
		}
	}
}

func TestTermCycle(t *testing.T) {
	if Ambient.Next() != Diffuse || Diffuse.Next() != Specular || Specular.Next() != Ambient {
		t.Error("terms should cycle ambient, diffuse, specular")
	}
	if Specular.String() != "specular" || termCount.String() != "unknown" {
		t.Errorf("unexpected names %q %q", Specular.String(), termCount.String())
	}
}

func TestClamp(t *testing.T) {
	m := Material{Shininess: 0, Ambient: -1, Diffuse: 2, Specular: 0.5}
	m.Clamp()
	want := Material{Shininess: MinShininess, Ambient: 0, Diffuse: 1, Specular: 0.5}
	if m != want {
		t.Errorf("Clamp() = %+v, want %+v", m, want)
	}
}

func TestDefaults(t *testing.T) {
	m := DefaultMaterial()
	if m.Shininess != 50 || m.Ambient != 0.2 {
		t.Errorf("unexpected default material %+v", m)
	}
	if DefaultLight().Color.X != 1 {
		t.Error("default light should be white")
	}
}

func TestFromConfig(t *testing.T) {
	l, m := FromConfig(config.LightConfig{
		Position:  [3]float32{0, 2, 0},
		Color:     [3]float32{1, 0.5, 0.25},
		Shininess: 500,
		Ambient:   0.2,
		Diffuse:   -1,
		Specular:  0.5,
	})

	if l.Position != (math.Vec3{Y: 2}) {
		t.Errorf("Position = %v", l.Position)
	}
	if l.Color != (math.Vec3{X: 1, Y: 0.5, Z: 0.25}) {
		t.Errorf("Color = %v", l.Color)
	}
	want := Material{Shininess: MaxShininess, Ambient: 0.2, Diffuse: 0, Specular: 0.5}
	if m != want {
		t.Errorf("Material = %+v, want %+v", m, want)
	}
}
