package math

import (
	gomath "math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 || m[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())
	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScaleTransformPoint(t *testing.T) {
	got := Scale(Vec3{2, 3, 4}).TransformPoint(Vec3{1, 1, 1})
	want := Vec3{2, 3, 4}
	if got != want {
		t.Errorf("Scale.TransformPoint: got %v, want %v", got, want)
	}
}

func TestRotations(t *testing.T) {
	quarter := float32(gomath.Pi / 2)
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"Y turns +X to -Z", RotateY(quarter), Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"Y turns +Z to +X", RotateY(quarter), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"X turns +Y to +Z", RotateX(quarter), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"Z turns +X to +Y", RotateZ(quarter), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !near(got, tt.want, 1e-5) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMulOrder(t *testing.T) {
	// T * S scales first, then translates.
	m := Translate(Vec3{10, 0, 0}).Mul(UniformScale(2))
	got := m.TransformPoint(Vec3{1, 0, 0})
	if got != (Vec3{12, 0, 0}) {
		t.Errorf("T*S applied to (1,0,0): got %v, want (12,0,0)", got)
	}

	if Chain(Translate(Vec3{10, 0, 0}), UniformScale(2)) != m {
		t.Error("Chain(a, b) should equal a.Mul(b)")
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(gomath.Pi/4), 1, 0.1, 100)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero focal terms")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{3, 4, 5}
	m := LookAt(eye, Vec3{}, UnitY)

	got := m.TransformPoint(eye)
	if !near(got, Vec3{}, 1e-4) {
		t.Errorf("eye in view space: got %v, want origin", got)
	}

	// The target lies straight down -Z.
	target := m.TransformPoint(Vec3{})
	if abs(target.X) > 1e-4 || abs(target.Y) > 1e-4 || target.Z >= 0 {
		t.Errorf("target in view space: got %v, want (0, 0, -d)", target)
	}
}

func TestNormalMatrix(t *testing.T) {
	t.Run("uniform scale", func(t *testing.T) {
		n := UniformScale(2).NormalMatrix()
		want := Mat3{0.5, 0, 0, 0, 0.5, 0, 0, 0, 0.5}
		for i := range n {
			if abs(n[i]-want[i]) > 1e-6 {
				t.Fatalf("element %d: got %f, want %f", i, n[i], want[i])
			}
		}
	})

	t.Run("rotation is its own normal matrix", func(t *testing.T) {
		r := RotateY(0.7)
		n := r.Mul(Translate(Vec3{4, 5, 6})).NormalMatrix()
		for col := 0; col < 3; col++ {
			for row := 0; row < 3; row++ {
				if abs(n[col*3+row]-r[col*4+row]) > 1e-5 {
					t.Fatalf("(%d,%d): got %f, want %f", row, col, n[col*3+row], r[col*4+row])
				}
			}
		}
	})

	t.Run("singular falls back to identity", func(t *testing.T) {
		if Scale(Vec3{1, 0, 1}).NormalMatrix() != Mat3Identity() {
			t.Error("expected identity for singular matrix")
		}
	})
}

func near(a, b Vec3, eps float32) bool {
	return abs(a.X-b.X) <= eps && abs(a.Y-b.Y) <= eps && abs(a.Z-b.Z) <= eps
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
