package shader

import (
	"regexp"
	"testing"
)

func TestTerminate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"uModel", "uModel\x00"},
		{"uModel\x00", "uModel\x00"},
		{"", "\x00"},
	}
	for _, tt := range tests {
		if got := terminate(tt.in); got != tt.want {
			t.Errorf("terminate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProgramSatisfiesUniforms(t *testing.T) {
	var _ Uniforms = (*Program)(nil)
}

func TestSourcesDeclareLightingUniforms(t *testing.T) {
	for _, name := range PhongUniforms {
		if !declares(PhongVertex, name) && !declares(PhongFragment, name) {
			t.Errorf("uniform %q not declared in phong sources", name)
		}
	}
}

func declares(src, name string) bool {
	re := regexp.MustCompile(`uniform\s+\w+\s+` + regexp.QuoteMeta(name) + `\s*;`)
	return re.MatchString(src)
}
