package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/gldemos/pkg/math"
)

func TestUpdate(t *testing.T) {
	b := NewAABB(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: 2, Y: 4, Z: 6})
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 0}, b.Min)
	assert.Equal(t, math.Vec3{X: 2, Y: 4, Z: 6}, b.Max)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, b.Center())
	assert.Equal(t, math.Vec3{X: 2, Y: 4, Z: 6}, b.Size())

	// Update is idempotent.
	b.Update(math.Vec3{X: 1, Y: 2, Z: 3}, math.Vec3{X: 2, Y: 4, Z: 6})
	assert.Equal(t, math.Vec3{}, b.Min)
}

func TestIntersects(t *testing.T) {
	unit := math.Vec3{X: 1, Y: 1, Z: 1}
	origin := NewAABB(math.Vec3{}, unit)

	tests := []struct {
		name  string
		other AABB
		want  bool
	}{
		{"identical", origin, true},
		{"partial overlap", NewAABB(math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, unit), true},
		{"contained", NewAABB(math.Vec3{}, unit.Scale(0.1)), true},
		{"containing", NewAABB(math.Vec3{}, unit.Scale(10)), true},
		{"apart on x", NewAABB(math.Vec3{X: 3}, unit), false},
		{"apart on y", NewAABB(math.Vec3{Y: -3}, unit), false},
		{"apart on z", NewAABB(math.Vec3{Z: 3}, unit), false},
		{"shared face on x", NewAABB(math.Vec3{X: 1}, unit), false},
		{"shared face on y", NewAABB(math.Vec3{Y: 1}, unit), false},
		{"shared face on z", NewAABB(math.Vec3{Z: -1}, unit), false},
		{"overlap on two axes only", NewAABB(math.Vec3{X: 0.2, Y: 0.2, Z: 5}, unit), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, origin.Intersects(tt.other))
			assert.Equal(t, tt.want, tt.other.Intersects(origin), "intersection must be symmetric")
		})
	}
}

func TestSharedBoundaryPlane(t *testing.T) {
	a := AABB{Min: math.Vec3{X: 0, Y: 0, Z: 0}, Max: math.Vec3{X: 2, Y: 2, Z: 2}}
	b := AABB{Min: math.Vec3{X: 2, Y: 0.5, Z: 0.5}, Max: math.Vec3{X: 4, Y: 1.5, Z: 1.5}}

	assert.Equal(t, a.Max.X, b.Min.X)
	assert.False(t, a.Intersects(b))
	assert.False(t, b.Intersects(a))
}

func TestContains(t *testing.T) {
	b := NewAABB(math.Vec3{}, math.Vec3{X: 2, Y: 2, Z: 2})
	assert.True(t, b.Contains(math.Vec3{}))
	assert.True(t, b.Contains(math.Vec3{X: 1, Y: 1, Z: 1}))
	assert.False(t, b.Contains(math.Vec3{X: 1.01}))
}
