package race

import (
	"github.com/Faultbox/gldemos/internal/engine/camera"
	"github.com/Faultbox/gldemos/internal/engine/kinematics"
	"github.com/Faultbox/gldemos/pkg/math"
)

// Resolver is the one-sided collision policy: when the player touches any
// opponent the player goes back to spawn and the opponents carry on.
type Resolver struct {
	Spawn            math.Vec3
	SpawnOrientation float32
}

// Resolve tests player against every npc. On the first overlap it resets
// the player's pose and speed, resets follow (if any) and returns true.
func (r Resolver) Resolve(player *kinematics.Vehicle, npcs []*kinematics.Vehicle, follow *camera.Follow) bool {
	hit := false
	for _, npc := range npcs {
		if player.Box.Intersects(npc.Box) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}

	player.Speed = 0
	player.SteeringAngle = 0
	player.DeltaOrientation = 0
	player.Position = r.Spawn
	player.Orientation = r.SpawnOrientation
	player.UpdateState()

	if follow != nil {
		follow.Reset()
	}
	return true
}
