package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// IntentFromInput turns directional input into a horizontal movement intent.
// forward and right are the input axes (usually -1, 0 or 1) relative to the view;
// yaw is the view yaw. No input gives the zero vector.
func IntentFromInput(forward, right, yaw float64) mgl64.Vec3 {
	if forward == 0 && right == 0 {
		return mgl64.Vec3{}
	}

	strafe := math.Atan2(forward, right)
	return mgl64.Vec3{math.Cos(yaw + strafe), math.Sin(yaw + strafe), 0}
}

// SpawnProjectile creates an entity of kind desc one unit in front of the shooter's
// eyes, moving along the shooter's facing at speed per tick
func SpawnProjectile(shooter *Entity, desc Descriptor, speed float64) (*Entity, error) {
	facing := shooter.Facing()

	return NewEntity(desc, shooter.EyePosition().Add(facing), mgl64.Vec2{}, facing.Mul(speed))
}
