package actor

import (
	"fmt"
	"math"

	"github.com/akmonengine/glide/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// Pitch limits, in radians from straight down
const (
	MinPitch = 0.1
	MaxPitch = 3.0
)

// Entity is a dynamic body moving through the level
type Entity struct {
	Descriptor Descriptor

	// Spatial properties
	PreviousPosition mgl64.Vec3
	Position         mgl64.Vec3
	Rotation         mgl64.Vec2 // X is the pitch, Y the yaw

	Velocity    mgl64.Vec3 // distance per tick
	movementDir mgl64.Vec3

	IsGrounded     bool
	ShouldJump     bool
	JumpGraceTicks int
}

// NewEntity creates an entity of the given kind.
// The descriptor is validated here, so a bad collider never reaches the integrator.
func NewEntity(desc Descriptor, position mgl64.Vec3, rotation mgl64.Vec2, velocity mgl64.Vec3) (*Entity, error) {
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("new entity: %w", err)
	}

	return &Entity{
		Descriptor:       desc,
		PreviousPosition: position,
		Position:         position,
		Rotation:         rotation,
		Velocity:         velocity,
	}, nil
}

// SetMovementDir sets the movement intent; a non-zero dir is normalized
func (e *Entity) SetMovementDir(dir mgl64.Vec3) {
	if dir.Len() < geometry.Epsilon {
		e.movementDir = mgl64.Vec3{}
		return
	}
	e.movementDir = dir.Normalize()
}

func (e *Entity) MovementDir() mgl64.Vec3 {
	return e.movementDir
}

// Jump requests a jump. The request stays pending for JumpGraceTicks ticks and
// fires on the first of them where the entity is grounded.
func (e *Entity) Jump() {
	e.ShouldJump = true
	e.JumpGraceTicks = e.Descriptor.Movement.JumpGraceTicks
}

func ClampPitch(pitch float64) float64 {
	return math.Max(MinPitch, math.Min(MaxPitch, pitch))
}

// Look turns the entity, keeping the pitch within [MinPitch, MaxPitch]
func (e *Entity) Look(deltaPitch, deltaYaw float64) {
	e.Rotation[0] = ClampPitch(e.Rotation[0] + deltaPitch)
	e.Rotation[1] += deltaYaw
}

// Facing is the unit view direction. A pitch of 0 looks straight down, Pi/2 at the
// horizon; a yaw of 0 looks along +Y.
func (e *Entity) Facing() mgl64.Vec3 {
	pitch, yaw := e.Rotation[0], e.Rotation[1]
	horizontal := math.Abs(math.Sin(pitch))

	return mgl64.Vec3{
		-math.Sin(yaw) * horizontal,
		math.Cos(yaw) * horizontal,
		-math.Cos(pitch),
	}.Normalize()
}

func (e *Entity) EyePosition() mgl64.Vec3 {
	return e.Position.Add(geometry.Up.Mul(e.Descriptor.EyeOffset))
}

// Collider returns the collision shape at the current position
func (e *Entity) Collider() geometry.Solid {
	return e.Descriptor.Collider.At(e.Position)
}

// InterpolatedPosition blends the previous and the current tick positions.
// alpha is the fraction of the timestep elapsed since the last tick.
func (e *Entity) InterpolatedPosition(alpha float64) mgl64.Vec3 {
	return e.Position.Mul(alpha).Add(e.PreviousPosition.Mul(1.0 - alpha))
}

// Snapshot is what a renderer reads from an entity
type Snapshot struct {
	Position   mgl64.Vec3
	Eye        mgl64.Vec3
	Rotation   mgl64.Vec2
	Collider   geometry.Solid
	IsGrounded bool
}

func (e *Entity) Snapshot(alpha float64) Snapshot {
	position := e.InterpolatedPosition(alpha)

	return Snapshot{
		Position:   position,
		Eye:        position.Add(geometry.Up.Mul(e.Descriptor.EyeOffset)),
		Rotation:   e.Rotation,
		Collider:   e.Descriptor.Collider.At(position),
		IsGrounded: e.IsGrounded,
	}
}
