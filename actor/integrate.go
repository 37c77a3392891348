package actor

import (
	"math"

	"github.com/akmonengine/glide/geometry"
)

// TickResult reports what happened to an entity during one fixed tick
type TickResult struct {
	Contacts   int  // triangles the entity was pushed out of
	Landed     bool // grounded now, airborne before the tick
	LeftGround bool // airborne now, grounded before the tick
	Jumped     bool // a pending jump fired
}

// PreFixedUpdate stores the position used as the start of render interpolation.
// It is called once before a burst of ticks, not before each tick.
func (e *Entity) PreFixedUpdate() {
	e.PreviousPosition = e.Position
}

// FixedUpdate advances the entity by one tick against the level triangles.
//
// Order of operations:
//  1. gravity
//  2. movement intent, damped while airborne
//  3. friction and drag
//  4. position integration
//  5. contact resolution against every triangle, in order
//  6. jump grace countdown and jump impulse
//
// Contacts are resolved one triangle at a time with the position already corrected by
// the previous ones, so the result depends on the triangle order.
func (e *Entity) FixedUpdate(triangles []geometry.Triangle) TickResult {
	m := e.Descriptor.Movement
	wasGrounded := e.IsGrounded

	// Gravity
	e.Velocity[2] -= m.Gravity

	// Movement
	mov := e.movementDir.Mul(m.MoveSpeed)
	if e.IsGrounded {
		e.Velocity = e.Velocity.Add(mov)
	} else {
		scale := m.AirControl
		speed := e.Velocity.Len()
		if speed > m.AirBrakeSpeed && e.Velocity.Add(mov).Len() > speed {
			scale *= m.AirBrakeFactor
		}
		e.Velocity = e.Velocity.Add(mov.Mul(scale))
	}

	// Friction / drag
	horizontal := m.AirFriction
	if e.IsGrounded {
		horizontal = m.GroundFriction
	}
	e.Velocity[0] *= horizontal
	e.Velocity[1] *= horizontal
	e.Velocity[2] *= m.VerticalDrag

	e.Position = e.Position.Add(e.Velocity)

	// Contacts
	var result TickResult
	e.IsGrounded = false

	for _, tri := range triangles {
		if contact, ok := e.Descriptor.Collider.Intersect(e.Position, tri); ok {
			// slide: drop the velocity along the normal, then push out of the triangle
			e.Velocity = e.Velocity.Sub(contact.Normal.Mul(e.Velocity.Dot(contact.Normal)))
			e.Position = e.Position.Add(contact.Normal.Mul(contact.Depth))
			result.Contacts++

			if contact.Normal.Z() > 0 {
				e.IsGrounded = true
			}
		}

		if e.Velocity.Len() < m.RestVelocity {
			break
		}
	}

	// Jumping
	if e.JumpGraceTicks > 0 {
		e.JumpGraceTicks--
	}
	if e.IsGrounded && e.JumpGraceTicks > 0 {
		e.Velocity[2] += math.Max(m.JumpImpulse-e.Velocity.Z()*m.JumpCarry, 0.0)
		e.JumpGraceTicks = 0
		result.Jumped = true
	}
	e.ShouldJump = false

	result.Landed = !wasGrounded && e.IsGrounded
	result.LeftGround = wasGrounded && !e.IsGrounded

	return result
}
