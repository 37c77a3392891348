package actor

import (
	"errors"
	"fmt"
)

var ErrInvalidDescriptor = errors.New("invalid descriptor")

// Movement holds the per-tick tuning of the integrator.
// Every value is expressed per fixed tick and calibrated for DefaultTickRate: changing
// the tick rate without rescaling them changes how movement feels.
type Movement struct {
	Gravity   float64 `yaml:"gravity"`    // subtracted from the vertical velocity every tick
	MoveSpeed float64 `yaml:"move_speed"` // acceleration along the intent direction

	AirControl     float64 `yaml:"air_control"`      // share of MoveSpeed applied while airborne
	AirBrakeSpeed  float64 `yaml:"air_brake_speed"`  // speed above which airborne input may not add speed freely
	AirBrakeFactor float64 `yaml:"air_brake_factor"` // extra scale of airborne input that would add speed above AirBrakeSpeed

	GroundFriction float64 `yaml:"ground_friction"` // horizontal velocity multiplier while grounded
	AirFriction    float64 `yaml:"air_friction"`    // horizontal velocity multiplier while airborne
	VerticalDrag   float64 `yaml:"vertical_drag"`   // vertical velocity multiplier, always applied

	JumpImpulse    float64 `yaml:"jump_impulse"`
	JumpCarry      float64 `yaml:"jump_carry"` // share of the vertical velocity removed from the impulse
	JumpGraceTicks int     `yaml:"jump_grace_ticks"`

	RestVelocity float64 `yaml:"rest_velocity"` // contact scan stops once the speed falls below it
}

// DefaultTickRate is the tick rate, in ticks per second, DefaultMovement is tuned for
const DefaultTickRate = 100

func DefaultMovement() Movement {
	return Movement{
		Gravity:        0.002,
		MoveSpeed:      0.01,
		AirControl:     0.4,
		AirBrakeSpeed:  0.07,
		AirBrakeFactor: 0.1,
		GroundFriction: 0.88,
		AirFriction:    0.994,
		VerticalDrag:   0.994,
		JumpImpulse:    0.1,
		JumpCarry:      0.2,
		JumpGraceTicks: 15,
		RestVelocity:   0.0001,
	}
}

func (m Movement) validate() error {
	values := map[string]float64{
		"gravity":          m.Gravity,
		"move_speed":       m.MoveSpeed,
		"air_control":      m.AirControl,
		"air_brake_speed":  m.AirBrakeSpeed,
		"air_brake_factor": m.AirBrakeFactor,
		"ground_friction":  m.GroundFriction,
		"air_friction":     m.AirFriction,
		"vertical_drag":    m.VerticalDrag,
		"jump_impulse":     m.JumpImpulse,
		"jump_carry":       m.JumpCarry,
		"rest_velocity":    m.RestVelocity,
	}
	for name, value := range values {
		if value < 0 {
			return fmt.Errorf("%s = %v is negative: %w", name, value, ErrInvalidDescriptor)
		}
	}
	if m.JumpGraceTicks < 0 {
		return fmt.Errorf("jump_grace_ticks = %d is negative: %w", m.JumpGraceTicks, ErrInvalidDescriptor)
	}

	return nil
}

// Descriptor describes a kind of entity: its collider, where its eyes are and how it moves
type Descriptor struct {
	Name      string
	Collider  Collider
	EyeOffset float64
	Movement  Movement
}

func (d Descriptor) Validate() error {
	if d.Collider == nil {
		return fmt.Errorf("%s: no collider: %w", d.Name, ErrInvalidDescriptor)
	}
	if err := d.Collider.validate(); err != nil {
		return fmt.Errorf("%s: %w: %w", d.Name, ErrInvalidDescriptor, err)
	}
	if err := d.Movement.validate(); err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}

	return nil
}

// PlayerDescriptor is the player: a 1.8 tall capsule of radius 0.5, eyes at 1.6
func PlayerDescriptor() Descriptor {
	return Descriptor{
		Name:      "player",
		Collider:  CapsuleCollider{Radius: 0.5, Height: 1.8},
		EyeOffset: 1.6,
		Movement:  DefaultMovement(),
	}
}

// TestSphereDescriptor is the unit-radius ball thrown around to test collisions
func TestSphereDescriptor() Descriptor {
	return Descriptor{
		Name:      "test_sphere",
		Collider:  SphereCollider{Radius: 1.0},
		EyeOffset: 0.0,
		Movement:  DefaultMovement(),
	}
}
