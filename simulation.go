package glide

import (
	"errors"
	"fmt"
	"time"

	"github.com/akmonengine/glide/actor"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// LongBurst is the number of ticks in a single Advance above which the catch-up is logged
const LongBurst = 10

var ErrInvalidTickRate = errors.New("invalid tick rate")

// Simulation drives a World at a fixed tick rate from variable frame times.
//
// Frame time accumulates until it exceeds one timestep; the world then ticks as many
// times as fit, and the remainder is exposed as Alpha for render interpolation.
// Entity tuning is per tick, so the tick rate is part of how movement feels:
// actor.DefaultMovement is calibrated for actor.DefaultTickRate.
type Simulation struct {
	World *World

	timestep    time.Duration
	accumulator time.Duration
	ticks       uint64
}

func NewSimulation(world *World, tickRate int) (*Simulation, error) {
	var timestep time.Duration
	if tickRate > 0 {
		timestep = time.Second / time.Duration(tickRate)
	}
	// above one tick per nanosecond the timestep truncates to zero
	if timestep <= 0 {
		return nil, fmt.Errorf("new simulation: %d ticks per second: %w", tickRate, ErrInvalidTickRate)
	}
	if world == nil {
		world = NewWorld()
	}

	return &Simulation{
		World:    world,
		timestep: timestep,
	}, nil
}

// Advance adds elapsed to the accumulator and runs every whole tick it now holds.
// Positions are stored for interpolation once, before the first tick of the burst.
// Buffered events are flushed before returning. It returns the number of ticks run.
func (s *Simulation) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		s.accumulator += elapsed
	}

	ticks := 0
	if s.accumulator > s.timestep {
		s.World.PreTick()

		for s.accumulator > s.timestep {
			s.World.Tick()
			s.accumulator -= s.timestep
			ticks++
		}
	}
	s.ticks += uint64(ticks)

	if ticks > LongBurst {
		s.World.logger().Debug("simulation catching up",
			zap.Int("ticks", ticks),
			zap.Duration("elapsed", elapsed),
		)
	}

	s.World.events().Flush()

	return ticks
}

// Alpha is the fraction of a timestep left in the accumulator, used to blend the
// previous and current positions. It stays within [0, 1] after Advance.
func (s *Simulation) Alpha() float64 {
	return float64(s.accumulator) / float64(s.timestep)
}

func (s *Simulation) Timestep() time.Duration {
	return s.timestep
}

// TickCount is the number of ticks run by Advance since creation or the last Reset
func (s *Simulation) TickCount() uint64 {
	return s.ticks
}

// Reset empties the accumulator, for instance after a level reload or a long pause
func (s *Simulation) Reset() {
	s.accumulator = 0
	s.ticks = 0
}

// Interpolate returns the render position of entity for the current Alpha
func (s *Simulation) Interpolate(entity *actor.Entity) mgl64.Vec3 {
	return entity.InterpolatedPosition(s.Alpha())
}
