package glide

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/akmonengine/glide/actor"
	"github.com/akmonengine/glide/geometry"
	"github.com/akmonengine/glide/level"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

const DEFAULT_WORKERS = 1

var ErrNilLevel = errors.New("nil level")

type World struct {
	// List of all entities, ticked in this order
	Entities []*actor.Entity
	Workers  int

	Events *Events
	Logger *zap.Logger

	// level is swapped as a whole, a tick always sees a single level
	level   atomic.Pointer[level.Level]
	ticks   uint64
	results []actor.TickResult
}

func NewWorld() *World {
	return &World{
		Workers: DEFAULT_WORKERS,
		Events:  NewEvents(),
		Logger:  zap.NewNop(),
	}
}

// AddEntity adds an entity to the world
func (w *World) AddEntity(entity *actor.Entity) {
	w.Entities = append(w.Entities, entity)
}

// RemoveEntity removes an entity from the world, keeping the order of the others
func (w *World) RemoveEntity(entity *actor.Entity) {
	k := -1
	for i, e := range w.Entities {
		if e == entity {
			k = i
			break
		}
	}

	if k != -1 {
		w.Entities = append(w.Entities[:k], w.Entities[k+1:]...)
	}
}

// SetLevel replaces the level the entities collide with.
// A nil level is rejected and the current one is kept. The swap is atomic: a tick
// running concurrently finishes on the level it started with.
func (w *World) SetLevel(l *level.Level) error {
	if l == nil {
		w.logger().Warn("level swap rejected", zap.Error(ErrNilLevel))
		return fmt.Errorf("set level: %w", ErrNilLevel)
	}

	previous := w.level.Swap(l)
	w.logger().Info("level swapped",
		zap.Int("triangles", l.Len()),
		zap.Int("points", len(l.Points())),
	)
	w.events().emitLevelSwap(previous, l)

	return nil
}

// Level returns the current level, nil before the first SetLevel
func (w *World) Level() *level.Level {
	return w.level.Load()
}

// Respawn places the entity at a named point of the current level and stops it
func (w *World) Respawn(entity *actor.Entity, point string) error {
	l := w.level.Load()
	if l == nil {
		return fmt.Errorf("respawn at %q: %w", point, ErrNilLevel)
	}

	position, ok := l.Point(point)
	if !ok {
		return fmt.Errorf("respawn at %q: %w", point, level.ErrUnknownPoint)
	}

	entity.Position = position
	entity.PreviousPosition = position
	entity.Velocity = mgl64.Vec3{}
	entity.IsGrounded = false
	entity.ShouldJump = false
	entity.JumpGraceTicks = 0

	return nil
}

// PreTick stores every entity position as the start of the next interpolation
func (w *World) PreTick() {
	for _, entity := range w.Entities {
		entity.PreFixedUpdate()
	}
}

// Tick advances every entity by one fixed tick against the current level.
// Entities do not interact, so they are split across the workers; each entity still
// resolves its contacts sequentially. Events are recorded in entity order.
func (w *World) Tick() {
	w.Workers = max(DEFAULT_WORKERS, w.Workers)

	var triangles []geometry.Triangle
	if l := w.level.Load(); l != nil {
		triangles = l.Triangles()
	}

	if cap(w.results) < len(w.Entities) {
		w.results = make([]actor.TickResult, len(w.Entities))
	}
	w.results = w.results[:len(w.Entities)]

	task(w.Workers, w.Entities, func(i int, entity *actor.Entity) {
		w.results[i] = entity.FixedUpdate(triangles)
	})

	w.ticks++
	events := w.events()
	for i, entity := range w.Entities {
		events.recordTick(entity, w.ticks, w.results[i])
	}
}

// TickCount is the number of ticks run since the world was created
func (w *World) TickCount() uint64 {
	return w.ticks
}

func (w *World) logger() *zap.Logger {
	if w.Logger == nil {
		w.Logger = zap.NewNop()
	}
	return w.Logger
}

func (w *World) events() *Events {
	if w.Events == nil {
		w.Events = NewEvents()
	}
	return w.Events
}
