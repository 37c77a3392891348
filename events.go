package glide

import (
	"sync"

	"github.com/akmonengine/glide/actor"
	"github.com/akmonengine/glide/level"
)

const (
	LAND EventType = iota
	TAKEOFF
	JUMP
	LEVEL_SWAP
)

type EventType uint8

func (t EventType) String() string {
	switch t {
	case LAND:
		return "land"
	case TAKEOFF:
		return "takeoff"
	case JUMP:
		return "jump"
	case LEVEL_SWAP:
		return "level_swap"
	default:
		return "unknown"
	}
}

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Grounded state events
type LandEvent struct {
	Entity *actor.Entity
	Tick   uint64
}

func (e LandEvent) Type() EventType { return LAND }

type TakeoffEvent struct {
	Entity *actor.Entity
	Tick   uint64
}

func (e TakeoffEvent) Type() EventType { return TAKEOFF }

type JumpEvent struct {
	Entity *actor.Entity
	Tick   uint64
}

func (e JumpEvent) Type() EventType { return JUMP }

// LevelSwapEvent is sent after SetLevel replaced the level; Previous is nil for the first one
type LevelSwapEvent struct {
	Previous *level.Level
	Current  *level.Level
}

func (e LevelSwapEvent) Type() EventType { return LEVEL_SWAP }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush. Level swaps may come from another goroutine.
	mu     sync.Mutex
	buffer []Event
	ready  []Event
}

func NewEvents() *Events {
	return &Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 64),
	}
}

// Subscribe adds a listener for an event type.
// Listeners are called from Flush, on the goroutine driving the simulation.
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.mu.Lock()
	e.buffer = append(e.buffer, event)
	e.mu.Unlock()
}

// recordTick turns the result of one entity tick into events
func (e *Events) recordTick(entity *actor.Entity, tick uint64, result actor.TickResult) {
	if result.Landed {
		e.emit(LandEvent{Entity: entity, Tick: tick})
	}
	if result.LeftGround {
		e.emit(TakeoffEvent{Entity: entity, Tick: tick})
	}
	if result.Jumped {
		e.emit(JumpEvent{Entity: entity, Tick: tick})
	}
}

func (e *Events) emitLevelSwap(previous, current *level.Level) {
	e.emit(LevelSwapEvent{Previous: previous, Current: current})
}

// Flush sends all buffered events in the order they were recorded and clears the buffer
func (e *Events) Flush() {
	e.mu.Lock()
	e.ready, e.buffer = e.buffer, e.ready[:0]
	e.mu.Unlock()

	for _, event := range e.ready {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	clear(e.ready)
	e.ready = e.ready[:0]
}

// Pending is the number of buffered events not yet flushed
func (e *Events) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.buffer)
}
