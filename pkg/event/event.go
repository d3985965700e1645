// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	SessionStarted    Type = "session_started"
	ObstacleSpawned   Type = "obstacle_spawned"
	PropulsionStarted Type = "propulsion_started"
	PropulsionStopped Type = "propulsion_stopped"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies one registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching.
// Handlers run synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	var once sync.Once
	return &Subscription{
		ID: id,
		Cancel: func() {
			once.Do(func() { b.Unsubscribe(eventType, id) })
		},
	}
}

// Unsubscribe removes the handler registered under id for eventType.
// Unknown ids are ignored.
func (b *Bus) Unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	registrations := b.handlers[eventType]
	for i, r := range registrations {
		if r.id != id {
			continue
		}
		remaining := make([]registration, 0, len(registrations)-1)
		remaining = append(remaining, registrations[:i]...)
		remaining = append(remaining, registrations[i+1:]...)
		if len(remaining) == 0 {
			delete(b.handlers, eventType)
		} else {
			b.handlers[eventType] = remaining
		}
		return
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	registrations := b.handlers[event.GetType()]
	b.mu.RUnlock()

	// The slice is never mutated in place, so handlers may unsubscribe while
	// we iterate.
	for _, r := range registrations {
		r.handler(event)
	}
}

// Specific event implementations

// SessionEvent is published once a simulation finished spawning its
// initial obstacles.
type SessionEvent struct {
	BaseEvent
	SessionID     string
	Seed          uint64
	ObstacleCount int
}

// NewSessionEvent creates a new session event
func NewSessionEvent(source interface{}, sessionID string, seed uint64, obstacleCount int) *SessionEvent {
	return &SessionEvent{
		BaseEvent: BaseEvent{
			EventType: SessionStarted,
			Source:    source,
		},
		SessionID:     sessionID,
		Seed:          seed,
		ObstacleCount: obstacleCount,
	}
}

// ObstacleEvent describes an obstacle accepted into the world. Attempts
// counts the candidates drawn, including the accepted one.
type ObstacleEvent struct {
	BaseEvent
	ObstacleID uint64
	Size       float64
	Attempts   int
}

// NewObstacleEvent creates a new obstacle event
func NewObstacleEvent(source interface{}, obstacleID uint64, size float64, attempts int) *ObstacleEvent {
	return &ObstacleEvent{
		BaseEvent: BaseEvent{
			EventType: ObstacleSpawned,
			Source:    source,
		},
		ObstacleID: obstacleID,
		Size:       size,
		Attempts:   attempts,
	}
}

// PropulsionEvent reports an engine state change of the craft.
type PropulsionEvent struct {
	BaseEvent
	CraftID uint64
	Tick    uint64
}

// NewPropulsionEvent creates a new propulsion event
func NewPropulsionEvent(eventType Type, source interface{}, craftID, tick uint64) *PropulsionEvent {
	return &PropulsionEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		CraftID: craftID,
		Tick:    tick,
	}
}
