// Package event carries simulation notifications to presentation and audio.
package event

import "github.com/younwookim/invaders/internal/domain/entity"

// EventType names a kind of event
type EventType string

// Event is a single notification
type Event struct {
	Type EventType
	Data any
}

// Listener receives dispatched events
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously to subscribers
// in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for eventType
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers listener for every type in types
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe removes the first registration of listener for eventType
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch sends event to every subscriber of its type.
// A nil dispatcher drops the event.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Publish is shorthand for Dispatch(Event{Type: t, Data: data})
func (d *Dispatcher) Publish(t EventType, data any) {
	d.Dispatch(Event{Type: t, Data: data})
}

// EntityData identifies the entity an event is about
type EntityData struct {
	ID   entity.EntityID
	Kind entity.Kind
	Pos  entity.Vec2
}

// EntityDataOf snapshots e
func EntityDataOf(e entity.Entity) EntityData {
	h := e.Head()
	return EntityData{ID: h.ID, Kind: h.Kind, Pos: h.Pos}
}

// KillData accompanies EnemyKilled
type KillData struct {
	EntityData
	Awarded    int
	Combo      int
	Multiplier float64
}

// OutcomeData accompanies Victory and GameOver
type OutcomeData struct {
	Score     int
	TimeBonus int
}
