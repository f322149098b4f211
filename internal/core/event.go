package core

import (
	"fmt"
	"sync"
)

// Event is a discrete input delivered to the simulation once per frame.
// Frontends translate keys, mouse buttons and audio callbacks into events so
// the game never sees raw device input.
type Event int

const (
	EventNone             Event = iota
	EventQuit                   // Esc, Q - end the session
	EventPause                  // P - toggle pause
	EventPrimary                // Left click, Space - start / flap
	EventSecondary              // Right click, R - restart after death
	EventPriorityFinished       // priority audio channel finished playing
)

var eventNames = map[Event]string{
	EventNone:             "None",
	EventQuit:             "Quit",
	EventPause:            "Pause",
	EventPrimary:          "Primary",
	EventSecondary:        "Secondary",
	EventPriorityFinished: "PriorityFinished",
}

// String returns a human-readable name for the event.
func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "Unknown"
}

// MarshalText encodes the event by name so recorded input logs stay readable.
func (e Event) MarshalText() ([]byte, error) {
	name, ok := eventNames[e]
	if !ok {
		return nil, fmt.Errorf("core: unknown event %d", int(e))
	}
	return []byte(name), nil
}

// UnmarshalText decodes an event name produced by MarshalText.
func (e *Event) UnmarshalText(text []byte) error {
	for ev, name := range eventNames {
		if name == string(text) {
			*e = ev
			return nil
		}
	}
	return fmt.Errorf("core: unknown event %q", string(text))
}

// EventQueue is an order-preserving event buffer safe for concurrent producers.
// The frame loop is the only consumer and drains it once per frame; audio
// callbacks and input handlers may push from other goroutines.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
}

// NewEventQueue creates an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event. EventNone is dropped.
func (q *EventQueue) Push(e Event) {
	if e == EventNone {
		return
	}
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain removes and returns all pending events in arrival order.
// Returns nil when the queue is empty.
func (q *EventQueue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
