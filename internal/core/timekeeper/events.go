package timekeeper

import "time"

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventStateChange     EventType = "state_change"
	EventTick            EventType = "tick"
	EventSessionComplete EventType = "session_complete"
	EventConfigChange    EventType = "config_change"
)

// Event represents a TimeKeeper update for observers.
type Event struct {
	Type       EventType
	Snapshot   Snapshot
	Completion *Completion
	At         time.Time
}

// Completion describes a zero-crossing from one session kind to the next.
type Completion struct {
	Previous Kind
	Next     Kind
	At       time.Time
}
