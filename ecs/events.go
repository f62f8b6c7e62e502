package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventDragStarted = "drag_started"
	EventCarDropped  = "car_dropped"
	EventEndScene    = "end_scene"
)

// DropEvent is the Data of an EventCarDropped event.
type DropEvent struct {
	Car       Entity
	CarID     string
	Accepted  bool
	AllParked bool
}

// EventQueue is a simple FIFO queue. Events not drained during an update are
// dropped when the update ends.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
