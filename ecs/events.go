package ecs

// EventKind identifies gameplay events.
type EventKind string

const (
	EventStarted        EventKind = "start"
	EventSpawned        EventKind = "spawn"
	EventCoinCollected  EventKind = "coin"
	EventObstaclePassed EventKind = "pass"
	EventMilestone      EventKind = "milestone"
	EventGameOver       EventKind = "game_over"
)

// Event is raised by systems during a frame and drained by the loop driver
// once the frame is done.
type Event struct {
	Kind   EventKind
	Entity Entity
	Score  int
	Speed  float64
	// Z is the depth coordinate of Entity when the event fired.
	Z float64
}

// EventQueue is a simple FIFO queue.
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

// Pending returns the queued events without consuming them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
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

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
