package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventTweenCompleted = "tween_completed"
	EventTweenDestroyed = "tween_destroyed"
	EventTweenFailed    = "tween_failed"
)

// TweenEvent is emitted by the tween system when an entity's animation
// finishes or destroys its target.
type TweenEvent struct {
	Entity Entity
	Name   string
	Frames int
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

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
