package ecs

// EventQueue buffers events of one type between a producer and the single
// system that consumes them. Consumers Drain once per tick; anything pushed
// after the drain waits for the next one.
type EventQueue[T any] struct {
	items []T
}

// Push adds an event.
func (q *EventQueue[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports the number of pending events.
func (q *EventQueue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Pending returns the queued events without consuming them.
func (q *EventQueue[T]) Pending() []T {
	if q == nil {
		return nil
	}
	return q.items
}

// Clear drops all pending events.
func (q *EventQueue[T]) Clear() {
	if q == nil {
		return
	}
	q.items = nil
}
