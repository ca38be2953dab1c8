package ecs

import "github.com/jakecoffman/cp"

// EventType names an event payload.
type EventType string

const (
	EventPaddleHit  EventType = "paddle_hit"
	EventWallBounce EventType = "wall_bounce"
	EventMatchEnded EventType = "match_ended"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// PaddleHitEvent is emitted when the ball is reflected by a paddle.
type PaddleHitEvent struct {
	Paddle   Entity
	Player   int
	Offset   float64
	Velocity cp.Vector
}

// WallBounceEvent is emitted when the ball is reflected by the top or bottom wall.
type WallBounceEvent struct {
	Velocity cp.Vector
}

// MatchEndedEvent is emitted once, when the ball leaves through a side.
type MatchEndedEvent struct {
	Winner int
	Frame  int
	Hits   int
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

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
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
