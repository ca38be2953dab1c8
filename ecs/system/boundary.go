package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// BoundarySystem ends the match once the ball reaches either side of the window.
type BoundarySystem struct{}

func NewBoundarySystem() *BoundarySystem {
	return &BoundarySystem{}
}

func (s *BoundarySystem) Update(w *ecs.World) {
	match, rules, ok := playing(w)
	if !ok || !rules.EndOnExit {
		return
	}
	ball, ok := findBall(w)
	if !ok {
		return
	}

	x := ball.transform.Position.X
	switch {
	case x <= 0:
		match.Winner = 2
	case x >= rules.WindowWidth:
		match.Winner = 1
	default:
		return
	}

	match.Phase = component.MatchEnded
	w.Events().Push(ecs.Event{
		Type: ecs.EventMatchEnded,
		Data: ecs.MatchEndedEvent{Winner: match.Winner, Frame: match.Frame, Hits: match.Hits},
	})
}
