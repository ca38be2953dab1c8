package system

import (
	"github.com/milk9111/pong/ecs"
)

// WallBounceSystem flips the ball's vertical velocity at the top and bottom
// of the window.
type WallBounceSystem struct{}

func NewWallBounceSystem() *WallBounceSystem {
	return &WallBounceSystem{}
}

func (s *WallBounceSystem) Update(w *ecs.World) {
	_, rules, ok := playing(w)
	if !ok {
		return
	}
	ball, ok := findBall(w)
	if !ok {
		return
	}

	top := ball.transform.Position.Y
	bottom := top + ball.sprite.Height
	if top > 0 && bottom < rules.WindowHeight {
		return
	}

	ball.velocity.Y = -ball.velocity.Y
	w.Events().Push(ecs.Event{
		Type: ecs.EventWallBounce,
		Data: ecs.WallBounceEvent{Velocity: ball.velocity.Vector},
	})
}
