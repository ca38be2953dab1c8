package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// BallMovementSystem integrates every ball by its velocity.
type BallMovementSystem struct{}

func NewBallMovementSystem() *BallMovementSystem {
	return &BallMovementSystem{}
}

func (s *BallMovementSystem) Update(w *ecs.World) {
	if _, _, ok := playing(w); !ok {
		return
	}

	ecs.ForEach3(w, component.BallTagComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(_ ecs.Entity, _ *component.BallTag, t *component.Transform, v *component.Velocity) {
			t.Position = t.Position.Add(v.Vector)
		})
}
