package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// PaddleControllerSystem moves paddles vertically by the held directions.
// Positions are not clamped to the window.
type PaddleControllerSystem struct{}

func NewPaddleControllerSystem() *PaddleControllerSystem {
	return &PaddleControllerSystem{}
}

func (s *PaddleControllerSystem) Update(w *ecs.World) {
	_, rules, ok := playing(w)
	if !ok {
		return
	}

	ecs.ForEach3(w, component.PaddleComponent.Kind(), component.PaddleControlComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.Paddle, ctrl *component.PaddleControl, t *component.Transform) {
			t.Position.Y += ctrl.Axis() * rules.PaddleSpeed
		})
}
