package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// InputSystem copies the latest per-player controls onto keyboard-driven
// paddles. Paddles with a CPU component are left to CPUControllerSystem.
type InputSystem struct {
	controls map[int]component.PaddleControl
}

func NewInputSystem() *InputSystem {
	return &InputSystem{controls: map[int]component.PaddleControl{}}
}

// Set records the controls for player to apply on the next Update.
func (i *InputSystem) Set(player int, c component.PaddleControl) {
	i.controls[player] = c
}

func (i *InputSystem) Update(w *ecs.World) {
	if _, _, ok := playing(w); !ok {
		return
	}

	ecs.ForEach2(w, component.PaddleComponent.Kind(), component.PaddleControlComponent.Kind(),
		func(e ecs.Entity, p *component.Paddle, ctrl *component.PaddleControl) {
			if ecs.Has(w, e, component.CPUComponent.Kind()) {
				return
			}
			*ctrl = i.controls[p.Player]
		})
}
