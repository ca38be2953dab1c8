package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// NewPaddle places player's paddle at its side of the court. Paddle sprites
// are horizontal textures drawn a quarter turn clockwise, so the paddle sits
// texture-height wide to the left of its position.
func NewPaddle(w *ecs.World, player int, sprite component.Sprite, rules component.Rules) (ecs.Entity, error) {
	name := fmt.Sprintf("paddle%d", player)
	if player != 1 && player != 2 {
		return 0, fmt.Errorf("%s: unknown player", name)
	}
	if err := checkSprite(name, sprite); err != nil {
		return 0, err
	}

	x := rules.PaddleInset
	if player == 2 {
		x = rules.WindowWidth - rules.PaddleInset
	}
	y := rules.WindowHeight/2 - sprite.Height

	return build(w, name,
		with(component.PaddleComponent.Kind(), &component.Paddle{Player: player}),
		with(component.PaddleControlComponent.Kind(), &component.PaddleControl{}),
		with(component.TransformComponent.Kind(), &component.Transform{Position: cp.Vector{X: x, Y: y}, Rotation: math.Pi / 2}),
		with(component.SpriteComponent.Kind(), &sprite),
		with(component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 0}),
	)
}

// AttachCPU hands an existing paddle to the scripted controller.
func AttachCPU(w *ecs.World, paddle ecs.Entity, script string) error {
	if !ecs.Has(w, paddle, component.PaddleComponent.Kind()) {
		return fmt.Errorf("cpu: entity %s is not a paddle", paddle)
	}
	return ecs.Add(w, paddle, component.CPUComponent.Kind(), &component.CPU{Script: script})
}
