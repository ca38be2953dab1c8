package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// NewBall centres the ball and serves it to the right.
func NewBall(w *ecs.World, sprite component.Sprite, rules component.Rules) (ecs.Entity, error) {
	if err := checkSprite("ball", sprite); err != nil {
		return 0, err
	}

	pos := cp.Vector{
		X: rules.WindowWidth/2 - sprite.Width/2,
		Y: rules.WindowHeight/2 - sprite.Height/2,
	}
	return build(w, "ball",
		with(component.BallTagComponent.Kind(), &component.BallTag{}),
		with(component.TransformComponent.Kind(), &component.Transform{Position: pos}),
		with(component.VelocityComponent.Kind(), &component.Velocity{Vector: cp.Vector{X: rules.BallSpeed}}),
		with(component.SpriteComponent.Kind(), &sprite),
		with(component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: 1}),
	)
}
