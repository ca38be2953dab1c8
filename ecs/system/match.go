package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

func matchState(w *ecs.World) (*component.Match, *component.Rules, bool) {
	e, ok := ecs.First(w, component.MatchComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	match, _ := ecs.Get(w, e, component.MatchComponent.Kind())
	rules, ok := ecs.Get(w, e, component.RulesComponent.Kind())
	if !ok {
		return nil, nil, false
	}
	return match, rules, true
}

// playing reports whether the physics step should run this frame.
func playing(w *ecs.World) (*component.Match, *component.Rules, bool) {
	match, rules, ok := matchState(w)
	if !ok || match.Phase != component.MatchPlaying {
		return nil, nil, false
	}
	return match, rules, true
}

type ballRef struct {
	entity    ecs.Entity
	transform *component.Transform
	velocity  *component.Velocity
	sprite    *component.Sprite
}

func findBall(w *ecs.World) (ballRef, bool) {
	var ref ballRef
	found := false
	ecs.ForEach3(w, component.BallTagComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(),
		func(e ecs.Entity, _ *component.BallTag, t *component.Transform, v *component.Velocity) {
			if found {
				return
			}
			s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
			if !ok {
				return
			}
			ref = ballRef{entity: e, transform: t, velocity: v, sprite: s}
			found = true
		})
	return ref, found
}
