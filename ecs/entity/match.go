package entity

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// NewMatch creates the singleton entity holding the match state and rules.
func NewMatch(w *ecs.World, rules component.Rules) (ecs.Entity, error) {
	return build(w, "match",
		with(component.MatchComponent.Kind(), &component.Match{Phase: component.MatchPlaying}),
		with(component.RulesComponent.Kind(), &rules),
	)
}
