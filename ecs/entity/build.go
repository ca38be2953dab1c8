package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

var ErrEmptySprite = errors.New("entity: sprite has zero size")

type componentAdder func(w *ecs.World, e ecs.Entity) error

func with[T any](kind component.ComponentKind[T], value *T) componentAdder {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, kind, value)
	}
}

// build creates an entity and attaches every component, destroying the
// entity again if any of them is rejected.
func build(w *ecs.World, name string, adders ...componentAdder) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	for _, add := range adders {
		if err := add(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("%s: add component: %w", name, err)
		}
	}
	return e, nil
}

func checkSprite(name string, s component.Sprite) error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%s: %w (%s is %vx%v)", name, ErrEmptySprite, s.Image, s.Width, s.Height)
	}
	return nil
}
