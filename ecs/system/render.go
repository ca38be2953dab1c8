package system

import (
	"sort"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// DrawCommand asks the host to draw one registered image. X, Y and Rotation
// are applied around the image's top-left corner.
type DrawCommand struct {
	Entity   ecs.Entity
	Image    string
	X, Y     float64
	Rotation float64
	Bounds   common.Rect
}

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Commands lists one draw command per sprite, ordered by render layer and
// then by entity.
func (r *RenderSystem) Commands(w *ecs.World) []DrawCommand {
	type layered struct {
		layer int
		cmd   DrawCommand
	}

	var items []layered
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
			if s.Image == "" {
				return
			}
			layer := 0
			if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
				layer = l.Index
			}

			bounds := BallBounds(t, s)
			if ecs.Has(w, e, component.PaddleComponent.Kind()) {
				bounds = PaddleBounds(t, s)
			}

			items = append(items, layered{layer: layer, cmd: DrawCommand{
				Entity:   e,
				Image:    s.Image,
				X:        t.Position.X,
				Y:        t.Position.Y,
				Rotation: t.Rotation,
				Bounds:   bounds,
			}})
		})

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].cmd.Entity) < uint64(items[j].cmd.Entity)
	})

	out := make([]DrawCommand, len(items))
	for i, it := range items {
		out[i] = it.cmd
	}
	return out
}
