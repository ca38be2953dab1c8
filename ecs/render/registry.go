package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/ecs/component"
)

// Registry holds the textures of one host, keyed by asset path.
type Registry struct {
	images map[string]*ebiten.Image
}

func NewRegistry() *Registry {
	return &Registry{images: map[string]*ebiten.Image{}}
}

// Register stores img under key. Empty keys and nil images are ignored.
func (r *Registry) Register(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	r.images[key] = img
}

func (r *Registry) Image(key string) *ebiten.Image {
	if r == nil || key == "" {
		return nil
	}
	return r.images[key]
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.images)
}

// LoadSprite decodes an image asset once, registers it under its path and
// returns the sprite referencing it.
func (r *Registry) LoadSprite(path string) (component.Sprite, error) {
	if path == "" {
		return component.Sprite{}, fmt.Errorf("render: empty image key")
	}
	if img := r.Image(path); img != nil {
		return spriteOf(path, img.Bounds().Dx(), img.Bounds().Dy()), nil
	}

	src, err := assets.DecodeImage(path)
	if err != nil {
		return component.Sprite{}, fmt.Errorf("render: load %s: %w", path, err)
	}
	r.Register(path, ebiten.NewImageFromImage(src))

	b := src.Bounds()
	return spriteOf(path, b.Dx(), b.Dy()), nil
}

func spriteOf(path string, w, h int) component.Sprite {
	return component.Sprite{Image: path, Width: float64(w), Height: float64(h)}
}
