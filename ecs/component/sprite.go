package component

// Sprite references a registered image by key. Width and Height are the
// texture's pixel dimensions and double as the collider size.
type Sprite struct {
	Image  string
	Width  float64
	Height float64
}

var SpriteComponent = NewComponent[Sprite]()
