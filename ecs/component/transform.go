package component

import "github.com/jakecoffman/cp"

// Transform places an entity in screen space. Rotation is in radians around
// Position, clockwise with y pointing down.
type Transform struct {
	Position cp.Vector
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
