package component

// PaddleControl stores the directions held for a paddle this frame.
type PaddleControl struct {
	Up   bool
	Down bool
}

// Axis folds the held directions into -1 (up), 0 or +1 (down).
func (c PaddleControl) Axis() float64 {
	axis := 0.0
	if c.Up {
		axis--
	}
	if c.Down {
		axis++
	}
	return axis
}

var PaddleControlComponent = NewComponent[PaddleControl]()
