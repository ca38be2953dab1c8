package component

import "image/color"

// SpinMode selects how a paddle hit offset is computed.
type SpinMode string

const (
	// SpinRelative divides the centre difference by the paddle height.
	SpinRelative SpinMode = "relative"
	// SpinLegacy keeps the first release's arithmetic, where only the ball
	// centre is divided by the texture height.
	SpinLegacy SpinMode = "legacy"
)

// Rules holds every gameplay constant of a match.
type Rules struct {
	WindowWidth      float64
	WindowHeight     float64
	PaddleSpeed      float64
	PaddleInset      float64
	BallSpeed        float64
	PaddleSpin       float64
	BallAcceleration float64
	EndOnExit        bool
	SpinMode         SpinMode
	Background       color.RGBA
}

var RulesComponent = NewComponent[Rules]()
