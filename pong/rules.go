package pong

import (
	"image/color"

	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

const (
	WindowWidth      = 640
	WindowHeight     = 480
	PaddleSpeed      = 6.0
	PaddleInset      = 45.0
	BallSpeed        = 4.0
	PaddleSpin       = 2.0
	BallAcceleration = 0.05
)

// DefaultRules returns the rules of the final release.
func DefaultRules() component.Rules {
	return component.Rules{
		WindowWidth:      WindowWidth,
		WindowHeight:     WindowHeight,
		PaddleSpeed:      PaddleSpeed,
		PaddleInset:      PaddleInset,
		BallSpeed:        BallSpeed,
		PaddleSpin:       PaddleSpin,
		BallAcceleration: BallAcceleration,
		EndOnExit:        true,
		SpinMode:         component.SpinRelative,
		Background:       color.RGBA{R: 0xcc, G: 0x66, B: 0x19, A: 0xff},
	}
}

// RulesFromTuning converts a validated tuning prefab into match rules.
func RulesFromTuning(spec *prefabs.TuningSpec) component.Rules {
	if spec == nil {
		return DefaultRules()
	}
	mode := component.SpinMode(spec.SpinMode)
	if mode == "" {
		mode = component.SpinRelative
	}
	return component.Rules{
		WindowWidth:      spec.Window.Width,
		WindowHeight:     spec.Window.Height,
		PaddleSpeed:      spec.Paddle.Speed,
		PaddleInset:      spec.Paddle.Inset,
		BallSpeed:        spec.Ball.Speed,
		PaddleSpin:       spec.Paddle.Spin,
		BallAcceleration: spec.Ball.Acceleration,
		EndOnExit:        spec.EndOnExit,
		SpinMode:         mode,
		Background:       spec.Background.RGBA8(),
	}
}
