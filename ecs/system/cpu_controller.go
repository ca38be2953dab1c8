package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// Globals a CPU script can read. The script answers by assigning -1 (up),
// 0 or 1 (down) to `move`.
var cpuScriptInputs = []string{
	"player", "paddle_x", "paddle_y", "ball_x", "ball_y", "ball_vx", "ball_vy",
	"window_width", "window_height", "paddle_speed",
}

type cpuRuntime struct {
	script   string
	compiled *tengo.Compiled
}

// CPUControllerSystem drives paddles carrying a CPU component from a tengo
// script. A failing script leaves its paddle idle for the frame.
type CPUControllerSystem struct {
	load    func(name string) ([]byte, error)
	onError func(e ecs.Entity, err error)
	cache   map[ecs.Entity]*cpuRuntime
}

func NewCPUControllerSystem(onError func(e ecs.Entity, err error)) *CPUControllerSystem {
	return &CPUControllerSystem{
		load:    prefabs.LoadScript,
		onError: onError,
		cache:   map[ecs.Entity]*cpuRuntime{},
	}
}

// SetLoader replaces how script sources are resolved.
func (s *CPUControllerSystem) SetLoader(load func(name string) ([]byte, error)) {
	if load == nil {
		return
	}
	s.load = load
	s.Reset()
}

// Reset drops every compiled script so edited sources are picked up.
func (s *CPUControllerSystem) Reset() {
	s.cache = map[ecs.Entity]*cpuRuntime{}
}

func (s *CPUControllerSystem) Update(w *ecs.World) {
	_, rules, ok := playing(w)
	if !ok {
		return
	}
	ball, ok := findBall(w)
	if !ok {
		return
	}

	ecs.ForEach3(w, component.CPUComponent.Kind(), component.PaddleComponent.Kind(), component.PaddleControlComponent.Kind(),
		func(e ecs.Entity, cpu *component.CPU, p *component.Paddle, ctrl *component.PaddleControl) {
			*ctrl = component.PaddleControl{}

			t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
			if !ok {
				return
			}
			sp, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
			if !ok {
				return
			}

			rt, err := s.runtime(e, cpu.Script)
			if err != nil {
				s.fail(e, err)
				return
			}

			bounds := PaddleBounds(t, sp)
			ballCentre := BallBounds(ball.transform, ball.sprite).CentreY()
			values := map[string]any{
				"player":        p.Player,
				"paddle_x":      bounds.X + bounds.Width/2,
				"paddle_y":      bounds.CentreY(),
				"ball_x":        ball.transform.Position.X,
				"ball_y":        ballCentre,
				"ball_vx":       ball.velocity.X,
				"ball_vy":       ball.velocity.Y,
				"window_width":  rules.WindowWidth,
				"window_height": rules.WindowHeight,
				"paddle_speed":  rules.PaddleSpeed,
			}
			move, err := rt.run(values)
			if err != nil {
				s.fail(e, err)
				return
			}

			switch {
			case move < 0:
				ctrl.Up = true
			case move > 0:
				ctrl.Down = true
			}
		})
}

func (s *CPUControllerSystem) fail(e ecs.Entity, err error) {
	if s.onError != nil {
		s.onError(e, err)
	}
}

func (s *CPUControllerSystem) runtime(e ecs.Entity, script string) (*cpuRuntime, error) {
	if strings.TrimSpace(script) == "" {
		return nil, fmt.Errorf("cpu: empty script path")
	}
	if rt, ok := s.cache[e]; ok && rt.script == script {
		return rt, nil
	}

	src, err := s.load(script)
	if err != nil {
		return nil, fmt.Errorf("cpu: load %s: %w", script, err)
	}

	ts := tengo.NewScript(src)
	for _, name := range cpuScriptInputs {
		if err := ts.Add(name, 0); err != nil {
			return nil, fmt.Errorf("cpu: declare %s: %w", name, err)
		}
	}
	ts.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := ts.Compile()
	if err != nil {
		return nil, fmt.Errorf("cpu: compile %s: %w", script, err)
	}

	rt := &cpuRuntime{script: script, compiled: compiled}
	s.cache[e] = rt
	return rt, nil
}

func (rt *cpuRuntime) run(values map[string]any) (int, error) {
	for name, v := range values {
		if err := rt.compiled.Set(name, v); err != nil {
			return 0, fmt.Errorf("cpu: set %s: %w", name, err)
		}
	}
	if err := rt.compiled.Run(); err != nil {
		return 0, fmt.Errorf("cpu: run %s: %w", rt.script, err)
	}
	if !rt.compiled.IsDefined("move") {
		return 0, fmt.Errorf("cpu: %s does not define move", rt.script)
	}
	return rt.compiled.Get("move").Int(), nil
}
