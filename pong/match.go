// Package pong runs a two-paddle match as an explicit state value. A host
// calls Advance once per frame with the held keys and then Render to get
// the frame's draw list.
package pong

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/ecs/entity"
	"github.com/milk9111/pong/ecs/system"
)

// Input is the keyboard state of one frame.
type Input struct {
	P1Up, P1Down bool
	P2Up, P2Down bool
}

// Sprites describes the three textures a match needs. Their sizes are the
// collider sizes.
type Sprites struct {
	Paddle1 component.Sprite
	Paddle2 component.Sprite
	Ball    component.Sprite
}

// Frame is everything the host needs to draw one frame.
type Frame struct {
	Clear    color.RGBA
	Commands []system.DrawCommand
}

type options struct {
	cpuPlayer     int
	cpuScript     string
	scriptLoader  func(name string) ([]byte, error)
	onScriptError func(ecs.Entity, error)
}

type Option func(*options)

// WithCPU lets script drive player's paddle instead of the keyboard.
func WithCPU(player int, script string) Option {
	return func(o *options) {
		o.cpuPlayer = player
		o.cpuScript = script
	}
}

// WithScriptLoader overrides where CPU scripts are read from.
func WithScriptLoader(load func(name string) ([]byte, error)) Option {
	return func(o *options) { o.scriptLoader = load }
}

// WithScriptErrorHandler receives CPU script failures.
func WithScriptErrorHandler(fn func(ecs.Entity, error)) Option {
	return func(o *options) { o.onScriptError = fn }
}

type Match struct {
	world     *ecs.World
	state     ecs.Entity
	ball      ecs.Entity
	paddles   [2]ecs.Entity
	input     *system.InputSystem
	cpu       *system.CPUControllerSystem
	scheduler *ecs.Scheduler
	renderer  *system.RenderSystem
}

// New builds a match in the Playing phase with the ball served to the right.
func New(rules component.Rules, sprites Sprites, opts ...Option) (*Match, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	w := ecs.NewWorld()
	state, err := entity.NewMatch(w, rules)
	if err != nil {
		return nil, err
	}
	p1, err := entity.NewPaddle(w, 1, sprites.Paddle1, rules)
	if err != nil {
		return nil, err
	}
	p2, err := entity.NewPaddle(w, 2, sprites.Paddle2, rules)
	if err != nil {
		return nil, err
	}
	ball, err := entity.NewBall(w, sprites.Ball, rules)
	if err != nil {
		return nil, err
	}

	m := &Match{
		world:    w,
		state:    state,
		ball:     ball,
		paddles:  [2]ecs.Entity{p1, p2},
		input:    system.NewInputSystem(),
		cpu:      system.NewCPUControllerSystem(o.onScriptError),
		renderer: system.NewRenderSystem(),
	}

	if o.scriptLoader != nil {
		m.cpu.SetLoader(o.scriptLoader)
	}
	if o.cpuPlayer != 0 {
		paddle, ok := m.Paddle(o.cpuPlayer)
		if !ok {
			return nil, fmt.Errorf("pong: no paddle for player %d", o.cpuPlayer)
		}
		if err := entity.AttachCPU(w, paddle, o.cpuScript); err != nil {
			return nil, err
		}
	}

	m.scheduler = ecs.NewScheduler(
		system.NewBoundarySystem(),
		system.NewBallMovementSystem(),
		m.input,
		m.cpu,
		system.NewPaddleControllerSystem(),
		system.NewPaddleCollisionSystem(),
		system.NewWallBounceSystem(),
	)
	return m, nil
}

// Advance runs one physics step and returns the events it produced. An
// ended match is left untouched.
func Advance(m *Match, in Input) []ecs.Event {
	if m == nil {
		return nil
	}
	state := m.match()
	if state.Phase != component.MatchPlaying {
		return nil
	}
	state.Frame++

	m.input.Set(1, component.PaddleControl{Up: in.P1Up, Down: in.P1Down})
	m.input.Set(2, component.PaddleControl{Up: in.P2Up, Down: in.P2Down})
	m.scheduler.Update(m.world)
	return m.world.Events().Drain()
}

// Render lists the frame's draw commands.
func Render(m *Match) Frame {
	if m == nil {
		return Frame{}
	}
	return Frame{
		Clear:    m.Rules().Background,
		Commands: m.renderer.Commands(m.world),
	}
}

func (m *Match) match() *component.Match {
	state, _ := ecs.Get(m.world, m.state, component.MatchComponent.Kind())
	return state
}

func (m *Match) Phase() component.MatchPhase {
	return m.match().Phase
}

// Winner returns 1 or 2 once the match has ended, 0 before.
func (m *Match) Winner() int {
	return m.match().Winner
}

// Frames returns how many frames have been advanced while playing.
func (m *Match) Frames() int {
	return m.match().Frame
}

func (m *Match) Hits() int {
	return m.match().Hits
}

func (m *Match) Rules() component.Rules {
	rules, _ := ecs.Get(m.world, m.state, component.RulesComponent.Kind())
	return *rules
}

// SetRules swaps the gameplay constants of a running match. The window size
// is fixed at creation and is kept.
func (m *Match) SetRules(r component.Rules) {
	rules, _ := ecs.Get(m.world, m.state, component.RulesComponent.Kind())
	r.WindowWidth = rules.WindowWidth
	r.WindowHeight = rules.WindowHeight
	*rules = r
}

// ReloadScripts recompiles CPU scripts on the next frame.
func (m *Match) ReloadScripts() {
	m.cpu.Reset()
}

func (m *Match) World() *ecs.World {
	return m.world
}

func (m *Match) Ball() ecs.Entity {
	return m.ball
}

// BallVelocity returns the ball's current velocity.
func (m *Match) BallVelocity() cp.Vector {
	v, ok := ecs.Get(m.world, m.ball, component.VelocityComponent.Kind())
	if !ok {
		return cp.Vector{}
	}
	return v.Vector
}

func (m *Match) Paddle(player int) (ecs.Entity, bool) {
	if player < 1 || player > len(m.paddles) {
		return 0, false
	}
	return m.paddles[player-1], true
}
