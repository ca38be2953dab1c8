package pong

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/ecs/entity"
	"github.com/milk9111/pong/prefabs"
	"github.com/stretchr/testify/require"
)

func testSprites() Sprites {
	return Sprites{
		Paddle1: component.Sprite{Image: "paddle1", Width: 104, Height: 24},
		Paddle2: component.Sprite{Image: "paddle2", Width: 104, Height: 24},
		Ball:    component.Sprite{Image: "ball", Width: 22, Height: 22},
	}
}

func newTestMatch(t *testing.T, rules component.Rules, opts ...Option) *Match {
	t.Helper()
	m, err := New(rules, testSprites(), opts...)
	require.NoError(t, err)
	return m
}

func setBall(t *testing.T, m *Match, pos, vel cp.Vector) {
	t.Helper()
	tr, ok := ecs.Get(m.World(), m.Ball(), component.TransformComponent.Kind())
	require.True(t, ok)
	v, ok := ecs.Get(m.World(), m.Ball(), component.VelocityComponent.Kind())
	require.True(t, ok)
	tr.Position = pos
	v.Vector = vel
}

func ballState(t *testing.T, m *Match) (cp.Vector, cp.Vector) {
	t.Helper()
	tr, ok := ecs.Get(m.World(), m.Ball(), component.TransformComponent.Kind())
	require.True(t, ok)
	v, ok := ecs.Get(m.World(), m.Ball(), component.VelocityComponent.Kind())
	require.True(t, ok)
	return tr.Position, v.Vector
}

func paddleTransform(t *testing.T, m *Match, player int) *component.Transform {
	t.Helper()
	e, ok := m.Paddle(player)
	require.True(t, ok)
	tr, ok := ecs.Get(m.World(), e, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func countEvents(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}

func TestNewPlacesEntities(t *testing.T) {
	m := newTestMatch(t, DefaultRules())

	pos, vel := ballState(t, m)
	require.Equal(t, cp.Vector{X: 309, Y: 229}, pos)
	require.Equal(t, cp.Vector{X: BallSpeed, Y: 0}, vel)

	p1 := paddleTransform(t, m, 1)
	require.Equal(t, cp.Vector{X: 45, Y: 216}, p1.Position)
	require.InDelta(t, math.Pi/2, p1.Rotation, 1e-12)

	p2 := paddleTransform(t, m, 2)
	require.Equal(t, cp.Vector{X: 595, Y: 216}, p2.Position)

	require.Equal(t, component.MatchPlaying, m.Phase())
	require.Equal(t, 0, m.Winner())
}

func TestNewRejectsEmptySprites(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Sprites)
	}{
		{"paddle1", func(s *Sprites) { s.Paddle1.Width = 0 }},
		{"paddle2", func(s *Sprites) { s.Paddle2.Height = 0 }},
		{"ball", func(s *Sprites) { s.Ball = component.Sprite{Image: "ball"} }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sprites := testSprites()
			c.mutate(&sprites)
			_, err := New(DefaultRules(), sprites)
			require.Error(t, err)
			require.True(t, errors.Is(err, entity.ErrEmptySprite), "got %v", err)
		})
	}
}

func TestAdvanceMovesBallByVelocity(t *testing.T) {
	m := newTestMatch(t, DefaultRules())
	setBall(t, m, cp.Vector{X: 320, Y: 240}, cp.Vector{X: 5, Y: 0})

	events := Advance(m, Input{})
	require.Empty(t, events)

	pos, vel := ballState(t, m)
	require.Equal(t, cp.Vector{X: 325, Y: 240}, pos)
	require.Equal(t, cp.Vector{X: 5, Y: 0}, vel)
	require.Equal(t, 1, m.Frames())
}

func TestAdvanceFreeFlight(t *testing.T) {
	m := newTestMatch(t, DefaultRules())
	setBall(t, m, cp.Vector{X: 200, Y: 200}, cp.Vector{X: 3, Y: -1.5})

	for i := 1; i <= 10; i++ {
		Advance(m, Input{})
		pos, _ := ballState(t, m)
		require.InDelta(t, 200+3*float64(i), pos.X, 1e-9)
		require.InDelta(t, 200-1.5*float64(i), pos.Y, 1e-9)
	}
}

func TestPaddleMovement(t *testing.T) {
	rules := DefaultRules()
	rules.PaddleSpeed = 8

	cases := []struct {
		name  string
		input Input
		want1 float64
		want2 float64
	}{
		{"p1_up", Input{P1Up: true}, 92, 216},
		{"p1_down", Input{P1Down: true}, 108, 216},
		{"p2_up", Input{P2Up: true}, 100, 208},
		{"p2_down", Input{P2Down: true}, 100, 224},
		{"p1_both_cancel", Input{P1Up: true, P1Down: true}, 100, 216},
		{"idle", Input{}, 100, 216},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newTestMatch(t, rules)
			paddleTransform(t, m, 1).Position.Y = 100

			Advance(m, c.input)
			require.Equal(t, c.want1, paddleTransform(t, m, 1).Position.Y)
			require.Equal(t, c.want2, paddleTransform(t, m, 2).Position.Y)
		})
	}
}

func TestPaddlesAreNotClamped(t *testing.T) {
	m := newTestMatch(t, DefaultRules())
	paddleTransform(t, m, 1).Position.Y = 4

	Advance(m, Input{P1Up: true})
	require.Equal(t, -2.0, paddleTransform(t, m, 1).Position.Y)
}

func TestPaddleHitReflects(t *testing.T) {
	cases := []struct {
		name   string
		pos    cp.Vector
		vel    cp.Vector
		player int
		wantVX float64
	}{
		{"paddle1", cp.Vector{X: 30, Y: 250}, cp.Vector{X: -4, Y: 0}, 1, 4.05},
		{"paddle2", cp.Vector{X: 580, Y: 250}, cp.Vector{X: 4, Y: 0}, 2, -4.05},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newTestMatch(t, DefaultRules())
			setBall(t, m, c.pos, c.vel)

			events := Advance(m, Input{})
			require.Equal(t, 1, countEvents(events, ecs.EventPaddleHit))

			_, vel := ballState(t, m)
			require.InDelta(t, c.wantVX, vel.X, 1e-9)
			require.NotEqual(t, math.Signbit(c.vel.X), math.Signbit(vel.X))

			// Paddle centre 216+52, ball centre 250+11: the ball struck 7px
			// above the centre and is pushed upwards.
			require.InDelta(t, PaddleSpin*-(7.0/104.0), vel.Y, 1e-9)
			require.Equal(t, 1, m.Hits())

			hit := events[0].Data.(ecs.PaddleHitEvent)
			require.Equal(t, c.player, hit.Player)
			require.InDelta(t, 7.0/104.0, hit.Offset, 1e-9)
		})
	}
}

func TestPaddleHitLegacySpin(t *testing.T) {
	rules := DefaultRules()
	rules.SpinMode = component.SpinLegacy
	m := newTestMatch(t, rules)
	setBall(t, m, cp.Vector{X: 30, Y: 250}, cp.Vector{X: -4, Y: 0})

	Advance(m, Input{})

	_, vel := ballState(t, m)
	offset := (216.0 + 12.0) - 261.0/24.0
	require.InDelta(t, PaddleSpin*-offset, vel.Y, 1e-9)
}

func TestPaddleHitWithoutAcceleration(t *testing.T) {
	rules := DefaultRules()
	rules.BallAcceleration = 0
	m := newTestMatch(t, rules)
	setBall(t, m, cp.Vector{X: 30, Y: 250}, cp.Vector{X: -4, Y: 0})

	Advance(m, Input{})

	_, vel := ballState(t, m)
	require.Equal(t, 4.0, vel.X)
}

func TestFirstPaddleWins(t *testing.T) {
	rules := DefaultRules()
	rules.WindowWidth = 100
	m := newTestMatch(t, rules)
	setBall(t, m, cp.Vector{X: 30, Y: 250}, cp.Vector{X: -4, Y: 0})

	events := Advance(m, Input{})
	require.Equal(t, 1, countEvents(events, ecs.EventPaddleHit))
	require.Equal(t, 1, events[0].Data.(ecs.PaddleHitEvent).Player)

	_, vel := ballState(t, m)
	require.InDelta(t, 4.05, vel.X, 1e-9)
}

func TestWallBounce(t *testing.T) {
	cases := []struct {
		name   string
		pos    cp.Vector
		vel    cp.Vector
		wantVY float64
	}{
		{"top", cp.Vector{X: 300, Y: 1}, cp.Vector{X: 2, Y: -4}, 4},
		{"bottom", cp.Vector{X: 300, Y: 455}, cp.Vector{X: 2, Y: 4}, -4},
		{"top_edge_exact", cp.Vector{X: 300, Y: 4}, cp.Vector{X: 2, Y: -4}, 4},
		{"clear", cp.Vector{X: 300, Y: 200}, cp.Vector{X: 2, Y: 4}, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newTestMatch(t, DefaultRules())
			setBall(t, m, c.pos, c.vel)

			events := Advance(m, Input{})
			_, vel := ballState(t, m)
			require.Equal(t, c.wantVY, vel.Y)
			if c.wantVY != c.vel.Y {
				require.Equal(t, 1, countEvents(events, ecs.EventWallBounce))
			} else {
				require.Zero(t, countEvents(events, ecs.EventWallBounce))
			}
		})
	}
}

func TestMatchEnds(t *testing.T) {
	cases := []struct {
		name   string
		pos    cp.Vector
		vel    cp.Vector
		winner int
	}{
		{"left_exit", cp.Vector{X: 2, Y: 100}, cp.Vector{X: -4, Y: 0}, 2},
		{"right_exit", cp.Vector{X: 638, Y: 100}, cp.Vector{X: 4, Y: 0}, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := newTestMatch(t, DefaultRules())
			setBall(t, m, c.pos, c.vel)

			require.Empty(t, Advance(m, Input{}))
			require.Equal(t, component.MatchPlaying, m.Phase())

			events := Advance(m, Input{})
			require.Equal(t, component.MatchEnded, m.Phase())
			require.Equal(t, c.winner, m.Winner())
			require.Len(t, events, 1)
			ended := events[0].Data.(ecs.MatchEndedEvent)
			require.Equal(t, c.winner, ended.Winner)
			require.Equal(t, 2, ended.Frame)

			stopped, _ := ballState(t, m)
			require.Equal(t, c.pos.Add(c.vel), stopped)

			paddleY := paddleTransform(t, m, 1).Position.Y
			for i := 0; i < 5; i++ {
				require.Nil(t, Advance(m, Input{P1Up: true}))
			}
			pos, _ := ballState(t, m)
			require.Equal(t, stopped, pos)
			require.Equal(t, paddleY, paddleTransform(t, m, 1).Position.Y)
			require.Equal(t, 2, m.Frames())
		})
	}
}

func TestEndlessWithoutExitRule(t *testing.T) {
	rules := DefaultRules()
	rules.EndOnExit = false
	m := newTestMatch(t, rules)
	setBall(t, m, cp.Vector{X: 2, Y: 100}, cp.Vector{X: -4, Y: 0})

	for i := 0; i < 50; i++ {
		Advance(m, Input{})
	}
	pos, _ := ballState(t, m)
	require.Equal(t, component.MatchPlaying, m.Phase())
	require.Equal(t, 2.0-4*50, pos.X)
}

func TestRender(t *testing.T) {
	m := newTestMatch(t, DefaultRules())
	frame := Render(m)

	require.Equal(t, DefaultRules().Background, frame.Clear)
	require.Len(t, frame.Commands, 3)
	require.Equal(t, "paddle1", frame.Commands[0].Image)
	require.Equal(t, "paddle2", frame.Commands[1].Image)
	require.Equal(t, "ball", frame.Commands[2].Image)

	p1 := frame.Commands[0]
	require.Equal(t, 45.0, p1.X)
	require.Equal(t, 216.0, p1.Y)
	require.InDelta(t, math.Pi/2, p1.Rotation, 1e-12)
	require.Equal(t, 21.0, p1.Bounds.X)
	require.Equal(t, 24.0, p1.Bounds.Width)
	require.Equal(t, 104.0, p1.Bounds.Height)

	ball := frame.Commands[2]
	require.Equal(t, 309.0, ball.X)
	require.Equal(t, 22.0, ball.Bounds.Width)
}

func TestSetRulesKeepsWindow(t *testing.T) {
	m := newTestMatch(t, DefaultRules())

	r := DefaultRules()
	r.WindowWidth = 10
	r.PaddleSpeed = 1
	m.SetRules(r)

	require.Equal(t, 640.0, m.Rules().WindowWidth)
	require.Equal(t, 1.0, m.Rules().PaddleSpeed)
}

func TestRulesFromTuning(t *testing.T) {
	spec, err := prefabs.LoadTuning()
	require.NoError(t, err)
	require.Equal(t, DefaultRules(), RulesFromTuning(spec))
	require.Equal(t, DefaultRules(), RulesFromTuning(nil))
}

func TestCPUPaddle(t *testing.T) {
	m := newTestMatch(t, DefaultRules(), WithCPU(2, "cpu.tengo"))
	setBall(t, m, cp.Vector{X: 320, Y: 400}, cp.Vector{X: 4, Y: 0})

	Advance(m, Input{P2Up: true})
	require.Equal(t, 216.0+PaddleSpeed, paddleTransform(t, m, 2).Position.Y)
}

func TestCPUScriptErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", "move := ("},
		{"no_move", "x := 1"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var failures []error
			m := newTestMatch(t, DefaultRules(),
				WithCPU(2, "broken.tengo"),
				WithScriptLoader(func(string) ([]byte, error) { return []byte(c.src), nil }),
				WithScriptErrorHandler(func(_ ecs.Entity, err error) { failures = append(failures, err) }),
			)

			Advance(m, Input{P2Down: true})
			require.Len(t, failures, 1)
			require.Equal(t, 216.0, paddleTransform(t, m, 2).Position.Y)
		})
	}
}

func TestWithCPURejectsUnknownPlayer(t *testing.T) {
	_, err := New(DefaultRules(), testSprites(), WithCPU(3, "cpu.tengo"))
	require.Error(t, err)
}
