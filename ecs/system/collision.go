package system

import (
	"math"
	"sort"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// PaddleCollisionSystem reflects the ball off the first paddle it overlaps,
// checking player 1 before player 2.
type PaddleCollisionSystem struct{}

func NewPaddleCollisionSystem() *PaddleCollisionSystem {
	return &PaddleCollisionSystem{}
}

type paddleRef struct {
	entity    ecs.Entity
	player    int
	transform *component.Transform
	sprite    *component.Sprite
}

func (s *PaddleCollisionSystem) Update(w *ecs.World) {
	match, rules, ok := playing(w)
	if !ok {
		return
	}
	ball, ok := findBall(w)
	if !ok {
		return
	}

	ballBounds := BallBounds(ball.transform, ball.sprite)
	for _, p := range paddles(w) {
		if !ballBounds.Intersects(PaddleBounds(p.transform, p.sprite)) {
			continue
		}

		v := ball.velocity
		v.X = -(v.X + rules.BallAcceleration*common.Sign(v.X))
		offset := SpinOffset(rules.SpinMode, p.transform, p.sprite, ball.transform, ball.sprite)
		v.Y += rules.PaddleSpin * -offset
		match.Hits++

		w.Events().Push(ecs.Event{
			Type: ecs.EventPaddleHit,
			Data: ecs.PaddleHitEvent{Paddle: p.entity, Player: p.player, Offset: offset, Velocity: v.Vector},
		})
		return
	}
}

func paddles(w *ecs.World) []paddleRef {
	var out []paddleRef
	ecs.ForEach3(w, component.PaddleComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind(),
		func(e ecs.Entity, p *component.Paddle, t *component.Transform, s *component.Sprite) {
			out = append(out, paddleRef{entity: e, player: p.Player, transform: t, sprite: s})
		})
	sort.SliceStable(out, func(i, j int) bool { return out[i].player < out[j].player })
	return out
}

// PaddleBounds returns the collider of a paddle. A paddle turned a quarter
// clockwise around its position occupies the texture's height to the left of
// that position and the texture's width below it.
func PaddleBounds(t *component.Transform, s *component.Sprite) common.Rect {
	if quarterTurn(t.Rotation) {
		return common.Rect{
			X:      t.Position.X - s.Height,
			Y:      t.Position.Y,
			Width:  s.Height,
			Height: s.Width,
		}
	}
	return common.Rect{X: t.Position.X, Y: t.Position.Y, Width: s.Width, Height: s.Height}
}

// BallBounds returns the collider of the ball.
func BallBounds(t *component.Transform, s *component.Sprite) common.Rect {
	return common.Rect{X: t.Position.X, Y: t.Position.Y, Width: s.Width, Height: s.Height}
}

// SpinOffset measures how far from the paddle's centre the ball struck, as
// used to derive the spin added to the ball's vertical velocity.
func SpinOffset(mode component.SpinMode, pt *component.Transform, ps *component.Sprite, bt *component.Transform, bs *component.Sprite) float64 {
	ballCentre := BallBounds(bt, bs).CentreY()

	if mode == component.SpinLegacy {
		if ps.Height <= 0 {
			return 0
		}
		paddleCentre := pt.Position.Y + ps.Height/2
		return paddleCentre - ballCentre/ps.Height
	}

	pb := PaddleBounds(pt, ps)
	if pb.Height <= 0 {
		return 0
	}
	return (pb.CentreY() - ballCentre) / pb.Height
}

func quarterTurn(rotation float64) bool {
	return math.Abs(rotation-math.Pi/2) < 1e-9
}
