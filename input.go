package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/pong"
)

// readInput polls the keyboard: W/S for player 1, arrow keys for player 2.
func readInput() pong.Input {
	return pong.Input{
		P1Up:   ebiten.IsKeyPressed(ebiten.KeyW),
		P1Down: ebiten.IsKeyPressed(ebiten.KeyS),
		P2Up:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		P2Down: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}
