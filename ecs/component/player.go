package component

// Paddle marks a player-controlled paddle. Player is 1 (left) or 2 (right).
type Paddle struct {
	Player int
}

var PaddleComponent = NewComponent[Paddle]()
