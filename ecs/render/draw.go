package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pong/pong"
	"golang.org/x/image/colornames"
)

// Draw clears screen and executes the frame's draw commands with images
// from r. Commands whose image is not registered are skipped.
func (r *Registry) Draw(screen *ebiten.Image, frame pong.Frame) {
	screen.Fill(frame.Clear)

	for _, cmd := range frame.Commands {
		img := r.Image(cmd.Image)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Rotate(cmd.Rotation)
		op.GeoM.Translate(cmd.X, cmd.Y)
		screen.DrawImage(img, op)
	}
}

// DrawDebug outlines every collider and prints the match state.
func DrawDebug(screen *ebiten.Image, frame pong.Frame, m *pong.Match) {
	for _, cmd := range frame.Commands {
		b := cmd.Bounds
		vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), 1, colornames.Lime, false)
	}

	vel := m.BallVelocity()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  frame: %d  hits: %d  ball v: (%.2f, %.2f)",
		ebiten.ActualFPS(), m.Frames(), m.Hits(), vel.X, vel.Y))
}
