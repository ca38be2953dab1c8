package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/logging"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "outline colliders and log every bounce")
	cpu := flag.Bool("cpu", false, "let the tuning's cpu_script drive player 2")
	watch := flag.Bool("watch", false, "reload prefabs/tuning.yaml and scripts from disk while playing")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	game, err := NewGame(logger, Options{Debug: *debug, CPU: *cpu, Watch: *watch})
	if err != nil {
		logger.Fatal("failed to start game", zap.Error(err))
	}
	defer game.Close()

	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Pong")

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}
