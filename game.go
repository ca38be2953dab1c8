package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/ecs/render"
	"github.com/milk9111/pong/pong"
	"github.com/milk9111/pong/prefabs"
	"go.uber.org/zap"
)

type Options struct {
	Debug bool
	CPU   bool
	Watch bool
}

type Game struct {
	logger  *zap.Logger
	match   *pong.Match
	images  *render.Registry
	watcher *prefabs.Watcher
	debug   bool

	width, height int
}

func NewGame(logger *zap.Logger, opts Options) (*Game, error) {
	spec, err := prefabs.LoadTuning()
	if err != nil {
		return nil, err
	}
	images := render.NewRegistry()
	sprites, err := loadSprites(images, spec.Sprites)
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("match_id", uuid.NewString()))

	matchOpts := []pong.Option{
		pong.WithScriptErrorHandler(func(e ecs.Entity, err error) {
			logger.Warn("cpu script failed", zap.Stringer("paddle", e), zap.Error(err))
		}),
	}
	if opts.CPU {
		matchOpts = append(matchOpts, pong.WithCPU(2, spec.CPUScript))
	}

	rules := pong.RulesFromTuning(spec)
	m, err := pong.New(rules, sprites, matchOpts...)
	if err != nil {
		return nil, err
	}

	g := &Game{
		logger: logger,
		match:  m,
		images: images,
		debug:  opts.Debug,
		width:  int(rules.WindowWidth),
		height: int(rules.WindowHeight),
	}

	if opts.Watch {
		g.watcher = startWatcher(logger)
	}

	logger.Info("match started",
		zap.Float64("ball_speed", rules.BallSpeed),
		zap.Float64("paddle_speed", rules.PaddleSpeed),
		zap.String("spin_mode", string(rules.SpinMode)),
		zap.Bool("cpu", opts.CPU))
	return g, nil
}

// startWatcher watches the on-disk prefab directories that exist. Hot reload
// is optional, so failures only disable it.
func startWatcher(logger *zap.Logger) *prefabs.Watcher {
	var dirs []string
	for _, dir := range []string{prefabs.DiskDir(), filepath.Join(prefabs.DiskDir(), "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		logger.Warn("tuning hot reload disabled: no prefabs directory", zap.String("dir", prefabs.DiskDir()))
		return nil
	}

	w, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		logger.Warn("tuning hot reload disabled", zap.Strings("dirs", dirs), zap.Error(err))
		return nil
	}
	return w
}

func loadSprites(images *render.Registry, spec prefabs.SpritesSpec) (pong.Sprites, error) {
	var sprites pong.Sprites
	var err error
	if sprites.Paddle1, err = images.LoadSprite(spec.Paddle1); err != nil {
		return sprites, err
	}
	if sprites.Paddle2, err = images.LoadSprite(spec.Paddle2); err != nil {
		return sprites, err
	}
	if sprites.Ball, err = images.LoadSprite(spec.Ball); err != nil {
		return sprites, err
	}
	return sprites, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.pollWatcher()

	for _, evt := range pong.Advance(g.match, readInput()) {
		g.logEvent(evt)
	}

	if g.match.Phase() == component.MatchEnded {
		fmt.Printf("Player %d, Wins!\n", g.match.Winner())
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	frame := pong.Render(g.match)
	g.images.Draw(screen, frame)
	if g.debug {
		render.DrawDebug(screen, frame, g.match)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) WindowSize() (int, int) {
	return g.width, g.height
}

func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		g.logger.Warn("close tuning watcher", zap.Error(err))
	}
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Changes():
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors():
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("tuning watcher error", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	res, err := g.match.Reload(name, prefabs.LoadTuning)
	if err != nil {
		g.logger.Warn("tuning reload failed, keeping previous rules", zap.String("file", name), zap.Error(err))
		return
	}
	switch res.Kind {
	case pong.ReloadedScripts:
		g.logger.Info("cpu script reloaded", zap.String("file", name))
	case pong.ReloadedTuning:
		g.logger.Info("tuning reloaded", zap.String("file", name))
		if len(res.NeedsRestart) > 0 {
			g.logger.Info("tuning changes apply after restart", zap.Strings("sections", res.NeedsRestart))
		}
	}
}

func (g *Game) logEvent(evt ecs.Event) {
	switch data := evt.Data.(type) {
	case ecs.PaddleHitEvent:
		g.logger.Debug("paddle hit",
			zap.Int("player", data.Player),
			zap.Float64("offset", data.Offset),
			zap.Float64("vx", data.Velocity.X),
			zap.Float64("vy", data.Velocity.Y))
	case ecs.WallBounceEvent:
		g.logger.Debug("wall bounce", zap.Float64("vy", data.Velocity.Y))
	case ecs.MatchEndedEvent:
		g.logger.Info("match ended",
			zap.Int("winner", data.Winner),
			zap.Int("frames", data.Frame),
			zap.Int("hits", data.Hits))
	}
}
