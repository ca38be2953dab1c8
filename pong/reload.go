package pong

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// ReloadKind says what an edited prefab file did to a running match.
type ReloadKind int

const (
	ReloadIgnored ReloadKind = iota
	ReloadedScripts
	ReloadedTuning
)

func (k ReloadKind) String() string {
	switch k {
	case ReloadedScripts:
		return "scripts"
	case ReloadedTuning:
		return "tuning"
	default:
		return "ignored"
	}
}

// ReloadResult describes one hot reload. NeedsRestart lists tuning sections
// that differ on disk but only apply to a new match.
type ReloadResult struct {
	Kind         ReloadKind
	NeedsRestart []string
}

// Reload applies an edited prefab file. A tengo script is recompiled on the
// next frame, tuning.yaml is read with load and its rules replace the
// running ones, anything else is ignored. When load fails the running rules
// stay active.
func (m *Match) Reload(name string, load func() (*prefabs.TuningSpec, error)) (ReloadResult, error) {
	if strings.EqualFold(filepath.Ext(name), ".tengo") {
		m.ReloadScripts()
		return ReloadResult{Kind: ReloadedScripts}, nil
	}
	if filepath.Base(name) != prefabs.TuningFile {
		return ReloadResult{Kind: ReloadIgnored}, nil
	}
	if load == nil {
		load = prefabs.LoadTuning
	}

	spec, err := load()
	if err != nil {
		return ReloadResult{Kind: ReloadIgnored}, fmt.Errorf("pong: reload %s: %w", name, err)
	}

	res := ReloadResult{Kind: ReloadedTuning, NeedsRestart: m.restartSections(spec)}
	m.SetRules(RulesFromTuning(spec))
	return res, nil
}

func (m *Match) restartSections(spec *prefabs.TuningSpec) []string {
	var sections []string
	rules := m.Rules()
	if spec.Window.Width != rules.WindowWidth || spec.Window.Height != rules.WindowHeight {
		sections = append(sections, "window")
	}
	if spec.Sprites != m.spritePaths() {
		sections = append(sections, "sprites")
	}
	return sections
}

func (m *Match) spritePaths() prefabs.SpritesSpec {
	image := func(e ecs.Entity) string {
		s, ok := ecs.Get(m.world, e, component.SpriteComponent.Kind())
		if !ok {
			return ""
		}
		return s.Image
	}
	return prefabs.SpritesSpec{
		Paddle1: image(m.paddles[0]),
		Paddle2: image(m.paddles[1]),
		Ball:    image(m.ball),
	}
}
