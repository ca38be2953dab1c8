package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

const TuningFile = "tuning.yaml"

type WindowSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PaddleSpec struct {
	Speed float64 `yaml:"speed"`
	Inset float64 `yaml:"inset"`
	Spin  float64 `yaml:"spin"`
}

type BallSpec struct {
	Speed        float64 `yaml:"speed"`
	Acceleration float64 `yaml:"acceleration"`
}

type SpritesSpec struct {
	Paddle1 string `yaml:"paddle1"`
	Paddle2 string `yaml:"paddle2"`
	Ball    string `yaml:"ball"`
}

// TuningSpec is the yaml form of a match's rules and assets.
type TuningSpec struct {
	Window     WindowSpec  `yaml:"window"`
	Paddle     PaddleSpec  `yaml:"paddle"`
	Ball       BallSpec    `yaml:"ball"`
	EndOnExit  bool        `yaml:"end_on_exit"`
	SpinMode   string      `yaml:"spin_mode"`
	Background YAMLColor   `yaml:"background"`
	Sprites    SpritesSpec `yaml:"sprites"`
	CPUScript  string      `yaml:"cpu_script"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadTuning reads and validates tuning.yaml.
func LoadTuning() (*TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// ParseTuning decodes and validates a tuning document.
func ParseTuning(data []byte) (*TuningSpec, error) {
	var spec TuningSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (t *TuningSpec) Validate() error {
	if t.Window.Width <= 0 || t.Window.Height <= 0 {
		return fmt.Errorf("%w: window must be positive, got %vx%v", ErrInvalidTuning, t.Window.Width, t.Window.Height)
	}
	if t.Paddle.Speed < 0 {
		return fmt.Errorf("%w: paddle speed %v is negative", ErrInvalidTuning, t.Paddle.Speed)
	}
	if t.Ball.Acceleration < 0 {
		return fmt.Errorf("%w: ball acceleration %v is negative", ErrInvalidTuning, t.Ball.Acceleration)
	}
	switch t.SpinMode {
	case "", "relative", "legacy":
	default:
		return fmt.Errorf("%w: unknown spin_mode %q", ErrInvalidTuning, t.SpinMode)
	}
	if t.Sprites.Paddle1 == "" || t.Sprites.Paddle2 == "" || t.Sprites.Ball == "" {
		return fmt.Errorf("%w: sprites.paddle1, sprites.paddle2 and sprites.ball are required", ErrInvalidTuning)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

// RGBA8 returns the colour as 8-bit premultiplied channels, opaque black
// when unset.
func (c YAMLColor) RGBA8() color.RGBA {
	if c.Color == nil {
		return color.RGBA{A: 255}
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
