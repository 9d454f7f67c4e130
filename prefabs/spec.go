package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	RunnerFile = "runner.yaml"
	GroundFile = "ground.yaml"
)

var (
	ErrNoPoses      = errors.New("prefabs: runner has no poses")
	ErrInvalidFPS   = errors.New("prefabs: fps must be positive")
	ErrInvalidPose  = errors.New("prefabs: pose must have positive size")
	ErrInvalidTiles = errors.New("prefabs: ground tiles must not be negative")
	ErrMissingSheet = errors.New("prefabs: sheet is required")
)

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

type TransformSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

// RectSpec is a normalized [0,1] region of a sprite sheet.
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type RunnerSpec struct {
	Sheet     string        `yaml:"sheet"`
	RightStep float64       `yaml:"right_step"`
	LeftStep  float64       `yaml:"left_step"`
	FPS       int           `yaml:"fps"`
	Transform TransformSpec `yaml:"transform"`
	Poses     []RectSpec    `yaml:"poses"`
}

func LoadRunnerSpec() (*RunnerSpec, error) {
	spec, err := LoadSpec[RunnerSpec](RunnerFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", RunnerFile, err)
	}
	return &spec, nil
}

func (s *RunnerSpec) Validate() error {
	if s.Sheet == "" {
		return ErrMissingSheet
	}
	if s.FPS <= 0 {
		return ErrInvalidFPS
	}
	if len(s.Poses) == 0 {
		return ErrNoPoses
	}
	for i, p := range s.Poses {
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("pose %d: %w", i, ErrInvalidPose)
		}
	}
	return nil
}

type GroundSpec struct {
	Sheet      string        `yaml:"sheet"`
	Background *YAMLColor    `yaml:"background"`
	Tiles      int           `yaml:"tiles"`
	Spacing    float64       `yaml:"spacing"`
	Skip       []int         `yaml:"skip"`
	Transform  TransformSpec `yaml:"transform"`
}

func LoadGroundSpec() (*GroundSpec, error) {
	spec, err := LoadSpec[GroundSpec](GroundFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", GroundFile, err)
	}
	return &spec, nil
}

func (s *GroundSpec) Validate() error {
	if s.Sheet == "" {
		return ErrMissingSheet
	}
	if s.Tiles < 0 {
		return ErrInvalidTiles
	}
	return nil
}

type YAMLColor struct {
	color.Color
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
