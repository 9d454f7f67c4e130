package runner

import (
	"fmt"
	"image/color"

	"github.com/milk9111/runner/component"
	"github.com/milk9111/runner/prefabs"
	"golang.org/x/image/colornames"
)

// Config holds the tuning for one runner scene.
type Config struct {
	RunnerSheet string
	GroundSheet string
	Background  color.Color

	RightStep float64
	LeftStep  float64
	PoseFPS   int
	Atlas     PoseAtlas

	StartX float64
	// RunnerY is the vertical baseline the runner is drawn at.
	RunnerY      float64
	RunnerScaleX float64
	RunnerScaleY float64

	Ground GroundLayout
}

// GroundLayout places a row of ground tiles.
type GroundLayout struct {
	Tiles   int
	Spacing float64
	OriginX float64
	Y       float64
	ScaleX  float64
	ScaleY  float64
	// Skip lists tile indices left out of the row.
	Skip []int
}

func (g GroundLayout) skipped(i int) bool {
	for _, s := range g.Skip {
		if s == i {
			return true
		}
	}
	return false
}

// Placed returns how many tiles the layout actually draws.
func (g GroundLayout) Placed() int {
	n := 0
	for i := 0; i < g.Tiles; i++ {
		if !g.skipped(i) {
			n++
		}
	}
	return n
}

func DefaultConfig() Config {
	return Config{
		RunnerSheet:  "runner.png",
		GroundSheet:  "ground.png",
		Background:   colornames.Black,
		RightStep:    1.0,
		LeftStep:     0.5,
		PoseFPS:      10,
		Atlas:        DefaultPoseAtlas(),
		RunnerY:      437,
		RunnerScaleX: 0.22,
		RunnerScaleY: 0.2,
		Ground: GroundLayout{
			Tiles:   30,
			Spacing: 75,
			Y:       525,
			ScaleX:  0.5,
			ScaleY:  0.5,
			Skip:    []int{5, 6},
		},
	}
}

// ConfigFromSpecs builds a Config from validated prefab specs.
func ConfigFromSpecs(rs *prefabs.RunnerSpec, gs *prefabs.GroundSpec) (Config, error) {
	if rs == nil || gs == nil {
		return Config{}, fmt.Errorf("runner: nil spec")
	}
	if err := rs.Validate(); err != nil {
		return Config{}, fmt.Errorf("runner: %s: %w", prefabs.RunnerFile, err)
	}
	if err := gs.Validate(); err != nil {
		return Config{}, fmt.Errorf("runner: %s: %w", prefabs.GroundFile, err)
	}

	poses := make([]component.Rect, len(rs.Poses))
	for i, p := range rs.Poses {
		poses[i] = component.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
	}

	var bg color.Color = colornames.Black
	if gs.Background != nil && gs.Background.Color != nil {
		bg = gs.Background.Color
	}

	return Config{
		RunnerSheet:  rs.Sheet,
		GroundSheet:  gs.Sheet,
		Background:   bg,
		RightStep:    rs.RightStep,
		LeftStep:     rs.LeftStep,
		PoseFPS:      rs.FPS,
		Atlas:        NewPoseAtlas(poses...),
		StartX:       rs.Transform.X,
		RunnerY:      rs.Transform.Y,
		RunnerScaleX: scaleOrOne(rs.Transform.ScaleX),
		RunnerScaleY: scaleOrOne(rs.Transform.ScaleY),
		Ground: GroundLayout{
			Tiles:   gs.Tiles,
			Spacing: gs.Spacing,
			OriginX: gs.Transform.X,
			Y:       gs.Transform.Y,
			ScaleX:  scaleOrOne(gs.Transform.ScaleX),
			ScaleY:  scaleOrOne(gs.Transform.ScaleY),
			Skip:    append([]int(nil), gs.Skip...),
		},
	}, nil
}

// LoadConfig reads runner.yaml and ground.yaml through the prefabs loader.
func LoadConfig() (Config, error) {
	rs, err := prefabs.LoadRunnerSpec()
	if err != nil {
		return Config{}, err
	}
	gs, err := prefabs.LoadGroundSpec()
	if err != nil {
		return Config{}, err
	}
	return ConfigFromSpecs(rs, gs)
}

func scaleOrOne(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}
