package runner

import (
	"time"

	"github.com/milk9111/runner/component"
	"github.com/milk9111/runner/input"
)

// Handler is driven by the host game loop: Tick once per update, then Draw
// once per frame. The two never overlap.
type Handler interface {
	Tick(elapsed time.Duration, in input.Snapshot)
	Draw() []DrawCommand
}

var _ Handler = (*Runner)(nil)

// Runner owns the simulation state and turns it into draw commands.
type Runner struct {
	cfg   Config
	state State
	anim  *component.Animation
}

func New(cfg Config) *Runner {
	return &Runner{
		cfg:   cfg,
		state: State{Position: cfg.StartX},
		anim:  component.NewAnimation(cfg.Atlas.Len(), cfg.PoseFPS, true),
	}
}

// State returns a copy of the current simulation state.
func (r *Runner) State() State {
	return r.state
}

func (r *Runner) Config() Config {
	return r.cfg
}

// Tick moves the runner by the held input and advances the pose for every
// pose period crossed by elapsed.
func (r *Runner) Tick(elapsed time.Duration, in input.Snapshot) {
	if in.Right {
		r.state.Position += r.cfg.RightStep
	}
	if in.Left {
		r.state.Position -= r.cfg.LeftStep
	}

	r.anim.Update(elapsed)
	r.state.Pose = r.anim.Frame()
}

// Draw rebuilds the frame's command list from the current state: clear, the
// ground row, the runner's current pose, present.
func (r *Runner) Draw() []DrawCommand {
	g := r.cfg.Ground
	cmds := make([]DrawCommand, 0, g.Tiles+3)

	cmds = append(cmds, DrawCommand{Kind: CommandClear, Color: r.cfg.Background})

	for i := 0; i < g.Tiles; i++ {
		if g.skipped(i) {
			continue
		}
		cmds = append(cmds, DrawCommand{
			Kind:   CommandTile,
			Sheet:  r.cfg.GroundSheet,
			Source: component.FullRect,
			X:      g.OriginX + g.Spacing*float64(i),
			Y:      g.Y,
			ScaleX: g.ScaleX,
			ScaleY: g.ScaleY,
		})
	}

	cmds = append(cmds, DrawCommand{
		Kind:   CommandSprite,
		Sheet:  r.cfg.RunnerSheet,
		Source: r.cfg.Atlas.Pose(r.state.Pose),
		X:      r.state.Position,
		Y:      r.cfg.RunnerY,
		ScaleX: r.cfg.RunnerScaleX,
		ScaleY: r.cfg.RunnerScaleY,
	})

	return append(cmds, DrawCommand{Kind: CommandPresent})
}

// Apply swaps in new tuning. Position is kept and the pose wraps into the new
// atlas.
func (r *Runner) Apply(cfg Config) {
	r.cfg = cfg
	r.anim.Resize(cfg.Atlas.Len(), cfg.PoseFPS)
	r.state.Pose = r.anim.Frame()
}
